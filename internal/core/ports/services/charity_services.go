package services

import (
	"context"

	"github.com/opengive/giving_backend/internal/dto"
)

// CharitySvcFacade manages charities. Creation and edits require the calling
// user to be charity staff; edits additionally require membership of the
// target charity.
type CharitySvcFacade interface {
	CreateCharity(ctx context.Context, userGUID string, req dto.CreateCharityRequest) (*dto.CharityResponse, error)
	GetCharity(ctx context.Context, guid string) (*dto.CharityResponse, error)
	ListCharities(ctx context.Context, params dto.ListParams) (*dto.ListCharitiesResponse, error)
	UpdateCharity(ctx context.Context, userGUID string, guid string, req dto.UpdateCharityRequest) (*dto.CharityResponse, error)
}
