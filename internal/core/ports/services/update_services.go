package services

import (
	"context"

	"github.com/opengive/giving_backend/internal/dto"
)

// UpdateSvcFacade manages charity news updates.
type UpdateSvcFacade interface {
	CreateUpdate(ctx context.Context, userGUID string, req dto.CreateUpdateRequest) (*dto.UpdateResponse, error)
	GetUpdate(ctx context.Context, guid string) (*dto.UpdateResponse, error)
	ListUpdates(ctx context.Context, params dto.ListUpdatesParams) (*dto.ListUpdatesResponse, error)
}
