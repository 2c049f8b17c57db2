package services

import (
	"context"

	"github.com/opengive/giving_backend/internal/dto"
)

// CharityTokenSvcFacade issues and resolves charity invitation tokens.
type CharityTokenSvcFacade interface {
	CreateCharityToken(ctx context.Context, req dto.CreateCharityTokenRequest) (*dto.CharityTokenResponse, error)
	GetCharityTokenByCode(ctx context.Context, code string) (*dto.CharityTokenResponse, error)
}
