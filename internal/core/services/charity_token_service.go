package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/opengive/giving_backend/internal/core/domain"
	portsrepo "github.com/opengive/giving_backend/internal/core/ports/repositories"
	portssvc "github.com/opengive/giving_backend/internal/core/ports/services"
	"github.com/opengive/giving_backend/internal/dto"
	"github.com/opengive/giving_backend/internal/middleware"
)

// defaultTokenExpiryDays applies when the issuer gives no explicit expiry.
const defaultTokenExpiryDays = 30

type charityTokenService struct {
	tokenRepo portsrepo.CharityTokenRepositoryFacade
}

func newCharityTokenService(repos *portsrepo.RepositoryProvider) portssvc.CharityTokenSvcFacade {
	return &charityTokenService{tokenRepo: repos.CharityTokenRepo}
}

var _ portssvc.CharityTokenSvcFacade = (*charityTokenService)(nil)

func (s *charityTokenService) CreateCharityToken(ctx context.Context, req dto.CreateCharityTokenRequest) (*dto.CharityTokenResponse, error) {
	expiryDays := req.ExpiryDays
	if expiryDays <= 0 {
		expiryDays = defaultTokenExpiryDays
	}

	now := time.Now().UTC()
	token := domain.CharityToken{
		ObjectFields: domain.ObjectFields{
			GUID:         uuid.NewString(),
			DateCreated:  now,
			LastModified: now,
		},
		Token:      uuid.NewString(),
		Email:      req.Email,
		Expiration: now.AddDate(0, 0, expiryDays),
		Used:       false,
	}

	if err := s.tokenRepo.SaveCharityToken(ctx, token); err != nil {
		return nil, fmt.Errorf("failed to issue charity token: %w", err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("Charity token issued",
		slog.String("token_id", token.GUID),
		slog.String("email", token.Email),
	)
	resp := dto.ToCharityTokenResponse(&token)
	return &resp, nil
}

func (s *charityTokenService) GetCharityTokenByCode(ctx context.Context, code string) (*dto.CharityTokenResponse, error) {
	token, err := s.tokenRepo.FindCharityTokenByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	resp := dto.ToCharityTokenResponse(token)
	return &resp, nil
}
