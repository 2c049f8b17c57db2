package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/opengive/giving_backend/internal/apperrors"
	"github.com/opengive/giving_backend/internal/core/domain"
	portsrepo "github.com/opengive/giving_backend/internal/core/ports/repositories"
	portssvc "github.com/opengive/giving_backend/internal/core/ports/services"
	"github.com/opengive/giving_backend/internal/dto"
	"github.com/opengive/giving_backend/internal/middleware"
)

type charityService struct {
	charityRepo portsrepo.CharityRepositoryFacade
	userRepo    portsrepo.UserRepositoryFacade
	formatter   portssvc.FormatterSvcFacade
}

func newCharityService(repos *portsrepo.RepositoryProvider, formatter portssvc.FormatterSvcFacade) portssvc.CharitySvcFacade {
	return &charityService{
		charityRepo: repos.CharityRepo,
		userRepo:    repos.UserRepo,
		formatter:   formatter,
	}
}

var _ portssvc.CharitySvcFacade = (*charityService)(nil)

// CreateCharity registers a new charity with the calling charity-staff user as
// its first member. A user can administer at most one charity.
func (s *charityService) CreateCharity(ctx context.Context, userGUID string, req dto.CreateCharityRequest) (*dto.CharityResponse, error) {
	user, err := s.userRepo.FindUserByGUID(ctx, userGUID)
	if err != nil {
		return nil, err
	}
	if !user.CharityUser {
		return nil, fmt.Errorf("only charity staff can create a charity: %w", apperrors.ErrForbidden)
	}
	if user.AdministersCharity() {
		return nil, fmt.Errorf("user already administers a charity: %w", apperrors.ErrConflict)
	}

	now := time.Now().UTC()
	charity := domain.Charity{
		ObjectFields: domain.ObjectFields{
			GUID:         uuid.NewString(),
			DateCreated:  now,
			LastModified: now,
		},
		Name:         req.Name,
		Description:  req.Description,
		CharityToken: uuid.NewString(),
		Users:        []string{userGUID},
		Campaigns:    []string{},
		Updates:      []string{},
		Donations:    []string{},
	}

	if err := s.charityRepo.SaveCharity(ctx, charity); err != nil {
		return nil, fmt.Errorf("failed to create charity: %w", err)
	}

	user.Charity = &charity.GUID
	user.LastModified = now
	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Charity created but user link failed",
			slog.String("charity_id", charity.GUID),
			slog.String("user_id", userGUID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to link user to new charity: %w", apperrors.ErrInternal)
	}

	middleware.GetLoggerFromCtx(ctx).Info("Charity created", slog.String("charity_id", charity.GUID), slog.String("user_id", userGUID))
	resp := s.formatter.FormatCharity(ctx, &charity)
	return &resp, nil
}

func (s *charityService) GetCharity(ctx context.Context, guid string) (*dto.CharityResponse, error) {
	charity, err := s.charityRepo.FindCharityByGUID(ctx, guid)
	if err != nil {
		return nil, err
	}
	resp := s.formatter.FormatCharity(ctx, charity)
	return &resp, nil
}

func (s *charityService) ListCharities(ctx context.Context, params dto.ListParams) (*dto.ListCharitiesResponse, error) {
	charities, err := s.charityRepo.FindCharities(ctx, params.Limit, params.Offset)
	if err != nil {
		return nil, err
	}
	resp := dto.ListCharitiesResponse{Charities: make([]dto.CharityResponse, 0, len(charities))}
	for i := range charities {
		resp.Charities = append(resp.Charities, s.formatter.FormatCharity(ctx, &charities[i]))
	}
	return &resp, nil
}

func (s *charityService) UpdateCharity(ctx context.Context, userGUID string, guid string, req dto.UpdateCharityRequest) (*dto.CharityResponse, error) {
	user, err := s.userRepo.FindUserByGUID(ctx, userGUID)
	if err != nil {
		return nil, err
	}
	if user.Charity == nil || *user.Charity != guid {
		return nil, fmt.Errorf("user does not administer this charity: %w", apperrors.ErrForbidden)
	}

	charity, err := s.charityRepo.FindCharityByGUID(ctx, guid)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		charity.Name = *req.Name
	}
	if req.Description != nil {
		charity.Description = *req.Description
	}
	charity.LastModified = time.Now().UTC()

	if err := s.charityRepo.UpdateCharity(ctx, *charity); err != nil {
		return nil, fmt.Errorf("failed to update charity %s: %w", guid, err)
	}
	resp := s.formatter.FormatCharity(ctx, charity)
	return &resp, nil
}
