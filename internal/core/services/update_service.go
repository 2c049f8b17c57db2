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

type updateService struct {
	updateRepo  portsrepo.UpdateRepositoryFacade
	charityRepo portsrepo.CharityRepositoryFacade
	userRepo    portsrepo.UserRepositoryFacade
	formatter   portssvc.FormatterSvcFacade
}

func newUpdateService(repos *portsrepo.RepositoryProvider, formatter portssvc.FormatterSvcFacade) portssvc.UpdateSvcFacade {
	return &updateService{
		updateRepo:  repos.UpdateRepo,
		charityRepo: repos.CharityRepo,
		userRepo:    repos.UserRepo,
		formatter:   formatter,
	}
}

var _ portssvc.UpdateSvcFacade = (*updateService)(nil)

func (s *updateService) CreateUpdate(ctx context.Context, userGUID string, req dto.CreateUpdateRequest) (*dto.UpdateResponse, error) {
	user, err := s.userRepo.FindUserByGUID(ctx, userGUID)
	if err != nil {
		return nil, err
	}
	if !user.AdministersCharity() {
		return nil, fmt.Errorf("user does not administer a charity: %w", apperrors.ErrForbidden)
	}

	now := time.Now().UTC()
	update := domain.Update{
		ObjectFields: domain.ObjectFields{
			GUID:         uuid.NewString(),
			DateCreated:  now,
			LastModified: now,
		},
		Charity: *user.Charity,
		Title:   req.Title,
		Body:    req.Body,
	}

	if err := s.updateRepo.SaveUpdate(ctx, update); err != nil {
		return nil, fmt.Errorf("failed to create update: %w", err)
	}

	if _, err := s.charityRepo.AppendUpdate(ctx, update.Charity, update.GUID, now); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Update created but charity list append failed",
			slog.String("update_id", update.GUID),
			slog.String("charity_id", update.Charity),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to register update with charity: %w", apperrors.ErrInternal)
	}

	resp := s.formatter.FormatUpdate(ctx, &update)
	return &resp, nil
}

func (s *updateService) GetUpdate(ctx context.Context, guid string) (*dto.UpdateResponse, error) {
	update, err := s.updateRepo.FindUpdateByGUID(ctx, guid)
	if err != nil {
		return nil, err
	}
	resp := s.formatter.FormatUpdate(ctx, update)
	return &resp, nil
}

func (s *updateService) ListUpdates(ctx context.Context, params dto.ListUpdatesParams) (*dto.ListUpdatesResponse, error) {
	updates, err := s.updateRepo.FindUpdatesByCharity(ctx, params.Charity, params.Limit, params.Offset)
	if err != nil {
		return nil, err
	}
	resp := dto.ListUpdatesResponse{Updates: make([]dto.UpdateResponse, 0, len(updates))}
	for i := range updates {
		resp.Updates = append(resp.Updates, s.formatter.FormatUpdate(ctx, &updates[i]))
	}
	return &resp, nil
}
