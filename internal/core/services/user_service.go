package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/opengive/giving_backend/internal/core/domain"
	portsrepo "github.com/opengive/giving_backend/internal/core/ports/repositories"
	portssvc "github.com/opengive/giving_backend/internal/core/ports/services"
	"github.com/opengive/giving_backend/internal/dto"
	"github.com/opengive/giving_backend/internal/middleware"
)

type userService struct {
	userRepo portsrepo.UserRepositoryFacade
}

func newUserService(repos *portsrepo.RepositoryProvider) portssvc.UserSvcFacade {
	return &userService{userRepo: repos.UserRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) GetUserByGUID(ctx context.Context, guid string) (*domain.User, error) {
	return s.userRepo.FindUserByGUID(ctx, guid)
}

func (s *userService) UpdateUser(ctx context.Context, userGUID string, req dto.UpdateUserRequest) (*domain.User, error) {
	user, err := s.userRepo.FindUserByGUID(ctx, userGUID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.Picture != nil {
		user.Picture = *req.Picture
	}
	user.LastModified = time.Now().UTC()

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return nil, fmt.Errorf("failed to update user %s: %w", userGUID, err)
	}
	return user, nil
}

func (s *userService) Deposit(ctx context.Context, userGUID string, amountCents int64) (*domain.User, error) {
	user, err := s.userRepo.IncrementBalance(ctx, userGUID, amountCents, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	middleware.GetLoggerFromCtx(ctx).Info("Balance deposit",
		slog.String("user_id", userGUID),
		slog.Int64("amount_cents", amountCents),
		slog.Int64("new_balance", user.Balance),
	)
	return user, nil
}

func (s *userService) EraseUser(ctx context.Context, userGUID string) error {
	if err := s.userRepo.MarkUserErased(ctx, userGUID, time.Now().UTC()); err != nil {
		return err
	}
	middleware.GetLoggerFromCtx(ctx).Info("User erased", slog.String("user_id", userGUID))
	return nil
}
