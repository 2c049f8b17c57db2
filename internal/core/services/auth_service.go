package services

import (
	"context"
	"errors"
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
	"github.com/opengive/giving_backend/internal/utils"
)

type authService struct {
	userRepo  portsrepo.UserRepositoryFacade
	tokenRepo portsrepo.CharityTokenRepositoryFacade
	formatter portssvc.FormatterSvcFacade

	jwtSecret string
	jwtExpiry time.Duration
	jwtIssuer string
}

func newAuthService(repos *portsrepo.RepositoryProvider, formatter portssvc.FormatterSvcFacade, jwtSecret string, jwtExpiry time.Duration, jwtIssuer string) portssvc.AuthSvcFacade {
	return &authService{
		userRepo:  repos.UserRepo,
		tokenRepo: repos.CharityTokenRepo,
		formatter: formatter,
		jwtSecret: jwtSecret,
		jwtExpiry: jwtExpiry,
		jwtIssuer: jwtIssuer,
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Register creates the account and, when a charity invitation token is
// supplied, validates and consumes it so the account is marked as charity
// staff. A token that is unknown, expired or already used conflicts the whole
// registration.
func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	_, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err == nil {
		return nil, fmt.Errorf("email already registered: %w", apperrors.ErrDuplicate)
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for existing user: %w", err)
	}

	var charityToken *domain.CharityToken
	if req.CharityToken != nil {
		charityToken, err = s.tokenRepo.FindCharityTokenByCode(ctx, *req.CharityToken)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("unknown charity token: %w", apperrors.ErrConflict)
			}
			return nil, fmt.Errorf("failed to look up charity token: %w", err)
		}
		if !charityToken.Valid(time.Now().UTC()) {
			return nil, fmt.Errorf("charity token expired or already used: %w", apperrors.ErrConflict)
		}
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := domain.User{
		ObjectFields: domain.ObjectFields{
			GUID:         uuid.NewString(),
			DateCreated:  now,
			LastModified: now,
		},
		Email:        req.Email,
		PasswordHash: hash,
		Name:         req.Name,
		Bio:          req.Bio,
		Picture:      req.Picture,
		CharityUser:  charityToken != nil,
		Balance:      0,
		Posts:        []string{},
		Donations:    []string{},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if charityToken != nil {
		if err := s.tokenRepo.MarkCharityTokenUsed(ctx, charityToken.GUID, user.GUID, now); err != nil {
			// Another registration won the token between validation and here.
			return nil, fmt.Errorf("charity token already consumed: %w", err)
		}
	}

	signed, err := utils.MakeUserToken(&user, s.jwtSecret, s.jwtExpiry, s.jwtIssuer)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token for new user: %w", err)
	}

	logger.Info("User registered", slog.String("user_id", user.GUID), slog.Bool("charity_user", user.CharityUser))
	return &dto.AuthResponse{
		Token: signed,
		User:  s.formatter.FormatUser(ctx, &user),
	}, nil
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("invalid credentials: %w", apperrors.ErrUnauthorized)
		}
		return nil, fmt.Errorf("failed to look up user for login: %w", err)
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		logger.Warn("Failed login attempt", slog.String("user_id", user.GUID))
		return nil, fmt.Errorf("invalid credentials: %w", apperrors.ErrUnauthorized)
	}

	signed, err := utils.MakeUserToken(user, s.jwtSecret, s.jwtExpiry, s.jwtIssuer)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &dto.AuthResponse{
		Token: signed,
		User:  s.formatter.FormatUser(ctx, user),
	}, nil
}
