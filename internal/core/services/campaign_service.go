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

type campaignService struct {
	campaignRepo portsrepo.CampaignRepositoryFacade
	charityRepo  portsrepo.CharityRepositoryFacade
	userRepo     portsrepo.UserRepositoryFacade
	formatter    portssvc.FormatterSvcFacade
}

func newCampaignService(repos *portsrepo.RepositoryProvider, formatter portssvc.FormatterSvcFacade) portssvc.CampaignSvcFacade {
	return &campaignService{
		campaignRepo: repos.CampaignRepo,
		charityRepo:  repos.CharityRepo,
		userRepo:     repos.UserRepo,
		formatter:    formatter,
	}
}

var _ portssvc.CampaignSvcFacade = (*campaignService)(nil)

// CreateCampaign opens a campaign under the caller's charity. The charity is
// always the caller's own; it is never taken from the request.
func (s *campaignService) CreateCampaign(ctx context.Context, userGUID string, req dto.CreateCampaignRequest) (*dto.CampaignResponse, error) {
	user, err := s.userRepo.FindUserByGUID(ctx, userGUID)
	if err != nil {
		return nil, err
	}
	if !user.AdministersCharity() {
		return nil, fmt.Errorf("user does not administer a charity: %w", apperrors.ErrForbidden)
	}

	now := time.Now().UTC()
	campaign := domain.Campaign{
		ObjectFields: domain.ObjectFields{
			GUID:         uuid.NewString(),
			DateCreated:  now,
			LastModified: now,
		},
		Charity:     *user.Charity,
		Name:        req.Name,
		Description: req.Description,
		Donations:   []string{},
	}

	if err := s.campaignRepo.SaveCampaign(ctx, campaign); err != nil {
		return nil, fmt.Errorf("failed to create campaign: %w", err)
	}

	if _, err := s.charityRepo.AppendCampaign(ctx, campaign.Charity, campaign.GUID, now); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Campaign created but charity list append failed",
			slog.String("campaign_id", campaign.GUID),
			slog.String("charity_id", campaign.Charity),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to register campaign with charity: %w", apperrors.ErrInternal)
	}

	resp := s.formatter.FormatCampaign(ctx, &campaign)
	return &resp, nil
}

func (s *campaignService) GetCampaign(ctx context.Context, guid string) (*dto.CampaignResponse, error) {
	campaign, err := s.campaignRepo.FindCampaignByGUID(ctx, guid)
	if err != nil {
		return nil, err
	}
	resp := s.formatter.FormatCampaign(ctx, campaign)
	return &resp, nil
}

func (s *campaignService) ListCampaigns(ctx context.Context, params dto.ListCampaignsParams) (*dto.ListCampaignsResponse, error) {
	campaigns, err := s.campaignRepo.FindCampaigns(ctx, params.Charity, params.Limit, params.Offset)
	if err != nil {
		return nil, err
	}
	resp := dto.ListCampaignsResponse{Campaigns: make([]dto.CampaignResponse, 0, len(campaigns))}
	for i := range campaigns {
		resp.Campaigns = append(resp.Campaigns, s.formatter.FormatCampaign(ctx, &campaigns[i]))
	}
	return &resp, nil
}

func (s *campaignService) UpdateCampaign(ctx context.Context, userGUID string, guid string, req dto.UpdateCampaignRequest) (*dto.CampaignResponse, error) {
	user, err := s.userRepo.FindUserByGUID(ctx, userGUID)
	if err != nil {
		return nil, err
	}

	campaign, err := s.campaignRepo.FindCampaignByGUID(ctx, guid)
	if err != nil {
		return nil, err
	}
	if user.Charity == nil || *user.Charity != campaign.Charity {
		return nil, fmt.Errorf("user does not administer the campaign's charity: %w", apperrors.ErrForbidden)
	}

	if req.Name != nil {
		campaign.Name = *req.Name
	}
	if req.Description != nil {
		campaign.Description = *req.Description
	}
	campaign.LastModified = time.Now().UTC()

	if err := s.campaignRepo.UpdateCampaign(ctx, *campaign); err != nil {
		return nil, fmt.Errorf("failed to update campaign %s: %w", guid, err)
	}
	resp := s.formatter.FormatCampaign(ctx, campaign)
	return &resp, nil
}
