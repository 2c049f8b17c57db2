package services

import (
	"context"

	"github.com/opengive/giving_backend/internal/dto"
)

// CampaignSvcFacade manages campaigns belonging to charities.
type CampaignSvcFacade interface {
	CreateCampaign(ctx context.Context, userGUID string, req dto.CreateCampaignRequest) (*dto.CampaignResponse, error)
	GetCampaign(ctx context.Context, guid string) (*dto.CampaignResponse, error)
	ListCampaigns(ctx context.Context, params dto.ListCampaignsParams) (*dto.ListCampaignsResponse, error)
	UpdateCampaign(ctx context.Context, userGUID string, guid string, req dto.UpdateCampaignRequest) (*dto.CampaignResponse, error)
}
