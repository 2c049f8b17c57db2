package repositories

import (
	"context"
	"time"

	"github.com/opengive/giving_backend/internal/core/domain"
)

// CampaignReader defines read operations for campaign data.
type CampaignReader interface {
	// FindCampaignByGUID retrieves a specific non-erased campaign by GUID.
	FindCampaignByGUID(ctx context.Context, guid string) (*domain.Campaign, error)

	// FindCampaigns retrieves a paginated list of campaigns, optionally filtered
	// by charity GUID (empty string means no filter).
	FindCampaigns(ctx context.Context, charityGUID string, limit int, offset int) ([]domain.Campaign, error)
}

// CampaignWriter defines write operations for campaign data.
type CampaignWriter interface {
	// SaveCampaign persists a new campaign.
	SaveCampaign(ctx context.Context, campaign domain.Campaign) error

	// UpdateCampaign updates a campaign's editable fields (name, description).
	UpdateCampaign(ctx context.Context, campaign domain.Campaign) error
}

// CampaignListAppender defines the append-only list mutations on a campaign row.
type CampaignListAppender interface {
	AppendDonation(ctx context.Context, campaignGUID string, donationGUID string, now time.Time) (*domain.Campaign, error)
}

// CampaignRepositoryFacade combines all campaign-related repository interfaces.
type CampaignRepositoryFacade interface {
	CampaignReader
	CampaignWriter
	CampaignListAppender
}
