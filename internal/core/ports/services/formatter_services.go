package services

import (
	"context"

	"github.com/opengive/giving_backend/internal/core/domain"
	"github.com/opengive/giving_backend/internal/dto"
)

// FormatterSvcFacade enriches raw entities with derived, non-persisted fields
// computed by point lookups at read time (names of referenced entities,
// donation totals). Formatting never fails a request: when a referenced
// entity is missing or a lookup errors, the derived field is simply omitted.
type FormatterSvcFacade interface {
	FormatDonation(ctx context.Context, donation *domain.Donation) dto.DonationResponse
	FormatUser(ctx context.Context, user *domain.User) dto.UserResponse
	FormatCharity(ctx context.Context, charity *domain.Charity) dto.CharityResponse
	FormatCampaign(ctx context.Context, campaign *domain.Campaign) dto.CampaignResponse
	FormatPost(ctx context.Context, post *domain.Post) dto.PostResponse
	FormatUpdate(ctx context.Context, update *domain.Update) dto.UpdateResponse
}
