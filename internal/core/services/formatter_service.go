package services

import (
	"context"
	"log/slog"

	"github.com/opengive/giving_backend/internal/core/domain"
	portsrepo "github.com/opengive/giving_backend/internal/core/ports/repositories"
	portssvc "github.com/opengive/giving_backend/internal/core/ports/services"
	"github.com/opengive/giving_backend/internal/dto"
	"github.com/opengive/giving_backend/internal/middleware"
)

// formatterService computes the derived, non-persisted view fields by point
// lookups at read time. A failed lookup never fails the request; the field is
// left unset and the failure logged.
type formatterService struct {
	userRepo     portsrepo.UserReader
	charityRepo  portsrepo.CharityReader
	campaignRepo portsrepo.CampaignReader
	postRepo     portsrepo.PostReader
	donationRepo portsrepo.DonationReader
}

func newFormatterService(repos *portsrepo.RepositoryProvider) portssvc.FormatterSvcFacade {
	return &formatterService{
		userRepo:     repos.UserRepo,
		charityRepo:  repos.CharityRepo,
		campaignRepo: repos.CampaignRepo,
		postRepo:     repos.PostRepo,
		donationRepo: repos.DonationRepo,
	}
}

var _ portssvc.FormatterSvcFacade = (*formatterService)(nil)

func (s *formatterService) sumDonations(ctx context.Context, filter portsrepo.DonationFilter) *int64 {
	total, err := s.donationRepo.SumAmount(ctx, filter)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Skipping donation total, aggregate failed", slog.String("error", err.Error()))
		return nil
	}
	return &total
}

func (s *formatterService) FormatUser(ctx context.Context, user *domain.User) dto.UserResponse {
	resp := dto.ToUserResponse(user)
	if total := s.sumDonations(ctx, portsrepo.DonationFilter{User: &user.GUID}); total != nil {
		resp.TotalDonationAmount = total
	}
	return resp
}

func (s *formatterService) FormatCharity(ctx context.Context, charity *domain.Charity) dto.CharityResponse {
	resp := dto.ToCharityResponse(charity)
	if total := s.sumDonations(ctx, portsrepo.DonationFilter{Charity: &charity.GUID}); total != nil {
		resp.DonationTotal = total
		resp.DonationTotalDisplay = dto.CentsDisplay(*total)
	}
	return resp
}

func (s *formatterService) FormatCampaign(ctx context.Context, campaign *domain.Campaign) dto.CampaignResponse {
	resp := dto.ToCampaignResponse(campaign)
	if total := s.sumDonations(ctx, portsrepo.DonationFilter{Campaign: &campaign.GUID}); total != nil {
		resp.DonationTotal = total
		resp.DonationTotalDisplay = dto.CentsDisplay(*total)
	}
	if charity, err := s.charityRepo.FindCharityByGUID(ctx, campaign.Charity); err == nil {
		resp.CharityName = charity.Name
	}
	return resp
}

func (s *formatterService) FormatPost(ctx context.Context, post *domain.Post) dto.PostResponse {
	resp := dto.ToPostResponse(post)
	if total := s.sumDonations(ctx, portsrepo.DonationFilter{Post: &post.GUID}); total != nil {
		resp.DonationTotal = total
		resp.DonationTotalDisplay = dto.CentsDisplay(*total)
	}
	if user, err := s.userRepo.FindUserByGUID(ctx, post.User); err == nil {
		resp.UserName = user.Name
	}
	if charity, err := s.charityRepo.FindCharityByGUID(ctx, post.Charity); err == nil {
		resp.CharityName = charity.Name
	}
	return resp
}

func (s *formatterService) FormatDonation(ctx context.Context, donation *domain.Donation) dto.DonationResponse {
	resp := dto.ToDonationResponse(donation)
	if user, err := s.userRepo.FindUserByGUID(ctx, donation.User); err == nil {
		resp.UserName = user.Name
	}
	if charity, err := s.charityRepo.FindCharityByGUID(ctx, donation.Charity); err == nil {
		resp.CharityName = charity.Name
	}
	if donation.Campaign != nil {
		if campaign, err := s.campaignRepo.FindCampaignByGUID(ctx, *donation.Campaign); err == nil {
			resp.CampaignName = campaign.Name
		}
	}
	if donation.Post != nil {
		if post, err := s.postRepo.FindPostByGUID(ctx, *donation.Post); err == nil {
			resp.PostCaption = post.Caption
		}
	}
	return resp
}

func (s *formatterService) FormatUpdate(ctx context.Context, update *domain.Update) dto.UpdateResponse {
	resp := dto.ToUpdateResponse(update)
	if charity, err := s.charityRepo.FindCharityByGUID(ctx, update.Charity); err == nil {
		resp.CharityName = charity.Name
	}
	return resp
}
