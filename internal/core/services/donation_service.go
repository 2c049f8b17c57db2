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

type donationService struct {
	donationRepo portsrepo.DonationRepositoryFacade
	userRepo     portsrepo.UserRepositoryFacade
	postRepo     portsrepo.PostRepositoryFacade
	campaignRepo portsrepo.CampaignRepositoryFacade
	charityRepo  portsrepo.CharityRepositoryFacade
	formatter    portssvc.FormatterSvcFacade
}

func newDonationService(repos *portsrepo.RepositoryProvider, formatter portssvc.FormatterSvcFacade) portssvc.DonationSvcFacade {
	return &donationService{
		donationRepo: repos.DonationRepo,
		userRepo:     repos.UserRepo,
		postRepo:     repos.PostRepo,
		campaignRepo: repos.CampaignRepo,
		charityRepo:  repos.CharityRepo,
		formatter:    formatter,
	}
}

var _ portssvc.DonationSvcFacade = (*donationService)(nil)

// targetChain is the resolved recipient of a donation. Charity is always set;
// Campaign and Post narrow it depending on what the donor pointed at.
type targetChain struct {
	post     *domain.Post
	campaign *domain.Campaign
	charity  *domain.Charity
}

// resolveTarget walks the donation target waterfall. A post beats a campaign,
// a campaign beats a charity. Every resolved entity must exist; a donation to
// nothing at all is a validation error.
func (s *donationService) resolveTarget(ctx context.Context, req dto.CreateDonationRequest) (*targetChain, error) {
	chain := &targetChain{}
	var err error

	switch {
	case req.Post != nil:
		chain.post, err = s.postRepo.FindPostByGUID(ctx, *req.Post)
		if err != nil {
			return nil, fmt.Errorf("donation post %s: %w", *req.Post, err)
		}
		chain.campaign, err = s.campaignRepo.FindCampaignByGUID(ctx, chain.post.Campaign)
		if err != nil {
			return nil, fmt.Errorf("campaign %s behind donation post: %w", chain.post.Campaign, err)
		}
	case req.Campaign != nil:
		chain.campaign, err = s.campaignRepo.FindCampaignByGUID(ctx, *req.Campaign)
		if err != nil {
			return nil, fmt.Errorf("donation campaign %s: %w", *req.Campaign, err)
		}
	case req.Charity != nil:
		chain.charity, err = s.charityRepo.FindCharityByGUID(ctx, *req.Charity)
		if err != nil {
			return nil, fmt.Errorf("donation charity %s: %w", *req.Charity, err)
		}
		return chain, nil
	default:
		return nil, fmt.Errorf("must provide a post, campaign or charity to donate to: %w", apperrors.ErrValidation)
	}

	chain.charity, err = s.charityRepo.FindCharityByGUID(ctx, chain.campaign.Charity)
	if err != nil {
		return nil, fmt.Errorf("charity %s behind donation target: %w", chain.campaign.Charity, err)
	}
	return chain, nil
}

// Donate runs the donation pipeline in strict order: validate the amount,
// load the donor, check funds, resolve the target chain, decrement the
// balance, insert the donation, then fan the donation GUID out to the
// donations lists of every entity in the chain.
//
// The balance decrement is a single conditional statement, so concurrent
// donations cannot overdraw the donor. The fan-out appends are independent
// statements with no surrounding transaction; a failure there returns an
// error but leaves the decrement and the donation row in place. The donation
// rows stay the source of truth for totals either way.
func (s *donationService) Donate(ctx context.Context, userGUID string, req dto.CreateDonationRequest) (*dto.DonationResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount <= 0 {
		return nil, fmt.Errorf("donation amount must be positive: %w", apperrors.ErrValidation)
	}

	user, err := s.userRepo.FindUserByGUID(ctx, userGUID)
	if err != nil {
		return nil, fmt.Errorf("donor %s: %w", userGUID, err)
	}

	if user.Balance < req.Amount {
		return nil, fmt.Errorf("balance %d cannot cover donation of %d: %w", user.Balance, req.Amount, apperrors.ErrInsufficientFunds)
	}

	chain, err := s.resolveTarget(ctx, req)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	user, err = s.userRepo.DecrementBalance(ctx, userGUID, req.Amount, now)
	if err != nil {
		return nil, fmt.Errorf("failed to deduct donation from donor %s: %w", userGUID, err)
	}

	donation := domain.Donation{
		ObjectFields: domain.ObjectFields{
			GUID:         uuid.NewString(),
			DateCreated:  now,
			LastModified: now,
		},
		User:    userGUID,
		Charity: chain.charity.GUID,
		Amount:  req.Amount,
	}
	if chain.campaign != nil {
		donation.Campaign = &chain.campaign.GUID
	}
	if chain.post != nil {
		donation.Post = &chain.post.GUID
	}

	if err := s.donationRepo.SaveDonation(ctx, donation); err != nil {
		logger.Error("Balance deducted but donation insert failed",
			slog.String("user_id", userGUID),
			slog.Int64("amount_cents", req.Amount),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to record donation: %w", apperrors.ErrInternal)
	}

	fanOutErr := func(entity string, guid string, err error) error {
		logger.Error("Donation recorded but list append failed",
			slog.String("donation_id", donation.GUID),
			slog.String("entity", entity),
			slog.String("entity_id", guid),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("failed to append donation to %s %s: %w", entity, guid, apperrors.ErrInternal)
	}

	user, err = s.userRepo.AppendDonation(ctx, userGUID, donation.GUID, now)
	if err != nil {
		return nil, fanOutErr("user", userGUID, err)
	}
	if chain.post != nil {
		chain.post, err = s.postRepo.AppendDonation(ctx, chain.post.GUID, donation.GUID, now)
		if err != nil {
			return nil, fanOutErr("post", *donation.Post, err)
		}
	}
	if chain.campaign != nil {
		chain.campaign, err = s.campaignRepo.AppendDonation(ctx, chain.campaign.GUID, donation.GUID, now)
		if err != nil {
			return nil, fanOutErr("campaign", *donation.Campaign, err)
		}
	}
	chain.charity, err = s.charityRepo.AppendDonation(ctx, chain.charity.GUID, donation.GUID, now)
	if err != nil {
		return nil, fanOutErr("charity", donation.Charity, err)
	}

	logger.Info("Donation completed",
		slog.String("donation_id", donation.GUID),
		slog.String("user_id", userGUID),
		slog.String("charity_id", donation.Charity),
		slog.Int64("amount_cents", donation.Amount),
		slog.Int64("new_balance", user.Balance),
	)

	result := &dto.DonationResult{
		Donation: s.formatter.FormatDonation(ctx, &donation),
		User:     s.formatter.FormatUser(ctx, user),
		Charity:  s.formatter.FormatCharity(ctx, chain.charity),
	}
	if chain.post != nil {
		post := s.formatter.FormatPost(ctx, chain.post)
		result.Post = &post
	}
	if chain.campaign != nil {
		campaign := s.formatter.FormatCampaign(ctx, chain.campaign)
		result.Campaign = &campaign
	}
	return result, nil
}

func (s *donationService) GetDonation(ctx context.Context, guid string) (*dto.DonationResponse, error) {
	donation, err := s.donationRepo.FindDonationByGUID(ctx, guid)
	if err != nil {
		return nil, err
	}
	resp := s.formatter.FormatDonation(ctx, donation)
	return &resp, nil
}

func (s *donationService) ListDonations(ctx context.Context, params dto.ListDonationsParams) (*dto.ListDonationsResponse, error) {
	filter := portsrepo.DonationFilter{
		User:     params.User,
		Charity:  params.Charity,
		Campaign: params.Campaign,
		Post:     params.Post,
	}
	donations, err := s.donationRepo.FindDonations(ctx, filter, params.Limit, params.Offset)
	if err != nil {
		return nil, err
	}
	resp := dto.ListDonationsResponse{Donations: make([]dto.DonationResponse, 0, len(donations))}
	for i := range donations {
		resp.Donations = append(resp.Donations, s.formatter.FormatDonation(ctx, &donations[i]))
	}
	return &resp, nil
}
