package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/opengive/giving_backend/internal/apperrors"
	"github.com/opengive/giving_backend/internal/core/domain"
	portsrepo "github.com/opengive/giving_backend/internal/core/ports/repositories"
	portssvc "github.com/opengive/giving_backend/internal/core/ports/services"
	"github.com/opengive/giving_backend/internal/core/services"
	"github.com/opengive/giving_backend/internal/dto"
	"github.com/opengive/giving_backend/internal/platform/config"
)

type DonationServiceTestSuite struct {
	suite.Suite
	userRepo     *MockUserRepository
	charityRepo  *MockCharityRepository
	campaignRepo *MockCampaignRepository
	postRepo     *MockPostRepository
	donationRepo *MockDonationRepository
	service      portssvc.DonationSvcFacade

	donor    domain.User
	charity  domain.Charity
	campaign domain.Campaign
	post     domain.Post
}

func (s *DonationServiceTestSuite) SetupTest() {
	s.userRepo = new(MockUserRepository)
	s.charityRepo = new(MockCharityRepository)
	s.campaignRepo = new(MockCampaignRepository)
	s.postRepo = new(MockPostRepository)
	s.donationRepo = new(MockDonationRepository)

	repos := &portsrepo.RepositoryProvider{
		UserRepo:         s.userRepo,
		CharityRepo:      s.charityRepo,
		CampaignRepo:     s.campaignRepo,
		PostRepo:         s.postRepo,
		DonationRepo:     s.donationRepo,
		UpdateRepo:       new(MockUpdateRepository),
		CharityTokenRepo: new(MockCharityTokenRepository),
	}
	cfg := &config.Config{JWTSecret: "test-secret", JWTExpiryDuration: time.Hour, JWTIssuer: "test"}
	s.service = services.NewServiceContainer(cfg, repos).Donation

	now := time.Now().UTC()
	s.donor = domain.User{
		ObjectFields: domain.ObjectFields{GUID: "user-1", DateCreated: now, LastModified: now},
		Email:        "donor@example.com",
		Name:         "Donor",
		Balance:      10_000,
		Posts:        []string{},
		Donations:    []string{},
	}
	s.charity = domain.Charity{
		ObjectFields: domain.ObjectFields{GUID: "charity-1", DateCreated: now, LastModified: now},
		Name:         "Clean Water Fund",
		Users:        []string{"staff-1"},
		Campaigns:    []string{"campaign-1"},
		Updates:      []string{},
		Donations:    []string{},
	}
	s.campaign = domain.Campaign{
		ObjectFields: domain.ObjectFields{GUID: "campaign-1", DateCreated: now, LastModified: now},
		Charity:      "charity-1",
		Name:         "Wells for Everyone",
		Donations:    []string{},
	}
	s.post = domain.Post{
		ObjectFields: domain.ObjectFields{GUID: "post-1", DateCreated: now, LastModified: now},
		User:         "poster-1",
		Campaign:     "campaign-1",
		Charity:      "charity-1",
		Image:        "img.png",
		Donations:    []string{},
	}

	// Default happy-path wiring; individual tests override what they need.
	s.userRepo.FindUserByGUIDFn = func(ctx context.Context, guid string) (*domain.User, error) {
		if guid == s.donor.GUID {
			u := s.donor
			return &u, nil
		}
		return nil, apperrors.ErrNotFound
	}
	s.charityRepo.FindCharityByGUIDFn = func(ctx context.Context, guid string) (*domain.Charity, error) {
		if guid == s.charity.GUID {
			c := s.charity
			return &c, nil
		}
		return nil, apperrors.ErrNotFound
	}
	s.campaignRepo.FindCampaignByGUIDFn = func(ctx context.Context, guid string) (*domain.Campaign, error) {
		if guid == s.campaign.GUID {
			c := s.campaign
			return &c, nil
		}
		return nil, apperrors.ErrNotFound
	}
	s.postRepo.FindPostByGUIDFn = func(ctx context.Context, guid string) (*domain.Post, error) {
		if guid == s.post.GUID {
			p := s.post
			return &p, nil
		}
		return nil, apperrors.ErrNotFound
	}
	s.userRepo.DecrementBalanceFn = func(ctx context.Context, userGUID string, amountCents int64, now time.Time) (*domain.User, error) {
		u := s.donor
		u.Balance -= amountCents
		return &u, nil
	}
	s.donationRepo.SaveDonationFn = func(ctx context.Context, donation domain.Donation) error { return nil }
	s.userRepo.AppendDonationFn = func(ctx context.Context, userGUID string, donationGUID string, now time.Time) (*domain.User, error) {
		u := s.donor
		u.Donations = append([]string{}, donationGUID)
		return &u, nil
	}
	s.postRepo.AppendDonationFn = func(ctx context.Context, postGUID string, donationGUID string, now time.Time) (*domain.Post, error) {
		p := s.post
		p.Donations = append([]string{}, donationGUID)
		return &p, nil
	}
	s.campaignRepo.AppendDonationFn = func(ctx context.Context, campaignGUID string, donationGUID string, now time.Time) (*domain.Campaign, error) {
		c := s.campaign
		c.Donations = append([]string{}, donationGUID)
		return &c, nil
	}
	s.charityRepo.AppendDonationFn = func(ctx context.Context, charityGUID string, donationGUID string, now time.Time) (*domain.Charity, error) {
		c := s.charity
		c.Donations = append([]string{}, donationGUID)
		return &c, nil
	}
	s.donationRepo.SumAmountFn = func(ctx context.Context, filter portsrepo.DonationFilter) (int64, error) { return 0, nil }
}

func strPtr(s string) *string { return &s }

func (s *DonationServiceTestSuite) TestDonate_ToCharity_Success() {
	var saved domain.Donation
	s.donationRepo.SaveDonationFn = func(ctx context.Context, donation domain.Donation) error {
		saved = donation
		return nil
	}
	var decremented int64
	s.userRepo.DecrementBalanceFn = func(ctx context.Context, userGUID string, amountCents int64, now time.Time) (*domain.User, error) {
		decremented = amountCents
		u := s.donor
		u.Balance -= amountCents
		return &u, nil
	}

	result, err := s.service.Donate(context.Background(), "user-1", dto.CreateDonationRequest{
		Amount:  2_500,
		Charity: strPtr("charity-1"),
	})

	s.Require().NoError(err)
	s.Require().NotNil(result)
	assert.Equal(s.T(), int64(2_500), decremented)
	assert.Equal(s.T(), "user-1", saved.User)
	assert.Equal(s.T(), "charity-1", saved.Charity)
	assert.Nil(s.T(), saved.Campaign)
	assert.Nil(s.T(), saved.Post)
	assert.Equal(s.T(), int64(2_500), saved.Amount)
	assert.NotEmpty(s.T(), saved.GUID)

	assert.Equal(s.T(), int64(7_500), result.User.Balance)
	assert.Equal(s.T(), "75.00", result.User.BalanceDisplay)
	assert.Nil(s.T(), result.Post)
	assert.Nil(s.T(), result.Campaign)
	assert.Contains(s.T(), result.Charity.Donations, saved.GUID)
	assert.Contains(s.T(), result.User.Donations, saved.GUID)
}

func (s *DonationServiceTestSuite) TestDonate_ToPost_ResolvesFullChain() {
	var saved domain.Donation
	s.donationRepo.SaveDonationFn = func(ctx context.Context, donation domain.Donation) error {
		saved = donation
		return nil
	}

	result, err := s.service.Donate(context.Background(), "user-1", dto.CreateDonationRequest{
		Amount: 1_000,
		Post:   strPtr("post-1"),
	})

	s.Require().NoError(err)
	s.Require().NotNil(saved.Post)
	s.Require().NotNil(saved.Campaign)
	assert.Equal(s.T(), "post-1", *saved.Post)
	assert.Equal(s.T(), "campaign-1", *saved.Campaign)
	assert.Equal(s.T(), "charity-1", saved.Charity)

	s.Require().NotNil(result.Post)
	s.Require().NotNil(result.Campaign)
	assert.Contains(s.T(), result.Post.Donations, saved.GUID)
	assert.Contains(s.T(), result.Campaign.Donations, saved.GUID)
	assert.Contains(s.T(), result.Charity.Donations, saved.GUID)
}

func (s *DonationServiceTestSuite) TestDonate_PostWinsOverCampaignAndCharity() {
	var saved domain.Donation
	s.donationRepo.SaveDonationFn = func(ctx context.Context, donation domain.Donation) error {
		saved = donation
		return nil
	}

	// All three supplied; the post must drive the resolution.
	_, err := s.service.Donate(context.Background(), "user-1", dto.CreateDonationRequest{
		Amount:   1_000,
		Post:     strPtr("post-1"),
		Campaign: strPtr("other-campaign"),
		Charity:  strPtr("other-charity"),
	})

	s.Require().NoError(err)
	s.Require().NotNil(saved.Post)
	assert.Equal(s.T(), "post-1", *saved.Post)
	assert.Equal(s.T(), "campaign-1", *saved.Campaign)
	assert.Equal(s.T(), "charity-1", saved.Charity)
}

func (s *DonationServiceTestSuite) TestDonate_ToCampaign_ResolvesCharity() {
	var saved domain.Donation
	s.donationRepo.SaveDonationFn = func(ctx context.Context, donation domain.Donation) error {
		saved = donation
		return nil
	}

	result, err := s.service.Donate(context.Background(), "user-1", dto.CreateDonationRequest{
		Amount:   500,
		Campaign: strPtr("campaign-1"),
	})

	s.Require().NoError(err)
	assert.Nil(s.T(), saved.Post)
	s.Require().NotNil(saved.Campaign)
	assert.Equal(s.T(), "charity-1", saved.Charity)
	assert.Nil(s.T(), result.Post)
	s.Require().NotNil(result.Campaign)
}

func (s *DonationServiceTestSuite) TestDonate_NoTarget_ValidationErrorBeforeAnyWrite() {
	decrementCalled := false
	s.userRepo.DecrementBalanceFn = func(ctx context.Context, userGUID string, amountCents int64, now time.Time) (*domain.User, error) {
		decrementCalled = true
		return nil, nil
	}
	saveCalled := false
	s.donationRepo.SaveDonationFn = func(ctx context.Context, donation domain.Donation) error {
		saveCalled = true
		return nil
	}

	_, err := s.service.Donate(context.Background(), "user-1", dto.CreateDonationRequest{Amount: 1_000})

	s.Require().Error(err)
	assert.ErrorIs(s.T(), err, apperrors.ErrValidation)
	assert.False(s.T(), decrementCalled)
	assert.False(s.T(), saveCalled)
}

func (s *DonationServiceTestSuite) TestDonate_NonPositiveAmount_ValidationError() {
	for _, amount := range []int64{0, -100} {
		_, err := s.service.Donate(context.Background(), "user-1", dto.CreateDonationRequest{
			Amount:  amount,
			Charity: strPtr("charity-1"),
		})
		s.Require().Error(err)
		assert.ErrorIs(s.T(), err, apperrors.ErrValidation)
	}
}

func (s *DonationServiceTestSuite) TestDonate_InsufficientFunds_FailsBeforeDecrement() {
	decrementCalled := false
	s.userRepo.DecrementBalanceFn = func(ctx context.Context, userGUID string, amountCents int64, now time.Time) (*domain.User, error) {
		decrementCalled = true
		return nil, nil
	}

	_, err := s.service.Donate(context.Background(), "user-1", dto.CreateDonationRequest{
		Amount:  s.donor.Balance + 1,
		Charity: strPtr("charity-1"),
	})

	s.Require().Error(err)
	assert.ErrorIs(s.T(), err, apperrors.ErrInsufficientFunds)
	assert.False(s.T(), decrementCalled)
}

func (s *DonationServiceTestSuite) TestDonate_AmountEqualToBalance_Succeeds() {
	result, err := s.service.Donate(context.Background(), "user-1", dto.CreateDonationRequest{
		Amount:  s.donor.Balance,
		Charity: strPtr("charity-1"),
	})

	s.Require().NoError(err)
	assert.Equal(s.T(), int64(0), result.User.Balance)
}

func (s *DonationServiceTestSuite) TestDonate_ConcurrentDrain_DecrementRejects() {
	// The pre-check passes but another donation drains the balance before the
	// conditional decrement lands.
	s.userRepo.DecrementBalanceFn = func(ctx context.Context, userGUID string, amountCents int64, now time.Time) (*domain.User, error) {
		return nil, apperrors.ErrInsufficientFunds
	}
	saveCalled := false
	s.donationRepo.SaveDonationFn = func(ctx context.Context, donation domain.Donation) error {
		saveCalled = true
		return nil
	}

	_, err := s.service.Donate(context.Background(), "user-1", dto.CreateDonationRequest{
		Amount:  1_000,
		Charity: strPtr("charity-1"),
	})

	s.Require().Error(err)
	assert.ErrorIs(s.T(), err, apperrors.ErrInsufficientFunds)
	assert.False(s.T(), saveCalled)
}

func (s *DonationServiceTestSuite) TestDonate_UnknownDonor_NotFound() {
	_, err := s.service.Donate(context.Background(), "ghost", dto.CreateDonationRequest{
		Amount:  1_000,
		Charity: strPtr("charity-1"),
	})

	s.Require().Error(err)
	assert.ErrorIs(s.T(), err, apperrors.ErrNotFound)
}

func (s *DonationServiceTestSuite) TestDonate_UnknownTarget_NotFound() {
	_, err := s.service.Donate(context.Background(), "user-1", dto.CreateDonationRequest{
		Amount: 1_000,
		Post:   strPtr("ghost-post"),
	})

	s.Require().Error(err)
	assert.ErrorIs(s.T(), err, apperrors.ErrNotFound)
}

func (s *DonationServiceTestSuite) TestDonate_FanOutFailure_ReturnsInternalWithoutRollback() {
	incrementCalled := false
	s.userRepo.IncrementBalanceFn = func(ctx context.Context, userGUID string, amountCents int64, now time.Time) (*domain.User, error) {
		incrementCalled = true
		return nil, nil
	}
	saveCalled := false
	s.donationRepo.SaveDonationFn = func(ctx context.Context, donation domain.Donation) error {
		saveCalled = true
		return nil
	}
	s.charityRepo.AppendDonationFn = func(ctx context.Context, charityGUID string, donationGUID string, now time.Time) (*domain.Charity, error) {
		return nil, fmt.Errorf("connection reset")
	}

	_, err := s.service.Donate(context.Background(), "user-1", dto.CreateDonationRequest{
		Amount:  1_000,
		Charity: strPtr("charity-1"),
	})

	s.Require().Error(err)
	assert.ErrorIs(s.T(), err, apperrors.ErrInternal)
	// The decrement and the donation row stay; there is no compensation.
	assert.True(s.T(), saveCalled)
	assert.False(s.T(), incrementCalled)
}

func (s *DonationServiceTestSuite) TestDonate_NotIdempotent() {
	var savedGUIDs []string
	s.donationRepo.SaveDonationFn = func(ctx context.Context, donation domain.Donation) error {
		savedGUIDs = append(savedGUIDs, donation.GUID)
		return nil
	}
	decrements := 0
	s.userRepo.DecrementBalanceFn = func(ctx context.Context, userGUID string, amountCents int64, now time.Time) (*domain.User, error) {
		decrements++
		u := s.donor
		u.Balance -= amountCents
		return &u, nil
	}

	req := dto.CreateDonationRequest{Amount: 1_000, Charity: strPtr("charity-1")}
	_, err := s.service.Donate(context.Background(), "user-1", req)
	s.Require().NoError(err)
	_, err = s.service.Donate(context.Background(), "user-1", req)
	s.Require().NoError(err)

	assert.Equal(s.T(), 2, decrements)
	s.Require().Len(savedGUIDs, 2)
	assert.NotEqual(s.T(), savedGUIDs[0], savedGUIDs[1])
}

func (s *DonationServiceTestSuite) TestGetDonation_FormatsDerivedFields() {
	campaignGUID := "campaign-1"
	s.donationRepo.FindDonationByGUIDFn = func(ctx context.Context, guid string) (*domain.Donation, error) {
		return &domain.Donation{
			ObjectFields: domain.ObjectFields{GUID: guid},
			User:         "user-1",
			Charity:      "charity-1",
			Campaign:     &campaignGUID,
			Amount:       4_200,
		}, nil
	}

	resp, err := s.service.GetDonation(context.Background(), "donation-1")

	s.Require().NoError(err)
	assert.Equal(s.T(), "42.00", resp.AmountDisplay)
	assert.Equal(s.T(), "Donor", resp.UserName)
	assert.Equal(s.T(), "Clean Water Fund", resp.CharityName)
	assert.Equal(s.T(), "Wells for Everyone", resp.CampaignName)
}

func (s *DonationServiceTestSuite) TestGetDonation_MissingReferences_OmitsDerivedFields() {
	s.donationRepo.FindDonationByGUIDFn = func(ctx context.Context, guid string) (*domain.Donation, error) {
		return &domain.Donation{
			ObjectFields: domain.ObjectFields{GUID: guid},
			User:         "gone-user",
			Charity:      "gone-charity",
			Amount:       100,
		}, nil
	}

	resp, err := s.service.GetDonation(context.Background(), "donation-1")

	s.Require().NoError(err)
	assert.Empty(s.T(), resp.UserName)
	assert.Empty(s.T(), resp.CharityName)
	assert.Equal(s.T(), "1.00", resp.AmountDisplay)
}

func (s *DonationServiceTestSuite) TestGetDonation_NotFound() {
	s.donationRepo.FindDonationByGUIDFn = func(ctx context.Context, guid string) (*domain.Donation, error) {
		return nil, apperrors.ErrNotFound
	}

	_, err := s.service.GetDonation(context.Background(), "ghost")
	assert.ErrorIs(s.T(), err, apperrors.ErrNotFound)
}

func (s *DonationServiceTestSuite) TestListDonations_PassesFilterThrough() {
	var gotFilter portsrepo.DonationFilter
	s.donationRepo.FindDonationsFn = func(ctx context.Context, filter portsrepo.DonationFilter, limit int, offset int) ([]domain.Donation, error) {
		gotFilter = filter
		return []domain.Donation{{ObjectFields: domain.ObjectFields{GUID: "d-1"}, User: "user-1", Charity: "charity-1", Amount: 100}}, nil
	}

	resp, err := s.service.ListDonations(context.Background(), dto.ListDonationsParams{
		ListParams: dto.ListParams{Limit: 10},
		Charity:    strPtr("charity-1"),
	})

	s.Require().NoError(err)
	s.Require().NotNil(gotFilter.Charity)
	assert.Equal(s.T(), "charity-1", *gotFilter.Charity)
	assert.Nil(s.T(), gotFilter.User)
	s.Require().Len(resp.Donations, 1)
	assert.Equal(s.T(), "d-1", resp.Donations[0].GUID)
}

func TestDonationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DonationServiceTestSuite))
}
