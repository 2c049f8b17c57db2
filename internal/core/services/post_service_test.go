package services_test

import (
	"context"
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

type PostServiceTestSuite struct {
	suite.Suite
	userRepo     *MockUserRepository
	campaignRepo *MockCampaignRepository
	postRepo     *MockPostRepository
	service      portssvc.PostSvcFacade
}

func (s *PostServiceTestSuite) SetupTest() {
	s.userRepo = new(MockUserRepository)
	s.campaignRepo = new(MockCampaignRepository)
	s.postRepo = new(MockPostRepository)

	donationRepo := new(MockDonationRepository)
	donationRepo.SumAmountFn = func(ctx context.Context, filter portsrepo.DonationFilter) (int64, error) { return 0, nil }
	charityRepo := new(MockCharityRepository)
	charityRepo.FindCharityByGUIDFn = func(ctx context.Context, guid string) (*domain.Charity, error) {
		return nil, apperrors.ErrNotFound
	}

	repos := &portsrepo.RepositoryProvider{
		UserRepo:         s.userRepo,
		CharityRepo:      charityRepo,
		CampaignRepo:     s.campaignRepo,
		PostRepo:         s.postRepo,
		DonationRepo:     donationRepo,
		UpdateRepo:       new(MockUpdateRepository),
		CharityTokenRepo: new(MockCharityTokenRepository),
	}
	cfg := &config.Config{JWTSecret: "test-secret", JWTExpiryDuration: time.Hour, JWTIssuer: "test"}
	s.service = services.NewServiceContainer(cfg, repos).Post

	s.userRepo.FindUserByGUIDFn = func(ctx context.Context, guid string) (*domain.User, error) {
		return &domain.User{ObjectFields: domain.ObjectFields{GUID: guid}, Name: "Poster"}, nil
	}
	s.userRepo.AppendPostFn = func(ctx context.Context, userGUID string, postGUID string, now time.Time) (*domain.User, error) {
		return &domain.User{ObjectFields: domain.ObjectFields{GUID: userGUID}, Posts: []string{postGUID}}, nil
	}
}

func (s *PostServiceTestSuite) TestCreatePost_DerivesCharityFromCampaign() {
	s.campaignRepo.FindCampaignByGUIDFn = func(ctx context.Context, guid string) (*domain.Campaign, error) {
		return &domain.Campaign{
			ObjectFields: domain.ObjectFields{GUID: guid},
			Charity:      "charity-1",
			Name:         "Wells",
		}, nil
	}
	var saved domain.Post
	s.postRepo.SavePostFn = func(ctx context.Context, post domain.Post) error {
		saved = post
		return nil
	}

	resp, err := s.service.CreatePost(context.Background(), "user-1", dto.CreatePostRequest{
		Campaign:       "campaign-1",
		Image:          "img.png",
		ShareableImage: "share.png",
		Caption:        "Support the wells",
	})

	s.Require().NoError(err)
	assert.Equal(s.T(), "charity-1", saved.Charity)
	assert.Equal(s.T(), "campaign-1", saved.Campaign)
	assert.Equal(s.T(), "user-1", saved.User)
	assert.Equal(s.T(), "charity-1", resp.Charity)
}

func (s *PostServiceTestSuite) TestCreatePost_UnknownCampaign_ValidationError() {
	s.campaignRepo.FindCampaignByGUIDFn = func(ctx context.Context, guid string) (*domain.Campaign, error) {
		return nil, apperrors.ErrNotFound
	}

	_, err := s.service.CreatePost(context.Background(), "user-1", dto.CreatePostRequest{
		Campaign:       "ghost",
		Image:          "img.png",
		ShareableImage: "share.png",
	})

	s.Require().Error(err)
	assert.ErrorIs(s.T(), err, apperrors.ErrValidation)
}

func (s *PostServiceTestSuite) TestUpdatePost_NonAuthor_Forbidden() {
	s.postRepo.FindPostByGUIDFn = func(ctx context.Context, guid string) (*domain.Post, error) {
		return &domain.Post{
			ObjectFields: domain.ObjectFields{GUID: guid},
			User:         "someone-else",
		}, nil
	}

	caption := "hijack"
	_, err := s.service.UpdatePost(context.Background(), "user-1", "post-1", dto.UpdatePostRequest{Caption: &caption})

	s.Require().Error(err)
	assert.ErrorIs(s.T(), err, apperrors.ErrForbidden)
}

func TestPostServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PostServiceTestSuite))
}
