package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/opengive/giving_backend/internal/core/domain"
	portsrepo "github.com/opengive/giving_backend/internal/core/ports/repositories"
)

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
	FindUserByGUIDFn   func(ctx context.Context, guid string) (*domain.User, error)
	FindUserByEmailFn  func(ctx context.Context, email string) (*domain.User, error)
	SaveUserFn         func(ctx context.Context, user domain.User) error
	UpdateUserFn       func(ctx context.Context, user domain.User) error
	DecrementBalanceFn func(ctx context.Context, userGUID string, amountCents int64, now time.Time) (*domain.User, error)
	IncrementBalanceFn func(ctx context.Context, userGUID string, amountCents int64, now time.Time) (*domain.User, error)
	AppendDonationFn   func(ctx context.Context, userGUID string, donationGUID string, now time.Time) (*domain.User, error)
	AppendPostFn       func(ctx context.Context, userGUID string, postGUID string, now time.Time) (*domain.User, error)
	MarkUserErasedFn   func(ctx context.Context, userGUID string, now time.Time) error
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

func (m *MockUserRepository) FindUserByGUID(ctx context.Context, guid string) (*domain.User, error) {
	if m.FindUserByGUIDFn != nil {
		return m.FindUserByGUIDFn(ctx, guid)
	}
	args := m.Called(ctx, guid)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindUserByEmailFn != nil {
		return m.FindUserByEmailFn(ctx, email)
	}
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	if m.SaveUserFn != nil {
		return m.SaveUserFn(ctx, user)
	}
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	if m.UpdateUserFn != nil {
		return m.UpdateUserFn(ctx, user)
	}
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) DecrementBalance(ctx context.Context, userGUID string, amountCents int64, now time.Time) (*domain.User, error) {
	if m.DecrementBalanceFn != nil {
		return m.DecrementBalanceFn(ctx, userGUID, amountCents, now)
	}
	args := m.Called(ctx, userGUID, amountCents, now)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) IncrementBalance(ctx context.Context, userGUID string, amountCents int64, now time.Time) (*domain.User, error) {
	if m.IncrementBalanceFn != nil {
		return m.IncrementBalanceFn(ctx, userGUID, amountCents, now)
	}
	args := m.Called(ctx, userGUID, amountCents, now)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) AppendDonation(ctx context.Context, userGUID string, donationGUID string, now time.Time) (*domain.User, error) {
	if m.AppendDonationFn != nil {
		return m.AppendDonationFn(ctx, userGUID, donationGUID, now)
	}
	args := m.Called(ctx, userGUID, donationGUID, now)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) AppendPost(ctx context.Context, userGUID string, postGUID string, now time.Time) (*domain.User, error) {
	if m.AppendPostFn != nil {
		return m.AppendPostFn(ctx, userGUID, postGUID, now)
	}
	args := m.Called(ctx, userGUID, postGUID, now)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) MarkUserErased(ctx context.Context, userGUID string, now time.Time) error {
	if m.MarkUserErasedFn != nil {
		return m.MarkUserErasedFn(ctx, userGUID, now)
	}
	args := m.Called(ctx, userGUID, now)
	return args.Error(0)
}

// --- Mock CharityRepository ---

type MockCharityRepository struct {
	mock.Mock
	FindCharityByGUIDFn func(ctx context.Context, guid string) (*domain.Charity, error)
	FindCharitiesFn     func(ctx context.Context, limit int, offset int) ([]domain.Charity, error)
	SaveCharityFn       func(ctx context.Context, charity domain.Charity) error
	UpdateCharityFn     func(ctx context.Context, charity domain.Charity) error
	AppendUserFn        func(ctx context.Context, charityGUID string, userGUID string, now time.Time) (*domain.Charity, error)
	AppendCampaignFn    func(ctx context.Context, charityGUID string, campaignGUID string, now time.Time) (*domain.Charity, error)
	AppendUpdateFn      func(ctx context.Context, charityGUID string, updateGUID string, now time.Time) (*domain.Charity, error)
	AppendDonationFn    func(ctx context.Context, charityGUID string, donationGUID string, now time.Time) (*domain.Charity, error)
}

var _ portsrepo.CharityRepositoryFacade = (*MockCharityRepository)(nil)

func (m *MockCharityRepository) FindCharityByGUID(ctx context.Context, guid string) (*domain.Charity, error) {
	if m.FindCharityByGUIDFn != nil {
		return m.FindCharityByGUIDFn(ctx, guid)
	}
	args := m.Called(ctx, guid)
	var charity *domain.Charity
	if args.Get(0) != nil {
		charity = args.Get(0).(*domain.Charity)
	}
	return charity, args.Error(1)
}

func (m *MockCharityRepository) FindCharities(ctx context.Context, limit int, offset int) ([]domain.Charity, error) {
	if m.FindCharitiesFn != nil {
		return m.FindCharitiesFn(ctx, limit, offset)
	}
	args := m.Called(ctx, limit, offset)
	var charities []domain.Charity
	if args.Get(0) != nil {
		charities = args.Get(0).([]domain.Charity)
	}
	return charities, args.Error(1)
}

func (m *MockCharityRepository) SaveCharity(ctx context.Context, charity domain.Charity) error {
	if m.SaveCharityFn != nil {
		return m.SaveCharityFn(ctx, charity)
	}
	args := m.Called(ctx, charity)
	return args.Error(0)
}

func (m *MockCharityRepository) UpdateCharity(ctx context.Context, charity domain.Charity) error {
	if m.UpdateCharityFn != nil {
		return m.UpdateCharityFn(ctx, charity)
	}
	args := m.Called(ctx, charity)
	return args.Error(0)
}

func (m *MockCharityRepository) AppendUser(ctx context.Context, charityGUID string, userGUID string, now time.Time) (*domain.Charity, error) {
	if m.AppendUserFn != nil {
		return m.AppendUserFn(ctx, charityGUID, userGUID, now)
	}
	args := m.Called(ctx, charityGUID, userGUID, now)
	var charity *domain.Charity
	if args.Get(0) != nil {
		charity = args.Get(0).(*domain.Charity)
	}
	return charity, args.Error(1)
}

func (m *MockCharityRepository) AppendCampaign(ctx context.Context, charityGUID string, campaignGUID string, now time.Time) (*domain.Charity, error) {
	if m.AppendCampaignFn != nil {
		return m.AppendCampaignFn(ctx, charityGUID, campaignGUID, now)
	}
	args := m.Called(ctx, charityGUID, campaignGUID, now)
	var charity *domain.Charity
	if args.Get(0) != nil {
		charity = args.Get(0).(*domain.Charity)
	}
	return charity, args.Error(1)
}

func (m *MockCharityRepository) AppendUpdate(ctx context.Context, charityGUID string, updateGUID string, now time.Time) (*domain.Charity, error) {
	if m.AppendUpdateFn != nil {
		return m.AppendUpdateFn(ctx, charityGUID, updateGUID, now)
	}
	args := m.Called(ctx, charityGUID, updateGUID, now)
	var charity *domain.Charity
	if args.Get(0) != nil {
		charity = args.Get(0).(*domain.Charity)
	}
	return charity, args.Error(1)
}

func (m *MockCharityRepository) AppendDonation(ctx context.Context, charityGUID string, donationGUID string, now time.Time) (*domain.Charity, error) {
	if m.AppendDonationFn != nil {
		return m.AppendDonationFn(ctx, charityGUID, donationGUID, now)
	}
	args := m.Called(ctx, charityGUID, donationGUID, now)
	var charity *domain.Charity
	if args.Get(0) != nil {
		charity = args.Get(0).(*domain.Charity)
	}
	return charity, args.Error(1)
}

// --- Mock CampaignRepository ---

type MockCampaignRepository struct {
	mock.Mock
	FindCampaignByGUIDFn func(ctx context.Context, guid string) (*domain.Campaign, error)
	FindCampaignsFn      func(ctx context.Context, charityGUID string, limit int, offset int) ([]domain.Campaign, error)
	SaveCampaignFn       func(ctx context.Context, campaign domain.Campaign) error
	UpdateCampaignFn     func(ctx context.Context, campaign domain.Campaign) error
	AppendDonationFn     func(ctx context.Context, campaignGUID string, donationGUID string, now time.Time) (*domain.Campaign, error)
}

var _ portsrepo.CampaignRepositoryFacade = (*MockCampaignRepository)(nil)

func (m *MockCampaignRepository) FindCampaignByGUID(ctx context.Context, guid string) (*domain.Campaign, error) {
	if m.FindCampaignByGUIDFn != nil {
		return m.FindCampaignByGUIDFn(ctx, guid)
	}
	args := m.Called(ctx, guid)
	var campaign *domain.Campaign
	if args.Get(0) != nil {
		campaign = args.Get(0).(*domain.Campaign)
	}
	return campaign, args.Error(1)
}

func (m *MockCampaignRepository) FindCampaigns(ctx context.Context, charityGUID string, limit int, offset int) ([]domain.Campaign, error) {
	if m.FindCampaignsFn != nil {
		return m.FindCampaignsFn(ctx, charityGUID, limit, offset)
	}
	args := m.Called(ctx, charityGUID, limit, offset)
	var campaigns []domain.Campaign
	if args.Get(0) != nil {
		campaigns = args.Get(0).([]domain.Campaign)
	}
	return campaigns, args.Error(1)
}

func (m *MockCampaignRepository) SaveCampaign(ctx context.Context, campaign domain.Campaign) error {
	if m.SaveCampaignFn != nil {
		return m.SaveCampaignFn(ctx, campaign)
	}
	args := m.Called(ctx, campaign)
	return args.Error(0)
}

func (m *MockCampaignRepository) UpdateCampaign(ctx context.Context, campaign domain.Campaign) error {
	if m.UpdateCampaignFn != nil {
		return m.UpdateCampaignFn(ctx, campaign)
	}
	args := m.Called(ctx, campaign)
	return args.Error(0)
}

func (m *MockCampaignRepository) AppendDonation(ctx context.Context, campaignGUID string, donationGUID string, now time.Time) (*domain.Campaign, error) {
	if m.AppendDonationFn != nil {
		return m.AppendDonationFn(ctx, campaignGUID, donationGUID, now)
	}
	args := m.Called(ctx, campaignGUID, donationGUID, now)
	var campaign *domain.Campaign
	if args.Get(0) != nil {
		campaign = args.Get(0).(*domain.Campaign)
	}
	return campaign, args.Error(1)
}

// --- Mock PostRepository ---

type MockPostRepository struct {
	mock.Mock
	FindPostByGUIDFn func(ctx context.Context, guid string) (*domain.Post, error)
	FindPostsFn      func(ctx context.Context, filter portsrepo.PostFilter, limit int, offset int) ([]domain.Post, error)
	SavePostFn       func(ctx context.Context, post domain.Post) error
	UpdatePostFn     func(ctx context.Context, post domain.Post) error
	AppendDonationFn func(ctx context.Context, postGUID string, donationGUID string, now time.Time) (*domain.Post, error)
}

var _ portsrepo.PostRepositoryFacade = (*MockPostRepository)(nil)

func (m *MockPostRepository) FindPostByGUID(ctx context.Context, guid string) (*domain.Post, error) {
	if m.FindPostByGUIDFn != nil {
		return m.FindPostByGUIDFn(ctx, guid)
	}
	args := m.Called(ctx, guid)
	var post *domain.Post
	if args.Get(0) != nil {
		post = args.Get(0).(*domain.Post)
	}
	return post, args.Error(1)
}

func (m *MockPostRepository) FindPosts(ctx context.Context, filter portsrepo.PostFilter, limit int, offset int) ([]domain.Post, error) {
	if m.FindPostsFn != nil {
		return m.FindPostsFn(ctx, filter, limit, offset)
	}
	args := m.Called(ctx, filter, limit, offset)
	var posts []domain.Post
	if args.Get(0) != nil {
		posts = args.Get(0).([]domain.Post)
	}
	return posts, args.Error(1)
}

func (m *MockPostRepository) SavePost(ctx context.Context, post domain.Post) error {
	if m.SavePostFn != nil {
		return m.SavePostFn(ctx, post)
	}
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) UpdatePost(ctx context.Context, post domain.Post) error {
	if m.UpdatePostFn != nil {
		return m.UpdatePostFn(ctx, post)
	}
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) AppendDonation(ctx context.Context, postGUID string, donationGUID string, now time.Time) (*domain.Post, error) {
	if m.AppendDonationFn != nil {
		return m.AppendDonationFn(ctx, postGUID, donationGUID, now)
	}
	args := m.Called(ctx, postGUID, donationGUID, now)
	var post *domain.Post
	if args.Get(0) != nil {
		post = args.Get(0).(*domain.Post)
	}
	return post, args.Error(1)
}

// --- Mock DonationRepository ---

type MockDonationRepository struct {
	mock.Mock
	FindDonationByGUIDFn func(ctx context.Context, guid string) (*domain.Donation, error)
	FindDonationsFn      func(ctx context.Context, filter portsrepo.DonationFilter, limit int, offset int) ([]domain.Donation, error)
	SumAmountFn          func(ctx context.Context, filter portsrepo.DonationFilter) (int64, error)
	SaveDonationFn       func(ctx context.Context, donation domain.Donation) error
}

var _ portsrepo.DonationRepositoryFacade = (*MockDonationRepository)(nil)

func (m *MockDonationRepository) FindDonationByGUID(ctx context.Context, guid string) (*domain.Donation, error) {
	if m.FindDonationByGUIDFn != nil {
		return m.FindDonationByGUIDFn(ctx, guid)
	}
	args := m.Called(ctx, guid)
	var donation *domain.Donation
	if args.Get(0) != nil {
		donation = args.Get(0).(*domain.Donation)
	}
	return donation, args.Error(1)
}

func (m *MockDonationRepository) FindDonations(ctx context.Context, filter portsrepo.DonationFilter, limit int, offset int) ([]domain.Donation, error) {
	if m.FindDonationsFn != nil {
		return m.FindDonationsFn(ctx, filter, limit, offset)
	}
	args := m.Called(ctx, filter, limit, offset)
	var donations []domain.Donation
	if args.Get(0) != nil {
		donations = args.Get(0).([]domain.Donation)
	}
	return donations, args.Error(1)
}

func (m *MockDonationRepository) SumAmount(ctx context.Context, filter portsrepo.DonationFilter) (int64, error) {
	if m.SumAmountFn != nil {
		return m.SumAmountFn(ctx, filter)
	}
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDonationRepository) SaveDonation(ctx context.Context, donation domain.Donation) error {
	if m.SaveDonationFn != nil {
		return m.SaveDonationFn(ctx, donation)
	}
	args := m.Called(ctx, donation)
	return args.Error(0)
}

// --- Mock UpdateRepository ---

type MockUpdateRepository struct {
	mock.Mock
	FindUpdateByGUIDFn     func(ctx context.Context, guid string) (*domain.Update, error)
	FindUpdatesByCharityFn func(ctx context.Context, charityGUID string, limit int, offset int) ([]domain.Update, error)
	SaveUpdateFn           func(ctx context.Context, update domain.Update) error
}

var _ portsrepo.UpdateRepositoryFacade = (*MockUpdateRepository)(nil)

func (m *MockUpdateRepository) FindUpdateByGUID(ctx context.Context, guid string) (*domain.Update, error) {
	if m.FindUpdateByGUIDFn != nil {
		return m.FindUpdateByGUIDFn(ctx, guid)
	}
	args := m.Called(ctx, guid)
	var update *domain.Update
	if args.Get(0) != nil {
		update = args.Get(0).(*domain.Update)
	}
	return update, args.Error(1)
}

func (m *MockUpdateRepository) FindUpdatesByCharity(ctx context.Context, charityGUID string, limit int, offset int) ([]domain.Update, error) {
	if m.FindUpdatesByCharityFn != nil {
		return m.FindUpdatesByCharityFn(ctx, charityGUID, limit, offset)
	}
	args := m.Called(ctx, charityGUID, limit, offset)
	var updates []domain.Update
	if args.Get(0) != nil {
		updates = args.Get(0).([]domain.Update)
	}
	return updates, args.Error(1)
}

func (m *MockUpdateRepository) SaveUpdate(ctx context.Context, update domain.Update) error {
	if m.SaveUpdateFn != nil {
		return m.SaveUpdateFn(ctx, update)
	}
	args := m.Called(ctx, update)
	return args.Error(0)
}

// --- Mock CharityTokenRepository ---

type MockCharityTokenRepository struct {
	mock.Mock
	FindCharityTokenByCodeFn func(ctx context.Context, code string) (*domain.CharityToken, error)
	FindCharityTokenByGUIDFn func(ctx context.Context, guid string) (*domain.CharityToken, error)
	SaveCharityTokenFn       func(ctx context.Context, token domain.CharityToken) error
	MarkCharityTokenUsedFn   func(ctx context.Context, guid string, usedBy string, now time.Time) error
}

var _ portsrepo.CharityTokenRepositoryFacade = (*MockCharityTokenRepository)(nil)

func (m *MockCharityTokenRepository) FindCharityTokenByCode(ctx context.Context, code string) (*domain.CharityToken, error) {
	if m.FindCharityTokenByCodeFn != nil {
		return m.FindCharityTokenByCodeFn(ctx, code)
	}
	args := m.Called(ctx, code)
	var token *domain.CharityToken
	if args.Get(0) != nil {
		token = args.Get(0).(*domain.CharityToken)
	}
	return token, args.Error(1)
}

func (m *MockCharityTokenRepository) FindCharityTokenByGUID(ctx context.Context, guid string) (*domain.CharityToken, error) {
	if m.FindCharityTokenByGUIDFn != nil {
		return m.FindCharityTokenByGUIDFn(ctx, guid)
	}
	args := m.Called(ctx, guid)
	var token *domain.CharityToken
	if args.Get(0) != nil {
		token = args.Get(0).(*domain.CharityToken)
	}
	return token, args.Error(1)
}

func (m *MockCharityTokenRepository) SaveCharityToken(ctx context.Context, token domain.CharityToken) error {
	if m.SaveCharityTokenFn != nil {
		return m.SaveCharityTokenFn(ctx, token)
	}
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockCharityTokenRepository) MarkCharityTokenUsed(ctx context.Context, guid string, usedBy string, now time.Time) error {
	if m.MarkCharityTokenUsedFn != nil {
		return m.MarkCharityTokenUsedFn(ctx, guid, usedBy, now)
	}
	args := m.Called(ctx, guid, usedBy, now)
	return args.Error(0)
}
