package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	UserRepo         UserRepositoryFacade
	CharityRepo      CharityRepositoryFacade
	CampaignRepo     CampaignRepositoryFacade
	PostRepo         PostRepositoryFacade
	DonationRepo     DonationRepositoryFacade
	UpdateRepo       UpdateRepositoryFacade
	CharityTokenRepo CharityTokenRepositoryFacade
}
