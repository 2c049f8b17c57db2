package services

import (
	portsrepo "github.com/opengive/giving_backend/internal/core/ports/repositories"
	portssvc "github.com/opengive/giving_backend/internal/core/ports/services"
	"github.com/opengive/giving_backend/internal/platform/config"
)

// NewServiceContainer wires every service over the shared repositories. The
// formatter is built first because most services hand entities to it for
// their response views.
func NewServiceContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	formatter := newFormatterService(repos)

	return &portssvc.ServiceContainer{
		Auth:         newAuthService(repos, formatter, cfg.JWTSecret, cfg.JWTExpiryDuration, cfg.JWTIssuer),
		User:         newUserService(repos),
		Charity:      newCharityService(repos, formatter),
		Campaign:     newCampaignService(repos, formatter),
		Post:         newPostService(repos, formatter),
		Donation:     newDonationService(repos, formatter),
		Update:       newUpdateService(repos, formatter),
		CharityToken: newCharityTokenService(repos),
		Formatter:    formatter,
	}
}
