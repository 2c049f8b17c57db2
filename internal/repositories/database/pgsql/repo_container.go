package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/opengive/giving_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider builds the full set of Postgres-backed repositories
// over a shared connection pool.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		UserRepo:         newPgxUserRepository(pool),
		CharityRepo:      newPgxCharityRepository(pool),
		CampaignRepo:     newPgxCampaignRepository(pool),
		PostRepo:         newPgxPostRepository(pool),
		DonationRepo:     newPgxDonationRepository(pool),
		UpdateRepo:       newPgxUpdateRepository(pool),
		CharityTokenRepo: newPgxCharityTokenRepository(pool),
	}
}
