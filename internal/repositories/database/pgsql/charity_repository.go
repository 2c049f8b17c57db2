package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/opengive/giving_backend/internal/apperrors"
	"github.com/opengive/giving_backend/internal/core/domain"
	portsrepo "github.com/opengive/giving_backend/internal/core/ports/repositories"
	"github.com/opengive/giving_backend/internal/models"
)

type PgxCharityRepository struct {
	db *pgxpool.Pool
}

func newPgxCharityRepository(db *pgxpool.Pool) portsrepo.CharityRepositoryFacade {
	return &PgxCharityRepository{db: db}
}

var _ portsrepo.CharityRepositoryFacade = (*PgxCharityRepository)(nil)

const charityColumns = `guid, name, description, charity_token, users, campaigns, updates, donations, date_created, last_modified, erased`

func toModelCharity(d domain.Charity) models.Charity {
	return models.Charity{
		ObjectFields: models.ObjectFields{
			GUID:         d.GUID,
			DateCreated:  d.DateCreated,
			LastModified: d.LastModified,
			Erased:       d.Erased,
		},
		Name:         d.Name,
		Description:  d.Description,
		CharityToken: d.CharityToken,
		Users:        d.Users,
		Campaigns:    d.Campaigns,
		Updates:      d.Updates,
		Donations:    d.Donations,
	}
}

func toDomainCharity(m models.Charity) domain.Charity {
	return domain.Charity{
		ObjectFields: domain.ObjectFields{
			GUID:         m.GUID,
			DateCreated:  m.DateCreated,
			LastModified: m.LastModified,
			Erased:       m.Erased,
		},
		Name:         m.Name,
		Description:  m.Description,
		CharityToken: m.CharityToken,
		Users:        m.Users,
		Campaigns:    m.Campaigns,
		Updates:      m.Updates,
		Donations:    m.Donations,
	}
}

func scanCharity(row pgx.Row) (*domain.Charity, error) {
	var m models.Charity
	err := row.Scan(
		&m.GUID,
		&m.Name,
		&m.Description,
		&m.CharityToken,
		&m.Users,
		&m.Campaigns,
		&m.Updates,
		&m.Donations,
		&m.DateCreated,
		&m.LastModified,
		&m.Erased,
	)
	if err != nil {
		return nil, err
	}
	d := toDomainCharity(m)
	return &d, nil
}

func (r *PgxCharityRepository) SaveCharity(ctx context.Context, charity domain.Charity) error {
	m := toModelCharity(charity)
	query := `
        INSERT INTO charities (guid, name, description, charity_token, users, campaigns, updates, donations, date_created, last_modified, erased)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
    `
	_, err := r.db.Exec(ctx, query,
		m.GUID,
		m.Name,
		m.Description,
		m.CharityToken,
		m.Users,
		m.Campaigns,
		m.Updates,
		m.Donations,
		m.DateCreated,
		m.LastModified,
		m.Erased,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("charity already exists: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save charity: %w", err)
	}
	return nil
}

func (r *PgxCharityRepository) FindCharityByGUID(ctx context.Context, guid string) (*domain.Charity, error) {
	query := `SELECT ` + charityColumns + ` FROM charities WHERE guid = $1 AND erased = false;`
	charity, err := scanCharity(r.db.QueryRow(ctx, query, guid))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find charity by GUID %s: %w", guid, err)
	}
	return charity, nil
}

func (r *PgxCharityRepository) FindCharities(ctx context.Context, limit int, offset int) ([]domain.Charity, error) {
	limit, offset = normalizeListParams(limit, offset)
	query := `
        SELECT ` + charityColumns + `
        FROM charities
        WHERE erased = false
        ORDER BY date_created DESC
        LIMIT $1 OFFSET $2;
    `
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query charities: %w", err)
	}
	defer rows.Close()

	charities := []domain.Charity{}
	for rows.Next() {
		charity, err := scanCharity(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan charity row: %w", err)
		}
		charities = append(charities, *charity)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating charity rows: %w", rows.Err())
	}
	return charities, nil
}

func (r *PgxCharityRepository) UpdateCharity(ctx context.Context, charity domain.Charity) error {
	m := toModelCharity(charity)
	query := `
        UPDATE charities
        SET name = $1, description = $2, last_modified = $3
        WHERE guid = $4 AND erased = false;
    `
	cmdTag, err := r.db.Exec(ctx, query, m.Name, m.Description, m.LastModified, m.GUID)
	if err != nil {
		return fmt.Errorf("failed to execute update charity query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("charity not found or already erased: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxCharityRepository) appendToList(ctx context.Context, column string, charityGUID string, memberGUID string, now time.Time) (*domain.Charity, error) {
	// column is one of the fixed list columns below, never caller input.
	query := `
        UPDATE charities
        SET ` + column + ` = array_append(` + column + `, $1), last_modified = $2
        WHERE guid = $3 AND erased = false
        RETURNING ` + charityColumns + `;
    `
	charity, err := scanCharity(r.db.QueryRow(ctx, query, memberGUID, now, charityGUID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to append to charity %s %s: %w", charityGUID, column, err)
	}
	return charity, nil
}

func (r *PgxCharityRepository) AppendUser(ctx context.Context, charityGUID string, userGUID string, now time.Time) (*domain.Charity, error) {
	return r.appendToList(ctx, "users", charityGUID, userGUID, now)
}

func (r *PgxCharityRepository) AppendCampaign(ctx context.Context, charityGUID string, campaignGUID string, now time.Time) (*domain.Charity, error) {
	return r.appendToList(ctx, "campaigns", charityGUID, campaignGUID, now)
}

func (r *PgxCharityRepository) AppendUpdate(ctx context.Context, charityGUID string, updateGUID string, now time.Time) (*domain.Charity, error) {
	return r.appendToList(ctx, "updates", charityGUID, updateGUID, now)
}

func (r *PgxCharityRepository) AppendDonation(ctx context.Context, charityGUID string, donationGUID string, now time.Time) (*domain.Charity, error) {
	return r.appendToList(ctx, "donations", charityGUID, donationGUID, now)
}
