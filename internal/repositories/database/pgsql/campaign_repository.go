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

type PgxCampaignRepository struct {
	db *pgxpool.Pool
}

func newPgxCampaignRepository(db *pgxpool.Pool) portsrepo.CampaignRepositoryFacade {
	return &PgxCampaignRepository{db: db}
}

var _ portsrepo.CampaignRepositoryFacade = (*PgxCampaignRepository)(nil)

const campaignColumns = `guid, charity, name, description, donations, date_created, last_modified, erased`

func toModelCampaign(d domain.Campaign) models.Campaign {
	return models.Campaign{
		ObjectFields: models.ObjectFields{
			GUID:         d.GUID,
			DateCreated:  d.DateCreated,
			LastModified: d.LastModified,
			Erased:       d.Erased,
		},
		Charity:     d.Charity,
		Name:        d.Name,
		Description: d.Description,
		Donations:   d.Donations,
	}
}

func toDomainCampaign(m models.Campaign) domain.Campaign {
	return domain.Campaign{
		ObjectFields: domain.ObjectFields{
			GUID:         m.GUID,
			DateCreated:  m.DateCreated,
			LastModified: m.LastModified,
			Erased:       m.Erased,
		},
		Charity:     m.Charity,
		Name:        m.Name,
		Description: m.Description,
		Donations:   m.Donations,
	}
}

func scanCampaign(row pgx.Row) (*domain.Campaign, error) {
	var m models.Campaign
	err := row.Scan(
		&m.GUID,
		&m.Charity,
		&m.Name,
		&m.Description,
		&m.Donations,
		&m.DateCreated,
		&m.LastModified,
		&m.Erased,
	)
	if err != nil {
		return nil, err
	}
	d := toDomainCampaign(m)
	return &d, nil
}

func (r *PgxCampaignRepository) SaveCampaign(ctx context.Context, campaign domain.Campaign) error {
	m := toModelCampaign(campaign)
	query := `
        INSERT INTO campaigns (guid, charity, name, description, donations, date_created, last_modified, erased)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
    `
	_, err := r.db.Exec(ctx, query,
		m.GUID,
		m.Charity,
		m.Name,
		m.Description,
		m.Donations,
		m.DateCreated,
		m.LastModified,
		m.Erased,
	)
	if err != nil {
		return fmt.Errorf("failed to save campaign: %w", err)
	}
	return nil
}

func (r *PgxCampaignRepository) FindCampaignByGUID(ctx context.Context, guid string) (*domain.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE guid = $1 AND erased = false;`
	campaign, err := scanCampaign(r.db.QueryRow(ctx, query, guid))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find campaign by GUID %s: %w", guid, err)
	}
	return campaign, nil
}

func (r *PgxCampaignRepository) FindCampaigns(ctx context.Context, charityGUID string, limit int, offset int) ([]domain.Campaign, error) {
	limit, offset = normalizeListParams(limit, offset)
	query := `
        SELECT ` + campaignColumns + `
        FROM campaigns
        WHERE erased = false AND ($1 = '' OR charity = $1)
        ORDER BY date_created DESC
        LIMIT $2 OFFSET $3;
    `
	rows, err := r.db.Query(ctx, query, charityGUID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query campaigns: %w", err)
	}
	defer rows.Close()

	campaigns := []domain.Campaign{}
	for rows.Next() {
		campaign, err := scanCampaign(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan campaign row: %w", err)
		}
		campaigns = append(campaigns, *campaign)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating campaign rows: %w", rows.Err())
	}
	return campaigns, nil
}

func (r *PgxCampaignRepository) UpdateCampaign(ctx context.Context, campaign domain.Campaign) error {
	m := toModelCampaign(campaign)
	query := `
        UPDATE campaigns
        SET name = $1, description = $2, last_modified = $3
        WHERE guid = $4 AND erased = false;
    `
	cmdTag, err := r.db.Exec(ctx, query, m.Name, m.Description, m.LastModified, m.GUID)
	if err != nil {
		return fmt.Errorf("failed to execute update campaign query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("campaign not found or already erased: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxCampaignRepository) AppendDonation(ctx context.Context, campaignGUID string, donationGUID string, now time.Time) (*domain.Campaign, error) {
	query := `
        UPDATE campaigns
        SET donations = array_append(donations, $1), last_modified = $2
        WHERE guid = $3 AND erased = false
        RETURNING ` + campaignColumns + `;
    `
	campaign, err := scanCampaign(r.db.QueryRow(ctx, query, donationGUID, now, campaignGUID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to append donation to campaign %s: %w", campaignGUID, err)
	}
	return campaign, nil
}
