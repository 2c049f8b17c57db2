package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/opengive/giving_backend/internal/apperrors"
	"github.com/opengive/giving_backend/internal/core/domain"
	portsrepo "github.com/opengive/giving_backend/internal/core/ports/repositories"
	"github.com/opengive/giving_backend/internal/models"
)

type PgxDonationRepository struct {
	db *pgxpool.Pool
}

func newPgxDonationRepository(db *pgxpool.Pool) portsrepo.DonationRepositoryFacade {
	return &PgxDonationRepository{db: db}
}

var _ portsrepo.DonationRepositoryFacade = (*PgxDonationRepository)(nil)

const donationColumns = `guid, user_guid, charity, campaign, post, amount, date_created, last_modified, erased`

func toModelDonation(d domain.Donation) models.Donation {
	return models.Donation{
		ObjectFields: models.ObjectFields{
			GUID:         d.GUID,
			DateCreated:  d.DateCreated,
			LastModified: d.LastModified,
			Erased:       d.Erased,
		},
		User:     d.User,
		Charity:  d.Charity,
		Campaign: d.Campaign,
		Post:     d.Post,
		Amount:   d.Amount,
	}
}

func toDomainDonation(m models.Donation) domain.Donation {
	return domain.Donation{
		ObjectFields: domain.ObjectFields{
			GUID:         m.GUID,
			DateCreated:  m.DateCreated,
			LastModified: m.LastModified,
			Erased:       m.Erased,
		},
		User:     m.User,
		Charity:  m.Charity,
		Campaign: m.Campaign,
		Post:     m.Post,
		Amount:   m.Amount,
	}
}

func scanDonation(row pgx.Row) (*domain.Donation, error) {
	var m models.Donation
	err := row.Scan(
		&m.GUID,
		&m.User,
		&m.Charity,
		&m.Campaign,
		&m.Post,
		&m.Amount,
		&m.DateCreated,
		&m.LastModified,
		&m.Erased,
	)
	if err != nil {
		return nil, err
	}
	d := toDomainDonation(m)
	return &d, nil
}

// donationFilterConditions builds the WHERE conditions for a filter. The
// returned args start at $1.
func donationFilterConditions(filter portsrepo.DonationFilter) ([]string, []any) {
	conditions := []string{"erased = false"}
	args := []any{}
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}
	if filter.User != nil {
		conditions = append(conditions, "user_guid = "+arg(*filter.User))
	}
	if filter.Charity != nil {
		conditions = append(conditions, "charity = "+arg(*filter.Charity))
	}
	if filter.Campaign != nil {
		conditions = append(conditions, "campaign = "+arg(*filter.Campaign))
	}
	if filter.Post != nil {
		conditions = append(conditions, "post = "+arg(*filter.Post))
	}
	return conditions, args
}

func (r *PgxDonationRepository) SaveDonation(ctx context.Context, donation domain.Donation) error {
	m := toModelDonation(donation)
	query := `
        INSERT INTO donations (guid, user_guid, charity, campaign, post, amount, date_created, last_modified, erased)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	_, err := r.db.Exec(ctx, query,
		m.GUID,
		m.User,
		m.Charity,
		m.Campaign,
		m.Post,
		m.Amount,
		m.DateCreated,
		m.LastModified,
		m.Erased,
	)
	if err != nil {
		return fmt.Errorf("failed to save donation: %w", err)
	}
	return nil
}

func (r *PgxDonationRepository) FindDonationByGUID(ctx context.Context, guid string) (*domain.Donation, error) {
	query := `SELECT ` + donationColumns + ` FROM donations WHERE guid = $1 AND erased = false;`
	donation, err := scanDonation(r.db.QueryRow(ctx, query, guid))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find donation by GUID %s: %w", guid, err)
	}
	return donation, nil
}

func (r *PgxDonationRepository) FindDonations(ctx context.Context, filter portsrepo.DonationFilter, limit int, offset int) ([]domain.Donation, error) {
	limit, offset = normalizeListParams(limit, offset)

	conditions, args := donationFilterConditions(filter)
	args = append(args, limit, offset)
	query := `
        SELECT ` + donationColumns + `
        FROM donations
        WHERE ` + strings.Join(conditions, " AND ") + `
        ORDER BY date_created DESC
        LIMIT $` + strconv.Itoa(len(args)-1) + ` OFFSET $` + strconv.Itoa(len(args)) + `;
    `
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query donations: %w", err)
	}
	defer rows.Close()

	donations := []domain.Donation{}
	for rows.Next() {
		donation, err := scanDonation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan donation row: %w", err)
		}
		donations = append(donations, *donation)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating donation rows: %w", rows.Err())
	}
	return donations, nil
}

func (r *PgxDonationRepository) SumAmount(ctx context.Context, filter portsrepo.DonationFilter) (int64, error) {
	conditions, args := donationFilterConditions(filter)
	query := `
        SELECT COALESCE(SUM(amount), 0)
        FROM donations
        WHERE ` + strings.Join(conditions, " AND ") + `;
    `
	var total int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum donation amounts: %w", err)
	}
	return total, nil
}
