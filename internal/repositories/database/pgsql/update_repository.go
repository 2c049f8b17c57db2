package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/opengive/giving_backend/internal/apperrors"
	"github.com/opengive/giving_backend/internal/core/domain"
	portsrepo "github.com/opengive/giving_backend/internal/core/ports/repositories"
	"github.com/opengive/giving_backend/internal/models"
)

type PgxUpdateRepository struct {
	db *pgxpool.Pool
}

func newPgxUpdateRepository(db *pgxpool.Pool) portsrepo.UpdateRepositoryFacade {
	return &PgxUpdateRepository{db: db}
}

var _ portsrepo.UpdateRepositoryFacade = (*PgxUpdateRepository)(nil)

const updateColumns = `guid, charity, title, body, date_created, last_modified, erased`

func toDomainUpdate(m models.Update) domain.Update {
	return domain.Update{
		ObjectFields: domain.ObjectFields{
			GUID:         m.GUID,
			DateCreated:  m.DateCreated,
			LastModified: m.LastModified,
			Erased:       m.Erased,
		},
		Charity: m.Charity,
		Title:   m.Title,
		Body:    m.Body,
	}
}

func scanUpdate(row pgx.Row) (*domain.Update, error) {
	var m models.Update
	err := row.Scan(
		&m.GUID,
		&m.Charity,
		&m.Title,
		&m.Body,
		&m.DateCreated,
		&m.LastModified,
		&m.Erased,
	)
	if err != nil {
		return nil, err
	}
	d := toDomainUpdate(m)
	return &d, nil
}

func (r *PgxUpdateRepository) SaveUpdate(ctx context.Context, update domain.Update) error {
	query := `
        INSERT INTO updates (guid, charity, title, body, date_created, last_modified, erased)
        VALUES ($1, $2, $3, $4, $5, $6, $7);
    `
	_, err := r.db.Exec(ctx, query,
		update.GUID,
		update.Charity,
		update.Title,
		update.Body,
		update.DateCreated,
		update.LastModified,
		update.Erased,
	)
	if err != nil {
		return fmt.Errorf("failed to save update: %w", err)
	}
	return nil
}

func (r *PgxUpdateRepository) FindUpdateByGUID(ctx context.Context, guid string) (*domain.Update, error) {
	query := `SELECT ` + updateColumns + ` FROM updates WHERE guid = $1 AND erased = false;`
	update, err := scanUpdate(r.db.QueryRow(ctx, query, guid))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find update by GUID %s: %w", guid, err)
	}
	return update, nil
}

func (r *PgxUpdateRepository) FindUpdatesByCharity(ctx context.Context, charityGUID string, limit int, offset int) ([]domain.Update, error) {
	limit, offset = normalizeListParams(limit, offset)
	query := `
        SELECT ` + updateColumns + `
        FROM updates
        WHERE erased = false AND charity = $1
        ORDER BY date_created DESC
        LIMIT $2 OFFSET $3;
    `
	rows, err := r.db.Query(ctx, query, charityGUID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query updates: %w", err)
	}
	defer rows.Close()

	updates := []domain.Update{}
	for rows.Next() {
		update, err := scanUpdate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan update row: %w", err)
		}
		updates = append(updates, *update)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating update rows: %w", rows.Err())
	}
	return updates, nil
}
