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

type PgxCharityTokenRepository struct {
	db *pgxpool.Pool
}

func newPgxCharityTokenRepository(db *pgxpool.Pool) portsrepo.CharityTokenRepositoryFacade {
	return &PgxCharityTokenRepository{db: db}
}

var _ portsrepo.CharityTokenRepositoryFacade = (*PgxCharityTokenRepository)(nil)

const charityTokenColumns = `guid, token, email, expiration, used, used_by, date_created, last_modified, erased`

func toDomainCharityToken(m models.CharityToken) domain.CharityToken {
	return domain.CharityToken{
		ObjectFields: domain.ObjectFields{
			GUID:         m.GUID,
			DateCreated:  m.DateCreated,
			LastModified: m.LastModified,
			Erased:       m.Erased,
		},
		Token:      m.Token,
		Email:      m.Email,
		Expiration: m.Expiration,
		Used:       m.Used,
		UsedBy:     m.UsedBy,
	}
}

func scanCharityToken(row pgx.Row) (*domain.CharityToken, error) {
	var m models.CharityToken
	err := row.Scan(
		&m.GUID,
		&m.Token,
		&m.Email,
		&m.Expiration,
		&m.Used,
		&m.UsedBy,
		&m.DateCreated,
		&m.LastModified,
		&m.Erased,
	)
	if err != nil {
		return nil, err
	}
	d := toDomainCharityToken(m)
	return &d, nil
}

func (r *PgxCharityTokenRepository) SaveCharityToken(ctx context.Context, token domain.CharityToken) error {
	query := `
        INSERT INTO charity_tokens (guid, token, email, expiration, used, used_by, date_created, last_modified, erased)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	_, err := r.db.Exec(ctx, query,
		token.GUID,
		token.Token,
		token.Email,
		token.Expiration,
		token.Used,
		token.UsedBy,
		token.DateCreated,
		token.LastModified,
		token.Erased,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("token code already issued: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save charity token: %w", err)
	}
	return nil
}

func (r *PgxCharityTokenRepository) FindCharityTokenByCode(ctx context.Context, code string) (*domain.CharityToken, error) {
	query := `SELECT ` + charityTokenColumns + ` FROM charity_tokens WHERE token = $1 AND erased = false;`
	token, err := scanCharityToken(r.db.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find charity token by code: %w", err)
	}
	return token, nil
}

func (r *PgxCharityTokenRepository) FindCharityTokenByGUID(ctx context.Context, guid string) (*domain.CharityToken, error) {
	query := `SELECT ` + charityTokenColumns + ` FROM charity_tokens WHERE guid = $1 AND erased = false;`
	token, err := scanCharityToken(r.db.QueryRow(ctx, query, guid))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find charity token by GUID %s: %w", guid, err)
	}
	return token, nil
}

// MarkCharityTokenUsed consumes a token in a single conditional statement so a
// code cannot be redeemed twice by concurrent registrations.
func (r *PgxCharityTokenRepository) MarkCharityTokenUsed(ctx context.Context, guid string, usedBy string, now time.Time) error {
	query := `
        UPDATE charity_tokens
        SET used = true, used_by = $1, last_modified = $2
        WHERE guid = $3 AND erased = false AND used = false;
    `
	cmdTag, err := r.db.Exec(ctx, query, usedBy, now, guid)
	if err != nil {
		return fmt.Errorf("failed to mark charity token used: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("charity token missing or already used: %w", apperrors.ErrConflict)
	}
	return nil
}
