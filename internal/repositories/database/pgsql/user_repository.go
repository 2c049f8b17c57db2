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

type PgxUserRepository struct {
	db *pgxpool.Pool
}

func newPgxUserRepository(db *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{db: db}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

const userColumns = `guid, email, password_hash, name, bio, picture, charity_user, charity, balance, posts, donations, date_created, last_modified, erased`

func toModelUser(d domain.User) models.User {
	return models.User{
		ObjectFields: models.ObjectFields{
			GUID:         d.GUID,
			DateCreated:  d.DateCreated,
			LastModified: d.LastModified,
			Erased:       d.Erased,
		},
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		Name:         d.Name,
		Bio:          d.Bio,
		Picture:      d.Picture,
		CharityUser:  d.CharityUser,
		Charity:      d.Charity,
		Balance:      d.Balance,
		Posts:        d.Posts,
		Donations:    d.Donations,
	}
}

func toDomainUser(m models.User) domain.User {
	return domain.User{
		ObjectFields: domain.ObjectFields{
			GUID:         m.GUID,
			DateCreated:  m.DateCreated,
			LastModified: m.LastModified,
			Erased:       m.Erased,
		},
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Name:         m.Name,
		Bio:          m.Bio,
		Picture:      m.Picture,
		CharityUser:  m.CharityUser,
		Charity:      m.Charity,
		Balance:      m.Balance,
		Posts:        m.Posts,
		Donations:    m.Donations,
	}
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var m models.User
	err := row.Scan(
		&m.GUID,
		&m.Email,
		&m.PasswordHash,
		&m.Name,
		&m.Bio,
		&m.Picture,
		&m.CharityUser,
		&m.Charity,
		&m.Balance,
		&m.Posts,
		&m.Donations,
		&m.DateCreated,
		&m.LastModified,
		&m.Erased,
	)
	if err != nil {
		return nil, err
	}
	d := toDomainUser(m)
	return &d, nil
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := toModelUser(user)
	query := `
        INSERT INTO users (guid, email, password_hash, name, bio, picture, charity_user, charity, balance, posts, donations, date_created, last_modified, erased)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
    `
	_, err := r.db.Exec(ctx, query,
		m.GUID,
		m.Email,
		m.PasswordHash,
		m.Name,
		m.Bio,
		m.Picture,
		m.CharityUser,
		m.Charity,
		m.Balance,
		m.Posts,
		m.Donations,
		m.DateCreated,
		m.LastModified,
		m.Erased,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("email already registered: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *PgxUserRepository) FindUserByGUID(ctx context.Context, guid string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE guid = $1 AND erased = false;`
	user, err := scanUser(r.db.QueryRow(ctx, query, guid))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by GUID %s: %w", guid, err)
	}
	return user, nil
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 AND erased = false;`
	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return user, nil
}

func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	m := toModelUser(user)
	query := `
        UPDATE users
        SET name = $1, bio = $2, picture = $3, charity = $4, last_modified = $5
        WHERE guid = $6 AND erased = false;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		m.Name,
		m.Bio,
		m.Picture,
		m.Charity,
		m.LastModified,
		m.GUID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update user query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user not found or already erased: %w", apperrors.ErrNotFound)
	}
	return nil
}

// DecrementBalance performs the conditional funds deduction in a single
// statement. The WHERE clause guards against a concurrent donation draining
// the balance between the service's funds check and this write.
func (r *PgxUserRepository) DecrementBalance(ctx context.Context, userGUID string, amountCents int64, now time.Time) (*domain.User, error) {
	query := `
        UPDATE users
        SET balance = balance - $1, last_modified = $2
        WHERE guid = $3 AND erased = false AND balance >= $1
        RETURNING ` + userColumns + `;
    `
	user, err := scanUser(r.db.QueryRow(ctx, query, amountCents, now, userGUID))
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to decrement balance for user %s: %w", userGUID, err)
	}

	// No row matched; distinguish a missing user from an uncovered amount.
	var exists bool
	checkQuery := `SELECT EXISTS (SELECT 1 FROM users WHERE guid = $1 AND erased = false);`
	if checkErr := r.db.QueryRow(ctx, checkQuery, userGUID).Scan(&exists); checkErr != nil {
		return nil, fmt.Errorf("failed to check user existence after decrement miss: %w", checkErr)
	}
	if !exists {
		return nil, apperrors.ErrNotFound
	}
	return nil, apperrors.ErrInsufficientFunds
}

func (r *PgxUserRepository) IncrementBalance(ctx context.Context, userGUID string, amountCents int64, now time.Time) (*domain.User, error) {
	query := `
        UPDATE users
        SET balance = balance + $1, last_modified = $2
        WHERE guid = $3 AND erased = false
        RETURNING ` + userColumns + `;
    `
	user, err := scanUser(r.db.QueryRow(ctx, query, amountCents, now, userGUID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to increment balance for user %s: %w", userGUID, err)
	}
	return user, nil
}

func (r *PgxUserRepository) AppendDonation(ctx context.Context, userGUID string, donationGUID string, now time.Time) (*domain.User, error) {
	query := `
        UPDATE users
        SET donations = array_append(donations, $1), last_modified = $2
        WHERE guid = $3 AND erased = false
        RETURNING ` + userColumns + `;
    `
	user, err := scanUser(r.db.QueryRow(ctx, query, donationGUID, now, userGUID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to append donation to user %s: %w", userGUID, err)
	}
	return user, nil
}

func (r *PgxUserRepository) AppendPost(ctx context.Context, userGUID string, postGUID string, now time.Time) (*domain.User, error) {
	query := `
        UPDATE users
        SET posts = array_append(posts, $1), last_modified = $2
        WHERE guid = $3 AND erased = false
        RETURNING ` + userColumns + `;
    `
	user, err := scanUser(r.db.QueryRow(ctx, query, postGUID, now, userGUID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to append post to user %s: %w", userGUID, err)
	}
	return user, nil
}

func (r *PgxUserRepository) MarkUserErased(ctx context.Context, userGUID string, now time.Time) error {
	query := `
        UPDATE users
        SET erased = true, last_modified = $1
        WHERE guid = $2 AND erased = false;
    `
	cmdTag, err := r.db.Exec(ctx, query, now, userGUID)
	if err != nil {
		return fmt.Errorf("failed to mark user as erased: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user not found or already erased: %w", apperrors.ErrNotFound)
	}
	return nil
}
