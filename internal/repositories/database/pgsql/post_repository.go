package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/opengive/giving_backend/internal/apperrors"
	"github.com/opengive/giving_backend/internal/core/domain"
	portsrepo "github.com/opengive/giving_backend/internal/core/ports/repositories"
	"github.com/opengive/giving_backend/internal/models"
)

type PgxPostRepository struct {
	db *pgxpool.Pool
}

func newPgxPostRepository(db *pgxpool.Pool) portsrepo.PostRepositoryFacade {
	return &PgxPostRepository{db: db}
}

var _ portsrepo.PostRepositoryFacade = (*PgxPostRepository)(nil)

const postColumns = `guid, user_guid, campaign, charity, image, shareable_image, caption, donations, date_created, last_modified, erased`

func toModelPost(d domain.Post) models.Post {
	return models.Post{
		ObjectFields: models.ObjectFields{
			GUID:         d.GUID,
			DateCreated:  d.DateCreated,
			LastModified: d.LastModified,
			Erased:       d.Erased,
		},
		User:           d.User,
		Campaign:       d.Campaign,
		Charity:        d.Charity,
		Image:          d.Image,
		ShareableImage: d.ShareableImage,
		Caption:        d.Caption,
		Donations:      d.Donations,
	}
}

func toDomainPost(m models.Post) domain.Post {
	return domain.Post{
		ObjectFields: domain.ObjectFields{
			GUID:         m.GUID,
			DateCreated:  m.DateCreated,
			LastModified: m.LastModified,
			Erased:       m.Erased,
		},
		User:           m.User,
		Campaign:       m.Campaign,
		Charity:        m.Charity,
		Image:          m.Image,
		ShareableImage: m.ShareableImage,
		Caption:        m.Caption,
		Donations:      m.Donations,
	}
}

func scanPost(row pgx.Row) (*domain.Post, error) {
	var m models.Post
	err := row.Scan(
		&m.GUID,
		&m.User,
		&m.Campaign,
		&m.Charity,
		&m.Image,
		&m.ShareableImage,
		&m.Caption,
		&m.Donations,
		&m.DateCreated,
		&m.LastModified,
		&m.Erased,
	)
	if err != nil {
		return nil, err
	}
	d := toDomainPost(m)
	return &d, nil
}

func (r *PgxPostRepository) SavePost(ctx context.Context, post domain.Post) error {
	m := toModelPost(post)
	query := `
        INSERT INTO posts (guid, user_guid, campaign, charity, image, shareable_image, caption, donations, date_created, last_modified, erased)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
    `
	_, err := r.db.Exec(ctx, query,
		m.GUID,
		m.User,
		m.Campaign,
		m.Charity,
		m.Image,
		m.ShareableImage,
		m.Caption,
		m.Donations,
		m.DateCreated,
		m.LastModified,
		m.Erased,
	)
	if err != nil {
		return fmt.Errorf("failed to save post: %w", err)
	}
	return nil
}

func (r *PgxPostRepository) FindPostByGUID(ctx context.Context, guid string) (*domain.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE guid = $1 AND erased = false;`
	post, err := scanPost(r.db.QueryRow(ctx, query, guid))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find post by GUID %s: %w", guid, err)
	}
	return post, nil
}

func (r *PgxPostRepository) FindPosts(ctx context.Context, filter portsrepo.PostFilter, limit int, offset int) ([]domain.Post, error) {
	limit, offset = normalizeListParams(limit, offset)

	conditions := []string{"erased = false"}
	args := []any{}
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}
	if filter.User != nil {
		conditions = append(conditions, "user_guid = "+arg(*filter.User))
	}
	if filter.Campaign != nil {
		conditions = append(conditions, "campaign = "+arg(*filter.Campaign))
	}
	if filter.Charity != nil {
		conditions = append(conditions, "charity = "+arg(*filter.Charity))
	}

	query := `
        SELECT ` + postColumns + `
        FROM posts
        WHERE ` + strings.Join(conditions, " AND ") + `
        ORDER BY date_created DESC
        LIMIT ` + arg(limit) + ` OFFSET ` + arg(offset) + `;
    `
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()

	posts := []domain.Post{}
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post row: %w", err)
		}
		posts = append(posts, *post)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating post rows: %w", rows.Err())
	}
	return posts, nil
}

func (r *PgxPostRepository) UpdatePost(ctx context.Context, post domain.Post) error {
	m := toModelPost(post)
	query := `
        UPDATE posts
        SET caption = $1, last_modified = $2
        WHERE guid = $3 AND erased = false;
    `
	cmdTag, err := r.db.Exec(ctx, query, m.Caption, m.LastModified, m.GUID)
	if err != nil {
		return fmt.Errorf("failed to execute update post query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("post not found or already erased: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxPostRepository) AppendDonation(ctx context.Context, postGUID string, donationGUID string, now time.Time) (*domain.Post, error) {
	query := `
        UPDATE posts
        SET donations = array_append(donations, $1), last_modified = $2
        WHERE guid = $3 AND erased = false
        RETURNING ` + postColumns + `;
    `
	post, err := scanPost(r.db.QueryRow(ctx, query, donationGUID, now, postGUID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to append donation to post %s: %w", postGUID, err)
	}
	return post, nil
}
