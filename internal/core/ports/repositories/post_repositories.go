package repositories

import (
	"context"
	"time"

	"github.com/opengive/giving_backend/internal/core/domain"
)

// PostFilter narrows post listings. Nil fields are not applied.
type PostFilter struct {
	User     *string
	Campaign *string
	Charity  *string
}

// PostReader defines read operations for post data.
type PostReader interface {
	// FindPostByGUID retrieves a specific non-erased post by GUID.
	FindPostByGUID(ctx context.Context, guid string) (*domain.Post, error)

	// FindPosts retrieves a paginated, filtered list of posts.
	FindPosts(ctx context.Context, filter PostFilter, limit int, offset int) ([]domain.Post, error)
}

// PostWriter defines write operations for post data.
type PostWriter interface {
	// SavePost persists a new post.
	SavePost(ctx context.Context, post domain.Post) error

	// UpdatePost updates a post's editable fields (caption).
	UpdatePost(ctx context.Context, post domain.Post) error
}

// PostListAppender defines the append-only list mutations on a post row.
type PostListAppender interface {
	AppendDonation(ctx context.Context, postGUID string, donationGUID string, now time.Time) (*domain.Post, error)
}

// PostRepositoryFacade combines all post-related repository interfaces.
type PostRepositoryFacade interface {
	PostReader
	PostWriter
	PostListAppender
}
