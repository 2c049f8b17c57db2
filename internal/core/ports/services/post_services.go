package services

import (
	"context"

	"github.com/opengive/giving_backend/internal/dto"
)

// PostSvcFacade manages user posts supporting campaigns.
type PostSvcFacade interface {
	CreatePost(ctx context.Context, userGUID string, req dto.CreatePostRequest) (*dto.PostResponse, error)
	GetPost(ctx context.Context, guid string) (*dto.PostResponse, error)
	ListPosts(ctx context.Context, params dto.ListPostsParams) (*dto.ListPostsResponse, error)
	UpdatePost(ctx context.Context, userGUID string, guid string, req dto.UpdatePostRequest) (*dto.PostResponse, error)
}
