package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/opengive/giving_backend/internal/apperrors"
	"github.com/opengive/giving_backend/internal/core/domain"
	portsrepo "github.com/opengive/giving_backend/internal/core/ports/repositories"
	portssvc "github.com/opengive/giving_backend/internal/core/ports/services"
	"github.com/opengive/giving_backend/internal/dto"
	"github.com/opengive/giving_backend/internal/middleware"
)

type postService struct {
	postRepo     portsrepo.PostRepositoryFacade
	campaignRepo portsrepo.CampaignRepositoryFacade
	userRepo     portsrepo.UserRepositoryFacade
	formatter    portssvc.FormatterSvcFacade
}

func newPostService(repos *portsrepo.RepositoryProvider, formatter portssvc.FormatterSvcFacade) portssvc.PostSvcFacade {
	return &postService{
		postRepo:     repos.PostRepo,
		campaignRepo: repos.CampaignRepo,
		userRepo:     repos.UserRepo,
		formatter:    formatter,
	}
}

var _ portssvc.PostSvcFacade = (*postService)(nil)

// CreatePost publishes a post supporting a campaign. The post's charity is
// copied from the campaign so the chain stays consistent even if the campaign
// later changes hands.
func (s *postService) CreatePost(ctx context.Context, userGUID string, req dto.CreatePostRequest) (*dto.PostResponse, error) {
	if _, err := s.userRepo.FindUserByGUID(ctx, userGUID); err != nil {
		return nil, err
	}

	campaign, err := s.campaignRepo.FindCampaignByGUID(ctx, req.Campaign)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("campaign does not exist: %w", apperrors.ErrValidation)
		}
		return nil, err
	}

	now := time.Now().UTC()
	post := domain.Post{
		ObjectFields: domain.ObjectFields{
			GUID:         uuid.NewString(),
			DateCreated:  now,
			LastModified: now,
		},
		User:           userGUID,
		Campaign:       campaign.GUID,
		Charity:        campaign.Charity,
		Image:          req.Image,
		ShareableImage: req.ShareableImage,
		Caption:        req.Caption,
		Donations:      []string{},
	}

	if err := s.postRepo.SavePost(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	if _, err := s.userRepo.AppendPost(ctx, userGUID, post.GUID, now); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Post created but user list append failed",
			slog.String("post_id", post.GUID),
			slog.String("user_id", userGUID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to register post with user: %w", apperrors.ErrInternal)
	}

	resp := s.formatter.FormatPost(ctx, &post)
	return &resp, nil
}

func (s *postService) GetPost(ctx context.Context, guid string) (*dto.PostResponse, error) {
	post, err := s.postRepo.FindPostByGUID(ctx, guid)
	if err != nil {
		return nil, err
	}
	resp := s.formatter.FormatPost(ctx, post)
	return &resp, nil
}

func (s *postService) ListPosts(ctx context.Context, params dto.ListPostsParams) (*dto.ListPostsResponse, error) {
	filter := portsrepo.PostFilter{
		User:     params.User,
		Campaign: params.Campaign,
		Charity:  params.Charity,
	}
	posts, err := s.postRepo.FindPosts(ctx, filter, params.Limit, params.Offset)
	if err != nil {
		return nil, err
	}
	resp := dto.ListPostsResponse{Posts: make([]dto.PostResponse, 0, len(posts))}
	for i := range posts {
		resp.Posts = append(resp.Posts, s.formatter.FormatPost(ctx, &posts[i]))
	}
	return &resp, nil
}

func (s *postService) UpdatePost(ctx context.Context, userGUID string, guid string, req dto.UpdatePostRequest) (*dto.PostResponse, error) {
	post, err := s.postRepo.FindPostByGUID(ctx, guid)
	if err != nil {
		return nil, err
	}
	if post.User != userGUID {
		return nil, fmt.Errorf("only the author can edit a post: %w", apperrors.ErrForbidden)
	}

	if req.Caption != nil {
		post.Caption = *req.Caption
	}
	post.LastModified = time.Now().UTC()

	if err := s.postRepo.UpdatePost(ctx, *post); err != nil {
		return nil, fmt.Errorf("failed to update post %s: %w", guid, err)
	}
	resp := s.formatter.FormatPost(ctx, post)
	return &resp, nil
}
