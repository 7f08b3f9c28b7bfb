package service

import (
	"context"

	"github.com/RAM-73377/jobportaL/internal/model"
	"github.com/RAM-73377/jobportaL/internal/repository"
	"github.com/RAM-73377/jobportaL/internal/server"
)

type BlogService struct {
	server *server.Server
	repo   repository.BlogPostRepository
}

func NewBlogService(s *server.Server, repo repository.BlogPostRepository) *BlogService {
	return &BlogService{
		server: s,
		repo:   repo,
	}
}

// List returns every post; an empty store yields an empty, non-nil slice.
func (s *BlogService) List(ctx context.Context) ([]model.BlogPost, error) {
	posts, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []model.BlogPost{}
	}
	return posts, nil
}

func (s *BlogService) GetByID(ctx context.Context, id int64) (*model.BlogPost, error) {
	return s.repo.GetByID(ctx, id)
}

// Create validates and inserts a post. Posts have no HTTP create endpoint;
// the CLI authors them.
func (s *BlogService) Create(ctx context.Context, payload *model.CreateBlogPostPayload) (*model.BlogPost, error) {
	if err := payload.Validate(); err != nil {
		return nil, err
	}

	post, err := s.repo.Create(ctx, payload)
	if err != nil {
		return nil, err
	}

	s.server.Logger.Info().
		Int64("blog_post_id", post.ID).
		Str("title", post.Title).
		Msg("blog post created")

	return post, nil
}
