package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/RAM-73377/jobportaL/internal/model"
	"github.com/RAM-73377/jobportaL/internal/sqlerr"
	"github.com/jackc/pgx/v5"
)

const blogPostsTable = "blog_posts"

const (
	listBlogPostsSQL = `
		SELECT id, title, description, content, date
		FROM blog_posts
		ORDER BY id`

	getBlogPostSQL = `
		SELECT id, title, description, content, date
		FROM blog_posts
		WHERE id = $1`

	createBlogPostSQL = `
		INSERT INTO blog_posts (title, description, content)
		VALUES ($1, $2, $3)
		RETURNING id, title, description, content, date`
)

type blogPostRepository struct {
	db DBTX
}

// NewBlogPostRepository returns a PostgreSQL BlogPostRepository.
func NewBlogPostRepository(db DBTX) BlogPostRepository {
	return &blogPostRepository{db: db}
}

func (r *blogPostRepository) List(ctx context.Context) ([]model.BlogPost, error) {
	rows, err := r.db.Query(ctx, listBlogPostsSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to query blog posts: %w", err)
	}

	posts, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.BlogPost])
	if err != nil {
		return nil, fmt.Errorf("failed to collect blog posts: %w", err)
	}

	return posts, nil
}

func (r *blogPostRepository) GetByID(ctx context.Context, id int64) (*model.BlogPost, error) {
	rows, err := r.db.Query(ctx, getBlogPostSQL, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query blog post %d: %w", id, err)
	}

	post, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[model.BlogPost])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sqlerr.NotFound(blogPostsTable, err)
		}
		return nil, fmt.Errorf("failed to collect blog post %d: %w", id, err)
	}

	return &post, nil
}

func (r *blogPostRepository) Create(ctx context.Context, payload *model.CreateBlogPostPayload) (*model.BlogPost, error) {
	rows, err := r.db.Query(ctx, createBlogPostSQL, payload.Title, payload.Description, payload.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to insert blog post: %w", err)
	}

	post, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[model.BlogPost])
	if err != nil {
		return nil, fmt.Errorf("failed to collect inserted blog post: %w", err)
	}

	return &post, nil
}
