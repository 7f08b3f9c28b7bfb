// Package repository handles all interactions with the database.
//
// It contains the raw SQL for each table and returns model records,
// keeping SQL away from the service layer. Every repository is defined
// by an interface so services can be exercised against the in-memory
// implementations in repository/memory.
package repository

import (
	"context"

	"github.com/RAM-73377/jobportaL/internal/model"
	"github.com/RAM-73377/jobportaL/internal/server"
	"github.com/jackc/pgx/v5"
)

// DBTX is the subset of *pgxpool.Pool the repositories use.
type DBTX interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// BlogPostRepository stores rows of blog_posts.
type BlogPostRepository interface {
	List(ctx context.Context) ([]model.BlogPost, error)
	GetByID(ctx context.Context, id int64) (*model.BlogPost, error)
	Create(ctx context.Context, payload *model.CreateBlogPostPayload) (*model.BlogPost, error)
}

// JobStatsRepository stores rows of job_stats.
type JobStatsRepository interface {
	// First returns the row with the lowest id, or pgx.ErrNoRows.
	First(ctx context.Context) (*model.JobStats, error)
	Create(ctx context.Context, payload *model.CreateJobStatsPayload) (*model.JobStats, error)
}

// ActivityRepository stores rows of recent_activities.
type ActivityRepository interface {
	// List returns every row, newest first.
	List(ctx context.Context) ([]model.RecentActivity, error)
	Create(ctx context.Context, activity string) (*model.RecentActivity, error)
}

// Repositories is a container for all repository instances.
type Repositories struct {
	BlogPosts  BlogPostRepository
	JobStats   JobStatsRepository
	Activities ActivityRepository
}

// NewRepositories builds the PostgreSQL repositories over the server's pool.
func NewRepositories(s *server.Server) *Repositories {
	return NewPostgresRepositories(s.DB.Pool)
}

// NewPostgresRepositories builds the PostgreSQL repositories over any DBTX.
func NewPostgresRepositories(db DBTX) *Repositories {
	return &Repositories{
		BlogPosts:  NewBlogPostRepository(db),
		JobStats:   NewJobStatsRepository(db),
		Activities: NewActivityRepository(db),
	}
}
