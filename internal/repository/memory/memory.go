// Package memory provides in-memory implementations of the repository
// interfaces. They mirror the PostgreSQL ordering and not-found semantics
// and are used by service and handler tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/RAM-73377/jobportaL/internal/model"
	"github.com/RAM-73377/jobportaL/internal/repository"
	"github.com/RAM-73377/jobportaL/internal/sqlerr"
	"github.com/jackc/pgx/v5"
)

// Clock stamps created rows.
type Clock func() time.Time

// NewRepositories returns a container backed by fresh in-memory stores.
func NewRepositories(clock Clock) *repository.Repositories {
	if clock == nil {
		clock = time.Now
	}
	return &repository.Repositories{
		BlogPosts:  NewBlogPostRepository(clock),
		JobStats:   NewJobStatsRepository(),
		Activities: NewActivityRepository(clock),
	}
}

type BlogPostRepository struct {
	mu     sync.RWMutex
	clock  Clock
	nextID int64
	posts  []model.BlogPost
}

func NewBlogPostRepository(clock Clock) *BlogPostRepository {
	return &BlogPostRepository{clock: clock, nextID: 1}
}

func (r *BlogPostRepository) List(_ context.Context) ([]model.BlogPost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.BlogPost, len(r.posts))
	copy(out, r.posts)
	return out, nil
}

func (r *BlogPostRepository) GetByID(_ context.Context, id int64) (*model.BlogPost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, post := range r.posts {
		if post.ID == id {
			return &post, nil
		}
	}
	return nil, sqlerr.NotFound("blog_posts", pgx.ErrNoRows)
}

func (r *BlogPostRepository) Create(_ context.Context, payload *model.CreateBlogPostPayload) (*model.BlogPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	post := model.BlogPost{
		ID:          r.nextID,
		Title:       payload.Title,
		Description: payload.Description,
		Content:     payload.Content,
		Date:        r.clock(),
	}
	r.nextID++
	r.posts = append(r.posts, post)
	return &post, nil
}

type JobStatsRepository struct {
	mu     sync.RWMutex
	nextID int64
	rows   []model.JobStats
}

func NewJobStatsRepository() *JobStatsRepository {
	return &JobStatsRepository{nextID: 1}
}

func (r *JobStatsRepository) First(_ context.Context) (*model.JobStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.rows) == 0 {
		return nil, pgx.ErrNoRows
	}
	first := r.rows[0]
	return &first, nil
}

func (r *JobStatsRepository) Create(_ context.Context, payload *model.CreateJobStatsPayload) (*model.JobStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats := model.JobStats{
		ID:         r.nextID,
		Applied:    int32(payload.Applied),
		Interviews: int32(payload.Interviews),
		Offers:     int32(payload.Offers),
		Rejected:   int32(payload.Rejected),
		Pending:    int32(payload.Pending),
	}
	r.nextID++
	r.rows = append(r.rows, stats)
	return &stats, nil
}

// Len reports how many rows have been stored.
func (r *JobStatsRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rows)
}

type ActivityRepository struct {
	mu         sync.RWMutex
	clock      Clock
	nextID     int64
	activities []model.RecentActivity
}

func NewActivityRepository(clock Clock) *ActivityRepository {
	return &ActivityRepository{clock: clock, nextID: 1}
}

func (r *ActivityRepository) List(_ context.Context) ([]model.RecentActivity, error) {
	r.mu.RLock()
	out := make([]model.RecentActivity, len(r.activities))
	copy(out, r.activities)
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Timestamp.Equal(out[j].Timestamp) {
			return out[i].Timestamp.After(out[j].Timestamp)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *ActivityRepository) Create(_ context.Context, activity string) (*model.RecentActivity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := model.RecentActivity{
		ID:        r.nextID,
		Activity:  activity,
		Timestamp: r.clock(),
	}
	r.nextID++
	r.activities = append(r.activities, created)
	return &created, nil
}

var (
	_ repository.BlogPostRepository = (*BlogPostRepository)(nil)
	_ repository.JobStatsRepository = (*JobStatsRepository)(nil)
	_ repository.ActivityRepository = (*ActivityRepository)(nil)
)
