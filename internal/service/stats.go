package service

import (
	"context"
	"errors"

	"github.com/RAM-73377/jobportaL/internal/model"
	"github.com/RAM-73377/jobportaL/internal/repository"
	"github.com/RAM-73377/jobportaL/internal/server"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// ActivityEnqueuer schedules a recent activity for the background worker.
type ActivityEnqueuer interface {
	EnqueueActivity(ctx context.Context, activity string) error
}

type StatsService struct {
	server   *server.Server
	repo     repository.JobStatsRepository
	enqueuer ActivityEnqueuer
}

func NewStatsService(s *server.Server, repo repository.JobStatsRepository, enqueuer ActivityEnqueuer) *StatsService {
	return &StatsService{
		server:   s,
		repo:     repo,
		enqueuer: enqueuer,
	}
}

// Get returns the oldest stats row, or nil when none exists.
func (s *StatsService) Get(ctx context.Context) (*model.JobStats, error) {
	stats, err := s.repo.First(ctx)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// Create always inserts a new row; existing rows are never updated.
func (s *StatsService) Create(ctx context.Context, payload *model.CreateJobStatsPayload) (*model.JobStats, error) {
	stats, err := s.repo.Create(ctx, payload)
	if err != nil {
		return nil, err
	}

	if s.server.Config.Dashboard.StatsActivity && s.enqueuer != nil {
		// The row is already stored; a queue failure must not fail the request.
		if err := s.enqueuer.EnqueueActivity(ctx, stats.Summary()); err != nil {
			zerolog.Ctx(ctx).Error().
				Err(err).
				Int64("job_stats_id", stats.ID).
				Msg("failed to enqueue job stats activity")
		}
	}

	return stats, nil
}
