package repository

import (
	"context"
	"fmt"

	"github.com/RAM-73377/jobportaL/internal/model"
	"github.com/jackc/pgx/v5"
)

const (
	// Rows accumulate; the "current" stats are the oldest row.
	firstJobStatsSQL = `
		SELECT id, applied, interviews, offers, rejected, pending
		FROM job_stats
		ORDER BY id
		LIMIT 1`

	createJobStatsSQL = `
		INSERT INTO job_stats (applied, interviews, offers, rejected, pending)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, applied, interviews, offers, rejected, pending`
)

type jobStatsRepository struct {
	db DBTX
}

// NewJobStatsRepository returns a PostgreSQL JobStatsRepository.
func NewJobStatsRepository(db DBTX) JobStatsRepository {
	return &jobStatsRepository{db: db}
}

func (r *jobStatsRepository) First(ctx context.Context) (*model.JobStats, error) {
	rows, err := r.db.Query(ctx, firstJobStatsSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to query job stats: %w", err)
	}

	stats, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[model.JobStats])
	if err != nil {
		return nil, fmt.Errorf("failed to collect job stats: %w", err)
	}

	return &stats, nil
}

func (r *jobStatsRepository) Create(ctx context.Context, payload *model.CreateJobStatsPayload) (*model.JobStats, error) {
	rows, err := r.db.Query(ctx, createJobStatsSQL,
		int32(payload.Applied),
		int32(payload.Interviews),
		int32(payload.Offers),
		int32(payload.Rejected),
		int32(payload.Pending),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert job stats: %w", err)
	}

	stats, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[model.JobStats])
	if err != nil {
		return nil, fmt.Errorf("failed to collect inserted job stats: %w", err)
	}

	return &stats, nil
}
