package repository

import (
	"context"
	"fmt"

	"github.com/RAM-73377/jobportaL/internal/model"
	"github.com/jackc/pgx/v5"
)

const (
	// id breaks ties between rows stamped in the same instant.
	listActivitiesSQL = `
		SELECT id, activity, timestamp
		FROM recent_activities
		ORDER BY timestamp DESC, id DESC`

	createActivitySQL = `
		INSERT INTO recent_activities (activity)
		VALUES ($1)
		RETURNING id, activity, timestamp`
)

type activityRepository struct {
	db DBTX
}

// NewActivityRepository returns a PostgreSQL ActivityRepository.
func NewActivityRepository(db DBTX) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) List(ctx context.Context) ([]model.RecentActivity, error) {
	rows, err := r.db.Query(ctx, listActivitiesSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent activities: %w", err)
	}

	activities, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.RecentActivity])
	if err != nil {
		return nil, fmt.Errorf("failed to collect recent activities: %w", err)
	}

	return activities, nil
}

func (r *activityRepository) Create(ctx context.Context, activity string) (*model.RecentActivity, error) {
	rows, err := r.db.Query(ctx, createActivitySQL, activity)
	if err != nil {
		return nil, fmt.Errorf("failed to insert recent activity: %w", err)
	}

	created, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[model.RecentActivity])
	if err != nil {
		return nil, fmt.Errorf("failed to collect inserted recent activity: %w", err)
	}

	return &created, nil
}
