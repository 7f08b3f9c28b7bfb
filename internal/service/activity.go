package service

import (
	"context"

	"github.com/RAM-73377/jobportaL/internal/model"
	"github.com/RAM-73377/jobportaL/internal/repository"
	"github.com/RAM-73377/jobportaL/internal/server"
)

type ActivityService struct {
	server *server.Server
	repo   repository.ActivityRepository
}

func NewActivityService(s *server.Server, repo repository.ActivityRepository) *ActivityService {
	return &ActivityService{
		server: s,
		repo:   repo,
	}
}

// List returns every activity newest first; never nil.
func (s *ActivityService) List(ctx context.Context) ([]model.RecentActivity, error) {
	activities, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if activities == nil {
		activities = []model.RecentActivity{}
	}
	return activities, nil
}

// Create inserts a validated payload.
func (s *ActivityService) Create(ctx context.Context, payload *model.CreateActivityPayload) (*model.RecentActivity, error) {
	return s.repo.Create(ctx, payload.Activity)
}

// Record validates raw activity text and inserts it. It serves the
// activity:record background task.
func (s *ActivityService) Record(ctx context.Context, activity string) error {
	payload := &model.CreateActivityPayload{Activity: activity}
	if err := payload.Validate(); err != nil {
		return err
	}

	created, err := s.Create(ctx, payload)
	if err != nil {
		return err
	}

	s.server.Logger.Debug().
		Int64("activity_id", created.ID).
		Msg("recorded background activity")
	return nil
}
