// Package service contains the business logic.
//
// It sits between the handler and repository layers: it receives
// validated payloads from the handlers and calls the repositories.
package service

import (
	"github.com/RAM-73377/jobportaL/internal/lib/job"
	"github.com/RAM-73377/jobportaL/internal/repository"
	"github.com/RAM-73377/jobportaL/internal/server"
)

type Services struct {
	Blog     *BlogService
	Stats    *StatsService
	Activity *ActivityService
	Job      *job.JobService
}

// NewServices builds every service over repos. Stats summaries are
// enqueued through s.Job when the dashboard enables it.
func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	var enqueuer ActivityEnqueuer
	if s.Job != nil {
		enqueuer = s.Job
	}

	return &Services{
		Blog:     NewBlogService(s, repos.BlogPosts),
		Stats:    NewStatsService(s, repos.JobStats, enqueuer),
		Activity: NewActivityService(s, repos.Activities),
		Job:      s.Job,
	}, nil
}
