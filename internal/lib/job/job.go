// Package job provides background job processing using asynq.
//
// Tasks are enqueued into Redis with an asynq.Client and consumed by an
// asynq.Server running in the same process.
package job

import (
	"context"
	"fmt"

	"github.com/RAM-73377/jobportaL/internal/config"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// JobService holds the asynq client (enqueue) and server (workers).
type JobService struct {
	Client *asynq.Client

	server     *asynq.Server
	logger     *zerolog.Logger
	activities ActivityRecorder
}

// NewJobService creates a JobService backed by the configured Redis.
//
// Workers are shared across queues by weight: critical 6, default 3, low 1.
func NewJobService(logger *zerolog.Logger, cfg *config.Config) *JobService {
	redisOpt := asynq.RedisClientOpt{Addr: cfg.Redis.Address}

	client := asynq.NewClient(redisOpt)

	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"critical": 6,
				"default":  3,
				"low":      1,
			},
		},
	)

	return &JobService{
		Client: client,
		server: server,
		logger: logger,
	}
}

// Mux routes each task type to its handler.
func (j *JobService) Mux() *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskRecordActivity, j.handleRecordActivityTask)
	return mux
}

// Start starts the worker pool. It does not block.
func (j *JobService) Start() error {
	j.logger.Info().Msg("Starting background job server")

	if err := j.server.Start(j.Mux()); err != nil {
		return fmt.Errorf("failed to start job server: %w", err)
	}
	return nil
}

// EnqueueActivity schedules a TaskRecordActivity for activity.
func (j *JobService) EnqueueActivity(ctx context.Context, activity string) error {
	task, err := NewRecordActivityTask(activity)
	if err != nil {
		return fmt.Errorf("failed to build record activity task: %w", err)
	}

	info, err := j.Client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to enqueue record activity task: %w", err)
	}

	j.logger.Debug().
		Str("task_id", info.ID).
		Str("queue", info.Queue).
		Msg("Enqueued record activity task")
	return nil
}

// Stop shuts the workers down and closes the client.
func (j *JobService) Stop() {
	j.logger.Info().Msg("Stopping background job server")
	j.server.Shutdown()
	if err := j.Client.Close(); err != nil {
		j.logger.Error().Err(err).Msg("Failed to close job client")
	}
}
