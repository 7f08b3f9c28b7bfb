package job

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/RAM-73377/jobportaL/internal/validation"
	"github.com/go-playground/validator/v10"
	"github.com/hibiken/asynq"
)

// ActivityRecorder persists activity text produced by background tasks.
type ActivityRecorder interface {
	Record(ctx context.Context, activity string) error
}

// InitHandlers wires the dependencies task handlers need. It must run
// before Start.
func (j *JobService) InitHandlers(activities ActivityRecorder) {
	j.activities = activities
}

func (j *JobService) handleRecordActivityTask(ctx context.Context, t *asynq.Task) error {
	var p RecordActivityPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		// Retrying cannot fix a malformed payload.
		return fmt.Errorf("failed to unmarshal record activity payload: %v: %w", err, asynq.SkipRetry)
	}

	if j.activities == nil {
		return fmt.Errorf("activity recorder not initialized")
	}

	j.logger.Info().
		Str("type", TaskRecordActivity).
		Str("activity", p.Activity).
		Msg("Processing record activity task")

	if err := j.activities.Record(ctx, p.Activity); err != nil {
		j.logger.Error().
			Str("type", TaskRecordActivity).
			Err(err).
			Msg("Failed to record activity")
		if isInvalidActivity(err) {
			return fmt.Errorf("invalid activity: %w: %w", err, asynq.SkipRetry)
		}
		return err
	}

	return nil
}

// isInvalidActivity reports whether err rejects the activity text itself.
func isInvalidActivity(err error) bool {
	var custom validation.CustomValidationErrors
	var tagged validator.ValidationErrors
	return errors.As(err, &custom) || errors.As(err, &tagged)
}
