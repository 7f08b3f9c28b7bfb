package job

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

// TaskRecordActivity is the task type that appends a recent activity.
const TaskRecordActivity = "activity:record"

// RecordActivityPayload is the JSON payload of a TaskRecordActivity task.
type RecordActivityPayload struct {
	Activity string `json:"activity"`
}

// NewRecordActivityTask builds a task that retries up to 3 times on the
// default queue and is killed after 30 seconds.
func NewRecordActivityTask(activity string) (*asynq.Task, error) {
	payload, err := json.Marshal(RecordActivityPayload{Activity: activity})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskRecordActivity,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}
