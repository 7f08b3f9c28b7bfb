package model

import (
	"strings"
	"time"

	"github.com/RAM-73377/jobportaL/internal/validation"
)

// RecentActivity is a row of recent_activities.
type RecentActivity struct {
	ID        int64     `json:"id" db:"id"`
	Activity  string    `json:"activity" db:"activity"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
}

// ListActivitiesRequest is the (empty) payload of GET /activities/.
type ListActivitiesRequest struct{}

func (r *ListActivitiesRequest) Validate() error {
	return nil
}

// CreateActivityPayload is the payload of POST /activities/.
type CreateActivityPayload struct {
	Activity string `json:"activity" validate:"required"`
}

// Validate requires a non-blank activity and trims it in place.
func (p *CreateActivityPayload) Validate() error {
	if err := validate.Struct(p); err != nil {
		return err
	}

	p.Activity = strings.TrimSpace(p.Activity)
	if p.Activity == "" {
		return validation.CustomValidationErrors{
			{Field: "activity", Message: "must not be blank"},
		}
	}

	return nil
}
