package handler

import (
	"net/http"

	"github.com/RAM-73377/jobportaL/internal/model"
	"github.com/RAM-73377/jobportaL/internal/server"
	"github.com/RAM-73377/jobportaL/internal/service"
	"github.com/labstack/echo/v4"
)

type ActivityHandler struct {
	Handler
	activityService *service.ActivityService
}

func NewActivityHandler(s *server.Server, activityService *service.ActivityService) *ActivityHandler {
	return &ActivityHandler{
		Handler:         NewHandler(s),
		activityService: activityService,
	}
}

// ListActivities serves GET /activities/.
func (h *ActivityHandler) ListActivities(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, _ *model.ListActivitiesRequest) ([]model.RecentActivity, error) {
			return h.activityService.List(c.Request().Context())
		},
		http.StatusOK,
		&model.ListActivitiesRequest{},
	)(c)
}

// CreateActivity serves POST /activities/.
func (h *ActivityHandler) CreateActivity(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.CreateActivityPayload) (*model.RecentActivity, error) {
			return h.activityService.Create(c.Request().Context(), payload)
		},
		http.StatusCreated,
		&model.CreateActivityPayload{},
	)(c)
}
