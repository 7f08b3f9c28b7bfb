package handler

import (
	"net/http"

	"github.com/RAM-73377/jobportaL/internal/model"
	"github.com/RAM-73377/jobportaL/internal/server"
	"github.com/RAM-73377/jobportaL/internal/service"
	"github.com/labstack/echo/v4"
)

type StatsHandler struct {
	Handler
	statsService *service.StatsService
}

func NewStatsHandler(s *server.Server, statsService *service.StatsService) *StatsHandler {
	return &StatsHandler{
		Handler:      NewHandler(s),
		statsService: statsService,
	}
}

// GetStats serves GET /stats/. An empty store renders as null.
func (h *StatsHandler) GetStats(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, _ *model.GetJobStatsRequest) (*model.JobStats, error) {
			return h.statsService.Get(c.Request().Context())
		},
		http.StatusOK,
		&model.GetJobStatsRequest{},
	)(c)
}

// CreateStats serves POST /stats/.
func (h *StatsHandler) CreateStats(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.CreateJobStatsPayload) (*model.JobStats, error) {
			return h.statsService.Create(c.Request().Context(), payload)
		},
		http.StatusCreated,
		&model.CreateJobStatsPayload{},
	)(c)
}
