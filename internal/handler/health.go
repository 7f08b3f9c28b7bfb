package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/RAM-73377/jobportaL/internal/config"
	"github.com/RAM-73377/jobportaL/internal/middleware"
	"github.com/RAM-73377/jobportaL/internal/server"
	"github.com/labstack/echo/v4"
)

// HealthHandler serves /status.
//
// A database failure makes the service unhealthy (503). Redis only backs
// the optional activity queue, so its failure is reported but the
// response stays 200.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

type checkResult map[string]interface{}

func (h *HealthHandler) observability() *config.ObservabilityConfig {
	if h.server.Config.Observability != nil {
		return h.server.Config.Observability
	}
	return config.DefaultObservabilityConfig()
}

func (h *HealthHandler) pingDatabase(ctx context.Context) error {
	if h.server.DB == nil {
		return errors.New("database not initialized")
	}
	return h.server.DB.Ping(ctx)
}

func (h *HealthHandler) pingRedis(ctx context.Context) error {
	if h.server.Redis == nil {
		return errors.New("redis not initialized")
	}
	return h.server.Redis.Ping(ctx).Err()
}

// probe runs ping under the configured timeout and records a
// HealthCheckError event in New Relic on failure.
func (h *HealthHandler) probe(c echo.Context, name string, ping func(context.Context) error) (checkResult, bool) {
	obs := h.observability()
	logger := middleware.GetLogger(c)

	ctx, cancel := context.WithTimeout(c.Request().Context(), obs.HealthChecks.Timeout)
	defer cancel()

	start := time.Now()
	err := ping(ctx)
	elapsed := time.Since(start)

	if err != nil {
		logger.Error().
			Err(err).
			Str("check", name).
			Dur("response_time", elapsed).
			Msg("health check failed")

		if h.server.LoggerService != nil && h.server.LoggerService.GetApplication() != nil {
			h.server.LoggerService.GetApplication().RecordCustomEvent("HealthCheckError", map[string]interface{}{
				"check_type":       name,
				"operation":        "health_check",
				"error_type":       name + "_unhealthy",
				"response_time_ms": elapsed.Milliseconds(),
				"error_message":    err.Error(),
			})
		}

		return checkResult{
			"status":        "unhealthy",
			"response_time": elapsed.String(),
			"error":         err.Error(),
		}, false
	}

	logger.Debug().
		Str("check", name).
		Dur("response_time", elapsed).
		Msg("health check passed")

	return checkResult{
		"status":        "healthy",
		"response_time": elapsed.String(),
	}, true
}

// CheckHealth serves GET /status.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	obs := h.observability()
	checks := make(map[string]checkResult)
	healthy := true

	if obs.HealthCheckEnabled("database") {
		result, ok := h.probe(c, "database", h.pingDatabase)
		checks["database"] = result
		healthy = healthy && ok
	}

	if obs.HealthCheckEnabled("redis") {
		result, _ := h.probe(c, "redis", h.pingRedis)
		checks["redis"] = result
	}

	response := map[string]interface{}{
		"status":      "healthy",
		"service":     obs.ServiceName,
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks":      checks,
	}

	if !healthy {
		response["status"] = "unhealthy"
		return c.JSON(http.StatusServiceUnavailable, response)
	}

	return c.JSON(http.StatusOK, response)
}
