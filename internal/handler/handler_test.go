package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/RAM-73377/jobportaL/internal/config"
	"github.com/RAM-73377/jobportaL/internal/errs"
	"github.com/RAM-73377/jobportaL/internal/model"
	"github.com/RAM-73377/jobportaL/internal/repository/memory"
	"github.com/RAM-73377/jobportaL/internal/server"
	"github.com/RAM-73377/jobportaL/internal/service"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer() *server.Server {
	logger := zerolog.Nop()
	return &server.Server{
		Config: &config.Config{
			Primary:       config.Primary{Env: "test"},
			Observability: config.DefaultObservabilityConfig(),
		},
		Logger: &logger,
	}
}

func newContext(method, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func TestCreateStatsBuildsAFreshPayloadPerRequest(t *testing.T) {
	s := newTestServer()
	h := NewStatsHandler(s, service.NewStatsService(s, memory.NewJobStatsRepository(), nil))

	c, rec := newContext(http.MethodPost, `{"applied": 5, "offers": 1}`)
	require.NoError(t, h.CreateStats(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	c, rec = newContext(http.MethodPost, `{"applied": 2}`)
	require.NoError(t, h.CreateStats(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var second model.JobStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &second))
	assert.Equal(t, int32(2), second.Applied)
	assert.Equal(t, int32(0), second.Offers)
}

func TestHandleReturnsValidationErrors(t *testing.T) {
	s := newTestServer()
	repo := memory.NewActivityRepository(nil)
	h := NewActivityHandler(s, service.NewActivityService(s, repo))

	c, rec := newContext(http.MethodPost, `{"activity": "  "}`)
	err := h.CreateActivity(c)

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.False(t, c.Response().Committed)
	assert.Empty(t, rec.Body.String())
}

func TestGetPostReturnsStoreError(t *testing.T) {
	s := newTestServer()
	h := NewBlogHandler(s, service.NewBlogService(s, memory.NewBlogPostRepository(nil)))

	c, _ := newContext(http.MethodGet, "")
	c.SetParamNames("id")
	c.SetParamValues("7")

	assert.ErrorIs(t, h.GetPost(c), pgx.ErrNoRows)
}

func TestGetStatsRendersNull(t *testing.T) {
	s := newTestServer()
	h := NewStatsHandler(s, service.NewStatsService(s, memory.NewJobStatsRepository(), nil))

	c, rec := newContext(http.MethodGet, "")
	require.NoError(t, h.GetStats(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null", strings.TrimSpace(rec.Body.String()))
}

func TestServeOpenAPIUIMissingTemplate(t *testing.T) {
	h := NewOpenAPIHandler(newTestServer())

	c, _ := newContext(http.MethodGet, "")

	assert.ErrorContains(t, h.ServeOpenAPIUI(c), "failed to read OpenAPI UI template")
}

func TestCheckHealthDisabledChecks(t *testing.T) {
	s := newTestServer()
	s.Config.Observability.HealthChecks.Enabled = false
	h := NewHealthHandler(s)

	c, rec := newContext(http.MethodGet, "")
	require.NoError(t, h.CheckHealth(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "test", body["environment"])
}

func TestCheckHealthRedisIsAdvisory(t *testing.T) {
	s := newTestServer()
	s.Config.Observability.HealthChecks.Checks = []string{"redis"}
	h := NewHealthHandler(s)

	c, rec := newContext(http.MethodGet, "")
	require.NoError(t, h.CheckHealth(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Checks map[string]map[string]interface{} `json:"checks"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "unhealthy", body.Checks["redis"]["status"])
}
