package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/RAM-73377/jobportaL/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T", err)
	return httpErr
}

func TestHandleErrorNoRows(t *testing.T) {
	t.Run("named table", func(t *testing.T) {
		err := HandleError(NotFound("blog_posts", pgx.ErrNoRows))

		httpErr := asHTTPError(t, err)
		assert.Equal(t, http.StatusNotFound, httpErr.Status)
		assert.Equal(t, "NOT_FOUND", httpErr.Code)
		assert.Equal(t, "Blog Post not found", httpErr.Message)
		assert.True(t, httpErr.Override)
	})

	t.Run("plural ies table", func(t *testing.T) {
		err := HandleError(NotFound("recent_activities", sql.ErrNoRows))

		assert.Equal(t, "Recent Activity not found", asHTTPError(t, err).Message)
	})

	t.Run("bare", func(t *testing.T) {
		err := HandleError(fmt.Errorf("lookup: %w", pgx.ErrNoRows))

		httpErr := asHTTPError(t, err)
		assert.Equal(t, http.StatusNotFound, httpErr.Status)
		assert.Equal(t, "Resource not found", httpErr.Message)
	})
}

func TestHandleErrorPgError(t *testing.T) {
	tests := []struct {
		name    string
		pgErr   *pgconn.PgError
		status  int
		code    string
		message string
	}{
		{
			name:    "not null",
			pgErr:   &pgconn.PgError{Code: "23502", Severity: "ERROR", TableName: "recent_activities", ColumnName: "activity"},
			status:  http.StatusBadRequest,
			code:    "RECENT_ACTIVITY_REQUIRED",
			message: "The Activity is required",
		},
		{
			name:    "unique with key constraint",
			pgErr:   &pgconn.PgError{Code: "23505", Severity: "ERROR", TableName: "blog_posts", ConstraintName: "blog_posts_title_key"},
			status:  http.StatusBadRequest,
			code:    "BLOG_POST_ALREADY_EXISTS",
			message: "A Blog Post with this Title already exists",
		},
		{
			name:    "string too long",
			pgErr:   &pgconn.PgError{Code: "22001", Severity: "ERROR", TableName: "blog_posts"},
			status:  http.StatusBadRequest,
			code:    "BLOG_POST_INVALID",
			message: "One or more values are too long",
		},
		{
			name:    "undefined table",
			pgErr:   &pgconn.PgError{Code: "42P01", Severity: "ERROR"},
			status:  http.StatusInternalServerError,
			code:    "INTERNAL_SERVER_ERROR",
			message: "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := asHTTPError(t, HandleError(fmt.Errorf("insert: %w", tt.pgErr)))

			assert.Equal(t, tt.status, httpErr.Status)
			assert.Equal(t, tt.code, httpErr.Code)
			assert.Equal(t, tt.message, httpErr.Message)
		})
	}
}

func TestHandleErrorPassesHTTPErrorThrough(t *testing.T) {
	original := errs.NewBadRequestError("Validation failed", true, nil, nil, nil)

	assert.Same(t, original, HandleError(original))
}

func TestHandleErrorUnknown(t *testing.T) {
	httpErr := asHTTPError(t, HandleError(errors.New("connection reset by peer")))

	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
}

func TestConvertPgError(t *testing.T) {
	converted := ConvertPgError(&pgconn.PgError{Code: "23505", Severity: "ERROR", TableName: "blog_posts"})

	assert.Equal(t, UniqueViolation, converted.Code)
	assert.Equal(t, SeverityError, converted.Severity)
	assert.Equal(t, "blog_posts", converted.TableName)
}

func TestSingular(t *testing.T) {
	assert.Equal(t, "blog_post", singular("blog_posts"))
	assert.Equal(t, "recent_activity", singular("recent_activities"))
	assert.Equal(t, "job_stat", singular("job_stats"))
	assert.Equal(t, "s", singular("s"))
}
