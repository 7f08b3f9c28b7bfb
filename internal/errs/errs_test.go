package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", MakeUpperCaseWithUnderscores("Bad Request"))
	assert.Equal(t, "NOT_FOUND", MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound)))
}

func TestNewBadRequestError(t *testing.T) {
	t.Run("default code", func(t *testing.T) {
		err := NewBadRequestError("Validation failed", true, nil, []FieldError{{Field: "activity", Error: "is required"}}, nil)

		assert.Equal(t, "BAD_REQUEST", err.Code)
		assert.Equal(t, http.StatusBadRequest, err.Status)
		assert.True(t, err.Override)
		assert.Equal(t, "Validation failed", err.Error())
	})

	t.Run("custom code", func(t *testing.T) {
		code := "JOB_STAT_INVALID"
		err := NewBadRequestError("bad", false, &code, nil, nil)

		assert.Equal(t, code, err.Code)
	})
}

func TestHTTPErrorFields(t *testing.T) {
	err := NewBadRequestError("Validation failed", true, nil, []FieldError{
		{Field: "activity", Error: "is required"},
		{Field: "applied", Error: "must be an integer"},
		{Field: "activity", Error: "must not be blank"},
	}, nil)

	assert.Equal(t, map[string][]string{
		"activity": {"is required", "must not be blank"},
		"applied":  {"must be an integer"},
	}, err.Fields())

	assert.Nil(t, NewInternalServerError().Fields())
}

func TestHTTPErrorIs(t *testing.T) {
	wrapped := fmt.Errorf("lookup: %w", NewNotFoundError("Blog Post not found", true, nil))

	assert.True(t, errors.Is(wrapped, &HTTPError{}))

	var httpErr *HTTPError
	assert.True(t, errors.As(wrapped, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
}

func TestWithMessage(t *testing.T) {
	base := NewInternalServerError()
	copied := base.WithMessage("database unavailable")

	assert.Equal(t, "database unavailable", copied.Message)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), base.Message)
	assert.Equal(t, base.Code, copied.Code)
}
