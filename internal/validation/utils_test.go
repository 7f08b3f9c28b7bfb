package validation

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/RAM-73377/jobportaL/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testValidator = validator.New()

type counterPayload struct {
	Applied int32 `json:"applied"`
}

func (p *counterPayload) Validate() error { return nil }

// strictCount rejects null the way model.Counter does.
type strictCount int32

func (n *strictCount) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return &json.UnmarshalTypeError{Value: "null", Type: reflect.TypeOf(strictCount(0))}
	}
	var v int32
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*n = strictCount(v)
	return nil
}

type strictPayload struct {
	Count strictCount `json:"count"`
}

func (p *strictPayload) Validate() error { return nil }

type notePayload struct {
	Note  string `json:"note" validate:"required,max=5"`
	Level string `json:"level" validate:"omitempty,oneof=low high"`
}

func (p *notePayload) Validate() error { return testValidator.Struct(p) }

type blankPayload struct {
	Text string `json:"text"`
}

func (p *blankPayload) Validate() error {
	if strings.TrimSpace(p.Text) == "" {
		return CustomValidationErrors{{Field: "text", Message: "must not be blank"}}
	}
	return nil
}

type idPayload struct {
	ID int64 `param:"id" validate:"required,min=1"`
}

func (p *idPayload) Validate() error { return testValidator.Struct(p) }

func newContext(method, body string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	return e.NewContext(req, httptest.NewRecorder())
}

func requireHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T: %v", err, err)
	return httpErr
}

func TestBindAndValidate(t *testing.T) {
	t.Run("valid body", func(t *testing.T) {
		payload := &counterPayload{}
		err := BindAndValidate(newContext(http.MethodPost, `{"applied": 5}`), payload)

		require.NoError(t, err)
		assert.Equal(t, int32(5), payload.Applied)
	})

	t.Run("empty body keeps zero values", func(t *testing.T) {
		payload := &counterPayload{}
		err := BindAndValidate(newContext(http.MethodPost, ""), payload)

		require.NoError(t, err)
		assert.Equal(t, int32(0), payload.Applied)
	})

	t.Run("type mismatch names the field", func(t *testing.T) {
		err := BindAndValidate(newContext(http.MethodPost, `{"applied": "not-a-number"}`), &counterPayload{})

		httpErr := requireHTTPError(t, err)
		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
		assert.Equal(t, []errs.FieldError{{Field: "applied", Error: "must be a valid integer"}}, httpErr.Errors)
	})

	t.Run("fractional number", func(t *testing.T) {
		err := BindAndValidate(newContext(http.MethodPost, `{"applied": 1.5}`), &counterPayload{})

		httpErr := requireHTTPError(t, err)
		assert.Equal(t, "applied", httpErr.Errors[0].Field)
	})

	t.Run("out of range", func(t *testing.T) {
		err := BindAndValidate(newContext(http.MethodPost, `{"applied": 3000000000}`), &counterPayload{})

		httpErr := requireHTTPError(t, err)
		assert.Equal(t, "applied", httpErr.Errors[0].Field)
	})

	t.Run("null rejected by the field type", func(t *testing.T) {
		err := BindAndValidate(newContext(http.MethodPost, `{"count": null}`), &strictPayload{})

		httpErr := requireHTTPError(t, err)
		assert.Equal(t, []errs.FieldError{{Field: "count", Error: "may not be null"}}, httpErr.Errors)
	})

	t.Run("malformed json", func(t *testing.T) {
		err := BindAndValidate(newContext(http.MethodPost, `{"applied": `), &counterPayload{})

		httpErr := requireHTTPError(t, err)
		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	})

	t.Run("tag violations", func(t *testing.T) {
		err := BindAndValidate(newContext(http.MethodPost, `{"note": "far too long", "level": "medium"}`), &notePayload{})

		httpErr := requireHTTPError(t, err)
		assert.True(t, httpErr.Override)
		assert.Equal(t, map[string][]string{
			"note":  {"must not exceed 5 characters"},
			"level": {"must be one of: low high"},
		}, httpErr.Fields())
	})

	t.Run("required", func(t *testing.T) {
		err := BindAndValidate(newContext(http.MethodPost, ""), &notePayload{})

		httpErr := requireHTTPError(t, err)
		assert.Equal(t, []errs.FieldError{{Field: "note", Error: "is required"}}, httpErr.Errors)
	})

	t.Run("custom errors", func(t *testing.T) {
		err := BindAndValidate(newContext(http.MethodPost, `{"text": "   "}`), &blankPayload{})

		httpErr := requireHTTPError(t, err)
		assert.Equal(t, []errs.FieldError{{Field: "text", Error: "must not be blank"}}, httpErr.Errors)
	})

	t.Run("unsupported media type passes through", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("applied=5"))
		req.Header.Set(echo.HeaderContentType, "text/plain")
		c := e.NewContext(req, httptest.NewRecorder())

		err := BindAndValidate(c, &counterPayload{})

		var echoErr *echo.HTTPError
		require.True(t, errors.As(err, &echoErr))
		assert.Equal(t, http.StatusUnsupportedMediaType, echoErr.Code)
	})
}

func TestBindAndValidatePathParams(t *testing.T) {
	newParamContext := func(value string) echo.Context {
		c := newContext(http.MethodGet, "")
		c.SetParamNames("id")
		c.SetParamValues(value)
		return c
	}

	t.Run("valid", func(t *testing.T) {
		payload := &idPayload{}
		require.NoError(t, BindAndValidate(newParamContext("42"), payload))
		assert.Equal(t, int64(42), payload.ID)
	})

	t.Run("not a number", func(t *testing.T) {
		httpErr := requireHTTPError(t, BindAndValidate(newParamContext("abc"), &idPayload{}))

		assert.Equal(t, []errs.FieldError{{Field: "id", Error: "must be a valid integer"}}, httpErr.Errors)
	})

	t.Run("zero", func(t *testing.T) {
		httpErr := requireHTTPError(t, BindAndValidate(newParamContext("0"), &idPayload{}))

		assert.Equal(t, "id", httpErr.Errors[0].Field)
	})
}
