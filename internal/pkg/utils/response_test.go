package utils

import (
	"context"
	"dentalclinic-service/internal/pkg/exceptions"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBuildSuccessResponse(t *testing.T) {
	rr := httptest.NewRecorder()

	BuildSuccessResponse(rr, http.StatusOK, "ok", map[string]int{"total": 2})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"success":true,"message":"ok","data":{"total":2}}`, rr.Body.String())
}

func TestBuildFileResponse(t *testing.T) {
	rr := httptest.NewRecorder()

	BuildFileResponse(rr, "text/csv; charset=utf-8", "billings_2025-01-15.csv", []byte("Patient\n"))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, `attachment; filename="billings_2025-01-15.csv"`, rr.Header().Get("Content-Disposition"))
	assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "Patient\n", rr.Body.String())
}

func TestBuildErrorResponse(t *testing.T) {
	log := zap.NewNop()

	t.Run("Custom error outside production carries dev details", func(t *testing.T) {
		t.Setenv("APP_ENV", "development")
		rr := httptest.NewRecorder()

		BuildErrorResponse(log, rr, exceptions.ErrUnsupportedExportFormat("xml"))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		var body exceptions.CustomError
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.False(t, body.Success)
		assert.Equal(t, http.StatusBadRequest, body.StatusCode)
		assert.NotEmpty(t, body.DevMessage)
		assert.NotEmpty(t, body.Locations)
	})

	t.Run("Production hides dev details", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		rr := httptest.NewRecorder()

		BuildErrorResponse(log, rr, exceptions.ErrServerDeadlineExceeded(context.DeadlineExceeded))

		assert.Equal(t, http.StatusGatewayTimeout, rr.Code)
		assert.NotContains(t, rr.Body.String(), "dev_message")
		assert.NotContains(t, rr.Body.String(), "locations")
	})

	t.Run("Plain errors become internal server errors", func(t *testing.T) {
		rr := httptest.NewRecorder()

		BuildErrorResponse(log, rr, errors.New("boom"))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.NotContains(t, rr.Body.String(), "boom")
	})
}

func TestBuildHTMLErrorResponse(t *testing.T) {
	rr := httptest.NewRecorder()

	BuildHTMLErrorResponse(zap.NewNop(), rr, exceptions.ErrRenderPage(errors.New("template: missing"), "home"))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.NotContains(t, rr.Body.String(), "template")
}
