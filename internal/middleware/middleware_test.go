package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectologger"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Team-gohypemedia/catalance-matching/internal/requestcontext"
)

func testLogger() ectologger.Logger {
	return ectologger.NewEctoLogger(func(_ ectologger.EctoLogMessage) {})
}

func TestContext(t *testing.T) {
	t.Run("propagates headers into the request context", func(t *testing.T) {
		e := echo.New()
		e.Use(Context())
		e.GET("/probe", func(c echo.Context) error {
			ctx := c.Request().Context()
			return c.JSON(http.StatusOK, map[string]string{
				"request_id": requestcontext.GetRequestID(ctx),
				"tenant_id":  requestcontext.GetTenantID(ctx),
				"route":      requestcontext.GetRoute(ctx),
			})
		})

		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set(echo.HeaderXRequestID, "req-123")
		req.Header.Set(HeaderTenantID, "tenant-1")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "req-123", body["request_id"])
		assert.Equal(t, "tenant-1", body["tenant_id"])
		assert.Equal(t, "/probe", body["route"])
	})

	t.Run("generates a request id when the header is absent", func(t *testing.T) {
		e := echo.New()
		e.Use(Context())
		e.GET("/probe", func(c echo.Context) error {
			return c.String(http.StatusOK, requestcontext.GetRequestID(c.Request().Context()))
		})

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/probe", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Body.String())
	})
}

func TestError(t *testing.T) {
	newServer := func(handler echo.HandlerFunc) *echo.Echo {
		e := echo.New()
		e.Use(Context())
		e.HTTPErrorHandler = Error(testLogger())
		e.GET("/fail", handler)
		return e
	}

	t.Run("echo http errors keep their status and message", func(t *testing.T) {
		e := newServer(func(c echo.Context) error {
			return echo.NewHTTPError(http.StatusNotFound, "not found")
		})

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", nil))

		require.Equal(t, http.StatusNotFound, rec.Code)
		var body ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "not found", body.Message)
	})

	t.Run("httperrors carry status, message and request id", func(t *testing.T) {
		e := newServer(func(c echo.Context) error {
			return httperror.NewHTTPError(http.StatusBadRequest, "invalid request body")
		})

		req := httptest.NewRequest(http.MethodGet, "/fail", nil)
		req.Header.Set(echo.HeaderXRequestID, "req-err-1")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		var body ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "invalid request body", body.Message)
		assert.Equal(t, "req-err-1", body.RequestID)
	})

	t.Run("unknown errors become 500", func(t *testing.T) {
		e := newServer(func(c echo.Context) error {
			return assert.AnError
		})

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestLogger(t *testing.T) {
	var logged []ectologger.EctoLogMessage
	logger := ectologger.NewEctoLogger(func(msg ectologger.EctoLogMessage) {
		logged = append(logged, msg)
	})

	e := echo.New()
	e.Use(Logger(logger))
	e.GET("/ok", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, logged)
}
