package restapi

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"wayfare.openjourney.org/internal/logging"
)

func TestRequestLoggingMiddleware(t *testing.T) {
	t.Run("logs HTTP request details", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.NewStructuredLogger(&buf, slog.LevelInfo)

		testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("test response"))
		})

		middleware := NewRequestLoggingMiddleware(logger)
		handler := middleware(testHandler)

		req := httptest.NewRequest("GET", "/api/where/plan.json?key=test", nil)
		req.Header.Set("User-Agent", "test-client/1.0")

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "test response", recorder.Body.String())

		output := buf.String()
		assert.Contains(t, output, `"level":"INFO"`)
		assert.Contains(t, output, `"msg":"http_request"`)
		assert.Contains(t, output, `"method":"GET"`)
		assert.Contains(t, output, `"path":"/api/where/plan.json"`)
		assert.Contains(t, output, `"status":200`)
		assert.Contains(t, output, `"user_agent":"test-client/1.0"`)
		assert.Contains(t, output, `"duration_ms":`)
		assert.Contains(t, output, `"component":"http_server"`)
	})

	t.Run("captures non-default status codes", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.NewStructuredLogger(&buf, slog.LevelInfo)

		testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		middleware := NewRequestLoggingMiddleware(logger)
		handler := middleware(testHandler)

		req := httptest.NewRequest("GET", "/missing", nil)
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, req)

		assert.Contains(t, buf.String(), `"status":404`)
	})

	t.Run("makes the logger available via context", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.NewStructuredLogger(&buf, slog.LevelInfo)

		var fromCtx *slog.Logger
		testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fromCtx = logging.FromContext(r.Context())
		})

		middleware := NewRequestLoggingMiddleware(logger)
		handler := middleware(testHandler)

		req := httptest.NewRequest("GET", "/test", nil)
		handler.ServeHTTP(httptest.NewRecorder(), req)

		assert.Equal(t, logger, fromCtx)
	})
}
