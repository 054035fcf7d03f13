package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ryotaki/karuta-api/internal/api/middleware"
	"github.com/ryotaki/karuta-api/internal/api/shared"
	"github.com/ryotaki/karuta-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceMiddleware(t *testing.T) {
	var seenTraceID string
	var hadLogger bool

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenTraceID = shared.GetTraceID(r.Context())
		hadLogger = logger.FromContext(r.Context()) != nil
		w.WriteHeader(http.StatusOK)
	})

	handler := middleware.TraceMiddleware(inner)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/deck/names", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, seenTraceID, "handler should see a trace ID in its context")
	assert.True(t, hadLogger, "handler should see a trace-scoped logger in its context")

	// A second request gets a fresh trace ID.
	first := seenTraceID
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/deck/names", nil))
	assert.NotEqual(t, first, seenTraceID)
}
