package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkovalev/running-log/internal/logger"
)

func executeWithTraceID(h *Handler, incomingTraceID string) *httptest.ResponseRecorder {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if incomingTraceID != "" {
		req.Header.Set(traceIDHeader, incomingTraceID)
	}

	rec := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rec, req)
	return rec
}

func TestWithTraceID_ReusesIncomingHeader(t *testing.T) {
	h := newTestHandler(t, nil, nil, nil)

	rec := executeWithTraceID(h, "my-custom-trace-id")

	assert.Equal(t, "my-custom-trace-id", rec.Header().Get(traceIDHeader))
}

func TestWithTraceID_GeneratesUUIDWhenAbsent(t *testing.T) {
	h := newTestHandler(t, nil, nil, nil)

	rec := executeWithTraceID(h, "")

	id := rec.Header().Get(traceIDHeader)
	require.NotEmpty(t, id)
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
}

func TestWithTraceID_LoggerAvailableInContext(t *testing.T) {
	h := newTestHandler(t, nil, nil, nil)

	var ctxLogger *logger.Logger
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxLogger = logger.FromRequest(r)
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rec, req)

	require.NotNil(t, ctxLogger)
}
