package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/journal-directory/internal/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTraceHandler() *Handler {
	return &Handler{logger: logger.Nop()}
}

func TestWithTraceID_GeneratesID(t *testing.T) {
	h := newTraceHandler()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/journals", nil)
	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)

	traceID := rr.Header().Get(traceIDHeader)
	require.NotEmpty(t, traceID)

	_, err := uuid.Parse(traceID)
	assert.NoError(t, err, "generated trace IDs are UUIDs")
}

func TestWithTraceID_EchoesIncomingID(t *testing.T) {
	h := newTraceHandler()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/api/journals", nil)
	req.Header.Set(traceIDHeader, "caller-supplied-id")
	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)

	assert.Equal(t, "caller-supplied-id", rr.Header().Get(traceIDHeader))
}

func TestWithTraceID_AttachesLoggerToContext(t *testing.T) {
	h := newTraceHandler()

	var sawLogger bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawLogger = logger.FromRequest(r) != nil
	})

	req := httptest.NewRequest(http.MethodGet, "/api/journals", nil)
	h.withTraceID(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.True(t, sawLogger)
}
