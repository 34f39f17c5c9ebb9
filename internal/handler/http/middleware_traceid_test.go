package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTraceID_GeneratesTraceID(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, &mockUserService{})

	var called bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	h.withTraceID(next).ServeHTTP(rec, req)

	require.True(t, called)
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

func TestWithTraceID_PropagatesInboundTraceID(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, &mockUserService{})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "trace-from-upstream")
	rec := httptest.NewRecorder()

	h.withTraceID(next).ServeHTTP(rec, req)

	assert.Equal(t, "trace-from-upstream", rec.Header().Get(traceIDHeader))
}
