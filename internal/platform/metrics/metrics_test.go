package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveRequestShowsUpInExposition(t *testing.T) {
	m := NewRegistry()

	m.ObserveRequest(http.MethodGet, "/tasks", http.StatusOK, 5*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "/tasks", http.StatusOK, 3*time.Millisecond)
	m.ObserveRequest(http.MethodPost, "/tasks", http.StatusCreated, 7*time.Millisecond)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, `http_requests_total{code="200",method="GET",route="/tasks"} 2`)
	assert.Contains(t, body, `http_requests_total{code="201",method="POST",route="/tasks"} 1`)
	assert.Contains(t, body, "http_request_duration_seconds_bucket")
}

func TestRegistryIncludesRuntimeCollectors(t *testing.T) {
	m := NewRegistry()

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, req)

	assert.Contains(t, rr.Body.String(), "go_goroutines")
}
