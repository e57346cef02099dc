package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockPinger is a configurable Pinger for readiness tests.
type MockPinger struct {
	pingErr error
	calls   int
}

func (m *MockPinger) Ping(ctx context.Context) error {
	m.calls++
	if _, ok := ctx.Deadline(); !ok {
		return errors.New("expected ping to carry a deadline")
	}
	return m.pingErr
}

// setupHealthRouter registers the health routes for handler on a test router.
func setupHealthRouter(handler *HealthHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/health", handler.Health)
	router.GET("/health/ready", handler.Ready)
	router.GET("/api/v1/info", handler.Info)
	return router
}

func TestHealthHandler_Health(t *testing.T) {
	pinger := &MockPinger{pingErr: errors.New("down")}
	router := setupHealthRouter(NewHealthHandler(pinger, "test", "memory"))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// Liveness never consults the store.
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Zero(t, pinger.calls)

	var response HealthResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, HealthResponse{Status: "healthy"}, response)
}

func TestHealthHandler_Ready(t *testing.T) {
	tests := []struct {
		name           string
		pingErr        error
		expectedStatus int
		expectedBody   ReadyResponse
	}{
		{
			name:           "returns 200 when the store answers",
			expectedStatus: http.StatusOK,
			expectedBody:   ReadyResponse{Status: "ready", Database: "connected"},
		},
		{
			name:           "returns 503 when the store is unreachable",
			pingErr:        errors.New("connection refused"),
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   ReadyResponse{Status: "not_ready", Database: "disconnected"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pinger := &MockPinger{pingErr: tt.pingErr}
			router := setupHealthRouter(NewHealthHandler(pinger, "test", "postgres"))

			req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, 1, pinger.calls)

			var response ReadyResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
			assert.Equal(t, tt.expectedBody, response)
		})
	}
}

func TestHealthHandler_Info(t *testing.T) {
	handler := NewHealthHandler(&MockPinger{}, "production", "postgres")
	handler.startTime = time.Now().Add(-1 * time.Hour)
	router := setupHealthRouter(handler)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/info", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response InfoResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, APIVersion, response.Version)
	assert.Equal(t, "production", response.Environment)
	assert.Equal(t, "postgres", response.Store)
	assert.Contains(t, response.Uptime, "1h")
}

func TestFormatUptime(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{
			name:     "formats seconds only",
			duration: 45 * time.Second,
			expected: "0h 0m 45s",
		},
		{
			name:     "formats minutes and seconds",
			duration: 5*time.Minute + 30*time.Second,
			expected: "0h 5m 30s",
		},
		{
			name:     "formats hours, minutes and seconds",
			duration: 2*time.Hour + 15*time.Minute + 45*time.Second,
			expected: "2h 15m 45s",
		},
		{
			name:     "formats days, hours, minutes and seconds",
			duration: 3*24*time.Hour + 5*time.Hour + 30*time.Minute + 15*time.Second,
			expected: "3d 5h 30m 15s",
		},
		{
			name:     "formats exactly one day",
			duration: 24 * time.Hour,
			expected: "1d 0h 0m 0s",
		},
		{
			name:     "formats zero duration",
			duration: 0,
			expected: "0h 0m 0s",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatUptime(tt.duration))
		})
	}
}

func TestInfoResponse_JSON(t *testing.T) {
	body, err := json.Marshal(InfoResponse{
		Version:     "0.1.0",
		Environment: "test",
		Store:       "memory",
		Uptime:      "1h 30m 45s",
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":"0.1.0","environment":"test","store":"memory","uptime":"1h 30m 45s"}`, string(body))
}
