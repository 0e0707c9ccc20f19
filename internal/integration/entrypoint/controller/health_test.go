package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthController_Check(t *testing.T) {
	up := func() bool { return true }
	down := func() bool { return false }

	tests := []struct {
		name         string
		database     HealthChecker
		cache        HealthChecker
		expectedCode int
		status       string
		dbStatus     string
		cacheStatus  string
	}{
		{"all up", up, up, http.StatusOK, "ok", "connected", "connected"},
		{"cache not configured", up, nil, http.StatusOK, "ok", "connected", "disabled"},
		{"cache down", up, down, http.StatusOK, "ok", "connected", "disconnected"},
		{"database down", down, nil, http.StatusServiceUnavailable, "degraded", "disconnected", "disabled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := gin.New()
			engine.GET("/health", NewHealthController(tt.database, tt.cache).Check)
			w := httptest.NewRecorder()

			engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

			require.Equal(t, tt.expectedCode, w.Code)
			var body HealthResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.status, body.Status)
			assert.Equal(t, tt.dbStatus, body.Database)
			assert.Equal(t, tt.cacheStatus, body.Cache)
		})
	}
}
