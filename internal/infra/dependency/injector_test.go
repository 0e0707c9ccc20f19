package dependency

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pos-dashboard/backend/config"
	domainerror "github.com/pos-dashboard/backend/internal/domain/error"
	"github.com/pos-dashboard/backend/internal/integration/persistence/model"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(model.All()...))
	return db
}

func testConfig() *config.Config {
	cfg := config.Load()
	cfg.Server.Environment = "test"
	cfg.Dashboard.Timezone = "UTC"
	cfg.JWT.Secret = "test-secret"
	return cfg
}

func TestNewInjector_ServesDashboard(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	clock := fixedClock{now: time.Now()}
	injector, err := NewInjector(testConfig(), newTestDB(t), client, Options{Clock: clock})
	require.NoError(t, err)

	engine := injector.Router.Setup("test")

	t.Run("health reports both dependencies", func(t *testing.T) {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "connected", body["database"])
		assert.Equal(t, "connected", body["cache"])
	})

	t.Run("dashboard requires a token", func(t *testing.T) {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("dashboard with a token returns a snapshot", func(t *testing.T) {
		token, err := injector.TokenService.GenerateAccessToken(context.Background(), uuid.New(), "maria")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"weeklyOrders"`)
	})
}

func TestNewInjector_InvalidTimezone(t *testing.T) {
	cfg := testConfig()
	cfg.Dashboard.Timezone = "Nowhere/Special"

	_, err := NewInjector(cfg, newTestDB(t), nil, Options{})

	var dashErr *domainerror.DashboardError
	require.ErrorAs(t, err, &dashErr)
	assert.Equal(t, domainerror.ErrCodeInvalidTimezone, dashErr.Code)
}
