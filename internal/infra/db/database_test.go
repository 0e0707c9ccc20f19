package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pos-dashboard/backend/config"
	"github.com/pos-dashboard/backend/internal/integration/persistence/model"
)

func TestNewConnection_SQLite(t *testing.T) {
	database, err := NewConnection(&config.DatabaseConfig{Driver: DriverSQLite, URL: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	assert.True(t, database.HealthCheck())
	require.NoError(t, database.AutoMigrate(model.All()...))
	assert.True(t, database.DB().Migrator().HasTable("orders"))
	assert.True(t, database.DB().Migrator().HasTable("order_payments"))
}

func TestNewConnection_UnsupportedDriver(t *testing.T) {
	_, err := NewConnection(&config.DatabaseConfig{Driver: "oracle"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}

func TestHealthCheck_ClosedConnection(t *testing.T) {
	database, err := NewConnection(&config.DatabaseConfig{Driver: DriverSQLite, URL: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, database.Close())

	assert.False(t, database.HealthCheck())
}
