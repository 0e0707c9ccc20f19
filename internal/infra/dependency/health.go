package dependency

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/pos-dashboard/backend/internal/integration/entrypoint/controller"
)

const healthCheckTimeout = 2 * time.Second

func pingDatabase(db *gorm.DB) controller.HealthChecker {
	return func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		ctx, cancel := context.WithTimeout(context.Background(), healthCheckTimeout)
		defer cancel()
		return sqlDB.PingContext(ctx) == nil
	}
}

func pingRedis(client *redis.Client) controller.HealthChecker {
	return func() bool {
		ctx, cancel := context.WithTimeout(context.Background(), healthCheckTimeout)
		defer cancel()
		return client.Ping(ctx).Err() == nil
	}
}
