// Package dependency provides dependency injection for the application.
package dependency

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/pos-dashboard/backend/config"
	"github.com/pos-dashboard/backend/internal/application/adapter"
	"github.com/pos-dashboard/backend/internal/application/usecase/dashboard"
	domainerror "github.com/pos-dashboard/backend/internal/domain/error"
	"github.com/pos-dashboard/backend/internal/infra/server/router"
	"github.com/pos-dashboard/backend/internal/integration/adapters"
	"github.com/pos-dashboard/backend/internal/integration/entrypoint/controller"
	"github.com/pos-dashboard/backend/internal/integration/entrypoint/middleware"
	"github.com/pos-dashboard/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config       *config.Config
	DB           *gorm.DB
	Redis        *redis.Client
	TokenService adapter.TokenService
	RateLimiter  *middleware.RateLimiter
	Router       *router.Router
}

// Options overrides collaborators that default to production implementations.
type Options struct {
	Clock adapter.Clock
	// DatabaseHealth overrides the health check derived from DB.
	DatabaseHealth controller.HealthChecker
}

// NewInjector creates a new dependency injector with all dependencies wired.
// redisClient may be nil, in which case rate limits are kept in memory.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, opts Options) (*Injector, error) {
	clock := opts.Clock
	if clock == nil {
		clock = adapters.NewSystemClock()
	}

	location, err := cfg.Dashboard.Location()
	if err != nil {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidTimezone,
			domainerror.ErrInvalidTimezone.Error(),
			err,
		)
	}

	// Create repositories
	dashboardRepo := persistence.NewDashboardRepository(db)

	// Create adapters/services
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, clock)

	// Create dashboard use cases
	getSnapshotUseCase := dashboard.NewGetSnapshotUseCase(dashboardRepo, clock, location)

	// Create controllers
	databaseHealth := opts.DatabaseHealth
	if databaseHealth == nil {
		databaseHealth = pingDatabase(db)
	}
	var cacheHealth controller.HealthChecker
	if redisClient != nil {
		cacheHealth = pingRedis(redisClient)
	}
	healthController := controller.NewHealthController(databaseHealth, cacheHealth)
	dashboardController := controller.NewDashboardController(getSnapshotUseCase, cfg.Dashboard.Timeout)

	// Create middleware
	rateLimiter := middleware.NewRateLimiter(redisClient, cfg.RateLimit.Limit, cfg.RateLimit.Window)
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		rateLimiter.SetEnabled(false)
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(healthController, dashboardController, rateLimiter, authMiddleware, cfg.CORS.AllowedOrigins)

	return &Injector{
		Config:       cfg,
		DB:           db,
		Redis:        redisClient,
		TokenService: tokenService,
		RateLimiter:  rateLimiter,
		Router:       r,
	}, nil
}
