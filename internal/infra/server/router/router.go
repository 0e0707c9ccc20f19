// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/pos-dashboard/backend/internal/integration/entrypoint/controller"
	"github.com/pos-dashboard/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	dashboardController *controller.DashboardController
	dashboardLimiter    *middleware.RateLimiter
	authMiddleware      *middleware.AuthMiddleware
	allowedOrigins      []string
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	dashboardController *controller.DashboardController,
	dashboardLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
	allowedOrigins []string,
) *Router {
	return &Router{
		healthController:    healthController,
		dashboardController: dashboardController,
		dashboardLimiter:    dashboardLimiter,
		authMiddleware:      authMiddleware,
		allowedOrigins:      allowedOrigins,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()
	r.engine.Use(cors.New(r.corsConfig(environment)))

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// corsConfig allows the configured origins. Outside production an empty
// list allows every origin.
func (r *Router) corsConfig(environment string) cors.Config {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	corsConfig.ExposeHeaders = []string{"Content-Disposition"}

	switch {
	case len(r.allowedOrigins) > 0:
		corsConfig.AllowOrigins = r.allowedOrigins
	case environment == "production":
		corsConfig.AllowOriginFunc = func(string) bool { return false }
	default:
		corsConfig.AllowAllOrigins = true
	}
	return corsConfig
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")

	// Dashboard routes (require authentication)
	if r.dashboardController != nil && r.authMiddleware != nil {
		dashboard := v1.Group("/dashboard")
		dashboard.Use(r.authMiddleware.Authenticate())
		if r.dashboardLimiter != nil {
			dashboard.Use(r.dashboardLimiter.Middleware())
		}
		{
			dashboard.GET("", r.dashboardController.GetDashboard)
			dashboard.GET("/export", r.dashboardController.ExportDashboard)
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
