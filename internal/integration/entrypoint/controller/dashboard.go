// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pos-dashboard/backend/internal/application/usecase/dashboard"
	domainerror "github.com/pos-dashboard/backend/internal/domain/error"
	"github.com/pos-dashboard/backend/internal/integration/entrypoint/dto"
	"github.com/pos-dashboard/backend/internal/integration/export"
)

// SnapshotBuilder builds a dashboard snapshot.
type SnapshotBuilder interface {
	Execute(ctx context.Context) (*dashboard.Snapshot, error)
}

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	getSnapshotUseCase SnapshotBuilder
	timeout            time.Duration
}

// NewDashboardController creates a new dashboard controller instance.
// A non-positive timeout leaves the request deadline to the caller.
func NewDashboardController(getSnapshotUseCase SnapshotBuilder, timeout time.Duration) *DashboardController {
	return &DashboardController{
		getSnapshotUseCase: getSnapshotUseCase,
		timeout:            timeout,
	}
}

// GetDashboard handles GET /dashboard requests.
func (c *DashboardController) GetDashboard(ctx *gin.Context) {
	snapshot, err := c.buildSnapshot(ctx)
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardResponse(snapshot))
}

// ExportDashboard handles GET /dashboard/export requests.
func (c *DashboardController) ExportDashboard(ctx *gin.Context) {
	snapshot, err := c.buildSnapshot(ctx)
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.Header("Content-Type", export.ContentType)
	ctx.Header("Content-Disposition", "attachment; filename="+export.FileName(snapshot.GeneratedAt))
	ctx.Status(http.StatusOK)
	if err := export.WriteSnapshot(ctx.Writer, snapshot); err != nil {
		slog.ErrorContext(ctx.Request.Context(), "Failed to write dashboard export", "error", err)
	}
}

func (c *DashboardController) buildSnapshot(ctx *gin.Context) (*dashboard.Snapshot, error) {
	reqCtx := ctx.Request.Context()
	if c.timeout > 0 {
		var cancel context.CancelFunc
		reqCtx, cancel = context.WithTimeout(reqCtx, c.timeout)
		defer cancel()
	}
	return c.getSnapshotUseCase.Execute(reqCtx)
}

// handleDashboardError handles dashboard errors and returns appropriate HTTP responses.
func (c *DashboardController) handleDashboardError(ctx *gin.Context, err error) {
	var dashErr *domainerror.DashboardError
	if errors.As(err, &dashErr) {
		statusCode := c.getStatusCodeForDashboardError(dashErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: dashErr.Message,
			Code:  string(dashErr.Code),
		})
		return
	}

	slog.ErrorContext(ctx.Request.Context(), "Unexpected dashboard error", "error", err)

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
		Code:  string(domainerror.ErrCodeDashboardInternalError),
	})
}

// getStatusCodeForDashboardError maps dashboard error codes to HTTP status codes.
func (c *DashboardController) getStatusCodeForDashboardError(code domainerror.DashboardErrorCode) int {
	switch code {
	case domainerror.ErrCodeStoreUnavailable:
		return http.StatusServiceUnavailable
	case domainerror.ErrCodeDeadlineExceeded:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
