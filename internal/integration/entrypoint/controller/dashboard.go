package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/20251029-hanhwa-swcamp-22th/be22-4st-team3-project/internal/application/usecase/report"
	"github.com/20251029-hanhwa-swcamp-22th/be22-4st-team3-project/internal/integration/entrypoint/dto"
	"github.com/20251029-hanhwa-swcamp-22th/be22-4st-team3-project/internal/integration/entrypoint/middleware"
)

// DashboardController handles the dashboard endpoint.
type DashboardController struct {
	dashboardUseCase *report.DashboardUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(dashboardUseCase *report.DashboardUseCase) *DashboardController {
	return &DashboardController{dashboardUseCase: dashboardUseCase}
}

// Get handles GET /dashboard requests.
func (c *DashboardController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.dashboardUseCase.Execute(ctx.Request.Context(), report.DashboardInput{
		UserID: userID,
		Now:    time.Now().UTC(),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardResponse(output))
}
