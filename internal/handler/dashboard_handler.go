package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusgpt/portal-api/internal/middleware"
	"github.com/campusgpt/portal-api/internal/service"
	"github.com/campusgpt/portal-api/pkg/response"
)

// DashboardHandler serves the metrics projection and usage analytics.
type DashboardHandler struct {
	service *service.DashboardService
}

// NewDashboardHandler constructs the handler.
func NewDashboardHandler(svc *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: svc}
}

// Metrics godoc
// @Summary Dashboard metrics for the caller
// @Description Always returns 200; anonymous callers get the default row so
// the dashboard renders on first load.
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /dashboard-metrics [get]
func (h *DashboardHandler) Metrics(c *gin.Context) {
	user := middleware.CurrentUser(c)
	response.JSON(c, http.StatusOK, h.service.Metrics(user))
}

// Analytics godoc
// @Summary Portal usage analytics
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /analytics [get]
func (h *DashboardHandler) Analytics(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Analytics())
}
