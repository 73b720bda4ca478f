package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/alhuzaifa/tailor-api/internal/application/service"
	"github.com/alhuzaifa/tailor-api/internal/presentation/http/dto/response"
)

// DashboardHandler handles the shop overview endpoint
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Stats returns shop-wide counters
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.dashboardService.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Dashboard stats retrieved successfully", stats)
}
