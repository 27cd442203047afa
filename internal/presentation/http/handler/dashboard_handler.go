package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/jumjum/admin-api/internal/application/service"
	"github.com/jumjum/admin-api/internal/presentation/http/dto/response"
)

// DashboardHandler handles dashboard-related HTTP requests
type DashboardHandler struct {
	statsService *service.StatsService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(statsService *service.StatsService) *DashboardHandler {
	return &DashboardHandler{statsService: statsService}
}

// GetStats handles getting dashboard statistics
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats := h.statsService.GetDashboardStats(c.Request.Context())
	response.OK(c, "Dashboard stats retrieved successfully", stats)
}
