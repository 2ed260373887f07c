package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/rumahamal/ref26-backend/internal/core/ports/services"
	"github.com/rumahamal/ref26-backend/internal/dto"
	"github.com/rumahamal/ref26-backend/internal/middleware"
)

// dashboardHandler serves the reporting dashboard and the validation form
// dropdown options.
type dashboardHandler struct {
	dashboardService portssvc.DashboardSvcFacade
	dropdownService  portssvc.DropdownSvcFacade
}

func newDashboardHandler(das portssvc.DashboardSvcFacade, drs portssvc.DropdownSvcFacade) *dashboardHandler {
	return &dashboardHandler{dashboardService: das, dropdownService: drs}
}

// registerDashboardRoutes registers the read-only reporting routes.
func registerDashboardRoutes(rg *gin.RouterGroup, dashboardService portssvc.DashboardSvcFacade, dropdownService portssvc.DropdownSvcFacade) {
	h := newDashboardHandler(dashboardService, dropdownService)

	rg.GET("/dashboard-data", h.dashboardData)
	rg.GET("/dropdown-options", h.dropdownOptions)
}

// dashboardData godoc
// @Summary Reporting dashboard
// @Description Aggregates validated donations into the summary, weekly progress and breakdowns.
// @Tags dashboard
// @Produce json
// @Param startDate query string false "Inclusive start date (YYYY-MM-DD)"
// @Param endDate query string false "Inclusive end date (YYYY-MM-DD)"
// @Param campaign query string false "Campaign filter, 'all' for none"
// @Param organ query string false "Organ filter, 'all' for none"
// @Success 200 {object} dto.DashboardResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /dashboard-data [get]
func (h *dashboardHandler) dashboardData(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var query dto.DashboardQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	data, err := h.dashboardService.GetDashboardData(c.Request.Context(), query.ToFilter())
	if err != nil {
		logger.Error("Failed to build dashboard data", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to fetch dashboard data", Details: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardResponse(data))
}

// dropdownOptions godoc
// @Summary Validation form options
// @Description Returns the dropdown values grouped by form section.
// @Tags dashboard
// @Produce json
// @Success 200 {object} map[string][]string
// @Failure 500 {object} dto.ErrorResponse
// @Router /dropdown-options [get]
func (h *dashboardHandler) dropdownOptions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	options, err := h.dropdownService.GetDropdownOptions(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list dropdown options", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to fetch dropdown options", Details: err.Error()})
		return
	}

	c.JSON(http.StatusOK, options)
}
