package handler

import (
	"net/http"

	"github.com/finanzas-app/finanzas-backend/internal/middleware"
	"github.com/finanzas-app/finanzas-backend/internal/service"
	"github.com/labstack/echo/v4"
)

// DashboardHandler handles dashboard-related HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetSummary godoc
// @Summary Get dashboard summary
// @Description Income, expense and net totals with the most recent transactions. Defaults to the last month.
// @Tags dashboard
// @Produce json
// @Param startDate query string false "Start date (YYYY-MM-DD or RFC3339)"
// @Param endDate query string false "End date (YYYY-MM-DD covers the whole day)"
// @Success 200 {object} domain.DashboardSummary
// @Failure 400 {object} ProblemDetails
// @Failure 401 {object} ProblemDetails
// @Router /dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		return NewUnauthorizedError(c, "Please login")
	}

	start, end, errs := parseDateRange(c)
	if len(errs) > 0 {
		return NewValidationError(c, "Invalid date range", errs)
	}

	summary, err := h.dashboardService.GetSummary(c.Request().Context(), userID, start, end)
	if err != nil {
		return respondServiceError(c, err, "")
	}
	return c.JSON(http.StatusOK, summary)
}
