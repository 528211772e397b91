package handler

import (
	"fmt"
	"net/http"

	"github.com/finanzas-app/finanzas-backend/internal/middleware"
	"github.com/finanzas-app/finanzas-backend/internal/service"
	"github.com/labstack/echo/v4"
)

// HeaderReportArchiveKey carries the S3 key of the archived copy, when one was stored
const HeaderReportArchiveKey = "X-Report-Archive-Key"

// ReportHandler handles report-related HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GetSummary godoc
// @Summary Get report summary
// @Description Totals grouped by category and by concept for a period. Defaults to the last month.
// @Tags reports
// @Produce json
// @Param startDate query string false "Start date (YYYY-MM-DD or RFC3339)"
// @Param endDate query string false "End date (YYYY-MM-DD covers the whole day)"
// @Success 200 {object} domain.ReportSummary
// @Failure 400 {object} ProblemDetails
// @Failure 401 {object} ProblemDetails
// @Router /reports/summary [get]
func (h *ReportHandler) GetSummary(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		return NewUnauthorizedError(c, "Please login")
	}

	start, end, errs := parseDateRange(c)
	if len(errs) > 0 {
		return NewValidationError(c, "Invalid date range", errs)
	}

	summary, err := h.reportService.Summary(c.Request().Context(), userID, start, end)
	if err != nil {
		return respondServiceError(c, err, "")
	}
	return c.JSON(http.StatusOK, summary)
}

// Export godoc
// @Summary Export a report
// @Description Download the period as an xlsx workbook with Transactions, Category Summary and General Summary sheets
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param startDate query string false "Start date (YYYY-MM-DD or RFC3339)"
// @Param endDate query string false "End date (YYYY-MM-DD covers the whole day)"
// @Success 200 {file} file
// @Failure 400 {object} ProblemDetails
// @Failure 401 {object} ProblemDetails
// @Failure 422 {object} ProblemDetails
// @Router /reports/export [get]
func (h *ReportHandler) Export(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		return NewUnauthorizedError(c, "Please login")
	}

	start, end, errs := parseDateRange(c)
	if len(errs) > 0 {
		return NewValidationError(c, "Invalid date range", errs)
	}

	report, err := h.reportService.Export(c.Request().Context(), userID, start, end)
	if err != nil {
		return respondServiceError(c, err, "")
	}

	header := c.Response().Header()
	header.Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", report.Filename))
	if report.ArchiveKey != "" {
		header.Set(HeaderReportArchiveKey, report.ArchiveKey)
	}
	return c.Blob(http.StatusOK, report.ContentType, report.Content)
}
