package handler

import (
	"net/http"

	"github.com/finanzas-app/finanzas-backend/internal/middleware"
	"github.com/finanzas-app/finanzas-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// AdminHandler handles admin-only HTTP requests
type AdminHandler struct {
	seedService *service.SeedService
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(seedService *service.SeedService) *AdminHandler {
	return &AdminHandler{seedService: seedService}
}

// Seed godoc
// @Summary Seed reference data
// @Description Upsert the default category and concept catalog. Safe to repeat.
// @Tags admin
// @Produce json
// @Success 200 {object} service.SeedResult
// @Failure 401 {object} ProblemDetails
// @Failure 403 {object} ProblemDetails
// @Failure 503 {object} ProblemDetails
// @Router /admin/seed [post]
func (h *AdminHandler) Seed(c echo.Context) error {
	userID := middleware.GetUserID(c)

	result, err := h.seedService.Seed(c.Request().Context(), userID)
	if err != nil {
		log.Error().Err(err).Int32("user_id", userID).Msg("Failed to seed reference data")
		return respondServiceError(c, err, "")
	}
	return c.JSON(http.StatusOK, result)
}
