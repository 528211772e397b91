package handler

import (
	"net/http"

	"github.com/finanzas-app/finanzas-backend/internal/domain"
	"github.com/finanzas-app/finanzas-backend/internal/service"
	"github.com/labstack/echo/v4"
)

// ReferenceHandler serves categories and concepts
type ReferenceHandler struct {
	referenceService *service.ReferenceService
}

// NewReferenceHandler creates a new ReferenceHandler
func NewReferenceHandler(referenceService *service.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{referenceService: referenceService}
}

// GetCategories godoc
// @Summary List categories
// @Tags categories
// @Produce json
// @Param type query string false "ingreso or egreso"
// @Success 200 {array} domain.Category
// @Failure 400 {object} ProblemDetails
// @Failure 401 {object} ProblemDetails
// @Router /categories [get]
func (h *ReferenceHandler) GetCategories(c echo.Context) error {
	var txType *domain.TransactionType
	if raw := c.QueryParam("type"); raw != "" {
		t, err := domain.ParseTransactionType(raw)
		if err != nil {
			return NewValidationError(c, "Invalid filters", []ValidationError{
				{Field: "type", Message: err.Error()},
			})
		}
		txType = &t
	}

	return c.JSON(http.StatusOK, h.referenceService.ListCategories(c.Request().Context(), txType))
}

// GetCategory godoc
// @Summary Get a category
// @Tags categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} domain.Category
// @Failure 400 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Router /categories/{id} [get]
func (h *ReferenceHandler) GetCategory(c echo.Context) error {
	id, err := parseInt32Param(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid category ID", nil)
	}

	category, err := h.referenceService.GetCategory(c.Request().Context(), id)
	if err != nil {
		return respondServiceError(c, err, "Category not found")
	}
	return c.JSON(http.StatusOK, category)
}

// GetConcepts godoc
// @Summary List concepts
// @Description Without categoryId every concept is returned
// @Tags concepts
// @Produce json
// @Param categoryId query int false "Category ID"
// @Success 200 {array} domain.Concept
// @Failure 400 {object} ProblemDetails
// @Failure 401 {object} ProblemDetails
// @Router /concepts [get]
func (h *ReferenceHandler) GetConcepts(c echo.Context) error {
	categoryID, verr := optionalInt32Query(c, "categoryId")
	if verr != nil {
		return NewValidationError(c, "Invalid filters", []ValidationError{*verr})
	}

	return c.JSON(http.StatusOK, h.referenceService.ListConcepts(c.Request().Context(), categoryID))
}

// GetConcept godoc
// @Summary Get a concept
// @Tags concepts
// @Produce json
// @Param id path int true "Concept ID"
// @Success 200 {object} domain.Concept
// @Failure 400 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Router /concepts/{id} [get]
func (h *ReferenceHandler) GetConcept(c echo.Context) error {
	id, err := parseInt32Param(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid concept ID", nil)
	}

	concept, err := h.referenceService.GetConcept(c.Request().Context(), id)
	if err != nil {
		return respondServiceError(c, err, "Concept not found")
	}
	return c.JSON(http.StatusOK, concept)
}
