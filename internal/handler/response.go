package handler

import (
	"errors"
	"net/http"

	"github.com/finanzas-app/finanzas-backend/internal/domain"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// ProblemDetails represents an RFC 7807 Problem Details response
type ProblemDetails struct {
	Type     string            `json:"type"`
	Title    string            `json:"title"`
	Status   int               `json:"status"`
	Detail   string            `json:"detail,omitempty"`
	Instance string            `json:"instance,omitempty"`
	Errors   []ValidationError `json:"errors,omitempty"`
}

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error types
const (
	ErrorTypeValidation   = "https://finanzas.app/errors/validation"
	ErrorTypeNotFound     = "https://finanzas.app/errors/not-found"
	ErrorTypeUnauthorized = "https://finanzas.app/errors/unauthorized"
	ErrorTypeForbidden    = "https://finanzas.app/errors/forbidden"
	ErrorTypeInternal     = "https://finanzas.app/errors/internal"

	ErrorTypeUnprocessable      = "https://finanzas.app/errors/unprocessable"
	ErrorTypeServiceUnavailable = "https://finanzas.app/errors/service-unavailable"
)

// problem writes a ProblemDetails body with the given status
func problem(c echo.Context, status int, errType, title, detail string) error {
	return c.JSON(status, ProblemDetails{
		Type:     errType,
		Title:    title,
		Status:   status,
		Detail:   detail,
		Instance: c.Request().URL.Path,
	})
}

// NewValidationError creates a validation error response
func NewValidationError(c echo.Context, detail string, errors []ValidationError) error {
	return c.JSON(http.StatusBadRequest, ProblemDetails{
		Type:     ErrorTypeValidation,
		Title:    "Validation Error",
		Status:   http.StatusBadRequest,
		Detail:   detail,
		Instance: c.Request().URL.Path,
		Errors:   errors,
	})
}

func NewNotFoundError(c echo.Context, detail string) error {
	return problem(c, http.StatusNotFound, ErrorTypeNotFound, "Not Found", detail)
}

func NewUnauthorizedError(c echo.Context, detail string) error {
	return problem(c, http.StatusUnauthorized, ErrorTypeUnauthorized, "Unauthorized", detail)
}

func NewForbiddenError(c echo.Context, detail string) error {
	return problem(c, http.StatusForbidden, ErrorTypeForbidden, "Forbidden", detail)
}

func NewInternalError(c echo.Context, detail string) error {
	return problem(c, http.StatusInternalServerError, ErrorTypeInternal, "Internal Server Error", detail)
}

// NewUnprocessableError is for well-formed requests that cannot be served,
// such as an export over an empty range
func NewUnprocessableError(c echo.Context, detail string) error {
	return problem(c, http.StatusUnprocessableEntity, ErrorTypeUnprocessable, "Unprocessable Entity", detail)
}

// NewServiceUnavailableError is returned for writes while storage is down
func NewServiceUnavailableError(c echo.Context, detail string) error {
	return problem(c, http.StatusServiceUnavailable, ErrorTypeServiceUnavailable, "Service Unavailable", detail)
}

// fieldErrors maps validation sentinels to the request field they concern
var fieldErrors = []struct {
	err   error
	field string
}{
	{domain.ErrCategoryRequired, "categoryId"},
	{domain.ErrConceptRequired, "conceptId"},
	{domain.ErrConceptCategoryMismatch, "conceptId"},
	{domain.ErrInvalidAmount, "amount"},
	{domain.ErrContentRequired, "content"},
	{domain.ErrContentTooLong, "content"},
	{domain.ErrDateRequired, "date"},
	{domain.ErrInvalidTransactionType, "type"},
	{domain.ErrInvalidDateRange, "startDate"},
}

// respondServiceError writes the problem response matching a service error
func respondServiceError(c echo.Context, err error, notFoundDetail string) error {
	for _, fe := range fieldErrors {
		if errors.Is(err, fe.err) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: fe.field, Message: fe.err.Error()},
			})
		}
	}

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return NewValidationError(c, err.Error(), nil)
	case errors.Is(err, domain.ErrTransactionNotFound),
		errors.Is(err, domain.ErrCategoryNotFound),
		errors.Is(err, domain.ErrConceptNotFound),
		errors.Is(err, domain.ErrNotFound):
		return NewNotFoundError(c, notFoundDetail)
	case errors.Is(err, domain.ErrUnauthorized):
		return NewUnauthorizedError(c, "Please login")
	case errors.Is(err, domain.ErrForbidden):
		return NewForbiddenError(c, "Forbidden")
	case errors.Is(err, domain.ErrStorageUnavailable):
		return NewServiceUnavailableError(c, "Storage is unavailable")
	case errors.Is(err, domain.ErrNothingToExport):
		return NewUnprocessableError(c, domain.ErrNothingToExport.Error())
	}

	log.Error().Err(err).Str("path", c.Request().URL.Path).Msg("Unhandled service error")
	return NewInternalError(c, "An unexpected error occurred")
}
