package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// problemDetails represents an RFC 7807 Problem Details response
type problemDetails struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`
}

// Error types
const (
	errorTypeUnauthorized       = "https://finanzas.app/errors/unauthorized"
	errorTypeForbidden          = "https://finanzas.app/errors/forbidden"
	errorTypeRateLimit          = "https://finanzas.app/errors/rate-limit"
	errorTypeServiceUnavailable = "https://finanzas.app/errors/service-unavailable"
)

func problem(c echo.Context, status int, errType, title, detail string) error {
	return c.JSON(status, problemDetails{
		Type:     errType,
		Title:    title,
		Status:   status,
		Detail:   detail,
		Instance: c.Request().URL.Path,
	})
}

func unauthorizedError(c echo.Context, detail string) error {
	return problem(c, http.StatusUnauthorized, errorTypeUnauthorized, "Unauthorized", detail)
}

func forbiddenError(c echo.Context, detail string) error {
	return problem(c, http.StatusForbidden, errorTypeForbidden, "Forbidden", detail)
}

func serviceUnavailableError(c echo.Context, detail string) error {
	return problem(c, http.StatusServiceUnavailable, errorTypeServiceUnavailable, "Service Unavailable", detail)
}
