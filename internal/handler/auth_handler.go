package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/finanzas-app/finanzas-backend/internal/config"
	"github.com/finanzas-app/finanzas-backend/internal/domain"
	"github.com/finanzas-app/finanzas-backend/internal/middleware"
	"github.com/finanzas-app/finanzas-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	authService *service.AuthService
	sessions    *service.SessionManager
	cookie      config.SessionConfig
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *service.AuthService, sessions *service.SessionManager, cookie config.SessionConfig) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessions:    sessions,
		cookie:      cookie,
	}
}

// DemoLoginRequest represents the demo login request body
type DemoLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID           int32   `json:"id"`
	OpenID       string  `json:"openId"`
	Name         *string `json:"name"`
	Email        *string `json:"email"`
	LoginMethod  *string `json:"loginMethod"`
	Role         string  `json:"role"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
	LastSignedIn string  `json:"lastSignedIn"`
}

// MeResponse wraps the current user, null when signed out
type MeResponse struct {
	User *UserResponse `json:"user"`
}

// SuccessResponse is returned by actions without a payload
type SuccessResponse struct {
	Success bool `json:"success"`
}

// DemoLogin godoc
// @Summary Sign in with the demo credential
// @Description Checks the shared demo username/password and sets the session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body DemoLoginRequest true "Demo credentials"
// @Success 200 {object} MeResponse
// @Failure 400 {object} ProblemDetails
// @Failure 401 {object} ProblemDetails
// @Failure 403 {object} ProblemDetails
// @Failure 429 {object} ProblemDetails
// @Failure 500 {object} ProblemDetails
// @Router /auth/demo-login [post]
func (h *AuthHandler) DemoLogin(c echo.Context) error {
	var req DemoLoginRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	user, err := h.authService.DemoLogin(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDemoAuthDisabled):
			return NewForbiddenError(c, "Demo login is disabled")
		case errors.Is(err, domain.ErrDemoAuthMisconfigured):
			return NewInternalError(c, "Demo login is not configured")
		case errors.Is(err, domain.ErrInvalidCredentials):
			return NewUnauthorizedError(c, "Invalid username or password")
		}
		return respondServiceError(c, err, "User not found")
	}

	name := ""
	if user.Name != nil {
		name = *user.Name
	}
	token, _, err := h.sessions.Issue(user.OpenID, name)
	if err != nil {
		log.Error().Err(err).Int32("user_id", user.ID).Msg("Failed to issue session token")
		return NewInternalError(c, "Failed to create session")
	}

	c.SetCookie(h.sessionCookie(token, int(service.SessionTTL/time.Second)))
	return c.JSON(http.StatusOK, MeResponse{User: toUserResponse(user)})
}

// Me godoc
// @Summary Get the current user
// @Description Returns the signed-in user, or null without a valid session
// @Tags auth
// @Produce json
// @Success 200 {object} MeResponse
// @Router /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	user := middleware.GetUser(c)
	if user == nil {
		return c.JSON(http.StatusOK, MeResponse{User: nil})
	}
	return c.JSON(http.StatusOK, MeResponse{User: toUserResponse(user)})
}

// Logout godoc
// @Summary Sign out
// @Description Clears the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(h.sessionCookie("", -1))
	return c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

func (h *AuthHandler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     h.cookie.CookieName,
		Value:    value,
		Path:     "/",
		Domain:   h.cookie.CookieDomain,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func toUserResponse(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:           u.ID,
		OpenID:       u.OpenID,
		Name:         u.Name,
		Email:        u.Email,
		LoginMethod:  u.LoginMethod,
		Role:         string(u.Role),
		CreatedAt:    u.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    u.UpdatedAt.Format(time.RFC3339),
		LastSignedIn: u.LastSignedIn.Format(time.RFC3339),
	}
}
