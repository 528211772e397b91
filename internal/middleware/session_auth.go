package middleware

import (
	"context"
	"errors"

	"github.com/finanzas-app/finanzas-backend/internal/domain"
	"github.com/finanzas-app/finanzas-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	// UserKey is the context key for the authenticated *domain.User
	UserKey contextKey = "user"
	// SessionKey is the context key for the verified *service.Session
	SessionKey contextKey = "session"
)

// SessionVerifier validates a session token
type SessionVerifier interface {
	Verify(ctx context.Context, token string) (*service.Session, error)
}

// UserResolver loads the user behind a verified session
type UserResolver interface {
	ResolveUser(ctx context.Context, openID string) (*domain.User, error)
}

// SessionAuthMiddleware authenticates requests from the session cookie
type SessionAuthMiddleware struct {
	cookieName string
	sessions   SessionVerifier
	users      UserResolver
}

// NewSessionAuthMiddleware creates a new SessionAuthMiddleware
func NewSessionAuthMiddleware(cookieName string, sessions SessionVerifier, users UserResolver) *SessionAuthMiddleware {
	return &SessionAuthMiddleware{
		cookieName: cookieName,
		sessions:   sessions,
		users:      users,
	}
}

// resolve returns the caller of c, or an error when there is none
func (m *SessionAuthMiddleware) resolve(c echo.Context) (*service.Session, *domain.User, error) {
	cookie, err := c.Cookie(m.cookieName)
	if err != nil || cookie.Value == "" {
		return nil, nil, domain.ErrUnauthorized
	}

	ctx := c.Request().Context()
	session, err := m.sessions.Verify(ctx, cookie.Value)
	if err != nil {
		log.Debug().Err(err).Msg("Session validation failed")
		return nil, nil, domain.ErrUnauthorized
	}

	user, err := m.users.ResolveUser(ctx, session.OpenID)
	if err != nil {
		return session, nil, err
	}
	return session, user, nil
}

func withCaller(c echo.Context, session *service.Session, user *domain.User) {
	ctx := context.WithValue(c.Request().Context(), SessionKey, session)
	ctx = context.WithValue(ctx, UserKey, user)
	c.SetRequest(c.Request().WithContext(ctx))
}

// Authenticate returns an Echo middleware that rejects requests without a
// valid session resolved to a user
func (m *SessionAuthMiddleware) Authenticate() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session, user, err := m.resolve(c)
			if err != nil {
				if errors.Is(err, domain.ErrStorageUnavailable) {
					return serviceUnavailableError(c, "Storage is unavailable")
				}
				if !errors.Is(err, domain.ErrUnauthorized) {
					log.Error().Err(err).Msg("Failed to resolve session user")
				}
				return unauthorizedError(c, "Please login")
			}

			withCaller(c, session, user)
			return next(c)
		}
	}
}

// Optional returns an Echo middleware that attaches the caller when there is
// one and never rejects the request
func (m *SessionAuthMiddleware) Optional() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session, user, err := m.resolve(c)
			if err == nil {
				withCaller(c, session, user)
			} else if !errors.Is(err, domain.ErrUnauthorized) {
				log.Warn().Err(err).Msg("Failed to resolve session user")
			}
			return next(c)
		}
	}
}

// RequireAdmin returns an Echo middleware that only lets admins through.
// It must run after Authenticate.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := GetUser(c)
			if user == nil {
				return unauthorizedError(c, "Please login")
			}
			if !user.IsAdmin() {
				log.Warn().Int32("user_id", user.ID).Str("path", c.Request().URL.Path).Msg("Admin route denied")
				return forbiddenError(c, "Admin role required")
			}
			return next(c)
		}
	}
}

// GetUser extracts the authenticated user from the context
func GetUser(c echo.Context) *domain.User {
	if user, ok := c.Request().Context().Value(UserKey).(*domain.User); ok {
		return user
	}
	return nil
}

// GetUserID extracts the authenticated user's id from the context
func GetUserID(c echo.Context) int32 {
	if user := GetUser(c); user != nil {
		return user.ID
	}
	return 0
}

// GetSession extracts the verified session from the context
func GetSession(c echo.Context) *service.Session {
	if session, ok := c.Request().Context().Value(SessionKey).(*service.Session); ok {
		return session
	}
	return nil
}

// SetUser stores user in the request context
func SetUser(c echo.Context, user *domain.User) {
	ctx := context.WithValue(c.Request().Context(), UserKey, user)
	c.SetRequest(c.Request().WithContext(ctx))
}

