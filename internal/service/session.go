package service

import (
	"context"
	"fmt"
	"time"

	"github.com/auth0/go-jwt-middleware/v2/validator"
	"github.com/finanzas-app/finanzas-backend/internal/config"
	"github.com/finanzas-app/finanzas-backend/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

// SessionTTL is the lifetime of a session token and its cookie.
const SessionTTL = 365 * 24 * time.Hour

// SessionClaims contains the custom claims carried by a session token
type SessionClaims struct {
	Name string `json:"name"`
}

// Validate implements validator.CustomClaims
func (c *SessionClaims) Validate(ctx context.Context) error {
	return nil
}

type sessionTokenClaims struct {
	Name string `json:"name"`
	jwt.RegisteredClaims
}

// Session is the identity recovered from a valid token
type Session struct {
	OpenID    string
	Name      string
	ExpiresAt time.Time
}

// SessionManager signs and verifies HS256 session tokens
type SessionManager struct {
	secret    []byte
	issuer    string
	audience  string
	validator *validator.Validator
	now       func() time.Time
}

// NewSessionManager creates a SessionManager from the session configuration
func NewSessionManager(cfg config.SessionConfig) (*SessionManager, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("session secret is empty")
	}
	secret := []byte(cfg.Secret)

	keyFunc := func(ctx context.Context) (interface{}, error) {
		return secret, nil
	}

	jwtValidator, err := validator.New(
		keyFunc,
		validator.HS256,
		cfg.Issuer,
		[]string{cfg.Audience},
		validator.WithCustomClaims(func() validator.CustomClaims {
			return &SessionClaims{}
		}),
		validator.WithAllowedClockSkew(time.Minute),
	)
	if err != nil {
		return nil, fmt.Errorf("create session validator: %w", err)
	}

	return &SessionManager{
		secret:    secret,
		issuer:    cfg.Issuer,
		audience:  cfg.Audience,
		validator: jwtValidator,
		now:       time.Now,
	}, nil
}

// Issue signs a token for the given open id
func (m *SessionManager) Issue(openID, name string) (string, time.Time, error) {
	now := m.now()
	expiresAt := now.Add(SessionTTL)

	claims := sessionTokenClaims{
		Name: name,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Subject:   openID,
			Audience:  jwt.ClaimStrings{m.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign session token: %w", err)
	}
	return token, expiresAt, nil
}

// Verify validates a token and returns the session it carries.
// Every failure maps to domain.ErrUnauthorized.
func (m *SessionManager) Verify(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, domain.ErrUnauthorized
	}

	claims, err := m.validator.ValidateToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}

	validated, ok := claims.(*validator.ValidatedClaims)
	if !ok || validated.RegisteredClaims.Subject == "" {
		return nil, domain.ErrUnauthorized
	}

	session := &Session{
		OpenID:    validated.RegisteredClaims.Subject,
		ExpiresAt: time.Unix(validated.RegisteredClaims.Expiry, 0),
	}
	if custom, ok := validated.CustomClaims.(*SessionClaims); ok {
		session.Name = custom.Name
	}
	return session, nil
}
