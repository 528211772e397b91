package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"github.com/finanzas-app/finanzas-backend/internal/config"
	"github.com/finanzas-app/finanzas-backend/internal/domain"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles authentication-related business logic
type AuthService struct {
	userRepo domain.UserRepository
	demo     config.DemoConfig
	now      func() time.Time
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo domain.UserRepository, demo config.DemoConfig) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		demo:     demo,
		now:      time.Now,
	}
}

// DemoOpenID is the external id stored for a demo login
func DemoOpenID(username string) string {
	return "demo:" + username
}

// DemoLogin checks the shared demo credential and upserts the matching user
func (s *AuthService) DemoLogin(ctx context.Context, username, password string) (*domain.User, error) {
	if !s.demo.Enabled {
		return nil, domain.ErrDemoAuthDisabled
	}
	if s.demo.Username == "" || s.demo.Password == "" {
		log.Error().Msg("Demo auth enabled without DEMO_USERNAME/DEMO_PASSWORD")
		return nil, domain.ErrDemoAuthMisconfigured
	}

	username = strings.TrimSpace(username)
	if !s.credentialsMatch(username, password) {
		log.Warn().Str("username", username).Msg("Demo login rejected")
		return nil, domain.ErrInvalidCredentials
	}

	openID := DemoOpenID(username)
	loginMethod := domain.LoginMethodDemo
	input := &domain.UpsertUserInput{
		OpenID:       openID,
		Name:         &username,
		LoginMethod:  &loginMethod,
		LastSignedIn: s.now().UTC(),
	}
	if s.demo.OwnerOpenID != "" && openID == s.demo.OwnerOpenID {
		admin := domain.RoleAdmin
		input.Role = &admin
	}

	user, err := s.userRepo.Upsert(ctx, input)
	if err != nil {
		log.Error().Err(err).Str("open_id", openID).Msg("Failed to upsert demo user")
		return nil, err
	}

	log.Info().Int32("user_id", user.ID).Str("open_id", openID).Msg("Demo user signed in")
	return user, nil
}

func (s *AuthService) credentialsMatch(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.demo.Username)) == 1

	var passOK bool
	if strings.HasPrefix(s.demo.Password, "$2") {
		passOK = bcrypt.CompareHashAndPassword([]byte(s.demo.Password), []byte(password)) == nil
	} else {
		passOK = subtle.ConstantTimeCompare([]byte(password), []byte(s.demo.Password)) == 1
	}
	return userOK && passOK
}

// ResolveUser loads the user a verified session points at.
// Unknown users map to domain.ErrUnauthorized.
func (s *AuthService) ResolveUser(ctx context.Context, openID string) (*domain.User, error) {
	user, err := s.userRepo.GetByOpenID(ctx, openID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}
	return user, nil
}

// GetUserByID retrieves a user by their ID
func (s *AuthService) GetUserByID(ctx context.Context, id int32) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}
