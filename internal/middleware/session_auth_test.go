package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/finanzas-app/finanzas-backend/internal/config"
	"github.com/finanzas-app/finanzas-backend/internal/domain"
	"github.com/finanzas-app/finanzas-backend/internal/service"
	"github.com/finanzas-app/finanzas-backend/internal/testutil"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCookie = "app_session_id"

type fixture struct {
	sessions *service.SessionManager
	users    *testutil.MockUserRepository
	auth     *SessionAuthMiddleware
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	sessions, err := service.NewSessionManager(config.SessionConfig{
		Secret:     "middleware-secret",
		CookieName: testCookie,
		Issuer:     "finanzas-backend",
		Audience:   "finanzas-web",
	})
	require.NoError(t, err)

	users := testutil.NewMockUserRepository()
	users.AddUser(&domain.User{ID: 1, OpenID: "demo:demo", Role: domain.RoleUser})
	users.AddUser(&domain.User{ID: 2, OpenID: "demo:owner", Role: domain.RoleAdmin})

	authService := service.NewAuthService(users, config.DemoConfig{})
	return &fixture{
		sessions: sessions,
		users:    users,
		auth:     NewSessionAuthMiddleware(testCookie, sessions, authService),
	}
}

func (f *fixture) request(t *testing.T, openID string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions", nil)
	if openID != "" {
		token, _, err := f.sessions.Issue(openID, "demo")
		require.NoError(t, err)
		req.AddCookie(&http.Cookie{Name: testCookie, Value: token})
	}
	return req
}

func TestAuthenticate(t *testing.T) {
	tests := []struct {
		name       string
		openID     string
		rawCookie  string
		wantStatus int
		wantUserID int32
	}{
		{name: "valid session", openID: "demo:demo", wantStatus: http.StatusOK, wantUserID: 1},
		{name: "missing cookie", wantStatus: http.StatusUnauthorized},
		{name: "garbage cookie", rawCookie: "not-a-jwt", wantStatus: http.StatusUnauthorized},
		{name: "unknown user", openID: "demo:ghost", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			e := echo.New()
			req := f.request(t, tt.openID)
			if tt.rawCookie != "" {
				req.AddCookie(&http.Cookie{Name: testCookie, Value: tt.rawCookie})
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seen int32
			handler := func(c echo.Context) error {
				seen = GetUserID(c)
				return c.NoContent(http.StatusOK)
			}

			require.NoError(t, f.auth.Authenticate()(handler)(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantUserID, seen)
		})
	}
}

func TestAuthenticate_StorageUnavailable(t *testing.T) {
	f := newFixture(t)
	f.users.GetErr = domain.ErrStorageUnavailable
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(f.request(t, "demo:demo"), rec)

	handler := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	require.NoError(t, f.auth.Authenticate()(handler)(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestOptional(t *testing.T) {
	f := newFixture(t)
	e := echo.New()

	for _, openID := range []string{"", "demo:demo"} {
		rec := httptest.NewRecorder()
		c := e.NewContext(f.request(t, openID), rec)

		var user *domain.User
		handler := func(c echo.Context) error {
			user = GetUser(c)
			return c.NoContent(http.StatusOK)
		}

		require.NoError(t, f.auth.Optional()(handler)(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		if openID == "" {
			assert.Nil(t, user)
		} else {
			require.NotNil(t, user)
			assert.Equal(t, int32(1), user.ID)
			assert.NotNil(t, GetSession(c))
		}
	}
}

func TestRequireAdmin(t *testing.T) {
	e := echo.New()
	handler := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	tests := []struct {
		name       string
		user       *domain.User
		wantStatus int
	}{
		{"no user", nil, http.StatusUnauthorized},
		{"regular user", &domain.User{ID: 1, Role: domain.RoleUser}, http.StatusForbidden},
		{"admin", &domain.User{ID: 2, Role: domain.RoleAdmin}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodPost, "/api/v1/admin/seed", nil), rec)
			if tt.user != nil {
				SetUser(c, tt.user)
			}

			require.NoError(t, RequireAdmin()(handler)(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestGetUser_Empty(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil).WithContext(context.Background()), httptest.NewRecorder())

	assert.Nil(t, GetUser(c))
	assert.Equal(t, int32(0), GetUserID(c))
	assert.Nil(t, GetSession(c))
}
