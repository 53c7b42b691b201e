package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpctx "github.com/clipstream/account-server/internal/api/http/context"
	"github.com/clipstream/account-server/internal/api/http/handler"
	"github.com/clipstream/account-server/internal/mocks"
	"github.com/clipstream/account-server/internal/password"
	"github.com/clipstream/account-server/internal/service"
	"github.com/clipstream/account-server/internal/testutil"
)

func newTestRouter(t *testing.T) *Router {
	t.Helper()

	lg := testutil.MakeNoopLogger()
	users := &mocks.UserStore{}
	manager := &mocks.TokenManager{}
	storage := &mocks.MediaStorage{}

	tokenService := service.NewTokenService(manager, users, lg)
	userService := service.NewUser(users, password.NewBcrypt(0), storage, tokenService, lg)

	cookies := handler.NewCookieHelper("", false, 3600)

	return New(userService, tokenService, users, httpctx.NewManager(), cookies, t.TempDir(), lg)
}

func TestRouter_Register_Routes(t *testing.T) {
	engine := newTestRouter(t).Register()

	want := []string{
		"POST /api/v1/users/register",
		"POST /api/v1/users/login",
		"POST /api/v1/users/refresh-token",
		"POST /api/v1/users/logout",
		"POST /api/v1/users/change-password",
		"GET /api/v1/users/current-user",
		"PATCH /api/v1/users/update-account",
		"PATCH /api/v1/users/avatar",
		"PATCH /api/v1/users/cover-image",
		"GET /healthz",
	}

	got := make(map[string]bool, len(want))
	for _, r := range engine.Routes() {
		got[r.Method+" "+r.Path] = true
	}

	for _, route := range want {
		assert.True(t, got[route], "missing route %s", route)
	}
}

func TestRouter_Register_HealthEndpoint(t *testing.T) {
	engine := newTestRouter(t).Register()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestRouter_Register_SecuredRouteRejectsAnonymous(t *testing.T) {
	engine := newTestRouter(t).Register()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/current-user", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
