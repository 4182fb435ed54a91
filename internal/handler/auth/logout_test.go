// File: internal/handler/auth/logout_test.go
package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"membergate/internal/cache"
	"membergate/internal/session"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func logoutCtx(t *testing.T, e *echo.Echo, sm *session.Manager, token string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	if token != "" {
		seed := httptest.NewRequest(http.MethodGet, "/", nil)
		seedRec := httptest.NewRecorder()
		require.NoError(t, sm.WriteToken(seed, seedRec, token))
		req.Header.Set("Cookie", strings.Split(seedRec.Header().Get("Set-Cookie"), ";")[0])
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestLogoutHandler(t *testing.T) {
	e := newAuthEcho(t)

	// with a session: the record is deleted and the cookie expires
	deleted := ""
	c := &cache.FakeCache{
		DelFn: func(_ context.Context, keys ...string) *redis.IntCmd {
			deleted = keys[0]
			return redis.NewIntResult(1, nil)
		},
	}
	sm := session.NewManager(c, "secret")
	ctx, rec := logoutCtx(t, e, sm, "tok")
	require.NoError(t, LogoutHandler(sm)(ctx))
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/", rec.Header().Get("Location"))
	require.Equal(t, "session:tok", deleted)
	require.Contains(t, rec.Header().Get("Set-Cookie"), "Max-Age=0")

	// without a cookie: still redirects home
	sm = session.NewManager(&cache.FakeCache{}, "secret")
	ctx, rec = logoutCtx(t, e, sm, "")
	require.NoError(t, LogoutHandler(sm)(ctx))
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/", rec.Header().Get("Location"))

	// session store unreachable
	bad := &cache.FakeCache{
		DelFn: func(context.Context, ...string) *redis.IntCmd {
			return redis.NewIntResult(0, errors.New("down"))
		},
	}
	sm = session.NewManager(bad, "secret")
	ctx, _ = logoutCtx(t, e, sm, "tok")
	require.Error(t, LogoutHandler(sm)(ctx))
}
