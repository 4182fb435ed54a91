// File: internal/handler/auth/logout.go
package auth

import (
	"net/http"

	"membergate/internal/session"

	"github.com/labstack/echo/v4"
)

// LogoutHandler 銷毀工作階段紀錄、清除 cookie 後一律導回首頁
func LogoutHandler(sm *session.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		if token := sm.ReadToken(c.Request()); token != "" {
			if err := sm.Destroy(c.Request().Context(), token); err != nil {
				return err
			}
		}
		if err := sm.ClearToken(c.Request(), c.Response()); err != nil {
			return err
		}
		return c.Redirect(http.StatusFound, "/")
	}
}
