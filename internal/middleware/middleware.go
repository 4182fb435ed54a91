package middleware

import (
	"net/http"

	"membergate/internal/session"
	"membergate/internal/view"

	"github.com/labstack/echo/v4"
)

const ContextIdentityKey = "identity"

// LoadSession 從 cookie 取出 token 並載入工作階段
// 無 cookie、token 無效或紀錄已被 TTL 清除時一律視為匿名
// 快取不可用則讓錯誤往外傳，由框架回 5xx
func LoadSession(sm *session.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ident := session.Anonymous()
			if token := sm.ReadToken(c.Request()); token != "" {
				s, err := sm.Load(c.Request().Context(), token)
				if err != nil {
					return err
				}
				ident = session.IdentityOf(s)
			}
			c.Set(ContextIdentityKey, ident)
			return next(c)
		}
	}
}

// CurrentIdentity 取出請求攜帶的身分，未設定時回傳匿名
func CurrentIdentity(c echo.Context) session.Identity {
	if ident, ok := c.Get(ContextIdentityKey).(session.Identity); ok {
		return ident
	}
	return session.Anonymous()
}

// RequireLogin 未登入時導向登入頁（是轉址，不是 401）
func RequireLogin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !CurrentIdentity(c).LoggedIn() {
			return c.Redirect(http.StatusFound, "/login")
		}
		return next(c)
	}
}

// RequireAdmin 先套用 RequireLogin，再檢查工作階段快照中的 user_type
// 非管理員時渲染 403 頁面（不是轉址），頁面帶出目前身分
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return RequireLogin(func(c echo.Context) error {
		ident := CurrentIdentity(c)
		if !ident.Admin() {
			return c.Render(http.StatusForbidden, "forbidden.html", view.Page{Identity: ident})
		}
		return next(c)
	})
}
