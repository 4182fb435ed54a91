// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"membergate/internal/database"
	"membergate/internal/gallery"
	"membergate/internal/handler"
	"membergate/internal/handler/admin"
	"membergate/internal/handler/auth"
	"membergate/internal/middleware"
	"membergate/internal/session"
)

// Setup 註冊所有路由與中介層
// 中介層順序固定：載入工作階段 → 登入閘 → 管理員閘
func Setup(e *echo.Echo, db database.DB, sm *session.Manager, g *gallery.Catalog) {
	e.Use(middleware.LoadSession(sm))

	e.GET("/", handler.HomeHandler())

	// 註冊與登入
	e.GET("/signup", auth.ShowSignupHandler())
	e.POST("/signup", auth.SignupHandler(db, sm))
	e.GET("/login", auth.ShowLoginHandler())
	e.POST("/login", auth.LoginHandler(db, sm))
	e.GET("/logout", auth.LogoutHandler(sm), middleware.RequireLogin)

	// 會員圖庫
	e.GET("/members", handler.MembersHandler(g), middleware.RequireLogin)
	e.Static("/images", g.Dir())

	// 管理員專區
	adminGroup := e.Group("/admin", middleware.RequireAdmin)
	adminGroup.GET("", admin.ListUsersHandler(db))
	adminGroup.GET("/promote/:email", admin.PromoteUserHandler(db))
	adminGroup.GET("/demote/:email", admin.DemoteUserHandler(db))
	adminGroup.GET("/delete-image/:filename", admin.DeleteImageHandler(g))

	// 其餘 method+path 一律渲染 404 頁
	e.RouteNotFound("/*", handler.NotFoundHandler())
	e.HTTPErrorHandler = handler.ErrorHandler(e)
}
