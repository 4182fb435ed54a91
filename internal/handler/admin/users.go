// File: internal/handler/admin/users.go
package admin

import (
	"net/http"

	"membergate/internal/database"
	"membergate/internal/middleware"
	"membergate/internal/repository"
	"membergate/internal/view"

	"github.com/labstack/echo/v4"
)

// ListUsersHandler 渲染全部使用者清單，不分頁
func ListUsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		users, err := repository.ListUsers(c.Request().Context(), db)
		if err != nil {
			return err
		}
		return c.Render(http.StatusOK, "admin.html", view.Page{
			Identity: middleware.CurrentIdentity(c),
			Users:    users,
		})
	}
}
