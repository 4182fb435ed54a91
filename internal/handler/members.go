// File: internal/handler/members.go
package handler

import (
	"net/http"

	"membergate/internal/gallery"
	"membergate/internal/middleware"
	"membergate/internal/view"

	"github.com/labstack/echo/v4"
)

// MembersHandler 渲染圖庫頁，每次請求同步重掃目錄
func MembersHandler(g *gallery.Catalog) echo.HandlerFunc {
	return func(c echo.Context) error {
		images, err := g.List()
		if err != nil {
			return err
		}
		return c.Render(http.StatusOK, "members.html", view.Page{
			Identity: middleware.CurrentIdentity(c),
			Images:   images,
		})
	}
}
