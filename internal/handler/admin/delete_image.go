// File: internal/handler/admin/delete_image.go
package admin

import (
	"log"
	"net/http"

	"membergate/internal/gallery"

	"github.com/labstack/echo/v4"
)

// DeleteImageHandler 刪除圖庫中的 :filename
// 檔名必須是單一路徑片段且副檔名在允許清單內，否則回 400 純文字
// 刪檔失敗只記 log，使用者端仍導回圖庫
func DeleteImageHandler(g *gallery.Catalog) echo.HandlerFunc {
	return func(c echo.Context) error {
		name := c.Param("filename")
		if !gallery.SafeName(name) {
			return c.String(http.StatusBadRequest, "invalid filename")
		}
		if _, ok := gallery.MIMEType(name); !ok {
			return c.String(http.StatusBadRequest, "unsupported media type")
		}
		if err := g.Remove(name); err != nil {
			log.Printf("刪除圖片 %s 失敗: %v", name, err)
		}
		return c.Redirect(http.StatusFound, "/members")
	}
}
