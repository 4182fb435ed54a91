// File: internal/handler/pages.go
package handler

import (
	"errors"
	"net/http"

	"membergate/internal/middleware"
	"membergate/internal/view"

	"github.com/labstack/echo/v4"
)

// HomeHandler 渲染首頁
func HomeHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.Render(http.StatusOK, "home.html", view.Page{Identity: middleware.CurrentIdentity(c)})
	}
}

// NotFoundHandler 承接所有未匹配的 method+path，匿名也能安全渲染
func NotFoundHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.Render(http.StatusNotFound, "not_found.html", view.Page{Identity: middleware.CurrentIdentity(c)})
	}
}

// ErrorHandler 將 404/405 一律渲染為 404 頁（method 不符也算未匹配）
// 其餘錯誤交回框架預設處理
func ErrorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		var he *echo.HTTPError
		if errors.As(err, &he) && (he.Code == http.StatusNotFound || he.Code == http.StatusMethodNotAllowed) {
			if !c.Response().Committed {
				if rerr := c.Render(http.StatusNotFound, "not_found.html", view.Page{Identity: middleware.CurrentIdentity(c)}); rerr == nil {
					return
				}
			}
		}
		e.DefaultHTTPErrorHandler(err, c)
	}
}
