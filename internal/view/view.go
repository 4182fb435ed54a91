// File: internal/view/view.go
package view

import (
	"embed"
	"html/template"
	"io"

	"membergate/internal/model"
	"membergate/internal/session"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Page 是所有頁面共用的渲染資料
type Page struct {
	Identity session.Identity
	Error    string
	Name     string
	Email    string
	Images   []string
	Users    []model.User
}

// Renderer 以 html/template 實作 echo.Renderer
type Renderer struct {
	templates *template.Template
}

// NewRenderer 解析內嵌模板
func NewRenderer() (*Renderer, error) {
	t, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{templates: t}, nil
}

// Render 依名稱渲染模板
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
