// File: internal/handler/auth/signup.go
package auth

import (
	"errors"
	"net/http"

	"membergate/internal/database"
	"membergate/internal/dto"
	"membergate/internal/middleware"
	"membergate/internal/model"
	"membergate/internal/repository"
	"membergate/internal/service"
	"membergate/internal/session"
	"membergate/internal/view"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

// ShowSignupHandler 渲染註冊表單
func ShowSignupHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.Render(http.StatusOK, "signup.html", view.Page{Identity: middleware.CurrentIdentity(c)})
	}
}

// SignupHandler 建立帳號並發行工作階段
// 重複 email 的競態由資料庫唯一約束擋下，落敗方收到相同訊息
func SignupHandler(db database.DB, sm *session.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		rerender := func(msg string, req dto.SignupRequest) error {
			return c.Render(http.StatusOK, "signup.html", view.Page{
				Identity: middleware.CurrentIdentity(c),
				Error:    msg,
				Name:     req.Name,
				Email:    req.Email,
			})
		}

		var req dto.SignupRequest
		if err := c.Bind(&req); err != nil {
			return rerender("invalid form data", req)
		}
		if err := c.Validate(&req); err != nil {
			return rerender(dto.FirstError(err), req)
		}

		// 先查重複，給出友善訊息（email 大小寫敏感精確比對）
		if _, err := repository.GetUserByEmail(c.Request().Context(), db, req.Email); err == nil {
			return rerender("Email already registered", req)
		} else if !errors.Is(err, pgx.ErrNoRows) {
			return err
		}

		hash, err := service.HashPassword(req.Password)
		if err != nil {
			return err
		}

		user := &model.User{
			Name:         req.Name,
			Email:        req.Email,
			PasswordHash: hash,
			UserType:     model.UserTypeUser,
		}
		created, err := repository.CreateUser(c.Request().Context(), db, user)
		if err != nil {
			if repository.IsUniqueViolation(err) {
				return rerender("Email already registered", req)
			}
			return err
		}

		token, err := sm.Create(c.Request().Context(), session.Snapshot{
			Name:     created.Name,
			Email:    created.Email,
			UserType: created.UserType,
		})
		if err != nil {
			return err
		}
		if err := sm.WriteToken(c.Request(), c.Response(), token); err != nil {
			return err
		}
		return c.Redirect(http.StatusSeeOther, "/members")
	}
}
