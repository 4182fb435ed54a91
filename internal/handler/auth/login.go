// File: internal/handler/auth/login.go
package auth

import (
	"errors"
	"net/http"

	"membergate/internal/database"
	"membergate/internal/dto"
	"membergate/internal/middleware"
	"membergate/internal/repository"
	"membergate/internal/service"
	"membergate/internal/session"
	"membergate/internal/view"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

// 帳號不存在與密碼錯誤必須回同一句話，避免帳號枚舉
const invalidCredentials = "Invalid email or password"

// ShowLoginHandler 渲染登入表單
func ShowLoginHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.Render(http.StatusOK, "login.html", view.Page{Identity: middleware.CurrentIdentity(c)})
	}
}

// LoginHandler 驗證帳密並發行工作階段
func LoginHandler(db database.DB, sm *session.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		rerender := func(msg string, req dto.LoginRequest) error {
			return c.Render(http.StatusOK, "login.html", view.Page{
				Identity: middleware.CurrentIdentity(c),
				Error:    msg,
				Email:    req.Email,
			})
		}

		var req dto.LoginRequest
		if err := c.Bind(&req); err != nil {
			return rerender("invalid form data", req)
		}
		if err := c.Validate(&req); err != nil {
			return rerender(dto.FirstError(err), req)
		}

		user, err := repository.GetUserByEmail(c.Request().Context(), db, req.Email)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return rerender(invalidCredentials, req)
			}
			return err
		}

		authUser, err := service.AuthenticateUser(*user, req.Password)
		if err != nil {
			return rerender(invalidCredentials, req)
		}

		token, err := sm.Create(c.Request().Context(), session.Snapshot{
			Name:     authUser.Name,
			Email:    authUser.Email,
			UserType: authUser.UserType,
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
