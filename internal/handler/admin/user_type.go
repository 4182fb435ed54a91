// File: internal/handler/admin/user_type.go
package admin

import (
	"net/http"

	"membergate/internal/database"
	"membergate/internal/model"
	"membergate/internal/repository"

	"github.com/labstack/echo/v4"
)

// PromoteUserHandler 將 :email 指定的使用者設為 admin，重複執行為 no-op
// 已發行工作階段的快照不受影響，重新登入後才取得新權限
func PromoteUserHandler(db database.DB) echo.HandlerFunc {
	return setUserTypeHandler(db, model.UserTypeAdmin)
}

// DemoteUserHandler 將 :email 指定的使用者設回 user
// 沒有自我降級與最後一位管理員的保護，管理員可能把系統鎖在無人可管的狀態
func DemoteUserHandler(db database.DB) echo.HandlerFunc {
	return setUserTypeHandler(db, model.UserTypeUser)
}

func setUserTypeHandler(db database.DB, userType model.UserType) echo.HandlerFunc {
	return func(c echo.Context) error {
		email := c.Param("email")
		if err := repository.SetUserType(c.Request().Context(), db, email, userType); err != nil {
			return err
		}
		return c.Redirect(http.StatusFound, "/admin")
	}
}
