// File: internal/dto/validate.go
package dto

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FirstError 將驗證錯誤轉為單一句人話訊息
// 策略為 fail-fast：只回報第一個失敗欄位，不彙整全部錯誤
func FirstError(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			return field + " is required"
		case "email":
			return field + " must be a valid email address"
		case "max":
			return field + " must be at most " + fe.Param() + " characters"
		case "min":
			return field + " must be at least " + fe.Param() + " characters"
		}
		return field + " is invalid"
	}
	return err.Error()
}
