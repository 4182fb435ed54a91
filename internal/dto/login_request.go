// File: internal/dto/login_request.go
package dto

// LoginRequest 定義登入表單欄位 (form data)
type LoginRequest struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}
