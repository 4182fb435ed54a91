// File: internal/dto/signup_request.go
package dto

// SignupRequest 定義註冊表單欄位 (form data)
type SignupRequest struct {
	// 使用者姓名，最長 50 字元
	Name string `form:"name" validate:"required,max=50"`

	// 使用者 Email，須為合法格式，比對不轉小寫
	Email string `form:"email" validate:"required,email"`

	// 使用者密碼（明文僅存在於請求中）
	Password string `form:"password" validate:"required"`
}
