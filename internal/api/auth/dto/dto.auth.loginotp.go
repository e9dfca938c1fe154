// Package dto - DTO cho domain auth.
package dto

// RequestOtpInput dữ liệu yêu cầu cấp OTP
type RequestOtpInput struct {
	Email string `json:"email" validate:"required,email"`
}

// VerifyOtpInput dữ liệu xác thực OTP
type VerifyOtpInput struct {
	Email string `json:"email" validate:"required,email"`
	Otp   string `json:"otp" validate:"required,len=6,numeric"`
}
