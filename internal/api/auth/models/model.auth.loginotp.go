// Package models - domain auth (đăng nhập OTP).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LoginOtp là mã OTP đang chờ xác thực của một email (login_otps).
// Không có TTL index: bản ghi chỉ bị xóa khi verify thành công hoặc
// bị thay thế, OTP cũ vẫn hợp lệ vô thời hạn.
type LoginOtp struct {
	ID    primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Email string             `json:"email" bson:"email" index:"single:1"`
	Otp   string             `json:"otp" bson:"otp"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
