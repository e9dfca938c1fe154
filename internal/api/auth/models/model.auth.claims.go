package models

import (
	"github.com/dgrijalva/jwt-go"
)

// LoginClaims là payload JWT cấp sau khi verify OTP thành công
type LoginClaims struct {
	Email string `json:"email"`
	jwt.StandardClaims
}
