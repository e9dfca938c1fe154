// Package authsvc - service cho domain auth: phát hành/kiểm tra JWT và OTP đăng nhập.
package authsvc

import (
	"time"

	authmodels "github.com/amritage/fabric-shop-backend/internal/api/auth/models"
	"github.com/amritage/fabric-shop-backend/internal/common"

	"github.com/dgrijalva/jwt-go"
)

// TokenLifetime là thời gian sống của JWT đăng nhập
const TokenLifetime = 48 * time.Hour

// GenerateToken phát hành JWT cho một email đã xác thực OTP thành công
func GenerateToken(email, secret string) (string, error) {
	now := time.Now()
	claims := authmodels.LoginClaims{
		Email: email,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(TokenLifetime).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", common.NewError(
			common.ErrCodeAuthToken,
			"Không thể phát hành token",
			common.StatusInternalServerError,
			err,
		)
	}
	return signed, nil
}

// VerifyToken kiểm tra chữ ký và hạn của JWT, trả về claims nếu hợp lệ
func VerifyToken(tokenString, secret string) (*authmodels.LoginClaims, error) {
	claims := &authmodels.LoginClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrTokenInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		if vErr, ok := err.(*jwt.ValidationError); ok && vErr.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrTokenInvalid
	}
	if !token.Valid {
		return nil, common.ErrTokenInvalid
	}
	return claims, nil
}
