// Package authsvc - test vòng phát hành và kiểm tra JWT.
package authsvc

import (
	"errors"
	"testing"

	"github.com/amritage/fabric-shop-backend/internal/common"
)

func TestTokenRoundtrip(t *testing.T) {
	secret := "test-secret"
	email := "admin@shop.vn"

	token, err := GenerateToken(email, secret)
	if err != nil {
		t.Fatalf("GenerateToken lỗi: %v", err)
	}
	if token == "" {
		t.Fatal("GenerateToken trả về chuỗi rỗng")
	}

	claims, err := VerifyToken(token, secret)
	if err != nil {
		t.Fatalf("VerifyToken lỗi với token hợp lệ: %v", err)
	}
	if claims.Email != email {
		t.Errorf("claims.Email = %q, muốn %q", claims.Email, email)
	}
	if claims.ExpiresAt <= claims.IssuedAt {
		t.Error("ExpiresAt phải lớn hơn IssuedAt")
	}
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken("admin@shop.vn", "secret-a")
	if err != nil {
		t.Fatalf("GenerateToken lỗi: %v", err)
	}

	_, err = VerifyToken(token, "secret-b")
	if !errors.Is(err, common.ErrTokenInvalid) {
		t.Errorf("VerifyToken với sai secret trả về %v, muốn ErrTokenInvalid", err)
	}
}

func TestVerifyTokenGarbage(t *testing.T) {
	_, err := VerifyToken("khong-phai-jwt", "secret")
	if !errors.Is(err, common.ErrTokenInvalid) {
		t.Errorf("VerifyToken với chuỗi rác trả về %v, muốn ErrTokenInvalid", err)
	}
}
