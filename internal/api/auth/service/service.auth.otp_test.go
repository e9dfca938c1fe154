// Package authsvc - test allow-list và sinh mã OTP.
package authsvc

import (
	"reflect"
	"strconv"
	"testing"
)

func TestParseAllowList(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "danh sách chuẩn",
			in:   "a@shop.vn,b@shop.vn",
			want: []string{"a@shop.vn", "b@shop.vn"},
		},
		{
			name: "trim khoảng trắng và lowercase",
			in:   " Admin@Shop.VN , sales@shop.vn ",
			want: []string{"admin@shop.vn", "sales@shop.vn"},
		},
		{
			name: "bỏ phần tử rỗng",
			in:   "a@shop.vn,,  ,b@shop.vn,",
			want: []string{"a@shop.vn", "b@shop.vn"},
		},
		{
			name: "chuỗi rỗng",
			in:   "",
			want: []string{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseAllowList(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("ParseAllowList(%q) = %v, muốn %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestGenerateOtp(t *testing.T) {
	// OTP luôn là 6 chữ số trong khoảng 100000..999999
	for i := 0; i < 200; i++ {
		otp := GenerateOtp()
		if len(otp) != 6 {
			t.Fatalf("OTP %q có %d ký tự, muốn 6", otp, len(otp))
		}
		n, err := strconv.Atoi(otp)
		if err != nil {
			t.Fatalf("OTP %q không phải số: %v", otp, err)
		}
		if n < 100000 || n > 999999 {
			t.Fatalf("OTP %d nằm ngoài khoảng 100000..999999", n)
		}
	}
}

func TestIsAllowed(t *testing.T) {
	svc := &OtpService{allowed: map[string]struct{}{
		"admin@shop.vn": {},
	}}

	cases := []struct {
		email string
		want  bool
	}{
		{"admin@shop.vn", true},
		{"ADMIN@SHOP.VN", true},
		{"  admin@shop.vn  ", true},
		{"khach@shop.vn", false},
		{"", false},
	}

	for _, tc := range cases {
		if got := svc.IsAllowed(tc.email); got != tc.want {
			t.Errorf("IsAllowed(%q) = %v, muốn %v", tc.email, got, tc.want)
		}
	}
}
