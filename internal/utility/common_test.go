package utility

import (
	"testing"
)

func TestValidateEmail(t *testing.T) {
	valid := []string{"a@b.vn", "sales@shop.com.vn", "ten.ho+tag@example.com"}
	for _, email := range valid {
		if err := ValidateEmail(email); err != nil {
			t.Errorf("ValidateEmail(%q) lỗi: %v", email, err)
		}
	}

	invalid := []string{"", "khong-phai-email", "a@", "@b.vn", "a b@c.vn"}
	for _, email := range invalid {
		if err := ValidateEmail(email); err == nil {
			t.Errorf("ValidateEmail(%q) phải bị từ chối", email)
		}
	}
}

func TestString2ObjectID(t *testing.T) {
	id, err := String2ObjectID("507f1f77bcf86cd799439011")
	if err != nil {
		t.Fatalf("String2ObjectID lỗi với hex hợp lệ: %v", err)
	}
	if id.Hex() != "507f1f77bcf86cd799439011" {
		t.Errorf("id.Hex() = %q, muốn giữ nguyên giá trị", id.Hex())
	}

	if _, err := String2ObjectID("xyz"); err == nil {
		t.Error("String2ObjectID phải từ chối chuỗi không phải hex 24 ký tự")
	}
}

func TestToMap(t *testing.T) {
	type doc struct {
		Name  string `bson:"name"`
		Image string `bson:"image,omitempty"`
	}

	m, err := ToMap(doc{Name: "cotton"})
	if err != nil {
		t.Fatalf("ToMap lỗi: %v", err)
	}
	if m["name"] != "cotton" {
		t.Errorf("m[\"name\"] = %v, muốn 'cotton'", m["name"])
	}
	if _, ok := m["image"]; ok {
		t.Error("trường omitempty rỗng không được xuất hiện trong map")
	}
}
