package registry

import (
	"errors"
	"testing"
)

func TestRegisterAndGet(t *testing.T) {
	r := NewRegistry[int]()

	isNew, err := r.Register("products", 1)
	if err != nil {
		t.Fatalf("Register lỗi: %v", err)
	}
	if !isNew {
		t.Error("Register lần đầu phải trả về isNew=true")
	}

	isNew, err = r.Register("products", 2)
	if err != nil {
		t.Fatalf("Register ghi đè lỗi: %v", err)
	}
	if isNew {
		t.Error("Register ghi đè phải trả về isNew=false")
	}

	item, exists := r.Get("products")
	if !exists || item != 2 {
		t.Errorf("Get(\"products\") = (%d, %v), muốn (2, true)", item, exists)
	}

	if _, exists := r.Get("orders"); exists {
		t.Error("Get với key chưa đăng ký phải trả về exists=false")
	}

	if _, err := r.Register("", 3); err == nil {
		t.Error("Register với name rỗng phải bị từ chối")
	}
}

func TestGetOrCreate(t *testing.T) {
	r := NewRegistry[string]()
	calls := 0
	creator := func() (string, error) {
		calls++
		return "categories", nil
	}

	for i := 0; i < 3; i++ {
		item, err := r.GetOrCreate("categories", creator)
		if err != nil {
			t.Fatalf("GetOrCreate lỗi: %v", err)
		}
		if item != "categories" {
			t.Errorf("GetOrCreate trả về %q, muốn 'categories'", item)
		}
	}
	if calls != 1 {
		t.Errorf("creator được gọi %d lần, muốn 1", calls)
	}

	if _, err := r.GetOrCreate("fail", func() (string, error) {
		return "", errors.New("lỗi tạo item")
	}); err == nil {
		t.Error("GetOrCreate phải trả về lỗi khi creator thất bại")
	}
}

func TestClear(t *testing.T) {
	r := NewRegistry[int]()
	if _, err := r.Register("otps", 7); err != nil {
		t.Fatalf("Register lỗi: %v", err)
	}

	cleaned := false
	deleted, err := r.Clear("otps", func(item int) error {
		cleaned = true
		return nil
	})
	if err != nil {
		t.Fatalf("Clear lỗi: %v", err)
	}
	if !deleted || !cleaned {
		t.Errorf("Clear = (deleted=%v, cleaned=%v), muốn cả hai true", deleted, cleaned)
	}

	deleted, err = r.Clear("otps", nil)
	if err != nil {
		t.Fatalf("Clear key không tồn tại lỗi: %v", err)
	}
	if deleted {
		t.Error("Clear key không tồn tại phải trả về deleted=false")
	}
}
