package common

import (
	"errors"
	"fmt"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
)

func TestConvertMongoError(t *testing.T) {
	if got := ConvertMongoError(nil); got != nil {
		t.Errorf("ConvertMongoError(nil) = %v, muốn nil", got)
	}

	if got := ConvertMongoError(mongo.ErrNoDocuments); !errors.Is(got, ErrNotFound) {
		t.Errorf("ErrNoDocuments phải map thành ErrNotFound, nhận %v", got)
	}

	// ErrNotFound đã được map ở tầng service phải được giữ nguyên
	wrapped := fmt.Errorf("không tìm thấy sản phẩm: %w", ErrNotFound)
	if got := ConvertMongoError(wrapped); !errors.Is(got, ErrNotFound) {
		t.Errorf("lỗi đã wrap ErrNotFound phải giữ nguyên, nhận %v", got)
	}

	dup := mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000}}}
	if got := ConvertMongoError(dup); !errors.Is(got, ErrMongoDuplicate) {
		t.Errorf("lỗi duplicate key phải map thành ErrMongoDuplicate, nhận %v", got)
	}

	got := ConvertMongoError(errors.New("lỗi không phân loại được"))
	var appErr *Error
	if !errors.As(got, &appErr) {
		t.Fatalf("lỗi không phân loại phải trả về *common.Error, nhận %T", got)
	}
	if appErr.StatusCode != StatusInternalServerError {
		t.Errorf("StatusCode = %d, muốn %d", appErr.StatusCode, StatusInternalServerError)
	}
}

func TestErrorIs(t *testing.T) {
	wrapped := fmt.Errorf("tầng ngoài: %w", ErrInvalidInput)
	if !errors.Is(wrapped, ErrInvalidInput) {
		t.Error("errors.Is phải nhận ra sentinel qua lớp wrap")
	}
	if errors.Is(wrapped, ErrNotFound) {
		t.Error("errors.Is không được khớp sentinel khác")
	}
}
