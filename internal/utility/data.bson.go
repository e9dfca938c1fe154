package utility

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// ToMap chuyển đổi struct thành map thông qua vòng bson marshal/unmarshal.
// Dùng khi cần build document $set từ model mà vẫn tôn trọng các bson tag.
func ToMap(s interface{}) (map[string]interface{}, error) {
	var stringInterfaceMap map[string]interface{}
	itr, err := bson.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("bson marshal failed: %w", err)
	}
	err = bson.Unmarshal(itr, &stringInterfaceMap)
	if err != nil {
		return nil, fmt.Errorf("bson unmarshal failed: %w", err)
	}
	return stringInterfaceMap, nil
}

// CustomBson dùng để tạo các document update ($set, $unset, $push) từ struct
type CustomBson struct{}

// BsonWrapper chứa các toán tử update cơ bản của Mongo
type BsonWrapper struct {
	// Set sẽ đặt dữ liệu trong db, mã hóa thành { $set : {...} }
	Set interface{} `json:"$set,omitempty" bson:"$set,omitempty"`

	// Unset xóa một trường cụ thể, mã hóa thành { $unset: {...} }
	Unset interface{} `json:"$unset,omitempty" bson:"$unset,omitempty"`

	// Push thêm một giá trị vào một trường mảng
	Push interface{} `json:"$push,omitempty" bson:"$push,omitempty"`
}

// Set tạo truy vấn $set từ struct
func (customBson *CustomBson) Set(data interface{}) (map[string]interface{}, error) {
	s := BsonWrapper{Set: data}
	return ToMap(s)
}

// Unset tạo truy vấn $unset từ struct
func (customBson *CustomBson) Unset(data interface{}) (map[string]interface{}, error) {
	s := BsonWrapper{Unset: data}
	return ToMap(s)
}

// Push tạo truy vấn $push từ struct
func (customBson *CustomBson) Push(data interface{}) (map[string]interface{}, error) {
	s := BsonWrapper{Push: data}
	return ToMap(s)
}
