// Package productsvc - test các hàm thuần của service sản phẩm.
package productsvc

import (
	"math"
	"reflect"
	"strings"
	"testing"

	productmodels "github.com/amritage/fabric-shop-backend/internal/api/product/models"

	"go.mongodb.org/mongo-driver/bson"
)

func TestCountKeywords(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want int
	}{
		{"chuỗi rỗng", "", 0},
		{"một từ khóa", "cotton", 1},
		{"nhiều từ khóa", "cotton,linen,silk", 3},
		{"bỏ phần tử rỗng và khoảng trắng", "cotton, ,linen,,  silk ", 3},
		{"chỉ toàn dấu phẩy", ",,,", 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CountKeywords(tc.in); got != tc.want {
				t.Errorf("CountKeywords(%q) = %d, muốn %d", tc.in, got, tc.want)
			}
		})
	}
}

func TestValidateKeywordsLimit(t *testing.T) {
	within := strings.TrimSuffix(strings.Repeat("kw,", MaxKeywords), ",")
	if err := validateKeywords(within); err != nil {
		t.Errorf("validateKeywords với %d từ khóa lỗi: %v", MaxKeywords, err)
	}

	over := within + ",kw"
	if err := validateKeywords(over); err == nil {
		t.Errorf("validateKeywords với %d từ khóa phải bị từ chối", MaxKeywords+1)
	}
}

func TestRangeBounds(t *testing.T) {
	cases := []struct {
		value   float64
		wantMin float64
		wantMax float64
	}{
		{100, 85, 115},
		{200, 170, 230},
		{0, 0, 0},
		{10, 8.5, 11.5},
	}

	for _, tc := range cases {
		min, max := RangeBounds(tc.value)
		if math.Abs(min-tc.wantMin) > 1e-9 || math.Abs(max-tc.wantMax) > 1e-9 {
			t.Errorf("RangeBounds(%g) = (%g, %g), muốn (%g, %g)", tc.value, min, max, tc.wantMin, tc.wantMax)
		}
	}
}

func TestIdentifierExpansionFilter(t *testing.T) {
	// Ba bản ghi khớp dải, hai identifier trùng nhau: filter mở rộng phải
	// khử trùng lặp giữ thứ tự xuất hiện đầu tiên
	matched := []productmodels.Product{
		{ProductIdentifier: "FAB-1"},
		{ProductIdentifier: "FAB-2"},
		{ProductIdentifier: "FAB-1"},
	}

	filter := identifierExpansionFilter(matched)

	inner, ok := filter["productIdentifier"].(bson.M)
	if !ok {
		t.Fatalf("filter[\"productIdentifier\"] là %T, muốn bson.M", filter["productIdentifier"])
	}
	got, ok := inner["$in"].([]string)
	if !ok {
		t.Fatalf("inner[\"$in\"] là %T, muốn []string", inner["$in"])
	}
	want := []string{"FAB-1", "FAB-2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("$in = %v, muốn %v", got, want)
	}

	// Không có bản ghi nào thì $in rỗng, truy vấn mở rộng trả về rỗng
	empty := identifierExpansionFilter(nil)
	inner, _ = empty["productIdentifier"].(bson.M)
	if ids, _ := inner["$in"].([]string); len(ids) != 0 {
		t.Errorf("filter từ danh sách rỗng có $in = %v, muốn rỗng", ids)
	}
}

func TestRangeFieldsAllowList(t *testing.T) {
	want := []string{"gsm", "oz", "cm", "inch", "salesPrice", "purchasePrice", "quantity"}
	for _, f := range want {
		if !rangeFields[f] {
			t.Errorf("trường %q phải được phép lọc theo dải", f)
		}
	}
	if rangeFields["rating_value"] {
		t.Error("rating_value không được phép lọc theo dải")
	}
	if len(rangeFields) != len(want) {
		t.Errorf("rangeFields có %d trường, muốn %d", len(rangeFields), len(want))
	}
}

func TestFacetFilterFieldsAllowList(t *testing.T) {
	want := []string{
		"newCategoryId", "structureId", "contentId", "finishId", "designId",
		"colorId", "motifsizeId", "suitableforId", "vendorId", "groupcodeId",
	}
	for _, f := range want {
		if !facetFilterFields[f] {
			t.Errorf("trường %q phải được phép lọc exact-match", f)
		}
	}
	// Sub-facet không có endpoint lọc riêng
	if facetFilterFields["subfinishId"] {
		t.Error("subfinishId không nằm trong danh sách lọc facet")
	}
	if len(facetFilterFields) != len(want) {
		t.Errorf("facetFilterFields có %d trường, muốn %d", len(facetFilterFields), len(want))
	}
}

func TestFlagFieldsAllowList(t *testing.T) {
	want := []string{"popularproduct", "productoffer", "topratedproduct"}
	for _, f := range want {
		if !flagFields[f] {
			t.Errorf("trường %q phải là cờ hiển thị", f)
		}
	}
	if len(flagFields) != len(want) {
		t.Errorf("flagFields có %d trường, muốn %d", len(flagFields), len(want))
	}
}
