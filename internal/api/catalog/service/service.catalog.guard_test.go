// Package catalogsvc - test wiring registry tĩnh của IntegrityGuard.
package catalogsvc

import (
	"testing"

	"github.com/amritage/fabric-shop-backend/internal/common"
	"github.com/amritage/fabric-shop-backend/internal/global"
)

// initTestColNames gán tên collection cho test, bình thường việc này do
// cmd/server làm lúc boot
func initTestColNames() {
	global.MongoDB_ColNames.Categories = "categories"
	global.MongoDB_ColNames.Structures = "structures"
	global.MongoDB_ColNames.Contents = "contents"
	global.MongoDB_ColNames.Finishes = "finishes"
	global.MongoDB_ColNames.Designs = "designs"
	global.MongoDB_ColNames.Colors = "colors"
	global.MongoDB_ColNames.Motifsizes = "motifsizes"
	global.MongoDB_ColNames.Suitablefors = "suitablefors"
	global.MongoDB_ColNames.Vendors = "vendors"
	global.MongoDB_ColNames.GroupCodes = "groupcodes"
	global.MongoDB_ColNames.SubFinishes = "subfinishes"
	global.MongoDB_ColNames.SubStructures = "substructures"
	global.MongoDB_ColNames.SubSuitables = "subsuitables"
	global.MongoDB_ColNames.Products = "products"
}

func TestIntegrityGuardKinds(t *testing.T) {
	initTestColNames()
	guard := NewIntegrityGuard()

	kinds := guard.Kinds()
	if len(kinds) != 13 {
		t.Fatalf("guard quản lý %d kind, muốn 13 (mười facet + ba sub-facet)", len(kinds))
	}

	want := []string{
		"category", "structure", "content", "finish", "design",
		"color", "motifsize", "suitablefor", "vendor", "groupcode",
		"subfinish", "substructure", "subsuitable",
	}
	for _, kind := range want {
		if guard.Rules(kind) == nil {
			t.Errorf("kind %q không có rule nào", kind)
		}
	}
}

// ruleFor tìm rule trỏ đến một collection trong danh sách rule của kind
func ruleFor(rules []DependentRule, collection string) *DependentRule {
	for i := range rules {
		if rules[i].CollectionName == collection {
			return &rules[i]
		}
	}
	return nil
}

func TestIntegrityGuardProductForeignKeys(t *testing.T) {
	initTestColNames()
	guard := NewIntegrityGuard()

	// Mọi facet đều bị product chặn, mỗi kind qua đúng khóa ngoại của nó.
	// Lưu ý category dùng newCategoryId chứ không phải categoryId.
	wantFK := map[string]string{
		"category":    "newCategoryId",
		"structure":   "structureId",
		"content":     "contentId",
		"finish":      "finishId",
		"design":      "designId",
		"color":       "colorId",
		"motifsize":   "motifsizeId",
		"suitablefor": "suitableforId",
		"vendor":      "vendorId",
		"groupcode":   "groupcodeId",

		"subfinish":    "subfinishId",
		"substructure": "substructureId",
		"subsuitable":  "subsuitableId",
	}

	for kind, fk := range wantFK {
		rule := ruleFor(guard.Rules(kind), "products")
		if rule == nil {
			t.Errorf("kind %q không có rule chặn bởi products", kind)
			continue
		}
		if rule.ForeignKey != fk {
			t.Errorf("kind %q có khóa ngoại %q trên products, muốn %q", kind, rule.ForeignKey, fk)
		}
		if rule.Kind != "product" {
			t.Errorf("kind %q báo blocker là %q, muốn 'product'", kind, rule.Kind)
		}
	}
}

func TestIntegrityGuardSubFacetRules(t *testing.T) {
	initTestColNames()
	guard := NewIntegrityGuard()

	// finish/structure/suitablefor còn bị sub-facet tương ứng chặn
	cases := []struct {
		kind          string
		subCollection string
		foreignKey    string
	}{
		{"finish", "subfinishes", "finishId"},
		{"structure", "substructures", "structureId"},
		{"suitablefor", "subsuitables", "suitableforId"},
	}

	for _, tc := range cases {
		rules := guard.Rules(tc.kind)
		if len(rules) != 2 {
			t.Errorf("kind %q có %d rule, muốn 2 (products + %s)", tc.kind, len(rules), tc.subCollection)
		}
		rule := ruleFor(rules, tc.subCollection)
		if rule == nil {
			t.Errorf("kind %q thiếu rule chặn bởi %s", tc.kind, tc.subCollection)
			continue
		}
		if rule.ForeignKey != tc.foreignKey {
			t.Errorf("kind %q có khóa ngoại %q trên %s, muốn %q", tc.kind, rule.ForeignKey, tc.subCollection, tc.foreignKey)
		}
	}

	// Các facet còn lại chỉ bị products chặn
	singles := []string{"category", "content", "design", "color", "motifsize", "vendor", "groupcode"}
	for _, kind := range singles {
		if n := len(guard.Rules(kind)); n != 1 {
			t.Errorf("kind %q có %d rule, muốn 1 (chỉ products)", kind, n)
		}
	}
}

func TestInUseErrorWireShape(t *testing.T) {
	err := InUseError("category", []Blocker{{Kind: "product", Count: 3}})

	appErr, ok := err.(*common.Error)
	if !ok {
		t.Fatalf("InUseError trả về %T, muốn *common.Error", err)
	}
	if appErr.StatusCode != common.StatusBadRequest {
		t.Errorf("StatusCode = %d, muốn 400", appErr.StatusCode)
	}

	details, ok := appErr.Details.(map[string]interface{})
	if !ok {
		t.Fatalf("Details là %T, muốn map[string]interface{}", appErr.Details)
	}
	if inUse, _ := details["inUse"].(bool); !inUse {
		t.Error("Details thiếu inUse=true")
	}
	if count, _ := details["productCount"].(int64); count != 3 {
		t.Errorf("productCount = %v, muốn 3", details["productCount"])
	}
}

func TestInUseErrorMultipleBlockers(t *testing.T) {
	// Xóa finish bị chặn đồng thời bởi products và subfinishes:
	// response phải mang đầy đủ count của TẤT CẢ các kind, không dừng ở kind đầu
	err := InUseError("finish", []Blocker{
		{Kind: "product", Count: 2},
		{Kind: "subfinish", Count: 5},
	})

	appErr, ok := err.(*common.Error)
	if !ok {
		t.Fatalf("InUseError trả về %T, muốn *common.Error", err)
	}

	details, ok := appErr.Details.(map[string]interface{})
	if !ok {
		t.Fatalf("Details là %T, muốn map[string]interface{}", appErr.Details)
	}
	if inUse, _ := details["inUse"].(bool); !inUse {
		t.Error("Details thiếu inUse=true")
	}
	if count, _ := details["productCount"].(int64); count != 2 {
		t.Errorf("productCount = %v, muốn 2", details["productCount"])
	}
	if count, _ := details["subfinishCount"].(int64); count != 5 {
		t.Errorf("subfinishCount = %v, muốn 5", details["subfinishCount"])
	}
}
