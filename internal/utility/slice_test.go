package utility

import (
	"reflect"
	"testing"
)

func TestContains(t *testing.T) {
	s := []string{"gsm", "oz", "cm"}
	if !Contains(s, "oz") {
		t.Error("Contains phải tìm thấy 'oz'")
	}
	if Contains(s, "inch") {
		t.Error("Contains không được tìm thấy 'inch'")
	}
	if Contains([]string{}, "gsm") {
		t.Error("Contains trên slice rỗng phải trả về false")
	}
}

func TestUnique(t *testing.T) {
	cases := []struct {
		name string
		in   []string
		want []string
	}{
		{"có trùng lặp", []string{"FAB-1", "FAB-2", "FAB-1", "FAB-3", "FAB-2"}, []string{"FAB-1", "FAB-2", "FAB-3"}},
		{"không trùng lặp", []string{"a", "b"}, []string{"a", "b"}},
		{"slice rỗng", []string{}, []string{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Unique(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Unique(%v) = %v, muốn %v", tc.in, got, tc.want)
			}
		})
	}
}
