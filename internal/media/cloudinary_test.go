// Package media - test các hàm thuần xử lý URL và phân loại file.
package media

import (
	"regexp"
	"testing"
)

func TestStripVersion(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "URL có segment version",
			in:   "https://res.cloudinary.com/demo/image/upload/v1712345678/cotton/ao-thun.webp",
			want: "https://res.cloudinary.com/demo/image/upload/cotton/ao-thun.webp",
		},
		{
			name: "URL không có version giữ nguyên",
			in:   "https://res.cloudinary.com/demo/image/upload/cotton/ao-thun.webp",
			want: "https://res.cloudinary.com/demo/image/upload/cotton/ao-thun.webp",
		},
		{
			name: "chuỗi rỗng",
			in:   "",
			want: "",
		},
		{
			name: "v không kèm số không bị cắt",
			in:   "https://res.cloudinary.com/demo/image/upload/vai-lanh/mau.webp",
			want: "https://res.cloudinary.com/demo/image/upload/vai-lanh/mau.webp",
		},
		{
			name: "chỉ bỏ segment version đầu tiên, folder trùng dạng giữ nguyên",
			in:   "https://res.cloudinary.com/demo/image/upload/v123/folder/v456/x.jpg",
			want: "https://res.cloudinary.com/demo/image/upload/folder/v456/x.jpg",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := StripVersion(tc.in); got != tc.want {
				t.Errorf("StripVersion(%q) = %q, muốn %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestIsVideoFile(t *testing.T) {
	videos := []string{"demo.mp4", "demo.webm", "demo.mkv", "DEMO.MP4"}
	for _, f := range videos {
		if !IsVideoFile(f) {
			t.Errorf("IsVideoFile(%q) = false, muốn true", f)
		}
	}

	images := []string{"demo.jpg", "demo.png", "demo.webp", "demo", "demo.mp4.jpg"}
	for _, f := range images {
		if IsVideoFile(f) {
			t.Errorf("IsVideoFile(%q) = true, muốn false", f)
		}
	}
}

func TestFolderFromName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Cotton Fabric", "cotton-fabric"},
		{"Vải Lanh", "vai-lanh"},
		{"", "product"},
		{"   ", "product"},
	}

	for _, tc := range cases {
		if got := FolderFromName(tc.in); got != tc.want {
			t.Errorf("FolderFromName(%q) = %q, muốn %q", tc.in, got, tc.want)
		}
	}
}

func TestBuildPublicID(t *testing.T) {
	got := BuildPublicID("Summer Fabric.jpg")

	// Public id = slug của tên file (bỏ đuôi) + hậu tố timestamp mili giây
	pattern := regexp.MustCompile(`^summer-fabric-\d+$`)
	if !pattern.MatchString(got) {
		t.Errorf("BuildPublicID trả về %q, không khớp dạng summer-fabric-<millis>", got)
	}
}

func TestCheckContentType(t *testing.T) {
	gw := &Gateway{
		allowedImage: parseTypeList("image/jpeg, image/png,image/webp"),
		allowedVideo: parseTypeList("video/mp4"),
	}

	cases := []struct {
		name        string
		filename    string
		contentType string
		wantErr     bool
	}{
		{"ảnh hợp lệ", "anh.jpg", "image/jpeg", false},
		{"ảnh có tham số charset", "anh.png", "image/png; charset=binary", false},
		{"ảnh loại không cho phép", "anh.gif", "image/gif", true},
		{"video hợp lệ", "clip.mp4", "video/mp4", false},
		{"video loại không cho phép", "clip.webm", "video/webm", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := gw.CheckContentType(tc.filename, tc.contentType)
			if tc.wantErr && err == nil {
				t.Errorf("CheckContentType(%q, %q) phải bị từ chối", tc.filename, tc.contentType)
			}
			if !tc.wantErr && err != nil {
				t.Errorf("CheckContentType(%q, %q) lỗi: %v", tc.filename, tc.contentType, err)
			}
		})
	}

	// Danh sách rỗng nghĩa là không giới hạn
	open := &Gateway{}
	if err := open.CheckContentType("anh.gif", "image/gif"); err != nil {
		t.Errorf("Gateway không cấu hình giới hạn phải chấp nhận mọi loại, lỗi: %v", err)
	}
}

func TestPublicIDFromURL(t *testing.T) {
	cases := []struct {
		name         string
		in           string
		wantPublicID string
		wantType     string
	}{
		{
			name:         "ảnh có version",
			in:           "https://res.cloudinary.com/demo/image/upload/v1712345678/cotton/ao-thun.webp",
			wantPublicID: "cotton/ao-thun",
			wantType:     "image",
		},
		{
			name:         "ảnh không version",
			in:           "https://res.cloudinary.com/demo/image/upload/cotton/ao-thun.webp",
			wantPublicID: "cotton/ao-thun",
			wantType:     "image",
		},
		{
			name:         "video",
			in:           "https://res.cloudinary.com/demo/video/upload/v1712345678/cotton/gioi-thieu.mp4",
			wantPublicID: "cotton/gioi-thieu",
			wantType:     "video",
		},
		{
			name:         "không phải URL Cloudinary",
			in:           "https://example.com/anh.jpg",
			wantPublicID: "",
			wantType:     "image",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			publicID, resourceType := PublicIDFromURL(tc.in)
			if publicID != tc.wantPublicID {
				t.Errorf("publicID = %q, muốn %q", publicID, tc.wantPublicID)
			}
			if resourceType != tc.wantType {
				t.Errorf("resourceType = %q, muốn %q", resourceType, tc.wantType)
			}
		})
	}
}
