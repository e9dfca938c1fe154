// Package media cung cấp gateway làm việc với Cloudinary: upload ảnh/video
// cho sản phẩm và facet, xóa media cũ khi thay thế.
package media

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/amritage/fabric-shop-backend/config"
	"github.com/amritage/fabric-shop-backend/internal/common"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gosimple/slug"
)

// videoExtensions là các đuôi file được coi là video khi upload
var videoExtensions = []string{".mkv", ".webm", ".mp4"}

// versionSegmentRegex khớp segment version (/v123456/) trong URL Cloudinary
var versionSegmentRegex = regexp.MustCompile(`/v\d+/`)

// Gateway bọc Cloudinary client cho các thao tác media của catalog
type Gateway struct {
	cld          *cloudinary.Cloudinary
	uploadPreset string
	allowedImage map[string]struct{}
	allowedVideo map[string]struct{}
}

// parseTypeList tách danh sách MIME type từ chuỗi cấu hình phân cách dấu phẩy
func parseTypeList(raw string) map[string]struct{} {
	types := make(map[string]struct{})
	for _, t := range strings.Split(raw, ",") {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			types[t] = struct{}{}
		}
	}
	return types
}

// NewGateway tạo Gateway từ cấu hình server
func NewGateway(cfg *config.Configuration) (*Gateway, error) {
	cld, err := cloudinary.NewFromParams(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		return nil, common.NewError(
			common.ErrCodeInternalServer,
			fmt.Sprintf("Không thể khởi tạo Cloudinary client: %v", err),
			common.StatusInternalServerError,
			err,
		)
	}
	return &Gateway{
		cld:          cld,
		uploadPreset: cfg.CloudinaryUploadPreset,
		allowedImage: parseTypeList(cfg.AllowedImageTypes),
		allowedVideo: parseTypeList(cfg.AllowedVideoTypes),
	}, nil
}

// CheckContentType kiểm tra MIME type của file upload theo danh sách cấu hình.
// Danh sách rỗng nghĩa là không giới hạn loại đó.
func (g *Gateway) CheckContentType(filename, contentType string) error {
	allowed := g.allowedImage
	if IsVideoFile(filename) {
		allowed = g.allowedVideo
	}
	if len(allowed) == 0 {
		return nil
	}

	ct := strings.ToLower(strings.TrimSpace(contentType))
	// Bỏ tham số sau dấu chấm phẩy (vd: "image/jpeg; charset=binary")
	if idx := strings.Index(ct, ";"); idx >= 0 {
		ct = strings.TrimSpace(ct[:idx])
	}
	if _, ok := allowed[ct]; !ok {
		return common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("Loại file '%s' không được phép upload", contentType),
			common.StatusBadRequest,
			nil,
		)
	}
	return nil
}

// IsVideoFile kiểm tra file có phải video dựa trên phần mở rộng
func IsVideoFile(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, v := range videoExtensions {
		if ext == v {
			return true
		}
	}
	return false
}

// StripVersion loại bỏ segment version (/v123/) ĐẦU TIÊN khỏi URL Cloudinary.
// Chỉ một segment bị bỏ: các segment trùng dạng phía sau thuộc về đường dẫn
// folder và phải được giữ nguyên. URL không version trỏ đến bản mới nhất.
func StripVersion(url string) string {
	loc := versionSegmentRegex.FindStringIndex(url)
	if loc == nil {
		return url
	}
	return url[:loc[0]] + "/" + url[loc[1]:]
}

// BuildPublicID sinh public id từ tên file gốc: slug của tên (bỏ đuôi)
// cộng timestamp mili giây để tránh trùng lặp.
func BuildPublicID(filename string) string {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	return fmt.Sprintf("%s-%d", slug.Make(base), time.Now().UnixMilli())
}

// FolderFromName sinh tên folder Cloudinary từ tên danh mục.
// Trả về "product" khi tên rỗng hoặc slug hóa ra chuỗi rỗng.
func FolderFromName(name string) string {
	s := slug.Make(name)
	if s == "" {
		return "product"
	}
	return s
}

// UploadResult chứa kết quả upload một asset.
// ThumbnailURL chỉ có giá trị với video (eager transform thứ hai).
type UploadResult struct {
	URL          string // Secure URL đã bỏ segment version
	ThumbnailURL string
	PublicID     string
}

// UploadImage upload một ảnh, chuyển về webp và giới hạn kích thước 800x800
func (g *Gateway) UploadImage(ctx context.Context, file io.Reader, filename string, folder string) (*UploadResult, error) {
	params := uploader.UploadParams{
		PublicID:       BuildPublicID(filename),
		Folder:         folder,
		ResourceType:   "image",
		Format:         "webp",
		Transformation: "c_limit,w_800,h_800,q_auto",
		UploadPreset:   g.uploadPreset,
	}

	resp, err := g.cld.Upload.Upload(ctx, file, params)
	if err != nil {
		return nil, convertUploadError(err)
	}
	return &UploadResult{
		URL:      StripVersion(resp.SecureURL),
		PublicID: resp.PublicID,
	}, nil
}

// UploadVideo upload một video, kèm hai eager transform chạy đồng bộ:
// bản phát mp4 (codec av1) và thumbnail jpg 400x300
func (g *Gateway) UploadVideo(ctx context.Context, file io.Reader, filename string, folder string) (*UploadResult, error) {
	params := uploader.UploadParams{
		PublicID:     BuildPublicID(filename),
		Folder:       folder,
		ResourceType: "video",
		Eager:        "f_mp4,vc_av1|c_fill,w_400,h_300,f_jpg",
		EagerAsync:   api.Bool(false),
		UploadPreset: g.uploadPreset,
	}

	resp, err := g.cld.Upload.Upload(ctx, file, params)
	if err != nil {
		return nil, convertUploadError(err)
	}

	// Ưu tiên URL của bản av1 nếu eager đã trả về, fallback về URL gốc
	videoURL := resp.SecureURL
	thumbnailURL := ""
	if len(resp.Eager) > 0 && strings.Contains(resp.Eager[0].SecureURL, "vc_av1") {
		videoURL = resp.Eager[0].SecureURL
	}
	if len(resp.Eager) > 1 {
		thumbnailURL = resp.Eager[1].SecureURL
	}

	return &UploadResult{
		URL:          StripVersion(videoURL),
		ThumbnailURL: StripVersion(thumbnailURL),
		PublicID:     resp.PublicID,
	}, nil
}

// Upload tự phân loại ảnh/video theo đuôi file rồi upload
func (g *Gateway) Upload(ctx context.Context, file io.Reader, filename string, folder string) (*UploadResult, error) {
	if IsVideoFile(filename) {
		return g.UploadVideo(ctx, file, filename, folder)
	}
	return g.UploadImage(ctx, file, filename, folder)
}

// PublicIDFromURL suy ra public id và resource type từ một URL Cloudinary.
// Trả về chuỗi rỗng nếu URL không phải của Cloudinary.
func PublicIDFromURL(url string) (publicID string, resourceType string) {
	resourceType = "image"
	if strings.Contains(url, "/video/upload/") {
		resourceType = "video"
	}

	idx := strings.Index(url, "/upload/")
	if idx < 0 {
		return "", resourceType
	}
	rest := url[idx+len("/upload/"):]

	// Bỏ segment version nếu có
	rest = StripVersion("/" + rest)
	rest = strings.TrimPrefix(rest, "/")

	// Bỏ phần mở rộng file
	if ext := filepath.Ext(rest); ext != "" {
		rest = strings.TrimSuffix(rest, ext)
	}
	return rest, resourceType
}

// Destroy xóa một asset trên Cloudinary theo URL của nó
func (g *Gateway) Destroy(ctx context.Context, url string) error {
	publicID, resourceType := PublicIDFromURL(url)
	if publicID == "" {
		return common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("URL '%s' không phải URL Cloudinary hợp lệ", url),
			common.StatusBadRequest,
			nil,
		)
	}

	_, err := g.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: resourceType,
	})
	if err != nil {
		return convertUploadError(err)
	}
	return nil
}

// convertUploadError chuyển lỗi Cloudinary sang lỗi hệ thống
func convertUploadError(err error) error {
	return common.NewError(
		common.ErrCodeBusinessOperation,
		fmt.Sprintf("Lỗi thao tác media trên Cloudinary: %v", err),
		common.StatusInternalServerError,
		err,
	)
}
