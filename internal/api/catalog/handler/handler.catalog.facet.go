// Package cataloghdl - handler CRUD cho các facet của catalog.
package cataloghdl

import (
	"fmt"
	"mime/multipart"

	basehdl "github.com/amritage/fabric-shop-backend/internal/api/base/handler"
	catalogdto "github.com/amritage/fabric-shop-backend/internal/api/catalog/dto"
	catalogmodels "github.com/amritage/fabric-shop-backend/internal/api/catalog/models"
	catalogsvc "github.com/amritage/fabric-shop-backend/internal/api/catalog/service"
	"github.com/amritage/fabric-shop-backend/internal/common"
	"github.com/amritage/fabric-shop-backend/internal/global"
	"github.com/amritage/fabric-shop-backend/internal/logger"
	"github.com/amritage/fabric-shop-backend/internal/media"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
)

// FacetHandler xử lý CRUD cho một loại facet.
// Category và groupcode nhận media qua multipart, các loại còn lại chỉ nhận JSON.
type FacetHandler struct {
	Service    *catalogsvc.FacetService
	Media      *media.Gateway
	allowImage bool
	allowVideo bool
}

// NewFacetHandler tạo FacetHandler cho một kind.
// allowImage/allowVideo bật nhận file nhị phân cho kind đó.
func NewFacetHandler(kind catalogmodels.FacetKind, guard *catalogsvc.IntegrityGuard, gw *media.Gateway, allowImage, allowVideo bool) (*FacetHandler, error) {
	svc, err := catalogsvc.NewFacetService(kind, guard)
	if err != nil {
		return nil, fmt.Errorf("tạo FacetService cho %s: %w", kind, err)
	}
	return &FacetHandler{
		Service:    svc,
		Media:      gw,
		allowImage: allowImage,
		allowVideo: allowVideo,
	}, nil
}

// uploadFormFile mở và upload một file multipart lên Cloudinary
func uploadFormFile(c fiber.Ctx, gw *media.Gateway, fh *multipart.FileHeader, folder string) (*media.UploadResult, error) {
	if err := gw.CheckContentType(fh.Filename, fh.Header.Get("Content-Type")); err != nil {
		return nil, err
	}
	file, err := fh.Open()
	if err != nil {
		return nil, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Không thể đọc file upload '%s': %v", fh.Filename, err),
			common.StatusBadRequest,
			err,
		)
	}
	defer file.Close()
	return gw.Upload(c.Context(), file, fh.Filename, folder)
}

// resolveMediaSlot xử lý một slot media theo quy tắc hai nhánh:
// có file mới -> upload; có URL trong body -> canonical hóa bỏ segment version;
// không có gì -> trả về chuỗi rỗng (slot không đổi).
// newUpload=true báo cho caller biết slot được thay bằng upload mới (để dọn media cũ).
func resolveMediaSlot(c fiber.Ctx, gw *media.Gateway, fieldName, bodyURL, folder string) (url string, newUpload bool, err error) {
	fh, ferr := c.FormFile(fieldName)
	if ferr == nil && fh != nil {
		result, uerr := uploadFormFile(c, gw, fh, folder)
		if uerr != nil {
			return "", false, uerr
		}
		return result.URL, true, nil
	}
	if bodyURL != "" {
		return media.StripVersion(bodyURL), false, nil
	}
	return "", false, nil
}

// destroyOldMedia xóa media cũ trên Cloudinary sau khi ghi DB thành công.
// Lỗi xóa chỉ được log, không bao giờ làm fail request.
func destroyOldMedia(c fiber.Ctx, gw *media.Gateway, urls []string) {
	for _, u := range urls {
		if u == "" {
			continue
		}
		if err := gw.Destroy(c.Context(), u); err != nil {
			logger.WithRequest(c).
				WithField("url", u).
				WithError(err).
				Warn("Không thể xóa media cũ trên Cloudinary")
		}
	}
}

// HandleCreate xử lý POST /<facet>/add
func (h *FacetHandler) HandleCreate(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input catalogdto.FacetCreateInput
		if err := c.Bind().Body(&input); err != nil {
			return basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Dữ liệu gửi lên không đúng định dạng: %v", err),
				common.StatusBadRequest,
				err,
			))
		}
		if err := global.Validate.Struct(&input); err != nil {
			return basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				fmt.Sprintf("Dữ liệu không hợp lệ: %v", err),
				common.StatusBadRequest,
				err,
			))
		}

		folder := media.FolderFromName(string(h.Service.Kind()))

		imageURL := ""
		videoURL := ""
		if h.allowImage {
			url, _, err := resolveMediaSlot(c, h.Media, "image", input.Image, folder)
			if err != nil {
				return basehdl.HandleResponse(c, nil, err)
			}
			imageURL = url
		}
		if h.allowVideo {
			url, _, err := resolveMediaSlot(c, h.Media, "video", input.Video, folder)
			if err != nil {
				return basehdl.HandleResponse(c, nil, err)
			}
			videoURL = url
		}

		data, err := h.Service.Create(c.Context(), input.Name, imageURL, videoURL)
		return basehdl.HandleResponse(c, data, err)
	})
}

// HandleList xử lý GET /<facet>/view
func (h *FacetHandler) HandleList(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		data, err := h.Service.List(c.Context())
		return basehdl.HandleResponse(c, data, err)
	})
}

// HandleGetById xử lý GET /<facet>/view/:id
func (h *FacetHandler) HandleGetById(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		id, err := basehdl.ParseIDParam(c, "id")
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		data, err := h.Service.FindOneById(c.Context(), id)
		return basehdl.HandleResponse(c, data, err)
	})
}

// HandleUpdate xử lý PUT /<facet>/update/:id.
// Slot media được thay bằng upload mới sẽ xóa URL cũ trên Cloudinary sau khi
// ghi DB thành công; gán lại bằng URL thô thì không dọn.
func (h *FacetHandler) HandleUpdate(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		id, err := basehdl.ParseIDParam(c, "id")
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		existing, err := h.Service.FindOneById(c.Context(), id)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		var input catalogdto.FacetUpdateInput
		if err := c.Bind().Body(&input); err != nil {
			return basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Dữ liệu gửi lên không đúng định dạng: %v", err),
				common.StatusBadRequest,
				err,
			))
		}
		if err := global.Validate.Struct(&input); err != nil {
			return basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				fmt.Sprintf("Dữ liệu không hợp lệ: %v", err),
				common.StatusBadRequest,
				err,
			))
		}

		folder := media.FolderFromName(string(h.Service.Kind()))
		set := bson.M{}
		var oldMedia []string

		if input.Name != "" {
			set["name"] = input.Name
		}
		if h.allowImage {
			url, newUpload, err := resolveMediaSlot(c, h.Media, "image", input.Image, folder)
			if err != nil {
				return basehdl.HandleResponse(c, nil, err)
			}
			if url != "" {
				set["image"] = url
				if newUpload {
					oldMedia = append(oldMedia, existing.Image)
				}
			}
		}
		if h.allowVideo {
			url, newUpload, err := resolveMediaSlot(c, h.Media, "video", input.Video, folder)
			if err != nil {
				return basehdl.HandleResponse(c, nil, err)
			}
			if url != "" {
				set["video"] = url
				if newUpload {
					oldMedia = append(oldMedia, existing.Video)
				}
			}
		}

		data, err := h.Service.Update(c.Context(), id, set)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		destroyOldMedia(c, h.Media, oldMedia)
		return basehdl.HandleResponse(c, data, nil)
	})
}

// HandleDelete xử lý DELETE /<facet>/delete/:id.
// Facet còn được tham chiếu trả về 400 với inUse và số lượng theo từng kind.
func (h *FacetHandler) HandleDelete(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		id, err := basehdl.ParseIDParam(c, "id")
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		if err := h.Service.Delete(c.Context(), id); err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		return basehdl.HandleResponse(c, fiber.Map{"deleted": true}, nil)
	})
}
