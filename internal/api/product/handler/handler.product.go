// Package producthdl - handler cho domain product.
//
// Media đi qua multipart với bốn slot cố định: image, image1, image2, video.
// Mỗi slot theo quy tắc hai nhánh: file mới thì upload lên Cloudinary,
// URL trong body thì canonical hóa, không có gì thì giữ nguyên.
package producthdl

import (
	"fmt"
	"mime/multipart"

	basehdl "github.com/amritage/fabric-shop-backend/internal/api/base/handler"
	productdto "github.com/amritage/fabric-shop-backend/internal/api/product/dto"
	productmodels "github.com/amritage/fabric-shop-backend/internal/api/product/models"
	productsvc "github.com/amritage/fabric-shop-backend/internal/api/product/service"
	"github.com/amritage/fabric-shop-backend/internal/common"
	"github.com/amritage/fabric-shop-backend/internal/global"
	"github.com/amritage/fabric-shop-backend/internal/logger"
	"github.com/amritage/fabric-shop-backend/internal/media"
	"github.com/amritage/fabric-shop-backend/internal/utility"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductHandler xử lý toàn bộ endpoint của /product
type ProductHandler struct {
	Service *productsvc.ProductService
	Media   *media.Gateway
}

// NewProductHandler tạo ProductHandler với gateway media đã khởi tạo
func NewProductHandler(gw *media.Gateway) (*ProductHandler, error) {
	svc, err := productsvc.NewProductService()
	if err != nil {
		return nil, fmt.Errorf("tạo ProductService: %w", err)
	}
	return &ProductHandler{Service: svc, Media: gw}, nil
}

// bindAndValidate parse body và chạy validator
func bindAndValidate(c fiber.Ctx, input interface{}) error {
	if err := c.Bind().Body(input); err != nil {
		return common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Dữ liệu gửi lên không đúng định dạng: %v", err),
			common.StatusBadRequest,
			err,
		)
	}
	if err := global.Validate.Struct(input); err != nil {
		return common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("Dữ liệu không hợp lệ: %v", err),
			common.StatusBadRequest,
			err,
		)
	}
	return nil
}

// parseRef chuyển một khóa ngoại dạng hex sang ObjectID
func parseRef(field, raw string) (primitive.ObjectID, error) {
	id, err := utility.String2ObjectID(raw)
	if err != nil {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Trường '%s' không phải ObjectID hợp lệ", field),
			common.StatusBadRequest,
			err,
		)
	}
	return id, nil
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

// resolveImageSlot xử lý một slot ảnh theo quy tắc hai nhánh.
// newUpload=true báo slot được thay bằng upload mới, caller dọn media cũ.
func resolveImageSlot(c fiber.Ctx, gw *media.Gateway, fieldName, bodyURL, folder string) (url string, newUpload bool, err error) {
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

// resolveVideoSlot xử lý slot video, trả thêm URL thumbnail dẫn xuất từ
// eager transform khi có upload mới
func resolveVideoSlot(c fiber.Ctx, gw *media.Gateway, bodyURL, folder string) (url, thumbnail string, newUpload bool, err error) {
	fh, ferr := c.FormFile("video")
	if ferr == nil && fh != nil {
		result, uerr := uploadFormFile(c, gw, fh, folder)
		if uerr != nil {
			return "", "", false, uerr
		}
		return result.URL, result.ThumbnailURL, true, nil
	}
	if bodyURL != "" {
		return media.StripVersion(bodyURL), "", false, nil
	}
	return "", "", false, nil
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

// HandleAdd xử lý POST /product/add
func (h *ProductHandler) HandleAdd(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input productdto.ProductCreateInput
		if err := bindAndValidate(c, &input); err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		product := productmodels.Product{
			Name:               input.Name,
			ProductDescription: input.ProductDescription,
			PopularProduct:     input.PopularProduct,
			ProductOffer:       input.ProductOffer,
			TopRatedProduct:    input.TopRatedProduct,

			Gsm:      *input.Gsm,
			Oz:       *input.Oz,
			Cm:       *input.Cm,
			Inch:     *input.Inch,
			Quantity: *input.Quantity,
			Um:       input.Um,
			Currency: input.Currency,
			Css:      input.Css,

			Charset:                input.Charset,
			XUaCompatible:          input.XUaCompatible,
			Viewport:               input.Viewport,
			Title:                  input.Title,
			Description:            input.Description,
			Keywords:               input.Keywords,
			Robots:                 input.Robots,
			ContentLanguage:        input.ContentLanguage,
			GoogleSiteVerification: input.GoogleSiteVerification,
			MsValidate:             input.MsValidate,
			ThemeColor:             input.ThemeColor,
			MobileWebAppCapable:    true,
			AppleStatusBarStyle:    input.AppleStatusBarStyle,
			FormatDetection:        input.FormatDetection,

			OgLocale:           input.OgLocale,
			OgTitle:            input.OgTitle,
			OgDescription:      input.OgDescription,
			OgType:             input.OgType,
			OgURL:              input.OgURL,
			OgSiteName:         input.OgSiteName,
			TwitterCard:        input.TwitterCard,
			TwitterSite:        input.TwitterSite,
			TwitterTitle:       input.TwitterTitle,
			TwitterDescription: input.TwitterDescription,
			Hreflang:           input.Hreflang,
			XDefault:           input.XDefault,
			AuthorName:         input.AuthorName,

			Sku:             input.Sku,
			Slug:            input.Slug,
			Excerpt:         input.Excerpt,
			CanonicalURL:    input.CanonicalURL,
			DescriptionHTML: input.DescriptionHTML,
			RatingValue:     input.RatingValue,
			RatingCount:     input.RatingCount,

			PurchasePrice:     *input.PurchasePrice,
			SalesPrice:        *input.SalesPrice,
			LocationCode:      input.LocationCode,
			ProductIdentifier: input.ProductIdentifier,
		}
		if input.MobileWebAppCapable != nil {
			product.MobileWebAppCapable = *input.MobileWebAppCapable
		}

		// Mười khóa ngoại bắt buộc
		requiredRefs := []struct {
			field string
			raw   string
			dst   *primitive.ObjectID
		}{
			{"newCategoryId", input.NewCategoryID, &product.NewCategoryID},
			{"structureId", input.StructureID, &product.StructureID},
			{"contentId", input.ContentID, &product.ContentID},
			{"finishId", input.FinishID, &product.FinishID},
			{"designId", input.DesignID, &product.DesignID},
			{"colorId", input.ColorID, &product.ColorID},
			{"motifsizeId", input.MotifsizeID, &product.MotifsizeID},
			{"suitableforId", input.SuitableforID, &product.SuitableforID},
			{"vendorId", input.VendorID, &product.VendorID},
			{"groupcodeId", input.GroupcodeID, &product.GroupcodeID},
		}
		for _, ref := range requiredRefs {
			id, err := parseRef(ref.field, ref.raw)
			if err != nil {
				return basehdl.HandleResponse(c, nil, err)
			}
			*ref.dst = id
		}

		// Ba khóa ngoại sub-facet tùy chọn
		optionalRefs := []struct {
			field string
			raw   string
			dst   **primitive.ObjectID
		}{
			{"substructureId", input.SubstructureID, &product.SubstructureID},
			{"subfinishId", input.SubfinishID, &product.SubfinishID},
			{"subsuitableId", input.SubsuitableID, &product.SubsuitableID},
		}
		for _, ref := range optionalRefs {
			if ref.raw == "" {
				continue
			}
			id, err := parseRef(ref.field, ref.raw)
			if err != nil {
				return basehdl.HandleResponse(c, nil, err)
			}
			*ref.dst = &id
		}

		folder := h.Service.ResolveMediaFolder(c.Context(), &product.NewCategoryID)

		imageURL, _, err := resolveImageSlot(c, h.Media, "image", input.Image, folder)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		image1URL, _, err := resolveImageSlot(c, h.Media, "image1", input.Image1, folder)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		image2URL, _, err := resolveImageSlot(c, h.Media, "image2", input.Image2, folder)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		videoURL, thumbnailURL, _, err := resolveVideoSlot(c, h.Media, input.Video, folder)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		product.Image = imageURL
		product.Image1 = image1URL
		product.Image2 = image2URL
		product.Video = videoURL
		product.VideoThumbnail = thumbnailURL

		data, err := h.Service.Create(c.Context(), product)
		return basehdl.HandleResponse(c, data, err)
	})
}

// setIfNotEmpty ghi giá trị chuỗi khác rỗng vào set
func setIfNotEmpty(set bson.M, key, value string) {
	if value != "" {
		set[key] = value
	}
}

// HandleUpdate xử lý PUT /product/update/:id.
// Chỉ trường có giá trị mới được ghi đè. Slot media thay bằng upload mới sẽ
// xóa URL cũ trên Cloudinary sau khi ghi DB thành công.
func (h *ProductHandler) HandleUpdate(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		id, err := basehdl.ParseIDParam(c, "id")
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		existing, err := h.Service.FindOneById(c.Context(), id)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		var input productdto.ProductUpdateInput
		if err := bindAndValidate(c, &input); err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		set := bson.M{}
		refs := map[string]primitive.ObjectID{}

		setIfNotEmpty(set, "name", input.Name)
		setIfNotEmpty(set, "productdescription", input.ProductDescription)
		setIfNotEmpty(set, "popularproduct", input.PopularProduct)
		setIfNotEmpty(set, "productoffer", input.ProductOffer)
		setIfNotEmpty(set, "topratedproduct", input.TopRatedProduct)
		setIfNotEmpty(set, "um", input.Um)
		setIfNotEmpty(set, "currency", input.Currency)
		setIfNotEmpty(set, "css", input.Css)

		setIfNotEmpty(set, "charset", input.Charset)
		setIfNotEmpty(set, "xUaCompatible", input.XUaCompatible)
		setIfNotEmpty(set, "viewport", input.Viewport)
		setIfNotEmpty(set, "title", input.Title)
		setIfNotEmpty(set, "description", input.Description)
		setIfNotEmpty(set, "keywords", input.Keywords)
		setIfNotEmpty(set, "robots", input.Robots)
		setIfNotEmpty(set, "contentLanguage", input.ContentLanguage)
		setIfNotEmpty(set, "googleSiteVerification", input.GoogleSiteVerification)
		setIfNotEmpty(set, "msValidate", input.MsValidate)
		setIfNotEmpty(set, "themeColor", input.ThemeColor)
		setIfNotEmpty(set, "appleStatusBarStyle", input.AppleStatusBarStyle)
		setIfNotEmpty(set, "formatDetection", input.FormatDetection)

		setIfNotEmpty(set, "ogLocale", input.OgLocale)
		setIfNotEmpty(set, "ogTitle", input.OgTitle)
		setIfNotEmpty(set, "ogDescription", input.OgDescription)
		setIfNotEmpty(set, "ogType", input.OgType)
		setIfNotEmpty(set, "ogUrl", input.OgURL)
		setIfNotEmpty(set, "ogSiteName", input.OgSiteName)
		setIfNotEmpty(set, "twitterCard", input.TwitterCard)
		setIfNotEmpty(set, "twitterSite", input.TwitterSite)
		setIfNotEmpty(set, "twitterTitle", input.TwitterTitle)
		setIfNotEmpty(set, "twitterDescription", input.TwitterDescription)
		setIfNotEmpty(set, "hreflang", input.Hreflang)
		setIfNotEmpty(set, "x_default", input.XDefault)
		setIfNotEmpty(set, "author_name", input.AuthorName)

		setIfNotEmpty(set, "sku", input.Sku)
		setIfNotEmpty(set, "slug", input.Slug)
		setIfNotEmpty(set, "excerpt", input.Excerpt)
		setIfNotEmpty(set, "canonical_url", input.CanonicalURL)
		setIfNotEmpty(set, "description_html", input.DescriptionHTML)
		setIfNotEmpty(set, "locationCode", input.LocationCode)
		setIfNotEmpty(set, "productIdentifier", input.ProductIdentifier)

		if input.Gsm != nil {
			set["gsm"] = *input.Gsm
		}
		if input.Oz != nil {
			set["oz"] = *input.Oz
		}
		if input.Cm != nil {
			set["cm"] = *input.Cm
		}
		if input.Inch != nil {
			set["inch"] = *input.Inch
		}
		if input.Quantity != nil {
			set["quantity"] = *input.Quantity
		}
		if input.RatingValue != nil {
			set["rating_value"] = *input.RatingValue
		}
		if input.RatingCount != nil {
			set["rating_count"] = *input.RatingCount
		}
		if input.PurchasePrice != nil {
			set["purchasePrice"] = *input.PurchasePrice
		}
		if input.SalesPrice != nil {
			set["salesPrice"] = *input.SalesPrice
		}
		if input.MobileWebAppCapable != nil {
			set["mobileWebAppCapable"] = *input.MobileWebAppCapable
		}

		refFields := []struct {
			field string
			raw   string
		}{
			{"newCategoryId", input.NewCategoryID},
			{"structureId", input.StructureID},
			{"contentId", input.ContentID},
			{"finishId", input.FinishID},
			{"designId", input.DesignID},
			{"colorId", input.ColorID},
			{"motifsizeId", input.MotifsizeID},
			{"suitableforId", input.SuitableforID},
			{"vendorId", input.VendorID},
			{"groupcodeId", input.GroupcodeID},
			{"substructureId", input.SubstructureID},
			{"subfinishId", input.SubfinishID},
			{"subsuitableId", input.SubsuitableID},
		}
		for _, ref := range refFields {
			if ref.raw == "" {
				continue
			}
			refID, err := parseRef(ref.field, ref.raw)
			if err != nil {
				return basehdl.HandleResponse(c, nil, err)
			}
			set[ref.field] = refID
			refs[ref.field] = refID
		}

		// Folder media suy từ category trong body, không có thì dùng mặc định
		var folderCategoryID *primitive.ObjectID
		if refID, ok := refs["newCategoryId"]; ok {
			folderCategoryID = &refID
		}
		folder := h.Service.ResolveMediaFolder(c.Context(), folderCategoryID)

		var oldMedia []string

		imageSlots := []struct {
			field   string
			bodyURL string
			oldURL  string
		}{
			{"image", input.Image, existing.Image},
			{"image1", input.Image1, existing.Image1},
			{"image2", input.Image2, existing.Image2},
		}
		for _, slot := range imageSlots {
			url, newUpload, err := resolveImageSlot(c, h.Media, slot.field, slot.bodyURL, folder)
			if err != nil {
				return basehdl.HandleResponse(c, nil, err)
			}
			if url != "" {
				set[slot.field] = url
				if newUpload {
					oldMedia = append(oldMedia, slot.oldURL)
				}
			}
		}

		videoURL, thumbnailURL, newUpload, err := resolveVideoSlot(c, h.Media, input.Video, folder)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		if videoURL != "" {
			set["video"] = videoURL
			if newUpload {
				set["videoThumbnail"] = thumbnailURL
				oldMedia = append(oldMedia, existing.Video, existing.VideoThumbnail)
			}
		}

		data, err := h.Service.Update(c.Context(), id, set, refs)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		destroyOldMedia(c, h.Media, oldMedia)
		return basehdl.HandleResponse(c, data, nil)
	})
}

// HandleList xử lý GET /product/view
func (h *ProductHandler) HandleList(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		data, err := h.Service.List(c.Context())
		return basehdl.HandleResponse(c, data, err)
	})
}

// HandleGetById xử lý GET /product/view/:id
func (h *ProductHandler) HandleGetById(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		id, err := basehdl.ParseIDParam(c, "id")
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		data, err := h.Service.FindOneById(c.Context(), id)
		return basehdl.HandleResponse(c, data, err)
	})
}

// HandleDelete xử lý DELETE /product/delete/:id, trả về document vừa xóa
func (h *ProductHandler) HandleDelete(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		id, err := basehdl.ParseIDParam(c, "id")
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		data, err := h.Service.Delete(c.Context(), id)
		return basehdl.HandleResponse(c, data, err)
	})
}

// HandleSearch xử lý GET /product/search/:q
func (h *ProductHandler) HandleSearch(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		data, err := h.Service.Search(c.Context(), c.Params("q"))
		return basehdl.HandleResponse(c, data, err)
	})
}

// HandleByFacet dựng handler lọc exact-match theo một khóa ngoại facet
func (h *ProductHandler) HandleByFacet(field string) fiber.Handler {
	return func(c fiber.Ctx) error {
		return basehdl.SafeHandlerWrapper(c, func() error {
			id, err := basehdl.ParseIDParam(c, "id")
			if err != nil {
				return basehdl.HandleResponse(c, nil, err)
			}
			data, err := h.Service.FindByFacet(c.Context(), field, id)
			return basehdl.HandleResponse(c, data, err)
		})
	}
}

// HandleByRange dựng handler lọc theo dải ±15% của một trường số
func (h *ProductHandler) HandleByRange(field string) fiber.Handler {
	return func(c fiber.Ctx) error {
		return basehdl.SafeHandlerWrapper(c, func() error {
			value, err := basehdl.ParseFloatParam(c, "value")
			if err != nil {
				return basehdl.HandleResponse(c, nil, err)
			}
			data, err := h.Service.FindByRange(c.Context(), field, value)
			return basehdl.HandleResponse(c, data, err)
		})
	}
}

// HandleByFlag dựng handler liệt kê sản phẩm theo cờ hiển thị
func (h *ProductHandler) HandleByFlag(field string) fiber.Handler {
	return func(c fiber.Ctx) error {
		return basehdl.SafeHandlerWrapper(c, func() error {
			data, err := h.Service.FindByFlag(c.Context(), field)
			return basehdl.HandleResponse(c, data, err)
		})
	}
}

// HandleBySlug xử lý GET /product/slug/:slug
func (h *ProductHandler) HandleBySlug(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		data, err := h.Service.BySlug(c.Context(), c.Params("slug"))
		return basehdl.HandleResponse(c, data, err)
	})
}

// HandleByIdentifier xử lý GET /product/identifier/:identifier
func (h *ProductHandler) HandleByIdentifier(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		data, err := h.Service.ByIdentifier(c.Context(), c.Params("identifier"))
		return basehdl.HandleResponse(c, data, err)
	})
}
