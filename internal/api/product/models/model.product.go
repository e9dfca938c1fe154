// Package models - aggregate root Product của cửa hàng vải.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product là document sản phẩm vải, tham chiếu đến mười facet bắt buộc
// và ba sub-facet tùy chọn. Mọi tham chiếu phải trỏ đến document tồn tại
// tại thời điểm ghi, service chịu trách nhiệm kiểm tra trước khi insert/update.
//
// Các trường name, sku, slug và productIdentifier là duy nhất toàn collection.
type Product struct {
	ID                 primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name               string             `json:"name" bson:"name" index:"unique"`
	ProductDescription string             `json:"productdescription,omitempty" bson:"productdescription,omitempty"`

	// Cờ hiển thị, giá trị "yes"/"no" giữ nguyên dạng chuỗi như dữ liệu cũ
	PopularProduct  string `json:"popularproduct" bson:"popularproduct"`
	ProductOffer    string `json:"productoffer" bson:"productoffer"`
	TopRatedProduct string `json:"topratedproduct" bson:"topratedproduct"`

	// Tham chiếu facet bắt buộc
	NewCategoryID primitive.ObjectID `json:"newCategoryId" bson:"newCategoryId" index:"single:1"`
	StructureID   primitive.ObjectID `json:"structureId" bson:"structureId" index:"single:1"`
	ContentID     primitive.ObjectID `json:"contentId" bson:"contentId" index:"single:1"`
	FinishID      primitive.ObjectID `json:"finishId" bson:"finishId" index:"single:1"`
	DesignID      primitive.ObjectID `json:"designId" bson:"designId" index:"single:1"`
	ColorID       primitive.ObjectID `json:"colorId" bson:"colorId" index:"single:1"`
	MotifsizeID   primitive.ObjectID `json:"motifsizeId" bson:"motifsizeId" index:"single:1"`
	SuitableforID primitive.ObjectID `json:"suitableforId" bson:"suitableforId" index:"single:1"`
	VendorID      primitive.ObjectID `json:"vendorId" bson:"vendorId" index:"single:1"`
	GroupcodeID   primitive.ObjectID `json:"groupcodeId" bson:"groupcodeId" index:"single:1"`

	// Tham chiếu sub-facet tùy chọn
	SubstructureID *primitive.ObjectID `json:"substructureId,omitempty" bson:"substructureId,omitempty" index:"single:1"`
	SubfinishID    *primitive.ObjectID `json:"subfinishId,omitempty" bson:"subfinishId,omitempty" index:"single:1"`
	SubsuitableID  *primitive.ObjectID `json:"subsuitableId,omitempty" bson:"subsuitableId,omitempty" index:"single:1"`

	// Media, lưu URL Cloudinary không kèm segment version
	Image          string `json:"image,omitempty" bson:"image,omitempty"`
	Image1         string `json:"image1,omitempty" bson:"image1,omitempty"`
	Image2         string `json:"image2,omitempty" bson:"image2,omitempty"`
	Video          string `json:"video,omitempty" bson:"video,omitempty"`
	VideoThumbnail string `json:"videoThumbnail,omitempty" bson:"videoThumbnail,omitempty"`

	// Thông số kỹ thuật
	Gsm      float64 `json:"gsm" bson:"gsm"`
	Oz       float64 `json:"oz" bson:"oz"`
	Cm       float64 `json:"cm" bson:"cm"`
	Inch     float64 `json:"inch" bson:"inch"`
	Quantity int     `json:"quantity" bson:"quantity"`
	Um       string  `json:"um" bson:"um"`
	Currency string  `json:"currency" bson:"currency"`
	Css      string  `json:"css" bson:"css"`

	// Khối metadata SEO
	Charset                string `json:"charset" bson:"charset"`
	XUaCompatible          string `json:"xUaCompatible,omitempty" bson:"xUaCompatible,omitempty"`
	Viewport               string `json:"viewport,omitempty" bson:"viewport,omitempty"`
	Title                  string `json:"title" bson:"title"`
	Description            string `json:"description" bson:"description"`
	Keywords               string `json:"keywords" bson:"keywords"`
	Robots                 string `json:"robots,omitempty" bson:"robots,omitempty"`
	ContentLanguage        string `json:"contentLanguage,omitempty" bson:"contentLanguage,omitempty"`
	GoogleSiteVerification string `json:"googleSiteVerification,omitempty" bson:"googleSiteVerification,omitempty"`
	MsValidate             string `json:"msValidate,omitempty" bson:"msValidate,omitempty"`
	ThemeColor             string `json:"themeColor,omitempty" bson:"themeColor,omitempty"`
	MobileWebAppCapable    bool   `json:"mobileWebAppCapable" bson:"mobileWebAppCapable"`
	AppleStatusBarStyle    string `json:"appleStatusBarStyle,omitempty" bson:"appleStatusBarStyle,omitempty"`
	FormatDetection        string `json:"formatDetection,omitempty" bson:"formatDetection,omitempty"`

	// OpenGraph / Twitter
	OgLocale           string `json:"ogLocale,omitempty" bson:"ogLocale,omitempty"`
	OgTitle            string `json:"ogTitle" bson:"ogTitle"`
	OgDescription      string `json:"ogDescription" bson:"ogDescription"`
	OgType             string `json:"ogType,omitempty" bson:"ogType,omitempty"`
	OgURL              string `json:"ogUrl" bson:"ogUrl"`
	OgSiteName         string `json:"ogSiteName,omitempty" bson:"ogSiteName,omitempty"`
	TwitterCard        string `json:"twitterCard,omitempty" bson:"twitterCard,omitempty"`
	TwitterSite        string `json:"twitterSite,omitempty" bson:"twitterSite,omitempty"`
	TwitterTitle       string `json:"twitterTitle,omitempty" bson:"twitterTitle,omitempty"`
	TwitterDescription string `json:"twitterDescription,omitempty" bson:"twitterDescription,omitempty"`
	Hreflang           string `json:"hreflang,omitempty" bson:"hreflang,omitempty"`
	XDefault           string `json:"x_default,omitempty" bson:"x_default,omitempty"`
	AuthorName         string `json:"author_name,omitempty" bson:"author_name,omitempty"`

	Sku             string  `json:"sku" bson:"sku" index:"unique"`
	Slug            string  `json:"slug" bson:"slug" index:"unique"`
	Excerpt         string  `json:"excerpt,omitempty" bson:"excerpt,omitempty"`
	CanonicalURL    string  `json:"canonical_url,omitempty" bson:"canonical_url,omitempty"`
	DescriptionHTML string  `json:"description_html,omitempty" bson:"description_html,omitempty"`
	RatingValue     float64 `json:"rating_value" bson:"rating_value"`
	RatingCount     int     `json:"rating_count" bson:"rating_count"`

	// Thương mại
	PurchasePrice     float64 `json:"purchasePrice" bson:"purchasePrice"`
	SalesPrice        float64 `json:"salesPrice" bson:"salesPrice"`
	LocationCode      string  `json:"locationCode" bson:"locationCode"`
	ProductIdentifier string  `json:"productIdentifier" bson:"productIdentifier" index:"unique"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
