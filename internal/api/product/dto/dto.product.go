// Package dto - DTO cho domain product.
package dto

// ProductCreateInput dữ liệu tạo sản phẩm mới.
// Các trường media (image/image1/image2/video) nhận URL trực tiếp qua body;
// file nhị phân đi qua multipart cùng tên field và được handler upload trước
// khi gọi service. Các trường id đều là hex 24 ký tự.
type ProductCreateInput struct {
	Name               string `json:"name" form:"name" validate:"required,no_xss"`
	ProductDescription string `json:"productdescription,omitempty" form:"productdescription"`

	PopularProduct  string `json:"popularproduct" form:"popularproduct" validate:"required"`
	ProductOffer    string `json:"productoffer" form:"productoffer" validate:"required"`
	TopRatedProduct string `json:"topratedproduct" form:"topratedproduct" validate:"required"`

	NewCategoryID string `json:"newCategoryId" form:"newCategoryId" validate:"required,len=24,hexadecimal"`
	StructureID   string `json:"structureId" form:"structureId" validate:"required,len=24,hexadecimal"`
	ContentID     string `json:"contentId" form:"contentId" validate:"required,len=24,hexadecimal"`
	FinishID      string `json:"finishId" form:"finishId" validate:"required,len=24,hexadecimal"`
	DesignID      string `json:"designId" form:"designId" validate:"required,len=24,hexadecimal"`
	ColorID       string `json:"colorId" form:"colorId" validate:"required,len=24,hexadecimal"`
	MotifsizeID   string `json:"motifsizeId" form:"motifsizeId" validate:"required,len=24,hexadecimal"`
	SuitableforID string `json:"suitableforId" form:"suitableforId" validate:"required,len=24,hexadecimal"`
	VendorID      string `json:"vendorId" form:"vendorId" validate:"required,len=24,hexadecimal"`
	GroupcodeID   string `json:"groupcodeId" form:"groupcodeId" validate:"required,len=24,hexadecimal"`

	SubstructureID string `json:"substructureId,omitempty" form:"substructureId" validate:"omitempty,len=24,hexadecimal"`
	SubfinishID    string `json:"subfinishId,omitempty" form:"subfinishId" validate:"omitempty,len=24,hexadecimal"`
	SubsuitableID  string `json:"subsuitableId,omitempty" form:"subsuitableId" validate:"omitempty,len=24,hexadecimal"`

	Image  string `json:"image,omitempty" form:"image"`
	Image1 string `json:"image1,omitempty" form:"image1"`
	Image2 string `json:"image2,omitempty" form:"image2"`
	Video  string `json:"video,omitempty" form:"video"`

	// Các trường số dùng con trỏ để phân biệt "thiếu" với giá trị 0 hợp lệ
	// (vd: quantity=0 khi hết hàng vẫn phải được chấp nhận)
	Gsm      *float64 `json:"gsm" form:"gsm" validate:"required,min=0"`
	Oz       *float64 `json:"oz" form:"oz" validate:"required,min=0"`
	Cm       *float64 `json:"cm" form:"cm" validate:"required,min=0"`
	Inch     *float64 `json:"inch" form:"inch" validate:"required,min=0"`
	Quantity *int     `json:"quantity" form:"quantity" validate:"required,min=0"`
	Um       string   `json:"um" form:"um" validate:"required"`
	Currency string   `json:"currency" form:"currency" validate:"required"`
	Css      string   `json:"css" form:"css" validate:"required"`

	Charset                string `json:"charset,omitempty" form:"charset" validate:"omitempty,oneof=UTF-8"`
	XUaCompatible          string `json:"xUaCompatible,omitempty" form:"xUaCompatible" validate:"omitempty,max=20"`
	Viewport               string `json:"viewport,omitempty" form:"viewport" validate:"omitempty,max=100"`
	Title                  string `json:"title" form:"title" validate:"required,max=60"`
	Description            string `json:"description" form:"description" validate:"required,max=160"`
	Keywords               string `json:"keywords" form:"keywords" validate:"required,max=200"`
	Robots                 string `json:"robots,omitempty" form:"robots" validate:"omitempty,oneof='index0x2C follow' 'noindex0x2C nofollow' 'index0x2C nofollow' 'noindex0x2C follow'"`
	ContentLanguage        string `json:"contentLanguage,omitempty" form:"contentLanguage" validate:"omitempty,max=10"`
	GoogleSiteVerification string `json:"googleSiteVerification,omitempty" form:"googleSiteVerification" validate:"omitempty,max=100"`
	MsValidate             string `json:"msValidate,omitempty" form:"msValidate" validate:"omitempty,max=100"`
	ThemeColor             string `json:"themeColor,omitempty" form:"themeColor" validate:"omitempty,hexcolor"`
	MobileWebAppCapable    *bool  `json:"mobileWebAppCapable,omitempty" form:"mobileWebAppCapable"`
	AppleStatusBarStyle    string `json:"appleStatusBarStyle,omitempty" form:"appleStatusBarStyle" validate:"omitempty,oneof=default black black-translucent"`
	FormatDetection        string `json:"formatDetection,omitempty" form:"formatDetection" validate:"omitempty,oneof=telephone=no telephone=yes"`

	OgLocale           string `json:"ogLocale,omitempty" form:"ogLocale" validate:"omitempty,max=10"`
	OgTitle            string `json:"ogTitle" form:"ogTitle" validate:"required,max=60"`
	OgDescription      string `json:"ogDescription" form:"ogDescription" validate:"required,max=160"`
	OgType             string `json:"ogType,omitempty" form:"ogType" validate:"omitempty,max=50"`
	OgURL              string `json:"ogUrl" form:"ogUrl" validate:"required,max=2048,url"`
	OgSiteName         string `json:"ogSiteName,omitempty" form:"ogSiteName" validate:"omitempty,max=100"`
	TwitterCard        string `json:"twitterCard,omitempty" form:"twitterCard" validate:"omitempty,oneof=summary summary_large_image app player"`
	TwitterSite        string `json:"twitterSite,omitempty" form:"twitterSite" validate:"omitempty,max=25"`
	TwitterTitle       string `json:"twitterTitle,omitempty" form:"twitterTitle" validate:"omitempty,max=60"`
	TwitterDescription string `json:"twitterDescription,omitempty" form:"twitterDescription" validate:"omitempty,max=160"`
	Hreflang           string `json:"hreflang,omitempty" form:"hreflang" validate:"omitempty,max=10"`
	XDefault           string `json:"x_default,omitempty" form:"x_default" validate:"omitempty,max=10"`
	AuthorName         string `json:"author_name,omitempty" form:"author_name" validate:"omitempty,max=100"`

	Sku             string  `json:"sku" form:"sku" validate:"required,no_xss"`
	Slug            string  `json:"slug" form:"slug" validate:"required,no_xss"`
	Excerpt         string  `json:"excerpt,omitempty" form:"excerpt" validate:"omitempty,max=255"`
	CanonicalURL    string  `json:"canonical_url,omitempty" form:"canonical_url" validate:"omitempty,max=2048,url"`
	DescriptionHTML string  `json:"description_html,omitempty" form:"description_html"`
	RatingValue     float64 `json:"rating_value,omitempty" form:"rating_value" validate:"omitempty,min=0"`
	RatingCount     int     `json:"rating_count,omitempty" form:"rating_count" validate:"omitempty,min=0"`

	PurchasePrice     *float64 `json:"purchasePrice" form:"purchasePrice" validate:"required,min=0"`
	SalesPrice        *float64 `json:"salesPrice" form:"salesPrice" validate:"required,min=0"`
	LocationCode      string   `json:"locationCode" form:"locationCode" validate:"required,max=3"`
	ProductIdentifier string   `json:"productIdentifier" form:"productIdentifier" validate:"required,no_xss"`
}

// ProductUpdateInput dữ liệu cập nhật sản phẩm.
// Chỉ trường có giá trị mới được ghi đè, giữ nguyên phần còn lại của document.
type ProductUpdateInput struct {
	Name               string `json:"name,omitempty" form:"name" validate:"omitempty,no_xss"`
	ProductDescription string `json:"productdescription,omitempty" form:"productdescription"`

	PopularProduct  string `json:"popularproduct,omitempty" form:"popularproduct"`
	ProductOffer    string `json:"productoffer,omitempty" form:"productoffer"`
	TopRatedProduct string `json:"topratedproduct,omitempty" form:"topratedproduct"`

	NewCategoryID string `json:"newCategoryId,omitempty" form:"newCategoryId" validate:"omitempty,len=24,hexadecimal"`
	StructureID   string `json:"structureId,omitempty" form:"structureId" validate:"omitempty,len=24,hexadecimal"`
	ContentID     string `json:"contentId,omitempty" form:"contentId" validate:"omitempty,len=24,hexadecimal"`
	FinishID      string `json:"finishId,omitempty" form:"finishId" validate:"omitempty,len=24,hexadecimal"`
	DesignID      string `json:"designId,omitempty" form:"designId" validate:"omitempty,len=24,hexadecimal"`
	ColorID       string `json:"colorId,omitempty" form:"colorId" validate:"omitempty,len=24,hexadecimal"`
	MotifsizeID   string `json:"motifsizeId,omitempty" form:"motifsizeId" validate:"omitempty,len=24,hexadecimal"`
	SuitableforID string `json:"suitableforId,omitempty" form:"suitableforId" validate:"omitempty,len=24,hexadecimal"`
	VendorID      string `json:"vendorId,omitempty" form:"vendorId" validate:"omitempty,len=24,hexadecimal"`
	GroupcodeID   string `json:"groupcodeId,omitempty" form:"groupcodeId" validate:"omitempty,len=24,hexadecimal"`

	SubstructureID string `json:"substructureId,omitempty" form:"substructureId" validate:"omitempty,len=24,hexadecimal"`
	SubfinishID    string `json:"subfinishId,omitempty" form:"subfinishId" validate:"omitempty,len=24,hexadecimal"`
	SubsuitableID  string `json:"subsuitableId,omitempty" form:"subsuitableId" validate:"omitempty,len=24,hexadecimal"`

	Image  string `json:"image,omitempty" form:"image"`
	Image1 string `json:"image1,omitempty" form:"image1"`
	Image2 string `json:"image2,omitempty" form:"image2"`
	Video  string `json:"video,omitempty" form:"video"`

	Gsm      *float64 `json:"gsm,omitempty" form:"gsm"`
	Oz       *float64 `json:"oz,omitempty" form:"oz"`
	Cm       *float64 `json:"cm,omitempty" form:"cm"`
	Inch     *float64 `json:"inch,omitempty" form:"inch"`
	Quantity *int     `json:"quantity,omitempty" form:"quantity" validate:"omitempty,min=0"`
	Um       string   `json:"um,omitempty" form:"um"`
	Currency string   `json:"currency,omitempty" form:"currency"`
	Css      string   `json:"css,omitempty" form:"css"`

	Charset                string `json:"charset,omitempty" form:"charset" validate:"omitempty,oneof=UTF-8"`
	XUaCompatible          string `json:"xUaCompatible,omitempty" form:"xUaCompatible" validate:"omitempty,max=20"`
	Viewport               string `json:"viewport,omitempty" form:"viewport" validate:"omitempty,max=100"`
	Title                  string `json:"title,omitempty" form:"title" validate:"omitempty,max=60"`
	Description            string `json:"description,omitempty" form:"description" validate:"omitempty,max=160"`
	Keywords               string `json:"keywords,omitempty" form:"keywords" validate:"omitempty,max=200"`
	Robots                 string `json:"robots,omitempty" form:"robots" validate:"omitempty,oneof='index0x2C follow' 'noindex0x2C nofollow' 'index0x2C nofollow' 'noindex0x2C follow'"`
	ContentLanguage        string `json:"contentLanguage,omitempty" form:"contentLanguage" validate:"omitempty,max=10"`
	GoogleSiteVerification string `json:"googleSiteVerification,omitempty" form:"googleSiteVerification" validate:"omitempty,max=100"`
	MsValidate             string `json:"msValidate,omitempty" form:"msValidate" validate:"omitempty,max=100"`
	ThemeColor             string `json:"themeColor,omitempty" form:"themeColor" validate:"omitempty,hexcolor"`
	MobileWebAppCapable    *bool  `json:"mobileWebAppCapable,omitempty" form:"mobileWebAppCapable"`
	AppleStatusBarStyle    string `json:"appleStatusBarStyle,omitempty" form:"appleStatusBarStyle" validate:"omitempty,oneof=default black black-translucent"`
	FormatDetection        string `json:"formatDetection,omitempty" form:"formatDetection" validate:"omitempty,oneof=telephone=no telephone=yes"`

	OgLocale           string `json:"ogLocale,omitempty" form:"ogLocale" validate:"omitempty,max=10"`
	OgTitle            string `json:"ogTitle,omitempty" form:"ogTitle" validate:"omitempty,max=60"`
	OgDescription      string `json:"ogDescription,omitempty" form:"ogDescription" validate:"omitempty,max=160"`
	OgType             string `json:"ogType,omitempty" form:"ogType" validate:"omitempty,max=50"`
	OgURL              string `json:"ogUrl,omitempty" form:"ogUrl" validate:"omitempty,max=2048,url"`
	OgSiteName         string `json:"ogSiteName,omitempty" form:"ogSiteName" validate:"omitempty,max=100"`
	TwitterCard        string `json:"twitterCard,omitempty" form:"twitterCard" validate:"omitempty,oneof=summary summary_large_image app player"`
	TwitterSite        string `json:"twitterSite,omitempty" form:"twitterSite" validate:"omitempty,max=25"`
	TwitterTitle       string `json:"twitterTitle,omitempty" form:"twitterTitle" validate:"omitempty,max=60"`
	TwitterDescription string `json:"twitterDescription,omitempty" form:"twitterDescription" validate:"omitempty,max=160"`
	Hreflang           string `json:"hreflang,omitempty" form:"hreflang" validate:"omitempty,max=10"`
	XDefault           string `json:"x_default,omitempty" form:"x_default" validate:"omitempty,max=10"`
	AuthorName         string `json:"author_name,omitempty" form:"author_name" validate:"omitempty,max=100"`

	Sku             string   `json:"sku,omitempty" form:"sku" validate:"omitempty,no_xss"`
	Slug            string   `json:"slug,omitempty" form:"slug" validate:"omitempty,no_xss"`
	Excerpt         string   `json:"excerpt,omitempty" form:"excerpt" validate:"omitempty,max=255"`
	CanonicalURL    string   `json:"canonical_url,omitempty" form:"canonical_url" validate:"omitempty,max=2048,url"`
	DescriptionHTML string   `json:"description_html,omitempty" form:"description_html"`
	RatingValue     *float64 `json:"rating_value,omitempty" form:"rating_value" validate:"omitempty,min=0"`
	RatingCount     *int     `json:"rating_count,omitempty" form:"rating_count" validate:"omitempty,min=0"`

	PurchasePrice     *float64 `json:"purchasePrice,omitempty" form:"purchasePrice"`
	SalesPrice        *float64 `json:"salesPrice,omitempty" form:"salesPrice"`
	LocationCode      string   `json:"locationCode,omitempty" form:"locationCode" validate:"omitempty,max=3"`
	ProductIdentifier string   `json:"productIdentifier,omitempty" form:"productIdentifier" validate:"omitempty,no_xss"`
}
