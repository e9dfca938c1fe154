package global

import (
	"github.com/amritage/fabric-shop-backend/config"
	"github.com/amritage/fabric-shop-backend/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_Catalog_CollectionName chứa tên các collection trong MongoDB
type MongoDB_Catalog_CollectionName struct {
	Categories    string // Tên collection cho danh mục sản phẩm
	Structures    string // Tên collection cho cấu trúc vải
	Contents      string // Tên collection cho thành phần chất liệu
	Finishes      string // Tên collection cho kiểu hoàn thiện
	Designs       string // Tên collection cho thiết kế
	Colors        string // Tên collection cho màu sắc
	Motifsizes    string // Tên collection cho kích thước họa tiết
	Suitablefors  string // Tên collection cho mục đích sử dụng
	Vendors       string // Tên collection cho nhà cung cấp
	GroupCodes    string // Tên collection cho mã nhóm sản phẩm
	SubFinishes   string // Tên collection cho kiểu hoàn thiện con
	SubStructures string // Tên collection cho cấu trúc con
	SubSuitables  string // Tên collection cho mục đích sử dụng con
	Products      string // Tên collection cho sản phẩm
	LoginOtps     string // Tên collection cho mã OTP đăng nhập
}

// Các biến toàn cục
var Validate *validator.Validate               // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client              // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration // Cấu hình của server
var MongoDB_ColNames MongoDB_Catalog_CollectionName = *new(MongoDB_Catalog_CollectionName)

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
