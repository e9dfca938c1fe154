package main

import (
	"context"

	"github.com/amritage/fabric-shop-backend/config"
	authmodels "github.com/amritage/fabric-shop-backend/internal/api/auth/models"
	catalogmodels "github.com/amritage/fabric-shop-backend/internal/api/catalog/models"
	productmodels "github.com/amritage/fabric-shop-backend/internal/api/product/models"
	"github.com/amritage/fabric-shop-backend/internal/database"
	"github.com/amritage/fabric-shop-backend/internal/global"

	"github.com/sirupsen/logrus"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
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
	global.MongoDB_ColNames.LoginOtps = "login_otps"

	logrus.Info("Initialized collection names") // Ghi log thông báo đã khởi tạo tên các collection
}

// Hàm khởi tạo validator (dùng global.InitValidator để đăng ký custom validators: no_xss, no_sql_injection)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator") // Ghi log thông báo đã khởi tạo validator
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil") // Ghi log lỗi nếu khởi tạo cấu hình thất bại
	}
	logrus.Info("Initialized server config") // Ghi log thông báo đã khởi tạo cấu hình server
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err) // Ghi log lỗi nếu kết nối database thất bại
	}
	logrus.Info("Connected to MongoDB") // Ghi log thông báo đã kết nối database thành công

	// Khởi tạo db và các collection nếu chưa có
	col := global.MongoDB_ColNames
	colNames := []string{
		col.Categories, col.Structures, col.Contents, col.Finishes, col.Designs,
		col.Colors, col.Motifsizes, col.Suitablefors, col.Vendors, col.GroupCodes,
		col.SubFinishes, col.SubStructures, col.SubSuitables,
		col.Products, col.LoginOtps,
	}
	if err := database.EnsureDatabaseAndCollections(global.MongoDB_Session, global.MongoDB_ServerConfig.MongoDB_DBName, colNames); err != nil {
		logrus.Fatalf("Failed to ensure database and collections: %v", err)
	}
	logrus.Info("Ensured database and collections") // Ghi log thông báo đã đảm bảo database và các collection

	// Khởi tạo các index cho các collection theo tag `index` trên model
	db := global.MongoDB_Session.Database(global.MongoDB_ServerConfig.MongoDB_DBName)
	facetCols := []string{
		col.Categories, col.Structures, col.Contents, col.Finishes, col.Designs,
		col.Colors, col.Motifsizes, col.Suitablefors, col.Vendors, col.GroupCodes,
	}
	for _, name := range facetCols {
		database.CreateIndexes(context.TODO(), db.Collection(name), catalogmodels.Facet{})
	}
	database.CreateIndexes(context.TODO(), db.Collection(col.SubFinishes), catalogmodels.SubFinish{})
	database.CreateIndexes(context.TODO(), db.Collection(col.SubStructures), catalogmodels.SubStructure{})
	database.CreateIndexes(context.TODO(), db.Collection(col.SubSuitables), catalogmodels.SubSuitable{})
	database.CreateIndexes(context.TODO(), db.Collection(col.Products), productmodels.Product{})
	database.CreateIndexes(context.TODO(), db.Collection(col.LoginOtps), authmodels.LoginOtp{})
}
