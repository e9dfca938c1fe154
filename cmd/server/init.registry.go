package main

import (
	"github.com/amritage/fabric-shop-backend/config"
	"github.com/amritage/fabric-shop-backend/internal/global"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

func InitRegistry() {
	// Khởi tạo registry và đăng ký các collections
	err := InitCollections(global.MongoDB_Session, global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to initialize collections: %v", err)
	}
	logrus.Info("Initialized collection registry")
}

// InitCollections đăng ký toàn bộ collection của catalog, product và auth
// vào RegistryCollections để các service tra cứu lúc khởi tạo
func InitCollections(client *mongo.Client, cfg *config.Configuration) error {
	db := client.Database(cfg.MongoDB_DBName)
	col := global.MongoDB_ColNames
	colNames := []string{
		col.Categories, col.Structures, col.Contents, col.Finishes, col.Designs,
		col.Colors, col.Motifsizes, col.Suitablefors, col.Vendors, col.GroupCodes,
		col.SubFinishes, col.SubStructures, col.SubSuitables,
		col.Products, col.LoginOtps,
	}

	for _, name := range colNames {
		registered, err := global.RegistryCollections.Register(name, db.Collection(name))
		if err != nil {
			logrus.Errorf("Failed to register collection %s: %v", name, err)
			return err
		}

		if registered {
			logrus.Infof("Collection %s registered successfully", name)
		} else {
			logrus.Errorf("Collection %s already registered", name)
		}
	}

	return nil
}
