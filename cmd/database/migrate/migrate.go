package migration

import (
	"fmt"
	"log"

	"github.com/SiddharthChaturvedii/FoodView/entities"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FoodPartner{}); err != nil {
		log.Fatalf("Error migrating food partner database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FoodItem{}); err != nil {
		log.Fatalf("Error migrating food item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Like{}); err != nil {
		log.Fatalf("Error migrating like database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Save{}); err != nil {
		log.Fatalf("Error migrating save database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
