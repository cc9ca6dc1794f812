package migration

import (
	"Relief-Aid-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.Admin{}); err != nil {
		log.Fatalf("Error migrating admin database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.DonationPackage{}); err != nil {
		log.Fatalf("Error migrating donation package database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.PackageItem{}); err != nil {
		log.Fatalf("Error migrating package item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Donation{}); err != nil {
		log.Fatalf("Error migrating donation database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.HelpRequest{}); err != nil {
		log.Fatalf("Error migrating help request database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.SystemSetting{}); err != nil {
		log.Fatalf("Error migrating system setting database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
