package migration

import (
	"fmt"
	"log"

	"grocery-tracker/entities"

	"gorm.io/gorm"
)

var (
	packagingTypes = []string{"Bottle", "Box", "Can", "Bag", "Carton", "Pack", "Jar"}
	unitNames      = []string{"oz", "g", "ml", "lb", "kg"}
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Store{}); err != nil {
		log.Fatalf("Error migrating store database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Product{}); err != nil {
		log.Fatalf("Error migrating product database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Cart{}); err != nil {
		log.Fatalf("Error migrating cart database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Purchase{}); err != nil {
		log.Fatalf("Error migrating purchase database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.GroceryList{}, &entities.GroceryListItem{}); err != nil {
		log.Fatalf("Error migrating grocery list database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.PackagingOption{}, &entities.UnitOfMeasurement{}); err != nil {
		log.Fatalf("Error migrating lookup tables: %v", err)
		return err
	}

	if err := SeedLookups(db); err != nil {
		log.Fatalf("Error seeding lookup tables: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}

// SeedLookups fills the two lookup tables with the known value sets.
func SeedLookups(db *gorm.DB) error {
	for _, packaging := range packagingTypes {
		if err := db.FirstOrCreate(
			&entities.PackagingOption{},
			entities.PackagingOption{PackagingType: packaging},
		).Error; err != nil {
			return err
		}
	}
	for _, unit := range unitNames {
		if err := db.FirstOrCreate(
			&entities.UnitOfMeasurement{},
			entities.UnitOfMeasurement{UnitName: unit},
		).Error; err != nil {
			return err
		}
	}
	return nil
}
