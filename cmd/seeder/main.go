package main

import (
	"context"
	"log"

	"grocery-tracker/cmd/config"
	migration "grocery-tracker/cmd/database/migrate"
	"grocery-tracker/cmd/database/seeder"
	"grocery-tracker/internal/utils"

	"github.com/google/uuid"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("error connecting to database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("error migrating database: %v", err)
	}

	userID := utils.GetConfig("SEED_USER_ID")
	if userID == "" {
		userID = uuid.NewString()
		log.Printf("SEED_USER_ID not set, generated user id %s", userID)
	}

	if err := seeder.Run(context.Background(), db, userID); err != nil {
		log.Fatalf("error seeding database: %v", err)
	}

	log.Println("Database seeding complete")
}
