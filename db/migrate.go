package db

import (
	"fmt"
	"log"

	"github.com/labourhub/booking-app/models"
)

// Migrate runs AutoMigrate and seeds the roles. Init must have been called.
func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.Permission{},
		&models.LabourDetails{},
		&models.Service{},
		&models.WorkingHours{},
		&models.Booking{},
		&models.Review{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	SeedRoles()

	fmt.Println("✅ Migrations applied successfully!")
}
