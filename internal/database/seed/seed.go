// internal/database/seed/seed.go
package seed

import (
	"log"

	"gorm.io/gorm"

	"github.com/protouch/protouch/internal/gate"
	"github.com/protouch/protouch/internal/models"
	"github.com/protouch/protouch/internal/utils/password"
)

// Run seeds reference data: default roles and the initial admin account
func Run(db *gorm.DB) error {
	if err := seedRoles(db); err != nil {
		return err
	}
	return seedAdmin(db)
}

func seedRoles(db *gorm.DB) error {
	var count int64
	db.Model(&models.Role{}).Count(&count)
	if count > 0 {
		return nil
	}

	roles := []models.Role{
		{Name: "admin", Description: "Administrator with full access"},
		{Name: "expert", Description: "UI/UX expert with back-office access"},
		{Name: "analyst", Description: "User who can request analyses"},
	}
	return db.Create(&roles).Error
}

func seedAdmin(db *gorm.DB) error {
	var count int64
	db.Model(&models.User{}).Joins("Role").Where("\"Role\".name = ?", "admin").Count(&count)
	if count > 0 {
		return nil
	}

	var adminRole models.Role
	if err := db.Where("name = ?", "admin").First(&adminRole).Error; err != nil {
		return err
	}

	hash, err := password.Hash("admin1234!")
	if err != nil {
		return err
	}

	admin := models.User{
		Username:           "admin",
		Email:              "admin@protouch.kr",
		PasswordHash:       hash,
		RoleID:             adminRole.ID,
		SubscriptionTier:   gate.TierPro,
		SubscriptionStatus: gate.StatusActive,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Println("Seeded default admin account (change the password immediately)")
	return nil
}
