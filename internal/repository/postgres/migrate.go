package postgres

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/kingrain94/rental-manager-api/internal/domain"
)

// Migrate creates or updates the rooms, tenants, payments and users tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.Room{},
		&domain.Tenant{},
		&domain.Payment{},
		&domain.UserProfile{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
