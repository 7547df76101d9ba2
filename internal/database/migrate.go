package database

import (
	"fmt"

	"gorm.io/gorm"

	"boolbnb/internal/domain"
)

// Migrate creates or updates every table in domain.Models.
func Migrate(db *gorm.DB) error {
	for _, m := range domain.Models() {
		if err := db.AutoMigrate(m); err != nil {
			return fmt.Errorf("migrate %T: %w", m, err)
		}
	}
	return nil
}
