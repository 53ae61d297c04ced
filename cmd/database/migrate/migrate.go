package migration

import (
	"fmt"

	"fridgemate/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.StoreEntry{}); err != nil {
		return fmt.Errorf("migrating store entries: %w", err)
	}
	return nil
}
