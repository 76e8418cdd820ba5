package postgres

import (
	"gorm.io/gorm"
)

// affectedOrNotFound turns a write that matched no rows into gorm.ErrRecordNotFound
func affectedOrNotFound(result *gorm.DB) error {
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
