package persistence

import (
	"gorm.io/gorm"
)

// MustExist returns a not found error unless a row of model with the given id is visible to db.
// Inside a transaction it pins the check to the transaction's view.
func MustExist(db *gorm.DB, model any, resource string, id int64) error {
	var count int64
	if err := db.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return NotFound(resource, id)
	}
	return nil
}
