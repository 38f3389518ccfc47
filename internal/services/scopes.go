package services

import (
	"github.com/franciscosanchezn/gin-bar-api/internal/validation"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Cheap restricts a priced collection to items at or below maxPrice
func Cheap(maxPrice decimal.Decimal) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("price <= ?", maxPrice)
	}
}

// OrderByName applies the default alphabetical ordering of every catalog list
func OrderByName(db *gorm.DB) *gorm.DB {
	return db.Order("name ASC")
}

// ensureUniqueName records ErrNameTaken on the name field when another row of
// model already uses name. excludeID skips the row being updated.
func ensureUniqueName(tx *gorm.DB, model interface{}, name string, excludeID uint, errs validation.Errors) error {
	if _, rejected := errs["name"]; rejected {
		return nil
	}
	var count int64
	query := tx.Model(model).Where("name = ?", name)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		errs.Add("name", ErrNameTaken)
	}
	return nil
}

// ensureCategory records ErrInvalidChoice on category_id when it does not resolve
func ensureCategory(tx *gorm.DB, categoryID uint, errs validation.Errors) error {
	if _, rejected := errs["category_id"]; rejected {
		return nil
	}
	var count int64
	if err := tx.Table("categories").Where("id = ?", categoryID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		errs.Add("category_id", ErrInvalidChoice)
	}
	return nil
}
