package models

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SettingInitialBankBalance is the starting balance for the cash-flow projection.
const SettingInitialBankBalance = "initial-bank-balance"

// Setting is a global key/value configuration record.
type Setting struct {
	Timestamps
	Key   string          `json:"key" gorm:"primaryKey" example:"initial-bank-balance"`
	Value decimal.Decimal `json:"value" gorm:"type:DECIMAL(20,8);not null;default:0" example:"25000"`
}

func (s Setting) Self() string {
	return "Setting"
}

// GetDecimalSetting returns the value for key. A missing setting is zero.
func GetDecimalSetting(db *gorm.DB, key string) (decimal.Decimal, error) {
	var s Setting
	err := db.Where(&Setting{Key: key}).First(&s).Error
	if errors.Is(err, ErrResourceNotFound) {
		return decimal.Zero, nil
	}

	if err != nil {
		return decimal.Zero, err
	}

	return s.Value, nil
}

// PutDecimalSetting creates or updates the setting in a single statement.
func PutDecimalSetting(db *gorm.DB, key string, value decimal.Decimal) (Setting, error) {
	s := Setting{Key: key, Value: value}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&s).Error
	if err != nil {
		return Setting{}, err
	}

	err = db.Where(&Setting{Key: key}).First(&s).Error
	return s, err
}
