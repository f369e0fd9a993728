package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	VariableCostEnergy      = "energy"
	VariableCostFuel        = "fuel"
	VariableCostLabor       = "labor"
	VariableCostMaintenance = "maintenance"
	VariableCostOther       = "other"
)

// VariableCost is any operational expense not categorized as
// feed/nutrient/fertilization.
type VariableCost struct {
	ID      uint64 `gorm:"primaryKey;autoIncrement"`
	BatchID uint64 `gorm:"not null;index"`

	EntryDate   time.Time        `gorm:"type:date;not null;index"`
	Category    string           `gorm:"type:varchar(20);not null;default:'other';index"`
	Description *string          `gorm:"type:varchar(200)"`
	Quantity    *decimal.Decimal `gorm:"type:numeric(12,3)"`
	Unit        *string          `gorm:"type:varchar(10)"`
	UnitCost    *decimal.Decimal `gorm:"type:numeric(14,2)"`
	TotalCost   *decimal.Decimal `gorm:"type:numeric(14,2)"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime"`
	UpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime"`
}

func (VariableCost) TableName() string {
	return "variable_costs"
}
