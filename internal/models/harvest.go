package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Harvest is the terminal 1:1 record of a batch. Revenue and survival are
// derived on read, not stored.
type Harvest struct {
	ID      uint64 `gorm:"primaryKey;autoIncrement"`
	BatchID uint64 `gorm:"not null;uniqueIndex"`

	HarvestDate     time.Time        `gorm:"type:date;not null"`
	TotalWeightKg   decimal.Decimal  `gorm:"type:numeric(12,3);not null"`
	CountHarvested  int64            `gorm:"not null;default:0"`
	FinalWeightG    *decimal.Decimal `gorm:"type:numeric(10,3)"`
	UnitPricePerKg  *decimal.Decimal `gorm:"type:numeric(14,2)"`
	OperationalCost *decimal.Decimal `gorm:"type:numeric(14,2)"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime"`
	UpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime"`
}

func (Harvest) TableName() string {
	return "harvests"
}
