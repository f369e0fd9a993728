package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	BatchStatusPlanned   = "planned"
	BatchStatusActive    = "active"
	BatchStatusFinished  = "finished"
	BatchStatusCancelled = "cancelled"
)

// Batch is one stocking-to-harvest cultivation cycle in a pond. Raw stocking
// data only; days-in-cultivation and every report figure are derived on read.
type Batch struct {
	ID     uint64 `gorm:"primaryKey;autoIncrement"`
	PondID uint64 `gorm:"not null;index"`
	Code   string `gorm:"type:varchar(40);not null;uniqueIndex"`

	StockingDate time.Time  `gorm:"type:date;not null;index"`
	HarvestDate  *time.Time `gorm:"type:date"`

	InitialCount   int64            `gorm:"not null;default:0"`
	StockingCost   decimal.Decimal  `gorm:"type:numeric(14,2);not null;default:0"`
	InitialDensity *decimal.Decimal `gorm:"type:numeric(10,2)"`

	Status string `gorm:"type:varchar(20);not null;default:'planned';index"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime;index"`
	UpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime"`
}

func (Batch) TableName() string {
	return "batches"
}
