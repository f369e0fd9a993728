package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type FeedApplication struct {
	ID         uint64  `gorm:"primaryKey;autoIncrement"`
	BatchID    uint64  `gorm:"not null;index"`
	SupplierID *uint64 `gorm:"index"`

	ApplicationDate time.Time        `gorm:"type:date;not null;index"`
	Product         string           `gorm:"type:varchar(120);not null"`
	Quantity        *decimal.Decimal `gorm:"type:numeric(12,3)"`
	Unit            string           `gorm:"type:varchar(10);not null;default:'kg'"`
	UnitCost        *decimal.Decimal `gorm:"type:numeric(14,2)"`
	// quantity * unit cost, null when either operand is null. Written by the
	// expense service, never by an entity hook.
	TotalCost *decimal.Decimal `gorm:"type:numeric(14,2)"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime"`
	UpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime"`
}

func (FeedApplication) TableName() string {
	return "feed_applications"
}
