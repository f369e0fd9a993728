package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Pond struct {
	ID     uint64 `gorm:"primaryKey;autoIncrement"`
	FarmID uint64 `gorm:"not null;index"`
	Name   string `gorm:"type:varchar(120);not null"`

	AreaM2 *decimal.Decimal `gorm:"type:numeric(12,2)"`
	DepthM *decimal.Decimal `gorm:"type:numeric(6,2)"`
	Active bool             `gorm:"not null;default:true"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime"`
	UpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime"`
}

func (Pond) TableName() string {
	return "ponds"
}
