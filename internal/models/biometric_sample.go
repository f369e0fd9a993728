package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BiometricSample is one weighing event for a batch. Only raw measurements are
// stored; day-of-cultivation, weight gain, biomass, survival and FCA are
// computed by the report package on every read.
type BiometricSample struct {
	ID      uint64 `gorm:"primaryKey;autoIncrement"`
	BatchID uint64 `gorm:"not null;index:idx_sample_batch_date,priority:1"`

	SampleDate   time.Time        `gorm:"type:date;not null;index:idx_sample_batch_date,priority:2"`
	MeanWeightG  decimal.Decimal  `gorm:"type:numeric(10,3);not null"`
	SampledCount int64            `gorm:"not null"`
	TotalWeightG *decimal.Decimal `gorm:"type:numeric(12,3)"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime"`
	UpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime"`
}

func (BiometricSample) TableName() string {
	return "biometric_samples"
}
