package models

import (
	"time"

	"gorm.io/datatypes"
)

// DashboardSnapshot caches one dashboard KPI roll-up so the UI can show
// history without re-aggregating every batch on each request.
type DashboardSnapshot struct {
	ID      uint64         `gorm:"primaryKey;autoIncrement"`
	TakenAt time.Time      `gorm:"type:timestamptz;not null;index"`
	KPIs    datatypes.JSON `gorm:"type:jsonb;not null"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime"`
}

func (DashboardSnapshot) TableName() string {
	return "dashboard_snapshots"
}
