package models

import "time"

type Supplier struct {
	ID      uint64  `gorm:"primaryKey;autoIncrement"`
	Name    string  `gorm:"type:varchar(120);not null;uniqueIndex"`
	Contact *string `gorm:"type:varchar(200)"`
	Notes   *string `gorm:"type:text"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime"`
	UpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime"`
}

func (Supplier) TableName() string {
	return "suppliers"
}
