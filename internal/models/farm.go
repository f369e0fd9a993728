package models

import "time"

type Farm struct {
	ID       uint64  `gorm:"primaryKey;autoIncrement"`
	Name     string  `gorm:"type:varchar(120);not null;uniqueIndex"`
	Location *string `gorm:"type:varchar(200)"`
	Owner    *string `gorm:"type:varchar(120)"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime"`
	UpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime"`
}

func (Farm) TableName() string {
	return "farms"
}
