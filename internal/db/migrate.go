package db

import (
	"shrimpfarm/internal/models"
)

func AutoMigrate(db *DB) error {
	if db == nil || db.Gorm == nil || db.SQL == nil {
		return nil
	}

	return db.Gorm.AutoMigrate(
		&models.Farm{},
		&models.Pond{},
		&models.Supplier{},
		&models.Batch{},
		&models.BiometricSample{},
		&models.FeedApplication{},
		&models.NutrientApplication{},
		&models.FertilizationApplication{},
		&models.VariableCost{},
		&models.Harvest{},
		&models.DashboardSnapshot{},
	)
}
