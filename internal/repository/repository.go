package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"shrimpfarm/internal/models"
)

// Repository is the persistence boundary the report engine and the write-side
// services depend on. Get* methods return (nil, nil) when the row is missing;
// callers decide whether absence is an error.
type Repository interface {
	InTx(ctx context.Context, fn func(tx *gorm.DB) error) error

	// Farms, ponds, suppliers.
	CreateFarm(ctx context.Context, item *models.Farm) error
	ListFarms(ctx context.Context) ([]models.Farm, error)
	GetFarmByID(ctx context.Context, id uint64) (*models.Farm, error)
	CreatePond(ctx context.Context, item *models.Pond) error
	ListPonds(ctx context.Context, params ListPondsParams) ([]models.Pond, error)
	GetPondByID(ctx context.Context, id uint64) (*models.Pond, error)
	CreateSupplier(ctx context.Context, item *models.Supplier) error
	ListSuppliers(ctx context.Context) ([]models.Supplier, error)

	// Batches.
	CreateBatch(ctx context.Context, item *models.Batch) error
	GetBatchByID(ctx context.Context, id uint64) (*models.Batch, error)
	GetBatchByCode(ctx context.Context, code string) (*models.Batch, error)
	ListBatches(ctx context.Context, params ListBatchesParams) ([]models.Batch, error)
	CountBatches(ctx context.Context, params ListBatchesParams) (int64, error)
	ListActiveBatches(ctx context.Context) ([]models.Batch, error)
	UpdateBatchStatus(ctx context.Context, id uint64, status string) error
	FinishBatch(ctx context.Context, id uint64, harvestDate time.Time) error

	// Biometric samples, ascending by sample date.
	InsertSample(ctx context.Context, item *models.BiometricSample) error
	ListSamplesByBatchID(ctx context.Context, batchID uint64) ([]models.BiometricSample, error)
	LatestSampleByBatchID(ctx context.Context, batchID uint64) (*models.BiometricSample, error)
	CountSamplesOnDate(ctx context.Context, batchID uint64, date time.Time) (int64, error)

	// Expense line items.
	InsertFeedApplication(ctx context.Context, item *models.FeedApplication) error
	ListFeedApplicationsByBatchID(ctx context.Context, batchID uint64) ([]models.FeedApplication, error)
	SumFeedQuantityKg(ctx context.Context, batchID uint64, until *time.Time) (decimal.Decimal, error)
	InsertNutrientApplication(ctx context.Context, item *models.NutrientApplication) error
	ListNutrientApplicationsByBatchID(ctx context.Context, batchID uint64) ([]models.NutrientApplication, error)
	InsertFertilizationApplication(ctx context.Context, item *models.FertilizationApplication) error
	ListFertilizationApplicationsByBatchID(ctx context.Context, batchID uint64) ([]models.FertilizationApplication, error)
	InsertVariableCost(ctx context.Context, item *models.VariableCost) error
	ListVariableCostsByBatchID(ctx context.Context, batchID uint64) ([]models.VariableCost, error)

	// Harvest.
	UpsertHarvest(ctx context.Context, item *models.Harvest) error
	GetHarvestByBatchID(ctx context.Context, batchID uint64) (*models.Harvest, error)

	// Dashboard snapshots.
	InsertDashboardSnapshot(ctx context.Context, item *models.DashboardSnapshot) error
	ListDashboardSnapshots(ctx context.Context, params ListDashboardSnapshotsParams) ([]models.DashboardSnapshot, error)
	PruneDashboardSnapshots(ctx context.Context, keep int) (int64, error)
}

type ListPondsParams struct {
	Limit  int
	Offset int
	FarmID *uint64
	Active *bool
}

type ListBatchesParams struct {
	Limit   int
	Offset  int
	PondID  *uint64
	Status  *string
	OrderBy string
	Asc     *bool
}

type ListDashboardSnapshotsParams struct {
	Limit  int
	Offset int
	Since  *time.Time
}
