package report

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"shrimpfarm/internal/models"
	"shrimpfarm/internal/repository"
)

// stubRepo is a test-only in-memory implementation of repository.Repository.
// Only the read paths the report builder touches carry real behavior.
type stubRepo struct {
	batches        map[uint64]models.Batch
	ponds          map[uint64]models.Pond
	samples        map[uint64][]models.BiometricSample
	feed           map[uint64][]models.FeedApplication
	nutrients      map[uint64][]models.NutrientApplication
	fertilizations map[uint64][]models.FertilizationApplication
	variables      map[uint64][]models.VariableCost
	harvests       map[uint64]models.Harvest
	snapshots      []models.DashboardSnapshot
}

func (s *stubRepo) InTx(ctx context.Context, fn func(tx *gorm.DB) error) error { return fn(nil) }

func (s *stubRepo) CreateFarm(ctx context.Context, item *models.Farm) error { return nil }
func (s *stubRepo) ListFarms(ctx context.Context) ([]models.Farm, error)    { return nil, nil }
func (s *stubRepo) GetFarmByID(ctx context.Context, id uint64) (*models.Farm, error) {
	return nil, nil
}
func (s *stubRepo) CreatePond(ctx context.Context, item *models.Pond) error { return nil }
func (s *stubRepo) ListPonds(ctx context.Context, params repository.ListPondsParams) ([]models.Pond, error) {
	return nil, nil
}
func (s *stubRepo) GetPondByID(ctx context.Context, id uint64) (*models.Pond, error) {
	if p, ok := s.ponds[id]; ok {
		return &p, nil
	}
	return nil, nil
}
func (s *stubRepo) CreateSupplier(ctx context.Context, item *models.Supplier) error { return nil }
func (s *stubRepo) ListSuppliers(ctx context.Context) ([]models.Supplier, error)    { return nil, nil }

func (s *stubRepo) CreateBatch(ctx context.Context, item *models.Batch) error { return nil }
func (s *stubRepo) GetBatchByID(ctx context.Context, id uint64) (*models.Batch, error) {
	if b, ok := s.batches[id]; ok {
		return &b, nil
	}
	return nil, nil
}
func (s *stubRepo) GetBatchByCode(ctx context.Context, code string) (*models.Batch, error) {
	return nil, nil
}
func (s *stubRepo) ListBatches(ctx context.Context, params repository.ListBatchesParams) ([]models.Batch, error) {
	return nil, nil
}
func (s *stubRepo) CountBatches(ctx context.Context, params repository.ListBatchesParams) (int64, error) {
	return 0, nil
}
func (s *stubRepo) ListActiveBatches(ctx context.Context) ([]models.Batch, error) {
	var out []models.Batch
	for _, b := range s.batches {
		if b.Status == models.BatchStatusActive {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
func (s *stubRepo) UpdateBatchStatus(ctx context.Context, id uint64, status string) error {
	return nil
}
func (s *stubRepo) FinishBatch(ctx context.Context, id uint64, harvestDate time.Time) error {
	return nil
}

func (s *stubRepo) InsertSample(ctx context.Context, item *models.BiometricSample) error { return nil }
func (s *stubRepo) ListSamplesByBatchID(ctx context.Context, batchID uint64) ([]models.BiometricSample, error) {
	items := append([]models.BiometricSample(nil), s.samples[batchID]...)
	sort.Slice(items, func(i, j int) bool { return items[i].SampleDate.Before(items[j].SampleDate) })
	return items, nil
}
func (s *stubRepo) LatestSampleByBatchID(ctx context.Context, batchID uint64) (*models.BiometricSample, error) {
	items, _ := s.ListSamplesByBatchID(ctx, batchID)
	if len(items) == 0 {
		return nil, nil
	}
	latest := items[len(items)-1]
	return &latest, nil
}
func (s *stubRepo) CountSamplesOnDate(ctx context.Context, batchID uint64, date time.Time) (int64, error) {
	var count int64
	for _, item := range s.samples[batchID] {
		if item.SampleDate.Equal(date) {
			count++
		}
	}
	return count, nil
}

func (s *stubRepo) InsertFeedApplication(ctx context.Context, item *models.FeedApplication) error {
	return nil
}
func (s *stubRepo) ListFeedApplicationsByBatchID(ctx context.Context, batchID uint64) ([]models.FeedApplication, error) {
	return s.feed[batchID], nil
}
func (s *stubRepo) SumFeedQuantityKg(ctx context.Context, batchID uint64, until *time.Time) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, item := range s.feed[batchID] {
		if item.Quantity == nil {
			continue
		}
		if until != nil && item.ApplicationDate.After(*until) {
			continue
		}
		total = total.Add(*item.Quantity)
	}
	return total, nil
}
func (s *stubRepo) InsertNutrientApplication(ctx context.Context, item *models.NutrientApplication) error {
	return nil
}
func (s *stubRepo) ListNutrientApplicationsByBatchID(ctx context.Context, batchID uint64) ([]models.NutrientApplication, error) {
	return s.nutrients[batchID], nil
}
func (s *stubRepo) InsertFertilizationApplication(ctx context.Context, item *models.FertilizationApplication) error {
	return nil
}
func (s *stubRepo) ListFertilizationApplicationsByBatchID(ctx context.Context, batchID uint64) ([]models.FertilizationApplication, error) {
	return s.fertilizations[batchID], nil
}
func (s *stubRepo) InsertVariableCost(ctx context.Context, item *models.VariableCost) error {
	return nil
}
func (s *stubRepo) ListVariableCostsByBatchID(ctx context.Context, batchID uint64) ([]models.VariableCost, error) {
	return s.variables[batchID], nil
}

func (s *stubRepo) UpsertHarvest(ctx context.Context, item *models.Harvest) error { return nil }
func (s *stubRepo) GetHarvestByBatchID(ctx context.Context, batchID uint64) (*models.Harvest, error) {
	if h, ok := s.harvests[batchID]; ok {
		return &h, nil
	}
	return nil, nil
}

func (s *stubRepo) InsertDashboardSnapshot(ctx context.Context, item *models.DashboardSnapshot) error {
	if item != nil {
		s.snapshots = append(s.snapshots, *item)
	}
	return nil
}
func (s *stubRepo) ListDashboardSnapshots(ctx context.Context, params repository.ListDashboardSnapshotsParams) ([]models.DashboardSnapshot, error) {
	return s.snapshots, nil
}
func (s *stubRepo) PruneDashboardSnapshots(ctx context.Context, keep int) (int64, error) {
	return 0, nil
}

var _ repository.Repository = (*stubRepo)(nil)

// helpers shared by the report tests

func dptr(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func day(offset int) time.Time {
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	return base.AddDate(0, 0, offset)
}
