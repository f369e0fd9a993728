package gormrepository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"shrimpfarm/internal/models"
	"shrimpfarm/internal/repository"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) InTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.WithContext(ctx).Transaction(fn)
}

// --- farms, ponds, suppliers ------------------------------------------------

func (s *Store) CreateFarm(ctx context.Context, item *models.Farm) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *Store) ListFarms(ctx context.Context) ([]models.Farm, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var items []models.Farm
	if err := s.db.WithContext(ctx).
		Model(&models.Farm{}).
		Order("name asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) GetFarmByID(ctx context.Context, id uint64) (*models.Farm, error) {
	if s == nil || s.db == nil || id == 0 {
		return nil, nil
	}
	var item models.Farm
	err := s.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) CreatePond(ctx context.Context, item *models.Pond) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *Store) ListPonds(ctx context.Context, params repository.ListPondsParams) ([]models.Pond, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	query := s.db.WithContext(ctx).Model(&models.Pond{})
	if params.FarmID != nil && *params.FarmID > 0 {
		query = query.Where("farm_id = ?", *params.FarmID)
	}
	if params.Active != nil {
		query = query.Where("active = ?", *params.Active)
	}
	limit := normalizeLimit(params.Limit, 200)
	offset := normalizeOffset(params.Offset)
	var items []models.Pond
	if err := query.Order("name asc").Limit(limit).Offset(offset).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) GetPondByID(ctx context.Context, id uint64) (*models.Pond, error) {
	if s == nil || s.db == nil || id == 0 {
		return nil, nil
	}
	var item models.Pond
	err := s.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) CreateSupplier(ctx context.Context, item *models.Supplier) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	if strings.TrimSpace(item.Name) == "" {
		return nil
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"contact",
			"notes",
			"updated_at",
		}),
	}).Create(item).Error
}

func (s *Store) ListSuppliers(ctx context.Context) ([]models.Supplier, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var items []models.Supplier
	if err := s.db.WithContext(ctx).
		Model(&models.Supplier{}).
		Order("name asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// --- batches ----------------------------------------------------------------

func (s *Store) CreateBatch(ctx context.Context, item *models.Batch) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *Store) GetBatchByID(ctx context.Context, id uint64) (*models.Batch, error) {
	if s == nil || s.db == nil || id == 0 {
		return nil, nil
	}
	var item models.Batch
	err := s.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) GetBatchByCode(ctx context.Context, code string) (*models.Batch, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, nil
	}
	var item models.Batch
	err := s.db.WithContext(ctx).First(&item, "code = ?", code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) ListBatches(ctx context.Context, params repository.ListBatchesParams) ([]models.Batch, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	query := applyBatchFilters(s.db.WithContext(ctx).Model(&models.Batch{}), params)
	query = applyOrder(query, params.OrderBy, params.Asc, "stocking_date")
	limit := normalizeLimit(params.Limit, 200)
	offset := normalizeOffset(params.Offset)
	var items []models.Batch
	if err := query.Limit(limit).Offset(offset).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) CountBatches(ctx context.Context, params repository.ListBatchesParams) (int64, error) {
	if s == nil || s.db == nil {
		return 0, nil
	}
	var count int64
	query := applyBatchFilters(s.db.WithContext(ctx).Model(&models.Batch{}), params)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func applyBatchFilters(query *gorm.DB, params repository.ListBatchesParams) *gorm.DB {
	if params.PondID != nil && *params.PondID > 0 {
		query = query.Where("pond_id = ?", *params.PondID)
	}
	if params.Status != nil && strings.TrimSpace(*params.Status) != "" {
		query = query.Where("status = ?", strings.TrimSpace(*params.Status))
	}
	return query
}

func (s *Store) ListActiveBatches(ctx context.Context) ([]models.Batch, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var items []models.Batch
	if err := s.db.WithContext(ctx).
		Model(&models.Batch{}).
		Where("status = ?", models.BatchStatusActive).
		Order("stocking_date asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) UpdateBatchStatus(ctx context.Context, id uint64, status string) error {
	if s == nil || s.db == nil || id == 0 {
		return nil
	}
	return s.db.WithContext(ctx).
		Model(&models.Batch{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     status,
			"updated_at": time.Now().UTC(),
		}).Error
}

func (s *Store) FinishBatch(ctx context.Context, id uint64, harvestDate time.Time) error {
	if s == nil || s.db == nil || id == 0 {
		return nil
	}
	return s.db.WithContext(ctx).
		Model(&models.Batch{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":       models.BatchStatusFinished,
			"harvest_date": harvestDate,
			"updated_at":   time.Now().UTC(),
		}).Error
}

// --- biometric samples ------------------------------------------------------

func (s *Store) InsertSample(ctx context.Context, item *models.BiometricSample) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *Store) ListSamplesByBatchID(ctx context.Context, batchID uint64) ([]models.BiometricSample, error) {
	if s == nil || s.db == nil || batchID == 0 {
		return nil, nil
	}
	var items []models.BiometricSample
	if err := s.db.WithContext(ctx).
		Model(&models.BiometricSample{}).
		Where("batch_id = ?", batchID).
		Order("sample_date asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) LatestSampleByBatchID(ctx context.Context, batchID uint64) (*models.BiometricSample, error) {
	if s == nil || s.db == nil || batchID == 0 {
		return nil, nil
	}
	var item models.BiometricSample
	err := s.db.WithContext(ctx).
		Where("batch_id = ?", batchID).
		Order("sample_date desc").
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) CountSamplesOnDate(ctx context.Context, batchID uint64, date time.Time) (int64, error) {
	if s == nil || s.db == nil || batchID == 0 {
		return 0, nil
	}
	var count int64
	if err := s.db.WithContext(ctx).
		Model(&models.BiometricSample{}).
		Where("batch_id = ?", batchID).
		Where("sample_date = ?", date.Format("2006-01-02")).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// --- expense line items -----------------------------------------------------

func (s *Store) InsertFeedApplication(ctx context.Context, item *models.FeedApplication) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *Store) ListFeedApplicationsByBatchID(ctx context.Context, batchID uint64) ([]models.FeedApplication, error) {
	if s == nil || s.db == nil || batchID == 0 {
		return nil, nil
	}
	var items []models.FeedApplication
	if err := s.db.WithContext(ctx).
		Model(&models.FeedApplication{}).
		Where("batch_id = ?", batchID).
		Order("application_date asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) SumFeedQuantityKg(ctx context.Context, batchID uint64, until *time.Time) (decimal.Decimal, error) {
	if s == nil || s.db == nil || batchID == 0 {
		return decimal.Zero, nil
	}
	query := s.db.WithContext(ctx).
		Model(&models.FeedApplication{}).
		Select("COALESCE(SUM(quantity), 0)").
		Where("batch_id = ?", batchID).
		Where("quantity IS NOT NULL")
	if until != nil && !until.IsZero() {
		query = query.Where("application_date <= ?", until.Format("2006-01-02"))
	}
	var total decimal.Decimal
	if err := query.Scan(&total).Error; err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

func (s *Store) InsertNutrientApplication(ctx context.Context, item *models.NutrientApplication) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *Store) ListNutrientApplicationsByBatchID(ctx context.Context, batchID uint64) ([]models.NutrientApplication, error) {
	if s == nil || s.db == nil || batchID == 0 {
		return nil, nil
	}
	var items []models.NutrientApplication
	if err := s.db.WithContext(ctx).
		Model(&models.NutrientApplication{}).
		Where("batch_id = ?", batchID).
		Order("application_date asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) InsertFertilizationApplication(ctx context.Context, item *models.FertilizationApplication) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *Store) ListFertilizationApplicationsByBatchID(ctx context.Context, batchID uint64) ([]models.FertilizationApplication, error) {
	if s == nil || s.db == nil || batchID == 0 {
		return nil, nil
	}
	var items []models.FertilizationApplication
	if err := s.db.WithContext(ctx).
		Model(&models.FertilizationApplication{}).
		Where("batch_id = ?", batchID).
		Order("application_date asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) InsertVariableCost(ctx context.Context, item *models.VariableCost) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *Store) ListVariableCostsByBatchID(ctx context.Context, batchID uint64) ([]models.VariableCost, error) {
	if s == nil || s.db == nil || batchID == 0 {
		return nil, nil
	}
	var items []models.VariableCost
	if err := s.db.WithContext(ctx).
		Model(&models.VariableCost{}).
		Where("batch_id = ?", batchID).
		Order("entry_date asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// --- harvest ----------------------------------------------------------------

func (s *Store) UpsertHarvest(ctx context.Context, item *models.Harvest) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "batch_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"harvest_date",
			"total_weight_kg",
			"count_harvested",
			"final_weight_g",
			"unit_price_per_kg",
			"operational_cost",
			"updated_at",
		}),
	}).Create(item).Error
}

func (s *Store) GetHarvestByBatchID(ctx context.Context, batchID uint64) (*models.Harvest, error) {
	if s == nil || s.db == nil || batchID == 0 {
		return nil, nil
	}
	var item models.Harvest
	err := s.db.WithContext(ctx).First(&item, "batch_id = ?", batchID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// --- dashboard snapshots ----------------------------------------------------

func (s *Store) InsertDashboardSnapshot(ctx context.Context, item *models.DashboardSnapshot) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *Store) ListDashboardSnapshots(ctx context.Context, params repository.ListDashboardSnapshotsParams) ([]models.DashboardSnapshot, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	query := s.db.WithContext(ctx).Model(&models.DashboardSnapshot{})
	if params.Since != nil && !params.Since.IsZero() {
		query = query.Where("taken_at >= ?", *params.Since)
	}
	limit := normalizeLimit(params.Limit, 200)
	offset := normalizeOffset(params.Offset)
	var items []models.DashboardSnapshot
	if err := query.Order("taken_at desc").Limit(limit).Offset(offset).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) PruneDashboardSnapshots(ctx context.Context, keep int) (int64, error) {
	if s == nil || s.db == nil || keep <= 0 {
		return 0, nil
	}
	res := s.db.WithContext(ctx).
		Where("id NOT IN (?)", s.db.
			Model(&models.DashboardSnapshot{}).
			Select("id").
			Order("taken_at desc").
			Limit(keep)).
		Delete(&models.DashboardSnapshot{})
	return res.RowsAffected, res.Error
}

// --- helpers ----------------------------------------------------------------

var orderableColumns = map[string]struct{}{
	"id":            {},
	"code":          {},
	"status":        {},
	"stocking_date": {},
	"created_at":    {},
	"updated_at":    {},
}

func applyOrder(query *gorm.DB, orderBy string, asc *bool, fallback string) *gorm.DB {
	column := strings.TrimSpace(strings.ToLower(orderBy))
	if _, ok := orderableColumns[column]; !ok {
		column = fallback
	}
	direction := "desc"
	if asc != nil && *asc {
		direction = "asc"
	}
	return query.Order(column + " " + direction)
}

func normalizeLimit(limit int, fallback int) int {
	if limit <= 0 {
		return fallback
	}
	if limit > 500 {
		return 500
	}
	return limit
}

func normalizeOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}

var _ repository.Repository = (*Store)(nil)
