package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"shrimpfarm/internal/models"
	"shrimpfarm/internal/report"
	"shrimpfarm/internal/repository"
)

type ExpenseService struct {
	Repo repository.Repository
}

type ExpenseInput struct {
	BatchID    uint64
	SupplierID *uint64
	Date       time.Time
	Product    string
	Quantity   *decimal.Decimal
	Unit       string
	UnitCost   *decimal.Decimal
}

type VariableCostInput struct {
	BatchID     uint64
	Date        time.Time
	Category    string
	Description *string
	Quantity    *decimal.Decimal
	Unit        *string
	UnitCost    *decimal.Decimal
}

// lineTotal is quantity x unit cost, null when either operand is null. This is
// the single place the stored total is computed; entities carry no hooks.
func lineTotal(quantity, unitCost *decimal.Decimal) *decimal.Decimal {
	if quantity == nil || unitCost == nil {
		return nil
	}
	total := quantity.Mul(*unitCost).Round(2)
	return &total
}

func (s *ExpenseService) checkBatch(ctx context.Context, batchID uint64) error {
	batch, err := s.Repo.GetBatchByID(ctx, batchID)
	if err != nil {
		return err
	}
	if batch == nil {
		return report.ErrBatchNotFound
	}
	return nil
}

func (s *ExpenseService) AddFeed(ctx context.Context, input ExpenseInput) (*models.FeedApplication, error) {
	if err := s.checkBatch(ctx, input.BatchID); err != nil {
		return nil, err
	}
	item := &models.FeedApplication{
		BatchID:         input.BatchID,
		SupplierID:      input.SupplierID,
		ApplicationDate: input.Date,
		Product:         input.Product,
		Quantity:        input.Quantity,
		Unit:            defaultUnit(input.Unit),
		UnitCost:        input.UnitCost,
		TotalCost:       lineTotal(input.Quantity, input.UnitCost),
	}
	if err := s.Repo.InsertFeedApplication(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *ExpenseService) AddNutrient(ctx context.Context, input ExpenseInput) (*models.NutrientApplication, error) {
	if err := s.checkBatch(ctx, input.BatchID); err != nil {
		return nil, err
	}
	item := &models.NutrientApplication{
		BatchID:         input.BatchID,
		SupplierID:      input.SupplierID,
		ApplicationDate: input.Date,
		Product:         input.Product,
		Quantity:        input.Quantity,
		Unit:            defaultUnit(input.Unit),
		UnitCost:        input.UnitCost,
		TotalCost:       lineTotal(input.Quantity, input.UnitCost),
	}
	if err := s.Repo.InsertNutrientApplication(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *ExpenseService) AddFertilization(ctx context.Context, input ExpenseInput) (*models.FertilizationApplication, error) {
	if err := s.checkBatch(ctx, input.BatchID); err != nil {
		return nil, err
	}
	item := &models.FertilizationApplication{
		BatchID:         input.BatchID,
		SupplierID:      input.SupplierID,
		ApplicationDate: input.Date,
		Product:         input.Product,
		Quantity:        input.Quantity,
		Unit:            defaultUnit(input.Unit),
		UnitCost:        input.UnitCost,
		TotalCost:       lineTotal(input.Quantity, input.UnitCost),
	}
	if err := s.Repo.InsertFertilizationApplication(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *ExpenseService) AddVariableCost(ctx context.Context, input VariableCostInput) (*models.VariableCost, error) {
	if err := s.checkBatch(ctx, input.BatchID); err != nil {
		return nil, err
	}
	category := input.Category
	if category == "" {
		category = models.VariableCostOther
	}
	item := &models.VariableCost{
		BatchID:     input.BatchID,
		EntryDate:   input.Date,
		Category:    category,
		Description: input.Description,
		Quantity:    input.Quantity,
		Unit:        input.Unit,
		UnitCost:    input.UnitCost,
		TotalCost:   lineTotal(input.Quantity, input.UnitCost),
	}
	if err := s.Repo.InsertVariableCost(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func defaultUnit(unit string) string {
	if unit == "" {
		return "kg"
	}
	return unit
}
