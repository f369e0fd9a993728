package service

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"shrimpfarm/internal/models"
	"shrimpfarm/internal/report"
	"shrimpfarm/internal/repository"
)

var ErrHarvestBeforeStocking = errors.New("harvest date precedes stocking date")

type HarvestService struct {
	Repo   repository.Repository
	Logger *zap.Logger
}

type CloseBatchInput struct {
	BatchID         uint64
	HarvestDate     time.Time
	TotalWeightKg   decimal.Decimal
	CountHarvested  int64
	FinalWeightG    *decimal.Decimal
	UnitPricePerKg  *decimal.Decimal
	OperationalCost *decimal.Decimal
}

// CloseBatch records the terminal harvest and finishes the batch. Re-closing
// an already finished batch replaces the harvest figures (correction entry).
func (s *HarvestService) CloseBatch(ctx context.Context, input CloseBatchInput) (*models.Harvest, error) {
	batch, err := s.Repo.GetBatchByID(ctx, input.BatchID)
	if err != nil {
		return nil, err
	}
	if batch == nil {
		return nil, report.ErrBatchNotFound
	}
	if input.HarvestDate.Before(batch.StockingDate) {
		return nil, ErrHarvestBeforeStocking
	}
	if batch.Status == models.BatchStatusCancelled {
		return nil, ErrBatchNotActive
	}

	harvest := &models.Harvest{
		BatchID:         input.BatchID,
		HarvestDate:     input.HarvestDate,
		TotalWeightKg:   input.TotalWeightKg,
		CountHarvested:  input.CountHarvested,
		FinalWeightG:    input.FinalWeightG,
		UnitPricePerKg:  input.UnitPricePerKg,
		OperationalCost: input.OperationalCost,
	}
	if err := s.Repo.UpsertHarvest(ctx, harvest); err != nil {
		return nil, err
	}
	if err := s.Repo.FinishBatch(ctx, input.BatchID, input.HarvestDate); err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.Info("batch closed",
			zap.Uint64("batch_id", input.BatchID),
			zap.String("total_weight_kg", input.TotalWeightKg.String()),
			zap.Int64("count_harvested", input.CountHarvested))
	}
	return harvest, nil
}
