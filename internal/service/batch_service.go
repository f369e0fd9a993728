package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"shrimpfarm/internal/models"
	"shrimpfarm/internal/report"
	"shrimpfarm/internal/repository"
)

var (
	ErrPondNotFound   = errors.New("pond not found")
	ErrDuplicateCode  = errors.New("batch code already in use")
	ErrBatchNotActive = errors.New("batch is not active")
)

type BatchService struct {
	Repo   repository.Repository
	Logger *zap.Logger
}

type CreateBatchInput struct {
	PondID         uint64
	Code           string
	StockingDate   time.Time
	InitialCount   int64
	StockingCost   decimal.Decimal
	InitialDensity *decimal.Decimal
}

// CreateBatch registers a new stocking cycle. A blank code is generated from a
// short uuid; the batch starts in planned status and is activated explicitly.
func (s *BatchService) CreateBatch(ctx context.Context, input CreateBatchInput) (*models.Batch, error) {
	pond, err := s.Repo.GetPondByID(ctx, input.PondID)
	if err != nil {
		return nil, err
	}
	if pond == nil {
		return nil, ErrPondNotFound
	}

	code := strings.TrimSpace(input.Code)
	if code == "" {
		code = "B-" + strings.ToUpper(uuid.NewString()[:8])
	}
	existing, err := s.Repo.GetBatchByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateCode
	}

	batch := &models.Batch{
		PondID:         input.PondID,
		Code:           code,
		StockingDate:   input.StockingDate,
		InitialCount:   input.InitialCount,
		StockingCost:   input.StockingCost,
		InitialDensity: input.InitialDensity,
		Status:         models.BatchStatusPlanned,
	}
	if err := s.Repo.CreateBatch(ctx, batch); err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.Info("batch created",
			zap.Uint64("batch_id", batch.ID),
			zap.String("code", batch.Code),
			zap.Uint64("pond_id", batch.PondID))
	}
	return batch, nil
}

// Activate moves a planned batch into cultivation.
func (s *BatchService) Activate(ctx context.Context, batchID uint64) error {
	batch, err := s.Repo.GetBatchByID(ctx, batchID)
	if err != nil {
		return err
	}
	if batch == nil {
		return report.ErrBatchNotFound
	}
	if batch.Status != models.BatchStatusPlanned {
		return ErrBatchNotActive
	}
	return s.Repo.UpdateBatchStatus(ctx, batchID, models.BatchStatusActive)
}

// Cancel aborts a planned or active batch without a harvest.
func (s *BatchService) Cancel(ctx context.Context, batchID uint64) error {
	batch, err := s.Repo.GetBatchByID(ctx, batchID)
	if err != nil {
		return err
	}
	if batch == nil {
		return report.ErrBatchNotFound
	}
	if batch.Status == models.BatchStatusFinished || batch.Status == models.BatchStatusCancelled {
		return ErrBatchNotActive
	}
	return s.Repo.UpdateBatchStatus(ctx, batchID, models.BatchStatusCancelled)
}
