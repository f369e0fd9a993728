package service

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"shrimpfarm/internal/models"
	"shrimpfarm/internal/report"
	"shrimpfarm/internal/repository"
)

var (
	ErrFutureSampleDate = errors.New("sample date is in the future")
	ErrInvalidSample    = errors.New("mean weight and sampled count must be positive")
)

type SampleService struct {
	Repo repository.Repository
}

type AddSampleInput struct {
	BatchID      uint64
	SampleDate   time.Time
	MeanWeightG  decimal.Decimal
	SampledCount int64
	TotalWeightG *decimal.Decimal
}

// AddSample records one weighing event. Two policies are enforced at write
// time rather than averaged away later: a sample may not predate stocking, and
// a batch gets at most one sample per cultivation day.
func (s *SampleService) AddSample(ctx context.Context, input AddSampleInput) (*models.BiometricSample, error) {
	if input.MeanWeightG.Sign() <= 0 || input.SampledCount <= 0 {
		return nil, ErrInvalidSample
	}

	batch, err := s.Repo.GetBatchByID(ctx, input.BatchID)
	if err != nil {
		return nil, err
	}
	if batch == nil {
		return nil, report.ErrBatchNotFound
	}

	if _, err := report.DayOfCultivation(batch.StockingDate, input.SampleDate); err != nil {
		return nil, err
	}
	if input.SampleDate.After(time.Now().UTC()) {
		return nil, ErrFutureSampleDate
	}

	existing, err := s.Repo.CountSamplesOnDate(ctx, input.BatchID, input.SampleDate)
	if err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, report.ErrDuplicateSampleDate
	}

	sample := &models.BiometricSample{
		BatchID:      input.BatchID,
		SampleDate:   input.SampleDate,
		MeanWeightG:  input.MeanWeightG,
		SampledCount: input.SampledCount,
		TotalWeightG: input.TotalWeightG,
	}
	if err := s.Repo.InsertSample(ctx, sample); err != nil {
		return nil, err
	}
	return sample, nil
}
