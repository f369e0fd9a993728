package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"shrimpfarm/internal/models"
	"shrimpfarm/internal/report"
	"shrimpfarm/internal/repository"
)

// writeStub embeds the repository interface so only the methods the write
// services touch need real behavior; anything else panics loudly.
type writeStub struct {
	repository.Repository

	batches  map[uint64]models.Batch
	ponds    map[uint64]models.Pond
	samples  []models.BiometricSample
	feed     []models.FeedApplication
	harvests []models.Harvest
	statuses map[uint64]string
}

func newWriteStub() *writeStub {
	return &writeStub{
		batches:  map[uint64]models.Batch{},
		ponds:    map[uint64]models.Pond{},
		statuses: map[uint64]string{},
	}
}

func (s *writeStub) GetBatchByID(ctx context.Context, id uint64) (*models.Batch, error) {
	if b, ok := s.batches[id]; ok {
		return &b, nil
	}
	return nil, nil
}

func (s *writeStub) GetBatchByCode(ctx context.Context, code string) (*models.Batch, error) {
	for _, b := range s.batches {
		if b.Code == code {
			return &b, nil
		}
	}
	return nil, nil
}

func (s *writeStub) GetPondByID(ctx context.Context, id uint64) (*models.Pond, error) {
	if p, ok := s.ponds[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (s *writeStub) CreateBatch(ctx context.Context, item *models.Batch) error {
	item.ID = uint64(len(s.batches) + 1)
	s.batches[item.ID] = *item
	return nil
}

func (s *writeStub) UpdateBatchStatus(ctx context.Context, id uint64, status string) error {
	s.statuses[id] = status
	return nil
}

func (s *writeStub) FinishBatch(ctx context.Context, id uint64, harvestDate time.Time) error {
	s.statuses[id] = models.BatchStatusFinished
	return nil
}

func (s *writeStub) CountSamplesOnDate(ctx context.Context, batchID uint64, date time.Time) (int64, error) {
	var count int64
	for _, item := range s.samples {
		if item.BatchID == batchID && item.SampleDate.Equal(date) {
			count++
		}
	}
	return count, nil
}

func (s *writeStub) InsertSample(ctx context.Context, item *models.BiometricSample) error {
	s.samples = append(s.samples, *item)
	return nil
}

func (s *writeStub) InsertFeedApplication(ctx context.Context, item *models.FeedApplication) error {
	s.feed = append(s.feed, *item)
	return nil
}

func (s *writeStub) UpsertHarvest(ctx context.Context, item *models.Harvest) error {
	s.harvests = append(s.harvests, *item)
	return nil
}

func stocking(offset int) time.Time {
	return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func activeBatchStub() *writeStub {
	repo := newWriteStub()
	repo.ponds[7] = models.Pond{ID: 7, Name: "Viveiro 1"}
	repo.batches[1] = models.Batch{
		ID:           1,
		PondID:       7,
		Code:         "B-1",
		Status:       models.BatchStatusActive,
		StockingDate: stocking(0),
		InitialCount: 100000,
	}
	return repo
}

func TestAddSample_RejectsDateBeforeStocking(t *testing.T) {
	svc := &SampleService{Repo: activeBatchStub()}
	_, err := svc.AddSample(context.Background(), AddSampleInput{
		BatchID:      1,
		SampleDate:   stocking(-3),
		MeanWeightG:  decimal.RequireFromString("5.0"),
		SampledCount: 50,
	})
	if !errors.Is(err, report.ErrInvalidSampleDate) {
		t.Fatalf("err=%v want ErrInvalidSampleDate", err)
	}
}

func TestAddSample_RejectsDuplicateDay(t *testing.T) {
	repo := activeBatchStub()
	svc := &SampleService{Repo: repo}
	input := AddSampleInput{
		BatchID:      1,
		SampleDate:   stocking(14),
		MeanWeightG:  decimal.RequireFromString("4.2"),
		SampledCount: 60,
	}
	if _, err := svc.AddSample(context.Background(), input); err != nil {
		t.Fatalf("first sample: %v", err)
	}
	if _, err := svc.AddSample(context.Background(), input); !errors.Is(err, report.ErrDuplicateSampleDate) {
		t.Fatalf("err=%v want ErrDuplicateSampleDate", err)
	}
}

func TestAddSample_UnknownBatch(t *testing.T) {
	svc := &SampleService{Repo: newWriteStub()}
	_, err := svc.AddSample(context.Background(), AddSampleInput{
		BatchID:      42,
		SampleDate:   stocking(5),
		MeanWeightG:  decimal.RequireFromString("3.0"),
		SampledCount: 10,
	})
	if !errors.Is(err, report.ErrBatchNotFound) {
		t.Fatalf("err=%v want ErrBatchNotFound", err)
	}
}

func TestAddSample_RejectsNonPositiveMeasurements(t *testing.T) {
	svc := &SampleService{Repo: activeBatchStub()}
	_, err := svc.AddSample(context.Background(), AddSampleInput{
		BatchID:      1,
		SampleDate:   stocking(10),
		MeanWeightG:  decimal.Zero,
		SampledCount: 10,
	})
	if !errors.Is(err, ErrInvalidSample) {
		t.Fatalf("err=%v want ErrInvalidSample", err)
	}
}
