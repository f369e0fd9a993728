package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"shrimpfarm/internal/models"
)

func TestCloseBatch_FinishesBatch(t *testing.T) {
	repo := activeBatchStub()
	svc := &HarvestService{Repo: repo}

	harvest, err := svc.CloseBatch(context.Background(), CloseBatchInput{
		BatchID:        1,
		HarvestDate:    stocking(95),
		TotalWeightKg:  decimal.RequireFromString("1000.50"),
		CountHarvested: 82000,
		UnitPricePerKg: dptr("25.60"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if harvest == nil || len(repo.harvests) != 1 {
		t.Fatalf("harvest not recorded")
	}
	if repo.statuses[1] != models.BatchStatusFinished {
		t.Fatalf("status=%q want finished", repo.statuses[1])
	}
}

func TestCloseBatch_RejectsDateBeforeStocking(t *testing.T) {
	svc := &HarvestService{Repo: activeBatchStub()}
	_, err := svc.CloseBatch(context.Background(), CloseBatchInput{
		BatchID:       1,
		HarvestDate:   stocking(-1),
		TotalWeightKg: decimal.RequireFromString("10"),
	})
	if !errors.Is(err, ErrHarvestBeforeStocking) {
		t.Fatalf("err=%v want ErrHarvestBeforeStocking", err)
	}
}

func TestCloseBatch_RejectsCancelledBatch(t *testing.T) {
	repo := activeBatchStub()
	batch := repo.batches[1]
	batch.Status = models.BatchStatusCancelled
	repo.batches[1] = batch

	svc := &HarvestService{Repo: repo}
	_, err := svc.CloseBatch(context.Background(), CloseBatchInput{
		BatchID:       1,
		HarvestDate:   stocking(30),
		TotalWeightKg: decimal.RequireFromString("10"),
	})
	if !errors.Is(err, ErrBatchNotActive) {
		t.Fatalf("err=%v want ErrBatchNotActive", err)
	}
}
