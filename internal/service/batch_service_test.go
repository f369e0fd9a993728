package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"shrimpfarm/internal/models"
)

func TestCreateBatch_GeneratesCodeWhenBlank(t *testing.T) {
	repo := newWriteStub()
	repo.ponds[7] = models.Pond{ID: 7, Name: "Viveiro 1"}
	svc := &BatchService{Repo: repo}

	batch, err := svc.CreateBatch(context.Background(), CreateBatchInput{
		PondID:       7,
		StockingDate: stocking(0),
		InitialCount: 80000,
		StockingCost: decimal.RequireFromString("1200.00"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !strings.HasPrefix(batch.Code, "B-") || len(batch.Code) != 10 {
		t.Fatalf("code=%q want generated B-XXXXXXXX", batch.Code)
	}
	if batch.Status != models.BatchStatusPlanned {
		t.Fatalf("status=%q want planned", batch.Status)
	}
}

func TestCreateBatch_RejectsUnknownPond(t *testing.T) {
	svc := &BatchService{Repo: newWriteStub()}
	_, err := svc.CreateBatch(context.Background(), CreateBatchInput{
		PondID:       99,
		StockingDate: stocking(0),
		InitialCount: 1000,
	})
	if !errors.Is(err, ErrPondNotFound) {
		t.Fatalf("err=%v want ErrPondNotFound", err)
	}
}

func TestCreateBatch_RejectsDuplicateCode(t *testing.T) {
	repo := activeBatchStub()
	svc := &BatchService{Repo: repo}
	_, err := svc.CreateBatch(context.Background(), CreateBatchInput{
		PondID:       7,
		Code:         "B-1",
		StockingDate: stocking(0),
		InitialCount: 1000,
	})
	if !errors.Is(err, ErrDuplicateCode) {
		t.Fatalf("err=%v want ErrDuplicateCode", err)
	}
}

func TestActivate_OnlyFromPlanned(t *testing.T) {
	repo := activeBatchStub()
	svc := &BatchService{Repo: repo}
	if err := svc.Activate(context.Background(), 1); !errors.Is(err, ErrBatchNotActive) {
		t.Fatalf("err=%v want ErrBatchNotActive for already active batch", err)
	}

	planned := repo.batches[1]
	planned.Status = models.BatchStatusPlanned
	repo.batches[1] = planned
	if err := svc.Activate(context.Background(), 1); err != nil {
		t.Fatalf("activate planned: %v", err)
	}
	if repo.statuses[1] != models.BatchStatusActive {
		t.Fatalf("status=%q want active", repo.statuses[1])
	}
}

func TestCancel_RejectsFinishedBatch(t *testing.T) {
	repo := activeBatchStub()
	finished := repo.batches[1]
	finished.Status = models.BatchStatusFinished
	repo.batches[1] = finished
	svc := &BatchService{Repo: repo}
	if err := svc.Cancel(context.Background(), 1); !errors.Is(err, ErrBatchNotActive) {
		t.Fatalf("err=%v want ErrBatchNotActive", err)
	}
}
