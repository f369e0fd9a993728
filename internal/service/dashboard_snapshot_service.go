package service

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"shrimpfarm/internal/models"
	"shrimpfarm/internal/report"
	"shrimpfarm/internal/repository"
)

// DashboardSnapshotService periodically persists the dashboard roll-up so the
// UI can show history without re-aggregating every batch per request.
type DashboardSnapshotService struct {
	Repo    repository.Repository
	Builder *report.Builder
	Logger  *zap.Logger
	Retain  int
}

func (s *DashboardSnapshotService) Run(ctx context.Context, interval time.Duration) error {
	if s == nil || s.Repo == nil || s.Builder == nil {
		return nil
	}
	if interval <= 0 {
		interval = time.Hour
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		if err := s.RunOnce(ctx); err != nil && s.Logger != nil {
			s.Logger.Warn("dashboard snapshot failed", zap.Error(err))
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
	}
}

func (s *DashboardSnapshotService) RunOnce(ctx context.Context) error {
	if s == nil || s.Repo == nil || s.Builder == nil {
		return nil
	}
	kpis, err := s.Builder.BuildDashboardKPIs(ctx)
	if err != nil {
		return err
	}
	payload, err := json.Marshal(kpis)
	if err != nil {
		return err
	}
	snapshot := &models.DashboardSnapshot{
		TakenAt: time.Now().UTC(),
		KPIs:    payload,
	}
	if err := s.Repo.InsertDashboardSnapshot(ctx, snapshot); err != nil {
		return err
	}
	if s.Retain > 0 {
		if _, err := s.Repo.PruneDashboardSnapshots(ctx, s.Retain); err != nil && s.Logger != nil {
			s.Logger.Warn("snapshot prune failed", zap.Error(err))
		}
	}
	return nil
}
