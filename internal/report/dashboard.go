package report

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// DashboardKPIs is the fleet-wide roll-up across all active batches. Averages
// are nil when no batch contributed a value for that indicator.
type DashboardKPIs struct {
	ActiveBatches int
	OccupiedPonds int

	AvgDaysOfCultivation *decimal.Decimal
	AvgMeanWeightG       *decimal.Decimal
	TotalBiomassKg       decimal.Decimal
	AvgCostPerKg         *decimal.Decimal
	AvgProfitPerKg       *decimal.Decimal
	AvgSurvivalPct       *decimal.Decimal
	AvgFeedConversion    *decimal.Decimal
}

// BuildDashboardKPIs aggregates the per-batch reports of every active batch.
// Each average divides by the number of batches that actually carry the value;
// a batch with a nil indicator is excluded from that average's denominator,
// never counted as zero.
func (b *Builder) BuildDashboardKPIs(ctx context.Context) (*DashboardKPIs, error) {
	batches, err := b.Repo.ListActiveBatches(ctx)
	if err != nil {
		return nil, err
	}

	kpis := &DashboardKPIs{
		ActiveBatches:  len(batches),
		TotalBiomassKg: decimal.Zero,
	}

	ponds := map[uint64]struct{}{}
	var days, weights, costs, profits, survivals, fcas []decimal.Decimal

	for _, batch := range batches {
		ponds[batch.PondID] = struct{}{}

		rpt, err := b.BuildBatchReport(ctx, batch.ID, nil)
		if err != nil {
			if b.Logger != nil {
				b.Logger.Warn("dashboard: batch report failed",
					zap.Uint64("batch_id", batch.ID), zap.Error(err))
			}
			continue
		}

		days = append(days, decimal.NewFromInt(int64(rpt.DaysOfCultivation)))
		if rpt.MeanWeightG != nil {
			weights = append(weights, *rpt.MeanWeightG)
		}
		if rpt.BiomassKg != nil {
			kpis.TotalBiomassKg = kpis.TotalBiomassKg.Add(*rpt.BiomassKg)
		}
		if rpt.CostPerKg != nil {
			costs = append(costs, *rpt.CostPerKg)
		}
		if profit := profitPerKg(rpt); profit != nil {
			profits = append(profits, *profit)
		}
		if rpt.SurvivalPct != nil {
			survivals = append(survivals, *rpt.SurvivalPct)
		}
		if rpt.FeedConversionRatio != nil {
			fcas = append(fcas, *rpt.FeedConversionRatio)
		}
	}

	kpis.OccupiedPonds = len(ponds)
	kpis.TotalBiomassKg = kpis.TotalBiomassKg.Round(weightScale)
	kpis.AvgDaysOfCultivation = meanOf(days, pctScale)
	kpis.AvgMeanWeightG = meanOf(weights, weightScale)
	kpis.AvgCostPerKg = meanOf(costs, moneyScale)
	kpis.AvgProfitPerKg = meanOf(profits, moneyScale)
	kpis.AvgSurvivalPct = meanOf(survivals, pctScale)
	kpis.AvgFeedConversion = meanOf(fcas, ratioScale)

	return kpis, nil
}

// profitPerKg is the batch profit (realized when harvested, projected
// otherwise) per kilogram of biomass; nil when either side is unknown.
func profitPerKg(rpt *BatchCostReport) *decimal.Decimal {
	if rpt.BiomassKg == nil || rpt.BiomassKg.Sign() <= 0 {
		return nil
	}
	profit := rpt.RealizedProfit
	if profit == nil {
		profit = rpt.ProjectedProfit
	}
	if profit == nil {
		return nil
	}
	perKg := profit.Div(*rpt.BiomassKg).Round(moneyScale)
	return &perKg
}

func meanOf(values []decimal.Decimal, scale int32) *decimal.Decimal {
	if len(values) == 0 {
		return nil
	}
	sum := decimal.Zero
	for _, v := range values {
		sum = sum.Add(v)
	}
	mean := sum.Div(decimal.NewFromInt(int64(len(values)))).Round(scale)
	return &mean
}
