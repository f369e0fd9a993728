package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"shrimpfarm/internal/models"
	"shrimpfarm/internal/repository"
)

// Builder assembles batch cost/growth reports and dashboard roll-ups. It only
// reads through the repository; all derived values are recomputed on every
// call, nothing is cached here.
type Builder struct {
	Repo   repository.Repository
	Logger *zap.Logger

	// MarketPricePerKg is the default sale price used to project revenue for
	// batches that have not been harvested yet.
	MarketPricePerKg decimal.Decimal

	// SurvivalAssumptionPct discounts the stocked count for pre-harvest
	// biomass estimation. 100 means no assumed mortality.
	SurvivalAssumptionPct decimal.Decimal
}

// BatchCostReport is the on-demand report aggregate. It is never persisted.
type BatchCostReport struct {
	BatchID      uint64
	BatchCode    string
	PondName     string
	Status       string
	StockingDate time.Time
	HarvestDate  *time.Time

	DaysOfCultivation int

	StockingCost      decimal.Decimal
	FeedCost          decimal.Decimal
	NutrientCost      decimal.Decimal
	FertilizationCost decimal.Decimal
	VariableCost      decimal.Decimal
	TotalCost         decimal.Decimal

	BiomassKg           *decimal.Decimal
	MeanWeightG         *decimal.Decimal
	EstimatedCount      *decimal.Decimal
	CostPerKg           *decimal.Decimal
	FeedConversionRatio *decimal.Decimal
	SurvivalPct         *decimal.Decimal

	Harvested          bool
	HarvestCost        *decimal.Decimal
	RealizedRevenue    *decimal.Decimal
	RealizedProfit     *decimal.Decimal
	ProjectedRevenue   *decimal.Decimal
	ProjectedProfit    *decimal.Decimal
	ProjectedMarginPct *decimal.Decimal
}

// BuildBatchReport computes the full cost/production report for one batch.
// marketPrice overrides the builder default when non-nil. Returns
// ErrBatchNotFound when the batch id does not resolve.
func (b *Builder) BuildBatchReport(ctx context.Context, batchID uint64, marketPrice *decimal.Decimal) (*BatchCostReport, error) {
	batch, err := b.Repo.GetBatchByID(ctx, batchID)
	if err != nil {
		return nil, err
	}
	if batch == nil {
		return nil, ErrBatchNotFound
	}

	rpt := &BatchCostReport{
		BatchID:      batch.ID,
		BatchCode:    batch.Code,
		Status:       batch.Status,
		StockingDate: batch.StockingDate,
		HarvestDate:  batch.HarvestDate,
		StockingCost: batch.StockingCost.Round(moneyScale),
	}

	pond, err := b.Repo.GetPondByID(ctx, batch.PondID)
	if err != nil {
		return nil, err
	}
	if pond != nil {
		rpt.PondName = pond.Name
	}

	rpt.DaysOfCultivation = BatchDaysOfCultivation(batch, time.Now().UTC())

	if err := b.sumExpenses(ctx, batch.ID, rpt); err != nil {
		return nil, err
	}
	rpt.TotalCost = rpt.StockingCost.
		Add(rpt.FeedCost).
		Add(rpt.NutrientCost).
		Add(rpt.FertilizationCost).
		Add(rpt.VariableCost).
		Round(moneyScale)

	harvest, err := b.Repo.GetHarvestByBatchID(ctx, batch.ID)
	if err != nil {
		return nil, err
	}
	if harvest != nil {
		b.applyHarvest(ctx, batch, harvest, rpt)
	} else if err := b.applyLatestSample(ctx, batch, rpt); err != nil {
		return nil, err
	}

	if rpt.BiomassKg != nil && rpt.BiomassKg.Sign() > 0 {
		costPerKg := rpt.TotalCost.Div(*rpt.BiomassKg).Round(moneyScale)
		rpt.CostPerKg = &costPerKg
	}

	if !rpt.Harvested {
		b.project(rpt, marketPrice)
	}

	return rpt, nil
}

func (b *Builder) sumExpenses(ctx context.Context, batchID uint64, rpt *BatchCostReport) error {
	feed, err := b.Repo.ListFeedApplicationsByBatchID(ctx, batchID)
	if err != nil {
		return err
	}
	total := decimal.Zero
	for _, item := range feed {
		total = addCost(total, item.TotalCost)
	}
	rpt.FeedCost = total.Round(moneyScale)

	nutrients, err := b.Repo.ListNutrientApplicationsByBatchID(ctx, batchID)
	if err != nil {
		return err
	}
	total = decimal.Zero
	for _, item := range nutrients {
		total = addCost(total, item.TotalCost)
	}
	rpt.NutrientCost = total.Round(moneyScale)

	fertilizations, err := b.Repo.ListFertilizationApplicationsByBatchID(ctx, batchID)
	if err != nil {
		return err
	}
	total = decimal.Zero
	for _, item := range fertilizations {
		total = addCost(total, item.TotalCost)
	}
	rpt.FertilizationCost = total.Round(moneyScale)

	variables, err := b.Repo.ListVariableCostsByBatchID(ctx, batchID)
	if err != nil {
		return err
	}
	total = decimal.Zero
	for _, item := range variables {
		total = addCost(total, item.TotalCost)
	}
	rpt.VariableCost = total.Round(moneyScale)

	return nil
}

// applyHarvest fills the report with final figures: the batch is closed, so
// measured weight replaces every estimate.
func (b *Builder) applyHarvest(ctx context.Context, batch *models.Batch, harvest *models.Harvest, rpt *BatchCostReport) {
	rpt.Harvested = true

	biomass := harvest.TotalWeightKg.Round(weightScale)
	rpt.BiomassKg = &biomass

	count := decimal.NewFromInt(harvest.CountHarvested)
	rpt.EstimatedCount = &count

	if harvest.FinalWeightG != nil {
		mean := harvest.FinalWeightG.Round(weightScale)
		rpt.MeanWeightG = &mean
	} else if harvest.CountHarvested > 0 {
		mean := harvest.TotalWeightKg.Mul(gramsPerKg).Div(count).Round(weightScale)
		rpt.MeanWeightG = &mean
	}

	if batch.InitialCount > 0 {
		survival := count.Div(decimal.NewFromInt(batch.InitialCount)).Mul(hundred).Round(pctScale)
		rpt.SurvivalPct = &survival
	}

	cumFeed, err := b.Repo.SumFeedQuantityKg(ctx, batch.ID, nil)
	if err != nil {
		b.warn("cumulative feed sum failed", err, batch.ID)
	} else {
		rpt.FeedConversionRatio = FeedConversionRatio(cumFeed, biomass)
	}

	if harvest.OperationalCost != nil {
		opCost := harvest.OperationalCost.Round(moneyScale)
		rpt.HarvestCost = &opCost
	}
	if harvest.UnitPricePerKg != nil {
		revenue := harvest.TotalWeightKg.Mul(*harvest.UnitPricePerKg).Round(moneyScale)
		rpt.RealizedRevenue = &revenue
		profit := revenue.Sub(rpt.TotalCost)
		if rpt.HarvestCost != nil {
			profit = profit.Sub(*rpt.HarvestCost)
		}
		profit = profit.Round(moneyScale)
		rpt.RealizedProfit = &profit
	}
}

// applyLatestSample fills the report with the calculator output of the most
// recent biometric sample, when one exists. Without samples the report keeps
// its cost totals and nil indicators.
func (b *Builder) applyLatestSample(ctx context.Context, batch *models.Batch, rpt *BatchCostReport) error {
	samples, err := b.Repo.ListSamplesByBatchID(ctx, batch.ID)
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		return nil
	}
	latest := samples[len(samples)-1]
	prior := samples[:len(samples)-1]

	until := latest.SampleDate
	cumFeed, err := b.Repo.SumFeedQuantityKg(ctx, batch.ID, &until)
	if err != nil {
		return err
	}

	metrics, err := ComputeSampleMetrics(batch, latest, prior, cumFeed, b.SurvivalAssumptionPct)
	if err != nil {
		return err
	}

	mean := metrics.MeanWeightG
	rpt.MeanWeightG = &mean
	rpt.BiomassKg = metrics.EstimatedBiomassKg
	rpt.EstimatedCount = metrics.EstimatedCount
	rpt.SurvivalPct = metrics.EstimatedSurvivalPct
	rpt.FeedConversionRatio = metrics.FeedConversionRatio
	return nil
}

// project adds revenue/profit/margin projection for an unharvested batch with
// a biomass estimate.
func (b *Builder) project(rpt *BatchCostReport, marketPrice *decimal.Decimal) {
	if rpt.BiomassKg == nil || rpt.BiomassKg.Sign() <= 0 {
		return
	}
	price := b.MarketPricePerKg
	if marketPrice != nil {
		price = *marketPrice
	}
	if price.Sign() <= 0 {
		return
	}

	revenue := rpt.BiomassKg.Mul(price).Round(moneyScale)
	rpt.ProjectedRevenue = &revenue
	profit := revenue.Sub(rpt.TotalCost).Round(moneyScale)
	rpt.ProjectedProfit = &profit
	if revenue.Sign() > 0 {
		margin := profit.Div(revenue).Mul(hundred).Round(pctScale)
		rpt.ProjectedMarginPct = &margin
	}
}

func addCost(total decimal.Decimal, cost *decimal.Decimal) decimal.Decimal {
	if cost == nil {
		return total
	}
	return total.Add(*cost)
}

func (b *Builder) warn(msg string, err error, batchID uint64) {
	if b.Logger != nil {
		b.Logger.Warn(msg, zap.Uint64("batch_id", batchID), zap.Error(err))
	}
}
