package report

import (
	"time"

	"github.com/shopspring/decimal"

	"shrimpfarm/internal/models"
)

// Fixed output scales. Weights and ratios carry 3 decimal places, percentages
// and monetary values 2. All arithmetic stays in decimal so repeated
// recomputation of the same rows yields identical output.
const (
	weightScale = 3
	ratioScale  = 3
	moneyScale  = 2
	pctScale    = 2
)

var (
	gramsPerKg = decimal.NewFromInt(1000)
	hundred    = decimal.NewFromInt(100)
)

// SampleMetrics is the derived view of one biometric sample. Pointer fields
// are nil when the underlying ratio is undefined (first sample, zero
// denominator, no population estimate) rather than zero.
type SampleMetrics struct {
	DayOfCultivation     int
	MeanWeightG          decimal.Decimal
	DailyWeightGainG     *decimal.Decimal
	EstimatedCount       *decimal.Decimal
	EstimatedSurvivalPct *decimal.Decimal
	EstimatedBiomassKg   *decimal.Decimal
	FeedConversionRatio  *decimal.Decimal
}

// DayOfCultivation is the whole number of days between stocking and the
// sample date. Both are treated as calendar dates; time-of-day is discarded.
func DayOfCultivation(stockingDate, sampleDate time.Time) (int, error) {
	days := int(truncateDay(sampleDate).Sub(truncateDay(stockingDate)).Hours() / 24)
	if days < 0 {
		return 0, ErrInvalidSampleDate
	}
	return days, nil
}

// DailyWeightGain is the mean weight delta per cultivation day between two
// consecutive samples. The first sample of a batch has no gain rate (nil).
func DailyWeightGain(stockingDate time.Time, current models.BiometricSample, previous *models.BiometricSample) (*decimal.Decimal, error) {
	if previous == nil {
		return nil, nil
	}
	currentDay, err := DayOfCultivation(stockingDate, current.SampleDate)
	if err != nil {
		return nil, err
	}
	previousDay, err := DayOfCultivation(stockingDate, previous.SampleDate)
	if err != nil {
		return nil, err
	}
	delta := currentDay - previousDay
	if delta == 0 {
		return nil, ErrDuplicateSampleDate
	}
	gain := current.MeanWeightG.
		Sub(previous.MeanWeightG).
		Div(decimal.NewFromInt(int64(delta))).
		Round(weightScale)
	return &gain, nil
}

// EstimatedSurvivors discounts the initially stocked count by the supplied
// survival assumption. Returns nil when the batch has no population signal at
// all (zero initial count): the estimate stays undefined until harvest.
func EstimatedSurvivors(initialCount int64, survivalAssumptionPct decimal.Decimal) *decimal.Decimal {
	if initialCount <= 0 || survivalAssumptionPct.Sign() <= 0 {
		return nil
	}
	survivors := decimal.NewFromInt(initialCount).
		Mul(survivalAssumptionPct).
		Div(hundred).
		Round(0)
	return &survivors
}

// EstimatedBiomassKg converts a mean individual weight in grams and an
// estimated surviving count into total biomass in kilograms.
func EstimatedBiomassKg(meanWeightG decimal.Decimal, survivors decimal.Decimal) decimal.Decimal {
	return meanWeightG.Mul(survivors).Div(gramsPerKg).Round(weightScale)
}

// FeedConversionRatio is cumulative feed mass over biomass gained. Biomass at
// stocking is negligible, so the gain is the current biomass itself. Returns
// nil (never an error) when the gain is zero or negative.
func FeedConversionRatio(cumulativeFeedKg decimal.Decimal, biomassGainKg decimal.Decimal) *decimal.Decimal {
	if biomassGainKg.Sign() <= 0 {
		return nil
	}
	fca := cumulativeFeedKg.Div(biomassGainKg).Round(ratioScale)
	return &fca
}

// ComputeSampleMetrics derives the full indicator set for one sample given the
// batch context, the chronologically ordered prior samples and the feed mass
// applied up to the sample date. Pure: no storage access, idempotent.
func ComputeSampleMetrics(
	batch *models.Batch,
	sample models.BiometricSample,
	priorSamples []models.BiometricSample,
	cumulativeFeedKg decimal.Decimal,
	survivalAssumptionPct decimal.Decimal,
) (SampleMetrics, error) {
	metrics := SampleMetrics{
		MeanWeightG: sample.MeanWeightG.Round(weightScale),
	}
	if batch == nil {
		return metrics, ErrBatchNotFound
	}

	day, err := DayOfCultivation(batch.StockingDate, sample.SampleDate)
	if err != nil {
		return metrics, err
	}
	metrics.DayOfCultivation = day

	var previous *models.BiometricSample
	if n := len(priorSamples); n > 0 {
		previous = &priorSamples[n-1]
	}
	gain, err := DailyWeightGain(batch.StockingDate, sample, previous)
	if err != nil {
		return metrics, err
	}
	metrics.DailyWeightGainG = gain

	survivors := EstimatedSurvivors(batch.InitialCount, survivalAssumptionPct)
	if survivors == nil {
		return metrics, nil
	}
	metrics.EstimatedCount = survivors
	survival := survivalAssumptionPct.Round(pctScale)
	metrics.EstimatedSurvivalPct = &survival

	biomass := EstimatedBiomassKg(sample.MeanWeightG, *survivors)
	metrics.EstimatedBiomassKg = &biomass
	metrics.FeedConversionRatio = FeedConversionRatio(cumulativeFeedKg, biomass)

	return metrics, nil
}

// BatchDaysOfCultivation is the age of a batch: harvest date minus stocking
// date for finished batches, today minus stocking date for ongoing ones.
func BatchDaysOfCultivation(batch *models.Batch, now time.Time) int {
	if batch == nil {
		return 0
	}
	end := now
	if batch.HarvestDate != nil {
		end = *batch.HarvestDate
	}
	days := int(truncateDay(end).Sub(truncateDay(batch.StockingDate)).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
