package report

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"shrimpfarm/internal/models"
)

func TestDayOfCultivation(t *testing.T) {
	got, err := DayOfCultivation(day(0), day(30))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 30 {
		t.Fatalf("day=%d want=30", got)
	}

	got, err = DayOfCultivation(day(0), day(0))
	if err != nil || got != 0 {
		t.Fatalf("same-day: day=%d err=%v want 0, nil", got, err)
	}

	if _, err := DayOfCultivation(day(10), day(5)); !errors.Is(err, ErrInvalidSampleDate) {
		t.Fatalf("err=%v want ErrInvalidSampleDate", err)
	}
}

func TestDailyWeightGain_FirstSampleIsNil(t *testing.T) {
	current := models.BiometricSample{SampleDate: day(15), MeanWeightG: dec("8.5")}
	gain, err := DailyWeightGain(day(0), current, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gain != nil {
		t.Fatalf("gain=%s want nil for first sample", gain.String())
	}
}

func TestDailyWeightGain_BetweenSamples(t *testing.T) {
	previous := models.BiometricSample{SampleDate: day(10), MeanWeightG: dec("5.000")}
	current := models.BiometricSample{SampleDate: day(20), MeanWeightG: dec("8.000")}
	gain, err := DailyWeightGain(day(0), current, &previous)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gain == nil || !gain.Equal(dec("0.300")) {
		t.Fatalf("gain=%v want 0.300", gain)
	}
}

func TestDailyWeightGain_EqualWeightIsZero(t *testing.T) {
	previous := models.BiometricSample{SampleDate: day(10), MeanWeightG: dec("7.2")}
	current := models.BiometricSample{SampleDate: day(17), MeanWeightG: dec("7.2")}
	gain, err := DailyWeightGain(day(0), current, &previous)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gain == nil || gain.Sign() != 0 {
		t.Fatalf("gain=%v want 0", gain)
	}
}

func TestDailyWeightGain_SameDayRejected(t *testing.T) {
	previous := models.BiometricSample{SampleDate: day(10), MeanWeightG: dec("5")}
	current := models.BiometricSample{SampleDate: day(10), MeanWeightG: dec("6")}
	if _, err := DailyWeightGain(day(0), current, &previous); !errors.Is(err, ErrDuplicateSampleDate) {
		t.Fatalf("err=%v want ErrDuplicateSampleDate", err)
	}
}

func TestEstimatedSurvivors(t *testing.T) {
	survivors := EstimatedSurvivors(100000, dec("100"))
	if survivors == nil || !survivors.Equal(dec("100000")) {
		t.Fatalf("survivors=%v want 100000", survivors)
	}

	survivors = EstimatedSurvivors(100000, dec("85"))
	if survivors == nil || !survivors.Equal(dec("85000")) {
		t.Fatalf("survivors=%v want 85000", survivors)
	}

	// No population signal: the estimate stays undefined until harvest.
	if s := EstimatedSurvivors(0, dec("100")); s != nil {
		t.Fatalf("survivors=%s want nil for zero initial count", s.String())
	}
}

func TestFeedConversionRatio_GuardsZeroGain(t *testing.T) {
	if fca := FeedConversionRatio(dec("2000"), decimal.Zero); fca != nil {
		t.Fatalf("fca=%s want nil on zero gain", fca.String())
	}
	if fca := FeedConversionRatio(dec("2000"), dec("-5")); fca != nil {
		t.Fatalf("fca=%s want nil on negative gain", fca.String())
	}
	fca := FeedConversionRatio(dec("2000"), dec("1500"))
	if fca == nil || !fca.Equal(dec("1.333")) {
		t.Fatalf("fca=%v want 1.333", fca)
	}
}

func TestComputeSampleMetrics_EndToEnd(t *testing.T) {
	batch := &models.Batch{
		ID:           1,
		StockingDate: day(0),
		InitialCount: 100000,
		StockingCost: dec("1500.00"),
	}
	sample := models.BiometricSample{
		SampleDate:   day(30),
		MeanWeightG:  dec("15.0"),
		SampledCount: 120,
	}

	metrics, err := ComputeSampleMetrics(batch, sample, nil, dec("2000"), dec("100"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if metrics.DayOfCultivation != 30 {
		t.Fatalf("day=%d want=30", metrics.DayOfCultivation)
	}
	if metrics.DailyWeightGainG != nil {
		t.Fatalf("gain=%s want nil for first sample", metrics.DailyWeightGainG.String())
	}
	if metrics.EstimatedBiomassKg == nil || !metrics.EstimatedBiomassKg.Equal(dec("1500.000")) {
		t.Fatalf("biomass=%v want 1500.000", metrics.EstimatedBiomassKg)
	}
	if metrics.EstimatedCount == nil || !metrics.EstimatedCount.Equal(dec("100000")) {
		t.Fatalf("count=%v want 100000", metrics.EstimatedCount)
	}
	if metrics.FeedConversionRatio == nil || !metrics.FeedConversionRatio.Equal(dec("1.333")) {
		t.Fatalf("fca=%v want 1.333", metrics.FeedConversionRatio)
	}
}

func TestComputeSampleMetrics_Idempotent(t *testing.T) {
	batch := &models.Batch{ID: 1, StockingDate: day(0), InitialCount: 50000}
	prior := []models.BiometricSample{
		{SampleDate: day(14), MeanWeightG: dec("4.120")},
	}
	sample := models.BiometricSample{SampleDate: day(28), MeanWeightG: dec("9.870"), SampledCount: 80}

	first, err := ComputeSampleMetrics(batch, sample, prior, dec("731.5"), dec("92.5"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := ComputeSampleMetrics(batch, sample, prior, dec("731.5"), dec("92.5"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.DailyWeightGainG.String() != second.DailyWeightGainG.String() ||
		first.EstimatedBiomassKg.String() != second.EstimatedBiomassKg.String() ||
		first.FeedConversionRatio.String() != second.FeedConversionRatio.String() {
		t.Fatalf("recomputation drifted: %+v vs %+v", first, second)
	}
}

func TestBatchDaysOfCultivation(t *testing.T) {
	harvest := day(95)
	batch := &models.Batch{StockingDate: day(0), HarvestDate: &harvest}
	if got := BatchDaysOfCultivation(batch, day(400)); got != 95 {
		t.Fatalf("days=%d want=95 (harvest date wins over now)", got)
	}

	open := &models.Batch{StockingDate: day(0)}
	if got := BatchDaysOfCultivation(open, day(42)); got != 42 {
		t.Fatalf("days=%d want=42", got)
	}
}
