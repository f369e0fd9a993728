package report

import (
	"context"
	"testing"

	"shrimpfarm/internal/models"
)

// Three active batches; the third has no stocking count, so its biomass, FCA,
// survival and cost/kg are all nil. Every average must divide by the number of
// contributing batches only.
func dashboardRepo() *stubRepo {
	repo := &stubRepo{
		ponds: map[uint64]models.Pond{
			1: {ID: 1, Name: "Viveiro 1"},
			2: {ID: 2, Name: "Viveiro 2"},
		},
		batches: map[uint64]models.Batch{
			1: {ID: 1, PondID: 1, Code: "B-1", Status: models.BatchStatusActive,
				StockingDate: day(0), InitialCount: 100000, StockingCost: dec("1000.00")},
			2: {ID: 2, PondID: 2, Code: "B-2", Status: models.BatchStatusActive,
				StockingDate: day(0), InitialCount: 50000, StockingCost: dec("500.00")},
			3: {ID: 3, PondID: 2, Code: "B-3", Status: models.BatchStatusActive,
				StockingDate: day(0), InitialCount: 0, StockingCost: dec("200.00")},
			4: {ID: 4, PondID: 1, Code: "B-4", Status: models.BatchStatusFinished,
				StockingDate: day(0), InitialCount: 10000},
		},
		samples: map[uint64][]models.BiometricSample{
			1: {{BatchID: 1, SampleDate: day(30), MeanWeightG: dec("10.0"), SampledCount: 100}},
			2: {{BatchID: 2, SampleDate: day(30), MeanWeightG: dec("20.0"), SampledCount: 100}},
			3: {{BatchID: 3, SampleDate: day(30), MeanWeightG: dec("12.0"), SampledCount: 100}},
		},
		feed: map[uint64][]models.FeedApplication{
			1: {{BatchID: 1, ApplicationDate: day(10), Quantity: dptr("1000"), TotalCost: dptr("2000.00")}},
			2: {{BatchID: 2, ApplicationDate: day(10), Quantity: dptr("2000"), TotalCost: dptr("4000.00")}},
		},
		nutrients:      map[uint64][]models.NutrientApplication{},
		fertilizations: map[uint64][]models.FertilizationApplication{},
		variables:      map[uint64][]models.VariableCost{},
		harvests:       map[uint64]models.Harvest{},
	}
	return repo
}

func TestBuildDashboardKPIs_ExcludesNullsFromDenominator(t *testing.T) {
	kpis, err := newTestBuilder(dashboardRepo()).BuildDashboardKPIs(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The finished batch is out; the three active ones are in.
	if kpis.ActiveBatches != 3 {
		t.Fatalf("active=%d want=3", kpis.ActiveBatches)
	}
	// Batches 2 and 3 share a pond.
	if kpis.OccupiedPonds != 2 {
		t.Fatalf("occupied=%d want=2", kpis.OccupiedPonds)
	}

	// Biomass: batch 1 = 10g*100k = 1000 kg, batch 2 = 20g*50k = 1000 kg,
	// batch 3 contributes nothing.
	if !kpis.TotalBiomassKg.Equal(dec("2000.000")) {
		t.Fatalf("total biomass=%s want 2000.000", kpis.TotalBiomassKg)
	}

	// FCA: batch 1 = 1000/1000 = 1.000, batch 2 = 2000/1000 = 2.000,
	// batch 3 is nil. Mean over TWO batches = 1.500, not over three.
	if kpis.AvgFeedConversion == nil || !kpis.AvgFeedConversion.Equal(dec("1.500")) {
		t.Fatalf("avg fca=%v want 1.500 (nulls excluded)", kpis.AvgFeedConversion)
	}

	// Cost/kg: batch 1 = 3000/1000 = 3.00, batch 2 = 4500/1000 = 4.50,
	// batch 3 nil. Mean = 3.75 over two.
	if kpis.AvgCostPerKg == nil || !kpis.AvgCostPerKg.Equal(dec("3.75")) {
		t.Fatalf("avg cost/kg=%v want 3.75", kpis.AvgCostPerKg)
	}

	// Mean weight includes all three batches: (10+20+12)/3 = 14.
	if kpis.AvgMeanWeightG == nil || !kpis.AvgMeanWeightG.Equal(dec("14.000")) {
		t.Fatalf("avg weight=%v want 14.000", kpis.AvgMeanWeightG)
	}

	// Survival assumption applies only where a population estimate exists.
	if kpis.AvgSurvivalPct == nil || !kpis.AvgSurvivalPct.Equal(dec("100.00")) {
		t.Fatalf("avg survival=%v want 100.00", kpis.AvgSurvivalPct)
	}

	if kpis.AvgProfitPerKg == nil {
		t.Fatalf("avg profit/kg should be computed from projected profit")
	}
}

func TestBuildDashboardKPIs_Empty(t *testing.T) {
	repo := &stubRepo{batches: map[uint64]models.Batch{}}
	kpis, err := newTestBuilder(repo).BuildDashboardKPIs(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if kpis.ActiveBatches != 0 || kpis.OccupiedPonds != 0 {
		t.Fatalf("counts should be zero: %+v", kpis)
	}
	if kpis.AvgFeedConversion != nil || kpis.AvgCostPerKg != nil || kpis.AvgSurvivalPct != nil {
		t.Fatalf("averages should be nil with no active batches: %+v", kpis)
	}
	if !kpis.TotalBiomassKg.Equal(dec("0")) {
		t.Fatalf("biomass=%s want 0", kpis.TotalBiomassKg)
	}
}
