package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"shrimpfarm/internal/models"
	"shrimpfarm/internal/report"
	"shrimpfarm/internal/repository"
	"shrimpfarm/internal/service"
)

type SampleHandler struct {
	Service *service.SampleService
	Repo    repository.Repository

	// SurvivalAssumptionPct mirrors the report builder's assumption so the
	// per-sample growth curve matches the batch report.
	SurvivalAssumptionPct decimal.Decimal
}

func (h *SampleHandler) Register(r *gin.Engine) {
	group := r.Group("/api/batches/:id/samples")
	group.POST("", h.addSample)
	group.GET("", h.listSamples)
}

type addSampleRequest struct {
	SampleDate   string           `json:"sample_date" binding:"required"`
	MeanWeightG  decimal.Decimal  `json:"mean_weight_g" binding:"required"`
	SampledCount int64            `json:"sampled_count" binding:"required"`
	TotalWeightG *decimal.Decimal `json:"total_weight_g"`
}

// @Summary Record biometric sample
// @Tags samples
// @Accept json
// @Param id path int true "batch id"
// @Param payload body addSampleRequest true "sample"
// @Success 200 {object} apiResponse
// @Router /api/batches/{id}/samples [post]
func (h *SampleHandler) addSample(c *gin.Context) {
	batchID, ok := pathID(c, "id")
	if !ok {
		Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	var req addSampleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	sampleDate, ok := parseDate(req.SampleDate)
	if !ok {
		Error(c, http.StatusBadRequest, "sample_date must be YYYY-MM-DD", nil)
		return
	}
	sample, err := h.Service.AddSample(c.Request.Context(), service.AddSampleInput{
		BatchID:      batchID,
		SampleDate:   sampleDate,
		MeanWeightG:  req.MeanWeightG,
		SampledCount: req.SampledCount,
		TotalWeightG: req.TotalWeightG,
	})
	if err != nil {
		FailFrom(c, err)
		return
	}
	Ok(c, sample, nil)
}

type sampleRow struct {
	Sample  models.BiometricSample
	Metrics report.SampleMetrics
}

// @Summary List samples with growth metrics
// @Tags samples
// @Param id path int true "batch id"
// @Success 200 {object} apiResponse
// @Router /api/batches/{id}/samples [get]
func (h *SampleHandler) listSamples(c *gin.Context) {
	batchID, ok := pathID(c, "id")
	if !ok {
		Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	ctx := c.Request.Context()
	batch, err := h.Repo.GetBatchByID(ctx, batchID)
	if err != nil {
		FailFrom(c, err)
		return
	}
	if batch == nil {
		FailFrom(c, report.ErrBatchNotFound)
		return
	}
	samples, err := h.Repo.ListSamplesByBatchID(ctx, batchID)
	if err != nil {
		FailFrom(c, err)
		return
	}
	rows := make([]sampleRow, 0, len(samples))
	for i, sample := range samples {
		until := sample.SampleDate
		cumFeed, err := h.Repo.SumFeedQuantityKg(ctx, batchID, &until)
		if err != nil {
			FailFrom(c, err)
			return
		}
		metrics, err := report.ComputeSampleMetrics(batch, sample, samples[:i], cumFeed, h.SurvivalAssumptionPct)
		if err != nil {
			FailFrom(c, err)
			return
		}
		rows = append(rows, sampleRow{Sample: sample, Metrics: metrics})
	}
	Ok(c, rows, map[string]any{"count": len(rows)})
}
