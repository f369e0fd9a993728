package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"shrimpfarm/internal/repository"
	"shrimpfarm/internal/service"
)

type HarvestHandler struct {
	Service *service.HarvestService
	Repo    repository.Repository
}

func (h *HarvestHandler) Register(r *gin.Engine) {
	group := r.Group("/api/batches/:id/harvest")
	group.POST("", h.closeBatch)
	group.GET("", h.getHarvest)
}

type closeBatchRequest struct {
	HarvestDate     string           `json:"harvest_date" binding:"required"`
	TotalWeightKg   decimal.Decimal  `json:"total_weight_kg" binding:"required"`
	CountHarvested  int64            `json:"count_harvested" binding:"required"`
	FinalWeightG    *decimal.Decimal `json:"final_weight_g"`
	UnitPricePerKg  *decimal.Decimal `json:"unit_price_per_kg"`
	OperationalCost *decimal.Decimal `json:"operational_cost"`
}

// @Summary Close batch with harvest figures
// @Tags harvest
// @Accept json
// @Param id path int true "batch id"
// @Param payload body closeBatchRequest true "harvest"
// @Success 200 {object} apiResponse
// @Router /api/batches/{id}/harvest [post]
func (h *HarvestHandler) closeBatch(c *gin.Context) {
	batchID, ok := pathID(c, "id")
	if !ok {
		Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	var req closeBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	harvestDate, ok := parseDate(req.HarvestDate)
	if !ok {
		Error(c, http.StatusBadRequest, "harvest_date must be YYYY-MM-DD", nil)
		return
	}
	harvest, err := h.Service.CloseBatch(c.Request.Context(), service.CloseBatchInput{
		BatchID:         batchID,
		HarvestDate:     harvestDate,
		TotalWeightKg:   req.TotalWeightKg,
		CountHarvested:  req.CountHarvested,
		FinalWeightG:    req.FinalWeightG,
		UnitPricePerKg:  req.UnitPricePerKg,
		OperationalCost: req.OperationalCost,
	})
	if err != nil {
		FailFrom(c, err)
		return
	}
	Ok(c, harvest, nil)
}

// @Summary Get harvest record
// @Tags harvest
// @Param id path int true "batch id"
// @Success 200 {object} apiResponse
// @Router /api/batches/{id}/harvest [get]
func (h *HarvestHandler) getHarvest(c *gin.Context) {
	batchID, ok := pathID(c, "id")
	if !ok {
		Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	harvest, err := h.Repo.GetHarvestByBatchID(c.Request.Context(), batchID)
	if err != nil {
		FailFrom(c, err)
		return
	}
	if harvest == nil {
		Error(c, http.StatusNotFound, "harvest not found", nil)
		return
	}
	Ok(c, harvest, nil)
}
