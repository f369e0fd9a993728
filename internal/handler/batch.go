package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"shrimpfarm/internal/repository"
	"shrimpfarm/internal/service"
)

type BatchHandler struct {
	Service *service.BatchService
	Repo    repository.Repository
}

func (h *BatchHandler) Register(r *gin.Engine) {
	group := r.Group("/api/batches")
	group.POST("", h.createBatch)
	group.GET("", h.listBatches)
	group.GET("/:id", h.getBatch)
	group.POST("/:id/activate", h.activateBatch)
	group.POST("/:id/cancel", h.cancelBatch)
}

type createBatchRequest struct {
	PondID         uint64           `json:"pond_id" binding:"required"`
	Code           string           `json:"code"`
	StockingDate   string           `json:"stocking_date" binding:"required"`
	InitialCount   int64            `json:"initial_count" binding:"required"`
	StockingCost   decimal.Decimal  `json:"stocking_cost"`
	InitialDensity *decimal.Decimal `json:"initial_density"`
}

// @Summary Create batch
// @Tags batches
// @Accept json
// @Param payload body createBatchRequest true "batch"
// @Success 200 {object} apiResponse
// @Router /api/batches [post]
func (h *BatchHandler) createBatch(c *gin.Context) {
	var req createBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	stockingDate, ok := parseDate(req.StockingDate)
	if !ok {
		Error(c, http.StatusBadRequest, "stocking_date must be YYYY-MM-DD", nil)
		return
	}
	if req.InitialCount <= 0 {
		Error(c, http.StatusBadRequest, "initial_count must be positive", nil)
		return
	}
	batch, err := h.Service.CreateBatch(c.Request.Context(), service.CreateBatchInput{
		PondID:         req.PondID,
		Code:           strings.TrimSpace(req.Code),
		StockingDate:   stockingDate,
		InitialCount:   req.InitialCount,
		StockingCost:   req.StockingCost,
		InitialDensity: req.InitialDensity,
	})
	if err != nil {
		FailFrom(c, err)
		return
	}
	Ok(c, batch, nil)
}

// @Summary List batches
// @Tags batches
// @Param pond_id query int false "pond id"
// @Param status query string false "planned|active|finished|cancelled"
// @Param limit query int false "page size"
// @Param offset query int false "page offset"
// @Success 200 {object} apiResponse
// @Router /api/batches [get]
func (h *BatchHandler) listBatches(c *gin.Context) {
	params := repository.ListBatchesParams{
		Limit:  queryInt(c, "limit", 0),
		Offset: queryInt(c, "offset", 0),
		PondID: queryUint64(c, "pond_id"),
		Status: queryString(c, "status"),
	}
	items, err := h.Repo.ListBatches(c.Request.Context(), params)
	if err != nil {
		FailFrom(c, err)
		return
	}
	total, err := h.Repo.CountBatches(c.Request.Context(), params)
	if err != nil {
		FailFrom(c, err)
		return
	}
	Ok(c, items, map[string]any{"count": len(items), "total": total})
}

// @Summary Get batch
// @Tags batches
// @Param id path int true "batch id"
// @Success 200 {object} apiResponse
// @Router /api/batches/{id} [get]
func (h *BatchHandler) getBatch(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	batch, err := h.Repo.GetBatchByID(c.Request.Context(), id)
	if err != nil {
		FailFrom(c, err)
		return
	}
	if batch == nil {
		Error(c, http.StatusNotFound, "batch not found", nil)
		return
	}
	Ok(c, batch, nil)
}

// @Summary Activate batch
// @Tags batches
// @Param id path int true "batch id"
// @Success 200 {object} apiResponse
// @Router /api/batches/{id}/activate [post]
func (h *BatchHandler) activateBatch(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	if err := h.Service.Activate(c.Request.Context(), id); err != nil {
		FailFrom(c, err)
		return
	}
	Ok(c, gin.H{"id": id, "status": "active"}, nil)
}

// @Summary Cancel batch
// @Tags batches
// @Param id path int true "batch id"
// @Success 200 {object} apiResponse
// @Router /api/batches/{id}/cancel [post]
func (h *BatchHandler) cancelBatch(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	if err := h.Service.Cancel(c.Request.Context(), id); err != nil {
		FailFrom(c, err)
		return
	}
	Ok(c, gin.H{"id": id, "status": "cancelled"}, nil)
}
