package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shrimpfarm/internal/report"
)

type ReportHandler struct {
	Builder *report.Builder
}

func (h *ReportHandler) Register(r *gin.Engine) {
	r.GET("/api/batches/:id/report", h.batchReport)
}

// @Summary Batch cost and growth report
// @Tags reports
// @Param id path int true "batch id"
// @Param price query string false "sale price per kg overriding the configured market price"
// @Success 200 {object} apiResponse
// @Router /api/batches/{id}/report [get]
func (h *ReportHandler) batchReport(c *gin.Context) {
	batchID, ok := pathID(c, "id")
	if !ok {
		Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	price := queryDecimal(c, "price")
	rpt, err := h.Builder.BuildBatchReport(c.Request.Context(), batchID, price)
	if err != nil {
		FailFrom(c, err)
		return
	}
	Ok(c, rpt, nil)
}
