package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shrimpfarm/internal/report"
	"shrimpfarm/internal/repository"
)

type DashboardHandler struct {
	Builder *report.Builder
	Repo    repository.Repository
}

func (h *DashboardHandler) Register(r *gin.Engine) {
	group := r.Group("/api/dashboard")
	group.GET("", h.dashboard)
	group.GET("/snapshots", h.listSnapshots)
}

// @Summary Live dashboard KPIs across active batches
// @Tags dashboard
// @Success 200 {object} apiResponse
// @Router /api/dashboard [get]
func (h *DashboardHandler) dashboard(c *gin.Context) {
	kpis, err := h.Builder.BuildDashboardKPIs(c.Request.Context())
	if err != nil {
		FailFrom(c, err)
		return
	}
	Ok(c, kpis, nil)
}

// @Summary List stored dashboard snapshots
// @Tags dashboard
// @Param since query string false "oldest snapshot to return (YYYY-MM-DD)"
// @Param limit query int false "page size"
// @Param offset query int false "page offset"
// @Success 200 {object} apiResponse
// @Router /api/dashboard/snapshots [get]
func (h *DashboardHandler) listSnapshots(c *gin.Context) {
	params := repository.ListDashboardSnapshotsParams{
		Limit:  queryInt(c, "limit", 0),
		Offset: queryInt(c, "offset", 0),
	}
	if raw := c.Query("since"); raw != "" {
		since, ok := parseDate(raw)
		if !ok {
			Error(c, http.StatusBadRequest, "since must be YYYY-MM-DD", nil)
			return
		}
		params.Since = &since
	}
	items, err := h.Repo.ListDashboardSnapshots(c.Request.Context(), params)
	if err != nil {
		FailFrom(c, err)
		return
	}
	Ok(c, items, map[string]any{"count": len(items)})
}
