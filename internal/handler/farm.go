package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"shrimpfarm/internal/models"
	"shrimpfarm/internal/repository"
)

// FarmHandler covers the reference data the batches hang off: farms, their
// ponds and the expense suppliers.
type FarmHandler struct {
	Repo repository.Repository
}

func (h *FarmHandler) Register(r *gin.Engine) {
	group := r.Group("/api")
	group.POST("/farms", h.createFarm)
	group.GET("/farms", h.listFarms)
	group.GET("/farms/:id", h.getFarm)
	group.POST("/ponds", h.createPond)
	group.GET("/ponds", h.listPonds)
	group.POST("/suppliers", h.createSupplier)
	group.GET("/suppliers", h.listSuppliers)
}

type createFarmRequest struct {
	Name     string  `json:"name" binding:"required"`
	Location *string `json:"location"`
}

// @Summary Create farm
// @Tags farms
// @Accept json
// @Param payload body createFarmRequest true "farm"
// @Success 200 {object} apiResponse
// @Router /api/farms [post]
func (h *FarmHandler) createFarm(c *gin.Context) {
	var req createFarmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	item := &models.Farm{Name: strings.TrimSpace(req.Name), Location: req.Location}
	if item.Name == "" {
		Error(c, http.StatusBadRequest, "name is required", nil)
		return
	}
	if err := h.Repo.CreateFarm(c.Request.Context(), item); err != nil {
		FailFrom(c, err)
		return
	}
	Ok(c, item, nil)
}

// @Summary List farms
// @Tags farms
// @Success 200 {object} apiResponse
// @Router /api/farms [get]
func (h *FarmHandler) listFarms(c *gin.Context) {
	items, err := h.Repo.ListFarms(c.Request.Context())
	if err != nil {
		FailFrom(c, err)
		return
	}
	Ok(c, items, map[string]any{"count": len(items)})
}

// @Summary Get farm
// @Tags farms
// @Param id path int true "farm id"
// @Success 200 {object} apiResponse
// @Router /api/farms/{id} [get]
func (h *FarmHandler) getFarm(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	item, err := h.Repo.GetFarmByID(c.Request.Context(), id)
	if err != nil {
		FailFrom(c, err)
		return
	}
	if item == nil {
		Error(c, http.StatusNotFound, "farm not found", nil)
		return
	}
	Ok(c, item, nil)
}

type createPondRequest struct {
	FarmID uint64           `json:"farm_id" binding:"required"`
	Name   string           `json:"name" binding:"required"`
	AreaM2 *decimal.Decimal `json:"area_m2"`
	DepthM *decimal.Decimal `json:"depth_m"`
}

// @Summary Create pond
// @Tags ponds
// @Accept json
// @Param payload body createPondRequest true "pond"
// @Success 200 {object} apiResponse
// @Router /api/ponds [post]
func (h *FarmHandler) createPond(c *gin.Context) {
	var req createPondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	farm, err := h.Repo.GetFarmByID(c.Request.Context(), req.FarmID)
	if err != nil {
		FailFrom(c, err)
		return
	}
	if farm == nil {
		Error(c, http.StatusNotFound, "farm not found", nil)
		return
	}
	item := &models.Pond{
		FarmID: req.FarmID,
		Name:   strings.TrimSpace(req.Name),
		AreaM2: req.AreaM2,
		DepthM: req.DepthM,
		Active: true,
	}
	if err := h.Repo.CreatePond(c.Request.Context(), item); err != nil {
		FailFrom(c, err)
		return
	}
	Ok(c, item, nil)
}

// @Summary List ponds
// @Tags ponds
// @Param farm_id query int false "farm id"
// @Param limit query int false "page size"
// @Param offset query int false "page offset"
// @Success 200 {object} apiResponse
// @Router /api/ponds [get]
func (h *FarmHandler) listPonds(c *gin.Context) {
	params := repository.ListPondsParams{
		Limit:  queryInt(c, "limit", 0),
		Offset: queryInt(c, "offset", 0),
		FarmID: queryUint64(c, "farm_id"),
	}
	items, err := h.Repo.ListPonds(c.Request.Context(), params)
	if err != nil {
		FailFrom(c, err)
		return
	}
	Ok(c, items, map[string]any{"count": len(items)})
}

type createSupplierRequest struct {
	Name    string  `json:"name" binding:"required"`
	Contact *string `json:"contact"`
}

// @Summary Create supplier
// @Tags suppliers
// @Accept json
// @Param payload body createSupplierRequest true "supplier"
// @Success 200 {object} apiResponse
// @Router /api/suppliers [post]
func (h *FarmHandler) createSupplier(c *gin.Context) {
	var req createSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	item := &models.Supplier{Name: strings.TrimSpace(req.Name), Contact: req.Contact}
	if err := h.Repo.CreateSupplier(c.Request.Context(), item); err != nil {
		FailFrom(c, err)
		return
	}
	Ok(c, item, nil)
}

// @Summary List suppliers
// @Tags suppliers
// @Success 200 {object} apiResponse
// @Router /api/suppliers [get]
func (h *FarmHandler) listSuppliers(c *gin.Context) {
	items, err := h.Repo.ListSuppliers(c.Request.Context())
	if err != nil {
		FailFrom(c, err)
		return
	}
	Ok(c, items, map[string]any{"count": len(items)})
}
