package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"shrimpfarm/internal/repository"
	"shrimpfarm/internal/service"
)

// ExpenseHandler exposes the four cost ledgers of a batch. Feed, nutrients
// and fertilization share a request shape; variable costs carry a category.
type ExpenseHandler struct {
	Service *service.ExpenseService
	Repo    repository.Repository
}

func (h *ExpenseHandler) Register(r *gin.Engine) {
	group := r.Group("/api/batches/:id")
	group.POST("/feed", h.addFeed)
	group.GET("/feed", h.listFeed)
	group.POST("/nutrients", h.addNutrient)
	group.GET("/nutrients", h.listNutrients)
	group.POST("/fertilizations", h.addFertilization)
	group.GET("/fertilizations", h.listFertilizations)
	group.POST("/costs", h.addVariableCost)
	group.GET("/costs", h.listVariableCosts)
}

type expenseRequest struct {
	SupplierID *uint64          `json:"supplier_id"`
	Date       string           `json:"date" binding:"required"`
	Product    string           `json:"product" binding:"required"`
	Quantity   *decimal.Decimal `json:"quantity"`
	Unit       string           `json:"unit"`
	UnitCost   *decimal.Decimal `json:"unit_cost"`
}

func (h *ExpenseHandler) bindExpense(c *gin.Context) (service.ExpenseInput, bool) {
	batchID, ok := pathID(c, "id")
	if !ok {
		Error(c, http.StatusBadRequest, "invalid id", nil)
		return service.ExpenseInput{}, false
	}
	var req expenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, err.Error(), nil)
		return service.ExpenseInput{}, false
	}
	date, ok := parseDate(req.Date)
	if !ok {
		Error(c, http.StatusBadRequest, "date must be YYYY-MM-DD", nil)
		return service.ExpenseInput{}, false
	}
	return service.ExpenseInput{
		BatchID:    batchID,
		SupplierID: req.SupplierID,
		Date:       date,
		Product:    strings.TrimSpace(req.Product),
		Quantity:   req.Quantity,
		Unit:       strings.TrimSpace(req.Unit),
		UnitCost:   req.UnitCost,
	}, true
}

// @Summary Record feed application
// @Tags expenses
// @Accept json
// @Param id path int true "batch id"
// @Param payload body expenseRequest true "feed line"
// @Success 200 {object} apiResponse
// @Router /api/batches/{id}/feed [post]
func (h *ExpenseHandler) addFeed(c *gin.Context) {
	input, ok := h.bindExpense(c)
	if !ok {
		return
	}
	item, err := h.Service.AddFeed(c.Request.Context(), input)
	if err != nil {
		FailFrom(c, err)
		return
	}
	Ok(c, item, nil)
}

// @Summary List feed applications
// @Tags expenses
// @Param id path int true "batch id"
// @Success 200 {object} apiResponse
// @Router /api/batches/{id}/feed [get]
func (h *ExpenseHandler) listFeed(c *gin.Context) {
	batchID, ok := pathID(c, "id")
	if !ok {
		Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	items, err := h.Repo.ListFeedApplicationsByBatchID(c.Request.Context(), batchID)
	if err != nil {
		FailFrom(c, err)
		return
	}
	Ok(c, items, map[string]any{"count": len(items)})
}

// @Summary Record nutrient application
// @Tags expenses
// @Accept json
// @Param id path int true "batch id"
// @Param payload body expenseRequest true "nutrient line"
// @Success 200 {object} apiResponse
// @Router /api/batches/{id}/nutrients [post]
func (h *ExpenseHandler) addNutrient(c *gin.Context) {
	input, ok := h.bindExpense(c)
	if !ok {
		return
	}
	item, err := h.Service.AddNutrient(c.Request.Context(), input)
	if err != nil {
		FailFrom(c, err)
		return
	}
	Ok(c, item, nil)
}

// @Summary List nutrient applications
// @Tags expenses
// @Param id path int true "batch id"
// @Success 200 {object} apiResponse
// @Router /api/batches/{id}/nutrients [get]
func (h *ExpenseHandler) listNutrients(c *gin.Context) {
	batchID, ok := pathID(c, "id")
	if !ok {
		Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	items, err := h.Repo.ListNutrientApplicationsByBatchID(c.Request.Context(), batchID)
	if err != nil {
		FailFrom(c, err)
		return
	}
	Ok(c, items, map[string]any{"count": len(items)})
}

// @Summary Record fertilization application
// @Tags expenses
// @Accept json
// @Param id path int true "batch id"
// @Param payload body expenseRequest true "fertilization line"
// @Success 200 {object} apiResponse
// @Router /api/batches/{id}/fertilizations [post]
func (h *ExpenseHandler) addFertilization(c *gin.Context) {
	input, ok := h.bindExpense(c)
	if !ok {
		return
	}
	item, err := h.Service.AddFertilization(c.Request.Context(), input)
	if err != nil {
		FailFrom(c, err)
		return
	}
	Ok(c, item, nil)
}

// @Summary List fertilization applications
// @Tags expenses
// @Param id path int true "batch id"
// @Success 200 {object} apiResponse
// @Router /api/batches/{id}/fertilizations [get]
func (h *ExpenseHandler) listFertilizations(c *gin.Context) {
	batchID, ok := pathID(c, "id")
	if !ok {
		Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	items, err := h.Repo.ListFertilizationApplicationsByBatchID(c.Request.Context(), batchID)
	if err != nil {
		FailFrom(c, err)
		return
	}
	Ok(c, items, map[string]any{"count": len(items)})
}

type variableCostRequest struct {
	Date        string           `json:"date" binding:"required"`
	Category    string           `json:"category" binding:"required"`
	Description *string          `json:"description"`
	Quantity    *decimal.Decimal `json:"quantity"`
	Unit        *string          `json:"unit"`
	UnitCost    *decimal.Decimal `json:"unit_cost"`
}

// @Summary Record variable cost
// @Tags expenses
// @Accept json
// @Param id path int true "batch id"
// @Param payload body variableCostRequest true "cost line"
// @Success 200 {object} apiResponse
// @Router /api/batches/{id}/costs [post]
func (h *ExpenseHandler) addVariableCost(c *gin.Context) {
	batchID, ok := pathID(c, "id")
	if !ok {
		Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	var req variableCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	date, ok := parseDate(req.Date)
	if !ok {
		Error(c, http.StatusBadRequest, "date must be YYYY-MM-DD", nil)
		return
	}
	item, err := h.Service.AddVariableCost(c.Request.Context(), service.VariableCostInput{
		BatchID:     batchID,
		Date:        date,
		Category:    strings.TrimSpace(req.Category),
		Description: req.Description,
		Quantity:    req.Quantity,
		Unit:        req.Unit,
		UnitCost:    req.UnitCost,
	})
	if err != nil {
		FailFrom(c, err)
		return
	}
	Ok(c, item, nil)
}

// @Summary List variable costs
// @Tags expenses
// @Param id path int true "batch id"
// @Success 200 {object} apiResponse
// @Router /api/batches/{id}/costs [get]
func (h *ExpenseHandler) listVariableCosts(c *gin.Context) {
	batchID, ok := pathID(c, "id")
	if !ok {
		Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	items, err := h.Repo.ListVariableCostsByBatchID(c.Request.Context(), batchID)
	if err != nil {
		FailFrom(c, err)
		return
	}
	Ok(c, items, map[string]any{"count": len(items)})
}
