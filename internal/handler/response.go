package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"shrimpfarm/internal/report"
	"shrimpfarm/internal/service"
)

type apiResponse struct {
	Code    int            `json:"code"`
	Message string         `json:"message"`
	Data    any            `json:"data,omitempty"`
	Meta    map[string]any `json:"meta,omitempty"`
}

func Ok(c *gin.Context, data any, meta map[string]any) {
	c.JSON(http.StatusOK, apiResponse{
		Code:    0,
		Message: "ok",
		Data:    data,
		Meta:    meta,
	})
}

func Error(c *gin.Context, status int, message string, meta map[string]any) {
	c.JSON(status, apiResponse{
		Code:    status,
		Message: message,
		Meta:    meta,
	})
}

// FailFrom maps domain errors onto HTTP statuses: not-found propagates as 404,
// write-time validation rejections as 422, everything else as 502.
func FailFrom(c *gin.Context, err error) {
	switch {
	case errors.Is(err, report.ErrBatchNotFound),
		errors.Is(err, service.ErrPondNotFound):
		Error(c, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, report.ErrInvalidSampleDate),
		errors.Is(err, report.ErrDuplicateSampleDate),
		errors.Is(err, service.ErrDuplicateCode),
		errors.Is(err, service.ErrFutureSampleDate),
		errors.Is(err, service.ErrInvalidSample),
		errors.Is(err, service.ErrHarvestBeforeStocking),
		errors.Is(err, service.ErrBatchNotActive):
		Error(c, http.StatusUnprocessableEntity, err.Error(), nil)
	default:
		Error(c, http.StatusBadGateway, err.Error(), nil)
	}
}
