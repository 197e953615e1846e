package handlers

import (
	"errors"
	"net/http"

	response "coldchain_pricing/internal/adapter/http/dto/response"
	"coldchain_pricing/internal/usecase"
	"coldchain_pricing/pkg"

	"github.com/gin-gonic/gin"
)

// CalibrationHandler handles HTTP requests for freight rate calibration runs.

type CalibrationHandler struct {
	usecase usecase.ICalibrationUseCase
}

func NewCalibrationHandler(uc usecase.ICalibrationUseCase) *CalibrationHandler {
	return &CalibrationHandler{usecase: uc}
}

// CalibrateFreightRates triggers a full calibration run.
//
// The run is batch-tolerant: per-lane failures come back inside a 200
// summary, not as an HTTP error. Only a run that could not start at all
// (no active warehouses) maps to an error status.
func (h *CalibrationHandler) CalibrateFreightRates(c *gin.Context) {
	summary, err := h.usecase.CalibrateFreightRates(c.Request.Context())
	if err != nil {
		appErr := mapCalibrationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCalibrationSummary(summary))
}

func mapCalibrationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrNoActiveWarehouses):
		return pkg.NewDomainErrorSimple("NO_ACTIVE_WAREHOUSES", "No active warehouses to calibrate", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
