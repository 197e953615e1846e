package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	request "coldchain_pricing/internal/adapter/http/dto/request"
	response "coldchain_pricing/internal/adapter/http/dto/response"
	"coldchain_pricing/internal/adapter/http/middleware"
	"coldchain_pricing/internal/domain/entities"
	"coldchain_pricing/internal/domain/pricing"
	"coldchain_pricing/internal/usecase"
	"coldchain_pricing/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPriceSheetPayload = pkg.NewDomainErrorSimple("INVALID_PRICE_SHEET_INPUT", "Invalid price sheet payload", http.StatusBadRequest)

// PriceSheetHandler handles HTTP requests for weekly price sheets.

type PriceSheetHandler struct {
	usecase usecase.IPriceSheetUseCase
}

func NewPriceSheetHandler(uc usecase.IPriceSheetUseCase) *PriceSheetHandler {
	return &PriceSheetHandler{usecase: uc}
}

func (h *PriceSheetHandler) CreatePriceSheet(c *gin.Context) {
	var payload request.CreatePriceSheetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPriceSheetPayload.HTTPStatus, errInvalidPriceSheetPayload.ToHTTPError())
		return
	}

	weekStart, weekEnd, err := payload.ResolveWeek()
	if err != nil {
		c.JSON(errInvalidPriceSheetPayload.HTTPStatus, errInvalidPriceSheetPayload.ToHTTPError())
		return
	}

	sheet, err := h.usecase.Create(c.Request.Context(), usecase.CreatePriceSheetRequest{
		ZoneID:                 payload.ZoneID,
		WeekStart:              weekStart,
		WeekEnd:                weekEnd,
		ProductIDs:             payload.ResolveProductIDs(),
		MarginPercentByProduct: payload.ResolveMargins(),
		OwnerID:                middleware.UserID(c),
	})
	if err != nil {
		var missing *usecase.MissingRatesError
		if errors.As(err, &missing) {
			appErr := pkg.NewDomainErrorSimple("MISSING_FREIGHT_RATES", "Freight rates missing for one or more warehouses", http.StatusConflict)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPErrorWithDetails(map[string]any{
				"warehouse_ids": missing.WarehouseIDs,
			}))
			return
		}
		appErr := mapPriceSheetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPriceSheetWithItems(sheet))
}

func (h *PriceSheetHandler) ListPriceSheets(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	sheets, nextCursor, err := h.usecase.List(c.Request.Context(), limit, c.Query("cursor"))
	if err != nil {
		appErr := mapPriceSheetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPriceSheetList(sheets, nextCursor))
}

func (h *PriceSheetHandler) PublishPriceSheet(c *gin.Context) {
	h.patchSheetStatus(c, h.usecase.Publish)
}

func (h *PriceSheetHandler) ArchivePriceSheet(c *gin.Context) {
	h.patchSheetStatus(c, h.usecase.Archive)
}

func (h *PriceSheetHandler) patchSheetStatus(
	c *gin.Context,
	updater func(ctx context.Context, id string) (entities.PriceSheet, error),
) {
	sheet, err := updater(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapPriceSheetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPriceSheet(sheet))
}

func mapPriceSheetError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEmptyProductSet),
		errors.Is(err, usecase.ErrInvalidZone),
		errors.Is(err, usecase.ErrInvalidWeekRange),
		errors.Is(err, pricing.ErrInvalidMargin):
		return pkg.NewDomainErrorSimple("INVALID_PRICE_SHEET_INPUT", "Invalid price sheet payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNoProductsResolved):
		return pkg.NewDomainErrorSimple("NO_PRODUCTS_RESOLVED", "No requested products exist", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPriceSheetNotFound):
		return pkg.NewDomainErrorSimple("PRICE_SHEET_NOT_FOUND", "Price sheet not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidStatusTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Price sheet status cannot move there", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
