package handlers

import (
	"context"
	"errors"
	"net/http"

	response "coldchain_pricing/internal/adapter/http/dto/response"
	"coldchain_pricing/internal/adapter/http/middleware"
	"coldchain_pricing/internal/domain/entities"
	"coldchain_pricing/internal/usecase"
	"coldchain_pricing/pkg"

	"github.com/gin-gonic/gin"
)

// DealHandler handles HTTP requests for deal acceptance and rejection.

type DealHandler struct {
	usecase usecase.IDealUseCase
}

func NewDealHandler(uc usecase.IDealUseCase) *DealHandler {
	return &DealHandler{usecase: uc}
}

func (h *DealHandler) AcceptDeal(c *gin.Context) {
	h.resolveDeal(c, func(ctx context.Context, dealID string) (entities.Deal, error) {
		return h.usecase.Accept(ctx, dealID, middleware.UserID(c), middleware.OrgID(c))
	})
}

func (h *DealHandler) RejectDeal(c *gin.Context) {
	h.resolveDeal(c, func(ctx context.Context, dealID string) (entities.Deal, error) {
		return h.usecase.Reject(ctx, dealID, middleware.UserID(c))
	})
}

func (h *DealHandler) resolveDeal(
	c *gin.Context,
	resolver func(ctx context.Context, dealID string) (entities.Deal, error),
) {
	deal, err := resolver(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDealError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDeal(deal))
}

func mapDealError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDealFields):
		return pkg.NewDomainErrorSimple("INVALID_DEAL_FIELDS", "Deal fields fail validation", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDealNotOwned), errors.Is(err, usecase.ErrWarehouseNotAuthorized):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Caller may not resolve this deal", http.StatusForbidden)
	case errors.Is(err, usecase.ErrDealNotFound):
		return pkg.NewDomainErrorSimple("DEAL_NOT_FOUND", "Deal not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDealWarehouseNotFound):
		return pkg.NewDomainErrorSimple("WAREHOUSE_NOT_FOUND", "Deal warehouse not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDealAlreadyProcessed):
		return pkg.NewDomainErrorSimple("DEAL_ALREADY_PROCESSED", "Deal was already resolved", http.StatusConflict)
	case errors.Is(err, usecase.ErrDuplicateDeal):
		return pkg.NewDomainErrorSimple("DUPLICATE_DEAL", "A matching deal was accepted within the last 7 days", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
