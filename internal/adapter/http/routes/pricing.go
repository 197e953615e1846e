package routes

import (
	"coldchain_pricing/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathFreightRates = "/freight-rates"
	PathPriceSheets  = "/price-sheets"
	PathDeals        = "/deals"
)

func addPricingRoutes(
	rg *gin.RouterGroup,
	calibrationHandler *handlers.CalibrationHandler,
	priceSheetHandler *handlers.PriceSheetHandler,
	dealHandler *handlers.DealHandler,
) {
	freightRates := rg.Group(PathFreightRates)
	{
		freightRates.POST("/calibrate", calibrationHandler.CalibrateFreightRates)
	}

	priceSheets := rg.Group(PathPriceSheets)
	{
		priceSheets.POST("", priceSheetHandler.CreatePriceSheet)
		priceSheets.GET("", priceSheetHandler.ListPriceSheets)
		priceSheets.POST("/:id/publish", priceSheetHandler.PublishPriceSheet)
		priceSheets.POST("/:id/archive", priceSheetHandler.ArchivePriceSheet)
	}

	deals := rg.Group(PathDeals)
	{
		deals.POST("/:id/accept", dealHandler.AcceptDeal)
		deals.POST("/:id/reject", dealHandler.RejectDeal)
	}
}
