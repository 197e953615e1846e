package response

import (
	"time"

	"coldchain_pricing/internal/domain/entities"
	"coldchain_pricing/internal/usecase"
)

type PriceSheetResponse struct {
	ID        string    `json:"id"`
	ZoneID    string    `json:"zone_id"`
	WeekStart time.Time `json:"week_start"`
	WeekEnd   time.Time `json:"week_end"`
	Status    string    `json:"status"`
	OwnerID   string    `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PriceSheetItemResponse struct {
	ProductID        string  `json:"product_id"`
	WarehouseID      string  `json:"warehouse_id"`
	CostPerLb        float64 `json:"cost_per_lb"`
	MarginPercent    float64 `json:"margin_percent"`
	MarginAmount     float64 `json:"margin_amount"`
	FreightPerLb     float64 `json:"freight_per_lb"`
	DeliveredPriceLb float64 `json:"delivered_price_lb"`
}

type PriceSheetWithItemsResponse struct {
	PriceSheetResponse
	Items []PriceSheetItemResponse `json:"items"`
}

type PriceSheetListResponse struct {
	Sheets     []PriceSheetResponse `json:"sheets"`
	NextCursor string               `json:"next_cursor,omitempty"`
}

func FromPriceSheet(s entities.PriceSheet) PriceSheetResponse {
	return PriceSheetResponse{
		ID:        s.ID,
		ZoneID:    s.ZoneID,
		WeekStart: s.WeekStart,
		WeekEnd:   s.WeekEnd,
		Status:    string(s.Status),
		OwnerID:   s.OwnerID,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func FromPriceSheetWithItems(sw usecase.PriceSheetWithItems) PriceSheetWithItemsResponse {
	items := make([]PriceSheetItemResponse, 0, len(sw.Items))
	for _, i := range sw.Items {
		items = append(items, PriceSheetItemResponse{
			ProductID:        i.ProductID,
			WarehouseID:      i.WarehouseID,
			CostPerLb:        i.CostPerLb,
			MarginPercent:    i.MarginPercent,
			MarginAmount:     i.MarginAmount,
			FreightPerLb:     i.FreightPerLb,
			DeliveredPriceLb: i.DeliveredPriceLb,
		})
	}
	return PriceSheetWithItemsResponse{
		PriceSheetResponse: FromPriceSheet(sw.Sheet),
		Items:              items,
	}
}

func FromPriceSheetList(sheets []entities.PriceSheet, nextCursor string) PriceSheetListResponse {
	out := make([]PriceSheetResponse, 0, len(sheets))
	for _, s := range sheets {
		out = append(out, FromPriceSheet(s))
	}
	return PriceSheetListResponse{Sheets: out, NextCursor: nextCursor}
}
