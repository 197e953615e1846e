package response

import (
	"time"

	"coldchain_pricing/internal/domain/entities"
)

type DealResponse struct {
	ID           string     `json:"id"`
	Manufacturer string     `json:"manufacturer"`
	Description  string     `json:"description"`
	PricePerLb   float64    `json:"price_per_lb"`
	QuantityLbs  float64    `json:"quantity_lbs"`
	PackSize     string     `json:"pack_size"`
	WarehouseID  string     `json:"warehouse_id"`
	Status       string     `json:"status"`
	ProductID    string     `json:"product_id,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	ResolvedAt   *time.Time `json:"resolved_at,omitempty"`
}

func FromDeal(d entities.Deal) DealResponse {
	resp := DealResponse{
		ID:           d.ID,
		Manufacturer: d.Manufacturer,
		Description:  d.Description,
		PricePerLb:   d.PricePerLb,
		QuantityLbs:  d.QuantityLbs,
		PackSize:     d.PackSize,
		WarehouseID:  d.WarehouseID,
		Status:       string(d.Status),
		ProductID:    d.ProductID,
		CreatedAt:    d.CreatedAt,
	}
	if !d.ResolvedAt.IsZero() {
		t := d.ResolvedAt
		resp.ResolvedAt = &t
	}
	return resp
}
