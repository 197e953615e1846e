package entities

import "time"

// PriceSheetStatus is the lifecycle of a price sheet. Transitions only move
// forward: draft -> published -> archived.

type PriceSheetStatus string

const (
	PriceSheetStatusDraft     PriceSheetStatus = "draft"
	PriceSheetStatusPublished PriceSheetStatus = "published"
	PriceSheetStatusArchived  PriceSheetStatus = "archived"
)

// NextStatuses returns the statuses a sheet in this status may move to.
func (s PriceSheetStatus) NextStatuses() []PriceSheetStatus {
	switch s {
	case PriceSheetStatusDraft:
		return []PriceSheetStatus{PriceSheetStatusPublished}
	case PriceSheetStatusPublished:
		return []PriceSheetStatus{PriceSheetStatusArchived}
	default:
		return nil
	}
}

func (s PriceSheetStatus) CanTransitionTo(next PriceSheetStatus) bool {
	for _, n := range s.NextStatuses() {
		if n == next {
			return true
		}
	}
	return false
}

// PriceSheet is a weekly delivered-price sheet for one zone.
//
// Storage model (DynamoDB):
//   - price_sheets: PK id
//   - price_sheet_items: PK price_sheet_id, SK product_id
//
// A sheet and its items are created together or not at all: items are bulk
// written after the header, and a failed item write deletes the header
// (compensating action, no transaction available).

type PriceSheet struct {
	ID        string           `json:"id"`
	ZoneID    string           `json:"zone_id"`
	WeekStart time.Time        `json:"week_start"`
	WeekEnd   time.Time        `json:"week_end"`
	Status    PriceSheetStatus `json:"status"`
	OwnerID   string           `json:"owner_id"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// PriceSheetItem is one product line on a sheet, immutable once written.
// DeliveredPriceLb = CostPerLb + MarginAmount + FreightPerLb, all values
// rounded to 4 decimal places at assembly time.
type PriceSheetItem struct {
	PriceSheetID     string  `json:"price_sheet_id"`
	ProductID        string  `json:"product_id"`
	WarehouseID      string  `json:"warehouse_id"`
	CostPerLb        float64 `json:"cost_per_lb"`
	MarginPercent    float64 `json:"margin_percent"`
	MarginAmount     float64 `json:"margin_amount"`
	FreightPerLb     float64 `json:"freight_per_lb"`
	DeliveredPriceLb float64 `json:"delivered_price_lb"`
}
