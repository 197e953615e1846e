package entities

import "time"

// Product is a frozen-protein catalog item.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Products are owned by the inventory subsystem and read-only to this engine,
// with one exception: accepting a deal creates the product backing it. SourceDealID
// is set only on products created through that path.

type Product struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	CostPerLb      float64   `json:"cost_per_lb"`
	CaseWeightLbs  float64   `json:"case_weight_lbs"`
	CasesAvailable int       `json:"cases_available"`
	WarehouseID    string    `json:"warehouse_id"`
	OrganizationID string    `json:"organization_id"`
	SourceDealID   string    `json:"source_deal_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
