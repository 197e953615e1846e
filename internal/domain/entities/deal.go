package entities

import "time"

// DealStatus is the deal lifecycle. Monotonic: pending -> accepted | rejected,
// nothing else, ever. The transition is enforced by a conditional update whose
// predicate includes the expected pending status, so concurrent resolvers
// cannot both win.

type DealStatus string

const (
	DealStatusPending  DealStatus = "pending"
	DealStatusAccepted DealStatus = "accepted"
	DealStatusRejected DealStatus = "rejected"
)

// Deal is an externally-sourced purchase offer awaiting accept/reject.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (manufacturer-index): manufacturer
//
// The manufacturer index backs the soft duplicate guard: an accepted deal with
// the same manufacturer + description created within the last 7 days blocks a
// new acceptance.

type Deal struct {
	ID           string     `json:"id"`
	Manufacturer string     `json:"manufacturer"`
	Description  string     `json:"description"`
	PricePerLb   float64    `json:"price_per_lb"`
	QuantityLbs  float64    `json:"quantity_lbs"`
	PackSize     string     `json:"pack_size"`
	WarehouseID  string     `json:"warehouse_id"`
	Status       DealStatus `json:"status"`
	OwnerID      string     `json:"owner_id"`
	ProductID    string     `json:"product_id,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	ResolvedAt   time.Time  `json:"resolved_at,omitzero"`
}

func (d Deal) Resolved() bool {
	return d.Status == DealStatusAccepted || d.Status == DealStatusRejected
}
