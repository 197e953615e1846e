package entities

import "time"

// Freshness classifies how much validity a cached FreightRate has left.
// Consumers use it to decide whether to trust, warn about, or discard a rate;
// it is derived on read, never stored.

type Freshness string

const (
	FreshnessFresh   Freshness = "fresh"
	FreshnessStale   Freshness = "stale"
	FreshnessExpired Freshness = "expired"
)

// FreightRate is a cached per-pound reefer freight rate for one
// (origin warehouse, destination zone, destination city) lane.
//
// Storage model (DynamoDB):
//   - PK: warehouse_id
//   - SK: rate_key = zone_id#city#state
//
// Calibration upserts by the composite key, so each lane holds exactly one
// current rate. Rates expire via ValidUntil (TTL ~7 days) rather than being
// deleted.

type FreightRate struct {
	WarehouseID string    `json:"warehouse_id"`
	ZoneID      string    `json:"zone_id"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	RatePerLb   float64   `json:"rate_per_lb"`
	RateType    string    `json:"rate_type"`
	DryQuote    float64   `json:"dry_quote"`
	QuoteID     string    `json:"quote_id"`
	Factors     Factors   `json:"factors"`
	ValidFrom   time.Time `json:"valid_from"`
	ValidUntil  time.Time `json:"valid_until"`
}

// Factors is the multiplier breakdown behind a reefer estimate, persisted with
// the rate for auditability.
type Factors struct {
	Base           float64 `json:"base"`
	OriginModifier float64 `json:"origin_modifier"`
	SeasonModifier float64 `json:"season_modifier"`
	FloorApplied   bool    `json:"floor_applied"`
}

const staleWindow = 48 * time.Hour

// FreshnessAt classifies the rate's remaining validity: Fresh with more than
// two days left, Stale with two days or less, Expired at or past ValidUntil.
func (r FreightRate) FreshnessAt(now time.Time) Freshness {
	remaining := r.ValidUntil.Sub(now)
	switch {
	case remaining <= 0:
		return FreshnessExpired
	case remaining <= staleWindow:
		return FreshnessStale
	default:
		return FreshnessFresh
	}
}

func (r FreightRate) ExpiredAt(now time.Time) bool {
	return r.FreshnessAt(now) == FreshnessExpired
}
