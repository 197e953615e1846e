package entities

import "time"

// BreakerState is the persisted circuit breaker record for one external
// service key (optionally tenant-scoped, e.g. "ltl-quotes" or
// "ai-parse#org-123").
//
// Storage model (DynamoDB):
//   - PK: service_key
//
// Persistence is the point: a breaker that tripped before a restart must stay
// tripped after it. Open is derived, not stored: a breaker is open while the
// failure count has reached the threshold and the cooldown since the last
// failure has not yet elapsed.

type BreakerState struct {
	ServiceKey   string    `json:"service_key"`
	FailureCount int       `json:"failure_count"`
	LastFailure  time.Time `json:"last_failure,omitzero"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// OpenAt reports whether the breaker is open at now for the given threshold
// and cooldown. The cooldown elapsing alone closes the breaker; no successful
// probe call is required first.
func (s BreakerState) OpenAt(now time.Time, threshold int, cooldown time.Duration) bool {
	if s.FailureCount < threshold {
		return false
	}
	return now.Sub(s.LastFailure) < cooldown
}
