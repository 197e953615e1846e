package pricing

import (
	"errors"
	"strings"
	"time"

	"coldchain_pricing/internal/domain/entities"
)

var (
	ErrInvalidWeight   = errors.New("invalid weight")
	ErrInvalidDryQuote = errors.New("invalid dry quote")
)

// Reefer estimation: refrigerated LTL priced as a multiplier stack over a dry
// quote. Base multiplier, per-origin-state modifier, per-month season
// modifier, then a minimum-charge floor. Unknown states and months modify by
// 1.0 rather than failing; the estimate degrades, it does not error.

const (
	reeferBase    = 2.25
	minimumCharge = 350.0
)

var originModifiers = map[string]float64{
	"GA": 1.00,
	"FL": 1.08,
	"TX": 0.97,
	"CA": 1.12,
	"IL": 1.02,
	"PA": 1.04,
	"NJ": 1.06,
	"WI": 0.98,
	"NC": 1.01,
	"WA": 1.09,
}

// Peak produce season (May-Aug) and the holiday push pull reefer capacity
// away from frozen protein, so those months carry a premium. Months not
// listed carry no modifier.
var seasonModifiers = map[time.Month]float64{
	time.May:      1.08,
	time.June:     1.12,
	time.July:     1.14,
	time.August:   1.10,
	time.November: 1.05,
	time.December: 1.09,
}

// Estimate is a reefer cost estimate with its ±15% plausibility range and the
// multiplier breakdown that produced it.
type Estimate struct {
	Estimate  float64          `json:"estimate"`
	RangeLow  float64          `json:"range_low"`
	RangeHigh float64          `json:"range_high"`
	Factors   entities.Factors `json:"factors"`
}

// EstimateReefer converts a dry LTL quote into a reefer estimate for a
// shipment leaving originState on shipDate. Pure function, rounds every
// output to 2 decimals.
func EstimateReefer(dryQuote float64, originState string, shipDate time.Time) (Estimate, error) {
	if dryQuote <= 0 {
		return Estimate{}, ErrInvalidDryQuote
	}

	origin := modifierFor(originState)
	season := seasonModifierFor(shipDate.Month())

	raw := dryQuote * reeferBase * origin * season
	est := raw
	floored := false
	if est < minimumCharge {
		est = minimumCharge
		floored = true
	}
	est = Round2(est)

	return Estimate{
		Estimate:  est,
		RangeLow:  Round2(est * 0.85),
		RangeHigh: Round2(est * 1.15),
		Factors: entities.Factors{
			Base:           reeferBase,
			OriginModifier: origin,
			SeasonModifier: season,
			FloorApplied:   floored,
		},
	}, nil
}

// PerPound spreads a total cost over a shipment weight, rounded to 4 decimals.
func PerPound(total, weightLbs float64) (float64, error) {
	if weightLbs <= 0 {
		return 0, ErrInvalidWeight
	}
	return Round4(total / weightLbs), nil
}

func modifierFor(state string) float64 {
	if m, ok := originModifiers[strings.ToUpper(strings.TrimSpace(state))]; ok {
		return m
	}
	return 1.0
}

func seasonModifierFor(month time.Month) float64 {
	if m, ok := seasonModifiers[month]; ok {
		return m
	}
	return 1.0
}
