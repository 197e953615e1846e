package pricing

import "errors"

var ErrInvalidMargin = errors.New("margin percent out of range")

// DeliveredPriceResult is the per-pound breakdown behind one price sheet item.
// Every field is rounded to 4 decimals before it leaves this package.
type DeliveredPriceResult struct {
	CostPerLb    float64 `json:"cost_per_lb"`
	MarginAmount float64 `json:"margin_amount"`
	FreightPerLb float64 `json:"freight_per_lb"`
	Total        float64 `json:"total"`
}

// DeliveredPrice computes cost + margin + freight per pound. Margin is a
// percentage of cost and must lie in [0, 100].
func DeliveredPrice(costPerLb, marginPercent, freightPerLb float64) (DeliveredPriceResult, error) {
	if marginPercent < 0 || marginPercent > 100 {
		return DeliveredPriceResult{}, ErrInvalidMargin
	}

	cost := Round4(costPerLb)
	margin := Round4(costPerLb * marginPercent / 100)
	freight := Round4(freightPerLb)
	total := Round4(cost + margin + freight)

	return DeliveredPriceResult{
		CostPerLb:    cost,
		MarginAmount: margin,
		FreightPerLb: freight,
		Total:        total,
	}, nil
}
