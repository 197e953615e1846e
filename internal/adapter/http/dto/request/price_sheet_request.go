package request

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidWeekDate = errors.New("invalid week date")

const weekDateLayout = "2006-01-02"

type PriceSheetProductRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	// MarginPercent overrides the default margin for this line when set.
	MarginPercent *float64 `json:"margin_percent"`
}

// CreatePriceSheetRequest is the build payload. Week bounds arrive as
// calendar dates (YYYY-MM-DD) and resolve to UTC midnight.
type CreatePriceSheetRequest struct {
	ZoneID    string                     `json:"zone_id" binding:"required"`
	WeekStart string                     `json:"week_start" binding:"required"`
	WeekEnd   string                     `json:"week_end" binding:"required"`
	Products  []PriceSheetProductRequest `json:"products" binding:"required"`
}

func (r CreatePriceSheetRequest) ResolveWeek() (time.Time, time.Time, error) {
	start, err := time.ParseInLocation(weekDateLayout, strings.TrimSpace(r.WeekStart), time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidWeekDate
	}
	end, err := time.ParseInLocation(weekDateLayout, strings.TrimSpace(r.WeekEnd), time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidWeekDate
	}
	return start, end, nil
}

func (r CreatePriceSheetRequest) ResolveProductIDs() []string {
	ids := make([]string, 0, len(r.Products))
	for _, p := range r.Products {
		if v := strings.TrimSpace(p.ProductID); v != "" {
			ids = append(ids, v)
		}
	}
	return ids
}

func (r CreatePriceSheetRequest) ResolveMargins() map[string]float64 {
	margins := make(map[string]float64)
	for _, p := range r.Products {
		if p.MarginPercent != nil {
			margins[strings.TrimSpace(p.ProductID)] = *p.MarginPercent
		}
	}
	return margins
}
