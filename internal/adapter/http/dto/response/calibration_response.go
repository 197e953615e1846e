package response

import "coldchain_pricing/internal/usecase"

type CalibrationPairResultResponse struct {
	WarehouseID string  `json:"warehouse_id"`
	ZoneID      string  `json:"zone_id"`
	City        string  `json:"city"`
	State       string  `json:"state"`
	DryQuote    float64 `json:"dry_quote"`
	Estimate    float64 `json:"estimate"`
	RatePerLb   float64 `json:"rate_per_lb"`
	QuoteID     string  `json:"quote_id"`
}

type CalibrationPairErrorResponse struct {
	WarehouseID string `json:"warehouse_id"`
	ZoneID      string `json:"zone_id"`
	City        string `json:"city"`
	Message     string `json:"message"`
}

// CalibrationSummaryResponse reports a calibration run. Per-pair errors ride
// along in a 200 response; partial success is the normal mode for this batch.
type CalibrationSummaryResponse struct {
	Calibrated int                             `json:"calibrated"`
	Results    []CalibrationPairResultResponse `json:"results"`
	Errors     []CalibrationPairErrorResponse  `json:"errors"`
}

func FromCalibrationSummary(s usecase.CalibrationSummary) CalibrationSummaryResponse {
	results := make([]CalibrationPairResultResponse, 0, len(s.Results))
	for _, r := range s.Results {
		results = append(results, CalibrationPairResultResponse{
			WarehouseID: r.WarehouseID,
			ZoneID:      r.ZoneID,
			City:        r.City,
			State:       r.State,
			DryQuote:    r.DryQuote,
			Estimate:    r.Estimate,
			RatePerLb:   r.RatePerLb,
			QuoteID:     r.QuoteID,
		})
	}
	errs := make([]CalibrationPairErrorResponse, 0, len(s.Errors))
	for _, e := range s.Errors {
		errs = append(errs, CalibrationPairErrorResponse{
			WarehouseID: e.WarehouseID,
			ZoneID:      e.ZoneID,
			City:        e.City,
			Message:     e.Message,
		})
	}
	return CalibrationSummaryResponse{Calibrated: s.Calibrated, Results: results, Errors: errs}
}
