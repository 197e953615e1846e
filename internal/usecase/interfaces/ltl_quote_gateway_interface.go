package interfaces

import (
	"context"
	"time"
)

// QuoteRequest describes one dry LTL shipment to price.
type QuoteRequest struct {
	OriginCity       string    `json:"origin_city"`
	OriginState      string    `json:"origin_state"`
	OriginZip        string    `json:"origin_zip"`
	DestinationCity  string    `json:"destination_city"`
	DestinationState string    `json:"destination_state"`
	DestinationZip   string    `json:"destination_zip"`
	WeightLbs        float64   `json:"weight_lbs"`
	Pallets          int       `json:"pallets"`
	PickupDate       time.Time `json:"pickup_date"`
	FreightClass     string    `json:"freight_class"`
}

// QuoteResponse is the dry quote the upstream service returned.
type QuoteResponse struct {
	Cost    float64 `json:"cost"`
	QuoteID string  `json:"quote_id"`
}

// ILTLQuoteGateway abstracts the external LTL quoting service. Implementations
// classify failures (transient vs not) so the retry layer can tell them apart;
// callers invoke it only through the resilience guard.
type ILTLQuoteGateway interface {
	GetQuote(ctx context.Context, req QuoteRequest) (QuoteResponse, error)
}
