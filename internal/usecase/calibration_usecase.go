package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"coldchain_pricing/internal/domain/entities"
	"coldchain_pricing/internal/domain/pricing"
	"coldchain_pricing/internal/resilience"
	"coldchain_pricing/internal/usecase/interfaces"

	"golang.org/x/time/rate"
)

var ErrNoActiveWarehouses = errors.New("no active warehouses")

// Calibration constants: every lane is quoted with the same synthetic
// shipment so rates stay comparable across lanes and runs.
const (
	calibrationWeightLbs = 7500.0
	calibrationPallets   = 4
	calibrationClass     = "250"
	rateTTL              = 7 * 24 * time.Hour
	reeferRateType       = "reefer_estimate"
)

// CalibrationPairResult is one successfully calibrated lane.
type CalibrationPairResult struct {
	WarehouseID string  `json:"warehouse_id"`
	ZoneID      string  `json:"zone_id"`
	City        string  `json:"city"`
	State       string  `json:"state"`
	DryQuote    float64 `json:"dry_quote"`
	Estimate    float64 `json:"estimate"`
	RatePerLb   float64 `json:"rate_per_lb"`
	QuoteID     string  `json:"quote_id"`
}

// CalibrationPairError is one lane that failed; the run continues past it.
type CalibrationPairError struct {
	WarehouseID string `json:"warehouse_id"`
	ZoneID      string `json:"zone_id"`
	City        string `json:"city"`
	Message     string `json:"message"`
}

// CalibrationSummary aggregates a whole run. Partial success is the normal
// mode: Errors being non-empty does not make the run a failure.
type CalibrationSummary struct {
	Calibrated int                     `json:"calibrated"`
	Results    []CalibrationPairResult `json:"results"`
	Errors     []CalibrationPairError  `json:"errors"`
}

// ICalibrationUseCase refreshes the FreightRate cache from live LTL quotes.

type ICalibrationUseCase interface {
	CalibrateFreightRates(ctx context.Context) (CalibrationSummary, error)
}

type CalibrationUseCase struct {
	warehouses interfaces.IWarehouseRepository
	rates      interfaces.IFreightRateRepository
	quotes     interfaces.ILTLQuoteGateway
	guard      resilience.Guard
	pacer      *rate.Limiter
	now        func() time.Time
}

var _ ICalibrationUseCase = (*CalibrationUseCase)(nil)

// NewCalibrationUseCase wires the orchestrator. pacer caps the aggregate
// outbound quote rate below the upstream service's ceiling; nil disables
// pacing (tests).
func NewCalibrationUseCase(
	warehouses interfaces.IWarehouseRepository,
	rates interfaces.IFreightRateRepository,
	quotes interfaces.ILTLQuoteGateway,
	guard resilience.Guard,
	pacer *rate.Limiter,
) *CalibrationUseCase {
	return &CalibrationUseCase{
		warehouses: warehouses,
		rates:      rates,
		quotes:     quotes,
		guard:      guard,
		pacer:      pacer,
		now:        time.Now,
	}
}

// CalibrateFreightRates quotes every (active warehouse, served zone,
// representative destination) lane, runs each dry quote through the reefer
// estimator, and upserts the per-pound rate with a 7-day validity window.
// One lane failing never aborts the run; the only whole-run failure is
// having no active warehouses at all.
func (u *CalibrationUseCase) CalibrateFreightRates(ctx context.Context) (CalibrationSummary, error) {
	log.Printf("[calibration][usecase] run start")

	warehouses, err := u.warehouses.ListActive(ctx)
	if err != nil {
		return CalibrationSummary{}, err
	}
	if len(warehouses) == 0 {
		log.Printf("[calibration][usecase] no active warehouses")
		return CalibrationSummary{}, ErrNoActiveWarehouses
	}

	now := u.now()
	pickup := now.AddDate(0, 0, 1)
	summary := CalibrationSummary{}

	for _, wh := range warehouses {
		for _, zoneID := range wh.ServedZoneIDs {
			zone, ok := entities.ZoneByID(zoneID)
			if !ok {
				summary.Errors = append(summary.Errors, CalibrationPairError{
					WarehouseID: wh.ID,
					ZoneID:      zoneID,
					Message:     "unknown zone",
				})
				continue
			}

			for _, dest := range zone.Destinations {
				res, perr := u.calibrateLane(ctx, wh, zone, dest, pickup, now)
				if perr != nil {
					log.Printf("[calibration][usecase] lane failed warehouse=%s zone=%s city=%s err=%v", wh.ID, zone.ID, dest.City, perr)
					summary.Errors = append(summary.Errors, CalibrationPairError{
						WarehouseID: wh.ID,
						ZoneID:      zone.ID,
						City:        dest.City,
						Message:     perr.Error(),
					})
					continue
				}
				summary.Results = append(summary.Results, res)
				summary.Calibrated++
			}
		}
	}

	log.Printf("[calibration][usecase] run done calibrated=%d errors=%d", summary.Calibrated, len(summary.Errors))
	return summary, nil
}

func (u *CalibrationUseCase) calibrateLane(
	ctx context.Context,
	wh entities.Warehouse,
	zone entities.Zone,
	dest entities.Destination,
	pickup time.Time,
	now time.Time,
) (CalibrationPairResult, error) {
	if u.pacer != nil {
		if err := u.pacer.Wait(ctx); err != nil {
			return CalibrationPairResult{}, err
		}
	}

	req := interfaces.QuoteRequest{
		OriginCity:       wh.City,
		OriginState:      wh.State,
		OriginZip:        wh.Zip,
		DestinationCity:  dest.City,
		DestinationState: dest.State,
		DestinationZip:   dest.Zip,
		WeightLbs:        calibrationWeightLbs,
		Pallets:          calibrationPallets,
		PickupDate:       pickup,
		FreightClass:     calibrationClass,
	}

	quote, err := resilience.Call(ctx, u.guard, "svc:calibration", func(ctx context.Context) (interfaces.QuoteResponse, error) {
		return u.quotes.GetQuote(ctx, req)
	})
	if err != nil {
		return CalibrationPairResult{}, fmt.Errorf("quote: %w", err)
	}

	est, err := pricing.EstimateReefer(quote.Cost, wh.State, pickup)
	if err != nil {
		return CalibrationPairResult{}, fmt.Errorf("estimate: %w", err)
	}

	perLb, err := pricing.PerPound(est.Estimate, calibrationWeightLbs)
	if err != nil {
		return CalibrationPairResult{}, fmt.Errorf("per-pound: %w", err)
	}

	freightRate := entities.FreightRate{
		WarehouseID: wh.ID,
		ZoneID:      zone.ID,
		City:        dest.City,
		State:       dest.State,
		RatePerLb:   perLb,
		RateType:    reeferRateType,
		DryQuote:    quote.Cost,
		QuoteID:     quote.QuoteID,
		Factors:     est.Factors,
		ValidFrom:   now,
		ValidUntil:  now.Add(rateTTL),
	}
	if err := u.rates.Upsert(ctx, freightRate); err != nil {
		return CalibrationPairResult{}, fmt.Errorf("upsert rate: %w", err)
	}

	return CalibrationPairResult{
		WarehouseID: wh.ID,
		ZoneID:      zone.ID,
		City:        dest.City,
		State:       dest.State,
		DryQuote:    quote.Cost,
		Estimate:    est.Estimate,
		RatePerLb:   perLb,
		QuoteID:     quote.QuoteID,
	}, nil
}
