package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"coldchain_pricing/internal/domain/entities"
	"coldchain_pricing/internal/domain/pricing"
	"coldchain_pricing/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrEmptyProductSet         = errors.New("empty product set")
	ErrInvalidZone             = errors.New("invalid zone")
	ErrInvalidWeekRange        = errors.New("invalid week range")
	ErrNoProductsResolved      = errors.New("no products resolved")
	ErrPriceSheetNotFound      = errors.New("price sheet not found")
	ErrInvalidStatusTransition = errors.New("invalid price sheet status transition")
)

const defaultMarginPercent = 15.0

// MissingRatesError aborts a build before any write: at least one origin
// warehouse has no non-expired freight rate for the requested zone. It names
// every missing warehouse so the caller can target a recalibration.
type MissingRatesError struct {
	WarehouseIDs []string
}

func (e *MissingRatesError) Error() string {
	return fmt.Sprintf("no valid freight rate for warehouses: %s", strings.Join(e.WarehouseIDs, ", "))
}

// CreatePriceSheetRequest is the build command.
type CreatePriceSheetRequest struct {
	ZoneID                 string
	WeekStart              time.Time
	WeekEnd                time.Time
	ProductIDs             []string
	MarginPercentByProduct map[string]float64
	OwnerID                string
}

// PriceSheetWithItems pairs a header with its lines.
type PriceSheetWithItems struct {
	Sheet entities.PriceSheet
	Items []entities.PriceSheetItem
}

// IPriceSheetUseCase builds and manages weekly delivered-price sheets.

type IPriceSheetUseCase interface {
	Create(ctx context.Context, req CreatePriceSheetRequest) (PriceSheetWithItems, error)
	List(ctx context.Context, limit int, cursor string) ([]entities.PriceSheet, string, error)
	Publish(ctx context.Context, id string) (entities.PriceSheet, error)
	Archive(ctx context.Context, id string) (entities.PriceSheet, error)
}

type PriceSheetUseCase struct {
	sheets   interfaces.IPriceSheetRepository
	products interfaces.IProductRepository
	rates    interfaces.IFreightRateRepository
	now      func() time.Time
}

var _ IPriceSheetUseCase = (*PriceSheetUseCase)(nil)

func NewPriceSheetUseCase(
	sheets interfaces.IPriceSheetRepository,
	products interfaces.IProductRepository,
	rates interfaces.IFreightRateRepository,
) *PriceSheetUseCase {
	return &PriceSheetUseCase{sheets: sheets, products: products, rates: rates, now: time.Now}
}

// Create builds a price sheet with all-or-nothing semantics.
//
// The missing-rate check is a strict precondition validated before any write;
// after the header exists, a failed item insert deletes it again. The
// postcondition either way: the sheet and all its items exist, or neither
// does.
func (u *PriceSheetUseCase) Create(ctx context.Context, req CreatePriceSheetRequest) (PriceSheetWithItems, error) {
	log.Printf("[pricesheet][usecase] create start zone=%s products=%d", req.ZoneID, len(req.ProductIDs))

	if len(req.ProductIDs) == 0 {
		return PriceSheetWithItems{}, ErrEmptyProductSet
	}
	if _, ok := entities.ZoneByID(req.ZoneID); !ok {
		return PriceSheetWithItems{}, ErrInvalidZone
	}
	if req.WeekStart.IsZero() || req.WeekEnd.IsZero() || !req.WeekEnd.After(req.WeekStart) {
		return PriceSheetWithItems{}, ErrInvalidWeekRange
	}
	for _, m := range req.MarginPercentByProduct {
		if m < 0 || m > 100 {
			return PriceSheetWithItems{}, pricing.ErrInvalidMargin
		}
	}

	products, err := u.products.GetByIDs(ctx, req.ProductIDs)
	if err != nil {
		return PriceSheetWithItems{}, err
	}
	if len(products) == 0 {
		return PriceSheetWithItems{}, ErrNoProductsResolved
	}

	now := u.now()
	rateByWarehouse, missing, err := u.resolveRates(ctx, products, req.ZoneID, now)
	if err != nil {
		return PriceSheetWithItems{}, err
	}
	if len(missing) > 0 {
		log.Printf("[pricesheet][usecase] aborting, missing rates zone=%s warehouses=%v", req.ZoneID, missing)
		return PriceSheetWithItems{}, &MissingRatesError{WarehouseIDs: missing}
	}

	sheet := entities.PriceSheet{
		ID:        uuid.NewString(),
		ZoneID:    req.ZoneID,
		WeekStart: req.WeekStart,
		WeekEnd:   req.WeekEnd,
		Status:    entities.PriceSheetStatusDraft,
		OwnerID:   req.OwnerID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	items := make([]entities.PriceSheetItem, 0, len(products))
	for _, p := range products {
		margin := defaultMarginPercent
		if m, ok := req.MarginPercentByProduct[p.ID]; ok {
			margin = m
		}

		res, err := pricing.DeliveredPrice(p.CostPerLb, margin, rateByWarehouse[p.WarehouseID].RatePerLb)
		if err != nil {
			return PriceSheetWithItems{}, err
		}

		items = append(items, entities.PriceSheetItem{
			PriceSheetID:     sheet.ID,
			ProductID:        p.ID,
			WarehouseID:      p.WarehouseID,
			CostPerLb:        res.CostPerLb,
			MarginPercent:    margin,
			MarginAmount:     res.MarginAmount,
			FreightPerLb:     res.FreightPerLb,
			DeliveredPriceLb: res.Total,
		})
	}

	created, err := u.sheets.CreateHeader(ctx, sheet)
	if err != nil {
		return PriceSheetWithItems{}, err
	}

	if err := u.sheets.BulkInsertItems(ctx, items); err != nil {
		log.Printf("[pricesheet][usecase] item insert failed sheet=%s err=%v, compensating", created.ID, err)
		if derr := u.sheets.DeleteHeader(ctx, created.ID); derr != nil {
			// Compensation is best-effort; an orphaned header must stay
			// visible for async cleanup, never vanish silently.
			log.Printf("[pricesheet][usecase] ORPHANED HEADER sheet=%s compensating delete failed err=%v", created.ID, derr)
		}
		return PriceSheetWithItems{}, err
	}

	log.Printf("[pricesheet][usecase] create success sheet=%s items=%d", created.ID, len(items))
	return PriceSheetWithItems{Sheet: created, Items: items}, nil
}

// resolveRates fetches the newest non-expired rate for every distinct origin
// warehouse and reports the warehouses that have none.
func (u *PriceSheetUseCase) resolveRates(
	ctx context.Context,
	products []entities.Product,
	zoneID string,
	now time.Time,
) (map[string]entities.FreightRate, []string, error) {
	seen := map[string]bool{}
	rateByWarehouse := map[string]entities.FreightRate{}
	var missing []string

	for _, p := range products {
		if seen[p.WarehouseID] {
			continue
		}
		seen[p.WarehouseID] = true

		r, err := u.rates.NewestForLane(ctx, p.WarehouseID, zoneID, now)
		if err != nil {
			return nil, nil, err
		}
		if r.WarehouseID == "" || r.ExpiredAt(now) {
			missing = append(missing, p.WarehouseID)
			continue
		}
		rateByWarehouse[p.WarehouseID] = r
	}

	sort.Strings(missing)
	return rateByWarehouse, missing, nil
}

func (u *PriceSheetUseCase) List(ctx context.Context, limit int, cursor string) ([]entities.PriceSheet, string, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return u.sheets.List(ctx, limit, cursor)
}

func (u *PriceSheetUseCase) Publish(ctx context.Context, id string) (entities.PriceSheet, error) {
	return u.transition(ctx, id, entities.PriceSheetStatusDraft, entities.PriceSheetStatusPublished)
}

func (u *PriceSheetUseCase) Archive(ctx context.Context, id string) (entities.PriceSheet, error) {
	return u.transition(ctx, id, entities.PriceSheetStatusPublished, entities.PriceSheetStatusArchived)
}

func (u *PriceSheetUseCase) transition(ctx context.Context, id string, from, to entities.PriceSheetStatus) (entities.PriceSheet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PriceSheet{}, ErrPriceSheetNotFound
	}

	updated, err := u.sheets.UpdateStatus(ctx, id, from, to)
	if err != nil {
		return entities.PriceSheet{}, err
	}
	if updated.ID == "" {
		existing, err := u.sheets.GetByID(ctx, id)
		if err != nil {
			return entities.PriceSheet{}, err
		}
		if existing.ID == "" {
			return entities.PriceSheet{}, ErrPriceSheetNotFound
		}
		return entities.PriceSheet{}, ErrInvalidStatusTransition
	}
	return updated, nil
}
