package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"coldchain_pricing/internal/domain/entities"
	"coldchain_pricing/internal/domain/packsize"
	"coldchain_pricing/internal/resilience"
	"coldchain_pricing/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrDealNotFound           = errors.New("deal not found")
	ErrDealNotOwned           = errors.New("deal not owned by caller")
	ErrDealAlreadyProcessed   = errors.New("deal already processed")
	ErrDuplicateDeal          = errors.New("duplicate accepted deal within 7 days")
	ErrInvalidDealFields      = errors.New("invalid deal fields")
	ErrDealWarehouseNotFound  = errors.New("deal warehouse not found")
	ErrWarehouseNotAuthorized = errors.New("warehouse not authorized for caller organization")
)

const (
	defaultCaseWeightLbs = 40.0
	maxDealPricePerLb    = 100.0
	maxDealQuantityLbs   = 1_000_000.0
	duplicateDealWindow  = 7 * 24 * time.Hour
)

// IDealUseCase resolves pending deals exactly once under concurrency.

type IDealUseCase interface {
	Accept(ctx context.Context, dealID, callerID, orgID string) (entities.Deal, error)
	Reject(ctx context.Context, dealID, callerID string) (entities.Deal, error)
}

// DealUseCase implements the accept/reject state machine.
//
// There is deliberately no lock and no transaction here. The saga is:
// create the product while the deal is still pending, then attempt the one
// atomic conditional update (id + owner + status=pending). The loser of a
// race affects zero rows and compensates by deleting its product, so an
// accepted deal always has exactly one product and a pending deal has none
// from this path.
type DealUseCase struct {
	deals      interfaces.IDealRepository
	products   interfaces.IProductRepository
	warehouses interfaces.IWarehouseRepository
	aiParser   interfaces.IPackSizeParser
	aiGuard    resilience.Guard
	now        func() time.Time
}

var _ IDealUseCase = (*DealUseCase)(nil)

func NewDealUseCase(
	deals interfaces.IDealRepository,
	products interfaces.IProductRepository,
	warehouses interfaces.IWarehouseRepository,
	aiParser interfaces.IPackSizeParser,
	aiGuard resilience.Guard,
) *DealUseCase {
	return &DealUseCase{
		deals:      deals,
		products:   products,
		warehouses: warehouses,
		aiParser:   aiParser,
		aiGuard:    aiGuard,
		now:        time.Now,
	}
}

func (u *DealUseCase) Accept(ctx context.Context, dealID, callerID, orgID string) (entities.Deal, error) {
	log.Printf("[deal][usecase] accept start deal=%s caller=%s", dealID, callerID)

	deal, err := u.loadOwned(ctx, dealID, callerID)
	if err != nil {
		return entities.Deal{}, err
	}

	// Advisory pre-checks. The conditional update below is the concurrency
	// guard; these only reject requests that could never succeed.
	if err := validateDealFields(deal); err != nil {
		return entities.Deal{}, err
	}
	wh, err := u.warehouses.GetByID(ctx, deal.WarehouseID)
	if err != nil {
		return entities.Deal{}, err
	}
	if wh.ID == "" {
		return entities.Deal{}, ErrDealWarehouseNotFound
	}
	if wh.OrganizationID != orgID {
		return entities.Deal{}, ErrWarehouseNotAuthorized
	}

	now := u.now()
	dup, err := u.deals.FindAcceptedDuplicate(ctx, deal.Manufacturer, deal.Description, now.Add(-duplicateDealWindow))
	if err != nil {
		return entities.Deal{}, err
	}
	if dup.ID != "" && dup.ID != deal.ID {
		log.Printf("[deal][usecase] duplicate guard hit deal=%s duplicate=%s", deal.ID, dup.ID)
		return entities.Deal{}, ErrDuplicateDeal
	}

	caseWeight := u.deriveCaseWeight(ctx, deal.PackSize)
	cases := int(math.Floor(deal.QuantityLbs / caseWeight))

	// Product first, while the deal is still pending. A failure here changes
	// nothing and needs no compensation.
	product, err := u.products.Create(ctx, entities.Product{
		ID:             uuid.NewString(),
		Name:           fmt.Sprintf("%s %s", deal.Manufacturer, deal.Description),
		CostPerLb:      deal.PricePerLb,
		CaseWeightLbs:  caseWeight,
		CasesAvailable: cases,
		WarehouseID:    deal.WarehouseID,
		OrganizationID: orgID,
		SourceDealID:   deal.ID,
		CreatedAt:      now,
	})
	if err != nil {
		log.Printf("[deal][usecase] product create failed deal=%s err=%v", deal.ID, err)
		return entities.Deal{}, err
	}

	updated, err := u.deals.ResolvePending(ctx, deal.ID, callerID, entities.DealStatusAccepted, product.ID, now)
	if err != nil {
		// Unknown outcome; surface the error rather than compensate blind.
		return entities.Deal{}, err
	}
	if updated.ID == "" {
		// Lost the race: another caller resolved the deal first.
		log.Printf("[deal][usecase] lost accept race deal=%s, compensating product=%s", deal.ID, product.ID)
		if derr := u.products.Delete(ctx, product.ID); derr != nil {
			log.Printf("[deal][usecase] ORPHANED PRODUCT product=%s deal=%s compensating delete failed err=%v", product.ID, deal.ID, derr)
		}
		return entities.Deal{}, ErrDealAlreadyProcessed
	}

	log.Printf("[deal][usecase] accept success deal=%s product=%s cases=%d case_weight=%v", updated.ID, product.ID, cases, caseWeight)
	return updated, nil
}

func (u *DealUseCase) Reject(ctx context.Context, dealID, callerID string) (entities.Deal, error) {
	log.Printf("[deal][usecase] reject start deal=%s caller=%s", dealID, callerID)

	deal, err := u.loadOwned(ctx, dealID, callerID)
	if err != nil {
		return entities.Deal{}, err
	}

	updated, err := u.deals.ResolvePending(ctx, deal.ID, callerID, entities.DealStatusRejected, "", u.now())
	if err != nil {
		return entities.Deal{}, err
	}
	if updated.ID == "" {
		return entities.Deal{}, ErrDealAlreadyProcessed
	}

	log.Printf("[deal][usecase] reject success deal=%s", updated.ID)
	return updated, nil
}

func (u *DealUseCase) loadOwned(ctx context.Context, dealID, callerID string) (entities.Deal, error) {
	dealID = strings.TrimSpace(dealID)
	if dealID == "" {
		return entities.Deal{}, ErrDealNotFound
	}

	deal, err := u.deals.GetByID(ctx, dealID)
	if err != nil {
		return entities.Deal{}, err
	}
	if deal.ID == "" {
		return entities.Deal{}, ErrDealNotFound
	}
	if deal.OwnerID != callerID {
		return entities.Deal{}, ErrDealNotOwned
	}
	return deal, nil
}

// deriveCaseWeight tries the fast parser, then the AI collaborator behind the
// resilience guard, then the 40 lb default. AI output passes the same bounds
// check as everything else before it is believed.
func (u *DealUseCase) deriveCaseWeight(ctx context.Context, packSize string) float64 {
	if w, ok := packsize.ParseCaseWeight(packSize); ok {
		return w
	}

	if u.aiParser != nil {
		w, err := resilience.Call(ctx, u.aiGuard, "svc:ai-parse", func(ctx context.Context) (float64, error) {
			return u.aiParser.ParseCaseWeight(ctx, packSize)
		})
		if err == nil && packsize.Validate(w) {
			return w
		}
		if err != nil {
			log.Printf("[deal][usecase] ai pack-size parse failed pack_size=%q err=%v, using default", packSize, err)
		}
	}

	return defaultCaseWeightLbs
}

func validateDealFields(d entities.Deal) error {
	if strings.TrimSpace(d.Manufacturer) == "" || strings.TrimSpace(d.Description) == "" {
		return ErrInvalidDealFields
	}
	if d.PricePerLb <= 0 || d.PricePerLb > maxDealPricePerLb {
		return ErrInvalidDealFields
	}
	if d.QuantityLbs <= 0 || d.QuantityLbs > maxDealQuantityLbs {
		return ErrInvalidDealFields
	}
	if strings.TrimSpace(d.WarehouseID) == "" {
		return ErrInvalidDealFields
	}
	return nil
}
