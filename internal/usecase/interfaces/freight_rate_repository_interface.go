package interfaces

import (
	"context"
	"time"

	"coldchain_pricing/internal/domain/entities"
)

// IFreightRateRepository abstracts the FreightRate cache.
//
// Calibration upserts by the (warehouse, zone, city) composite key; pricing
// reads the newest non-expired rate for a (warehouse, zone) lane. Missing
// rates resolve to a zero-value FreightRate, not an error.

type IFreightRateRepository interface {
	Upsert(ctx context.Context, rate entities.FreightRate) error
	NewestForLane(ctx context.Context, warehouseID, zoneID string, now time.Time) (entities.FreightRate, error)
	ListByWarehouse(ctx context.Context, warehouseID string) ([]entities.FreightRate, error)
}
