package interfaces

import (
	"context"

	"coldchain_pricing/internal/domain/entities"
)

// IWarehouseRepository abstracts DynamoDB persistence for Warehouse reference
// data. Warehouses are admin-imported and effectively read-only here.

type IWarehouseRepository interface {
	ListActive(ctx context.Context) ([]entities.Warehouse, error)
	GetByID(ctx context.Context, id string) (entities.Warehouse, error)
}
