package interfaces

import (
	"context"

	"coldchain_pricing/internal/domain/entities"
)

// IProductRepository abstracts DynamoDB persistence for Product.
//
// Products belong to the inventory subsystem; this engine reads them for
// pricing and writes exactly one per accepted deal. Delete exists solely as
// the compensating action when a deal acceptance loses the status race.

type IProductRepository interface {
	GetByIDs(ctx context.Context, ids []string) ([]entities.Product, error)
	Create(ctx context.Context, p entities.Product) (entities.Product, error)
	Delete(ctx context.Context, id string) error
}
