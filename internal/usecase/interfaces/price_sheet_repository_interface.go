package interfaces

import (
	"context"

	"coldchain_pricing/internal/domain/entities"
)

// IPriceSheetRepository abstracts DynamoDB persistence for price sheets.
//
// No multi-row transaction exists: CreateHeader, BulkInsertItems and
// DeleteHeader are the saga steps the usecase composes, with DeleteHeader as
// the compensating action when the item write fails.
//
// UpdateStatus is conditional on the expected prior status and returns a
// zero-value sheet when the predicate misses (wrong status or missing sheet).

type IPriceSheetRepository interface {
	CreateHeader(ctx context.Context, sheet entities.PriceSheet) (entities.PriceSheet, error)
	DeleteHeader(ctx context.Context, id string) error
	BulkInsertItems(ctx context.Context, items []entities.PriceSheetItem) error
	GetByID(ctx context.Context, id string) (entities.PriceSheet, error)
	ListItems(ctx context.Context, sheetID string) ([]entities.PriceSheetItem, error)
	List(ctx context.Context, limit int, cursor string) ([]entities.PriceSheet, string, error)
	UpdateStatus(ctx context.Context, id string, from, to entities.PriceSheetStatus) (entities.PriceSheet, error)
}
