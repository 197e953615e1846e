package interfaces

import (
	"context"
	"time"

	"coldchain_pricing/internal/domain/entities"
)

// IDealRepository abstracts DynamoDB persistence for Deal.
//
// ResolvePending is the one correctness-critical operation in the engine: a
// single conditional update whose predicate is (id, owner, status=pending).
// Exactly one concurrent caller can match it; everyone else gets a zero-value
// deal back and must treat the resolution as lost.

type IDealRepository interface {
	GetByID(ctx context.Context, id string) (entities.Deal, error)
	// ResolvePending flips a pending deal to the given terminal status,
	// stamping productID (accept only) and resolvedAt. A zero-value deal
	// means the conditional predicate matched no row.
	ResolvePending(ctx context.Context, id, ownerID string, to entities.DealStatus, productID string, resolvedAt time.Time) (entities.Deal, error)
	// FindAcceptedDuplicate returns an accepted deal with the same
	// manufacturer and description created at or after since, or a
	// zero-value deal when none exists.
	FindAcceptedDuplicate(ctx context.Context, manufacturer, description string, since time.Time) (entities.Deal, error)
}
