package interfaces

import "context"

// IPackSizeParser abstracts the AI-assisted pack-size inference collaborator.
//
// It is an unreliable, rate-limited dependency: callers reach it only after
// the fast synchronous parser fails, only through the resilience guard, and
// must re-validate the returned weight against sane bounds before trusting it.
type IPackSizeParser interface {
	// ParseCaseWeight infers the case weight in pounds from a free-text
	// pack-size description (e.g. "4/10 lb", "6 x 5lb bags").
	ParseCaseWeight(ctx context.Context, packSize string) (float64, error)
}
