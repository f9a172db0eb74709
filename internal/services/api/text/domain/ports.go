package domain

import "context"

// ServicePort defines the service contract for text operations
type ServicePort interface {
	Normalize(ctx context.Context, in NormalizeInput) (NormalizeResult, error)
	Guess(ctx context.Context, in GuessInput) (GuessResult, error)
	Match(ctx context.Context, in MatchInput) (MatchResult, error)
	Scrub(ctx context.Context, in ScrubInput) (ScrubResult, error)

	// Probe runs a conversion self test, used by readiness checks
	Probe(ctx context.Context) error
}
