package module

import (
	"context"

	textdom "zenhan/internal/services/api/text/domain"
	textsvc "zenhan/internal/services/api/text/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptTextPort adapts the text service to the domain port interface
type adaptTextPort struct{ svc textsvc.Service }

// Normalize implements the domain ServicePort interface
func (a adaptTextPort) Normalize(ctx context.Context, in textdom.NormalizeInput) (textdom.NormalizeResult, error) {
	return a.svc.Normalize(ctx, in)
}

// Guess implements the domain ServicePort interface
func (a adaptTextPort) Guess(ctx context.Context, in textdom.GuessInput) (textdom.GuessResult, error) {
	return a.svc.Guess(ctx, in)
}

// Match implements the domain ServicePort interface
func (a adaptTextPort) Match(ctx context.Context, in textdom.MatchInput) (textdom.MatchResult, error) {
	return a.svc.Match(ctx, in)
}

// Scrub implements the domain ServicePort interface
func (a adaptTextPort) Scrub(ctx context.Context, in textdom.ScrubInput) (textdom.ScrubResult, error) {
	return a.svc.Scrub(ctx, in)
}

// Probe implements the domain ServicePort interface
func (a adaptTextPort) Probe(ctx context.Context) error {
	return a.svc.Probe(ctx)
}
