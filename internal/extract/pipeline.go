// Package extract recovers structured JSON arrays from free-form model replies.
//
// A Pipeline runs an ordered list of tiers over the raw text; the first tier
// that yields an array wins. Every tier is a pure function of its input, so
// running the same text through a pipeline twice yields identical results.
package extract

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoTier is returned when every tier of a pipeline failed.
var ErrNoTier = errors.New("no tier could extract an array")

// Tier is a single named extraction strategy.
type Tier struct {
	Name  string
	Parse func(raw string) ([]any, error)
}

// Result is the outcome of a successful pipeline run.
type Result struct {
	// Tier is the name of the tier that produced Items.
	Tier  string
	Items []any
}

// Pipeline is an ordered list of tiers.
type Pipeline struct {
	tiers []Tier
}

// NewPipeline returns a pipeline that tries tiers in the given order.
func NewPipeline(tiers ...Tier) *Pipeline {
	return &Pipeline{tiers: tiers}
}

// Tiers returns the tier names in execution order.
func (p *Pipeline) Tiers() []string {
	names := make([]string, 0, len(p.tiers))
	for _, tier := range p.tiers {
		names = append(names, tier.Name)
	}
	return names
}

// Run strips a surrounding code fence from raw and executes the tiers in order.
// When all tiers fail the returned error wraps ErrNoTier and each tier's error.
func (p *Pipeline) Run(raw string) (*Result, error) {
	text := StripCodeFence(raw)
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: empty input", ErrNoTier)
	}

	errs := make([]error, 0, len(p.tiers)+1)
	errs = append(errs, ErrNoTier)

	for _, tier := range p.tiers {
		items, err := tier.Parse(text)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", tier.Name, err))
			continue
		}
		return &Result{Tier: tier.Name, Items: items}, nil
	}

	return nil, errors.Join(errs...)
}
