// Package state persists the per-endpoint harvest watermark. The watermark
// is the only thing the pipeline remembers between runs, so both backends
// treat an absent record as a fresh endpoint instead of an error.
package state

import (
	"context"

	"term_harvester/internal/domain"
)

// Store reads and writes harvest watermarks.
type Store interface {
	// Get returns the watermark for an endpoint. A never-harvested
	// endpoint yields a zero-valued state, not an error.
	Get(ctx context.Context, endpoint string) (*domain.HarvestState, error)
	// Update durably replaces the watermark for an endpoint.
	Update(ctx context.Context, endpoint string, state *domain.HarvestState) error
}
