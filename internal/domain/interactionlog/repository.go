package interactionlog

import (
	"context"
	"time"
)

// Repository abstracts persistence for interaction log records. The store is
// an append-only sink; each Create is a single atomic write, safe under
// concurrent appends from parallel provider calls.
type Repository interface {
	// Create appends a new interaction log record
	Create(ctx context.Context, record *InteractionLog) error

	// ProviderUsage returns per-provider aggregates for records created after the given time
	ProviderUsage(ctx context.Context, since time.Time) ([]ProviderUsage, error)

	// HourlyMetrics returns hour-bucketed aggregates for one provider after the given time
	HourlyMetrics(ctx context.Context, providerID string, since time.Time) ([]HourlyMetric, error)
}
