package port

import (
	"context"

	"storerank/internal/core/domain"
)

// Invalidator drops cached rankings after a mutation. Invalidation
// failures are logged by implementations and never fail the mutation.
type Invalidator interface {
	// Invalidate clears this process's rankings only.
	Invalidate(ctx context.Context, reason string)
	// Notify clears this process's rankings and announces the mutation to
	// other processes when a publisher is configured.
	Notify(ctx context.Context, ev domain.MutationEvent)
}

// EventPublisher broadcasts mutation events to other processes.
type EventPublisher interface {
	Publish(ctx context.Context, ev domain.MutationEvent) error
}
