package port

import (
	"context"

	"mesa-bounty/internal/core/domain"
)

// EventPublisher delivers domain events to downstream consumers. Delivery
// is best effort; callers log and continue on error.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
}
