package services

import (
	"context"

	"tableside/internal/domain"
)

// Notifier pushes order-item-created events to whatever display channel is
// listening. Implementations must be safe to call with no listeners; the
// caller ignores the returned error beyond logging it.
type Notifier interface {
	OrderItemCreated(ctx context.Context, evt domain.OrderItemCreatedEvent) error
}

// NoopNotifier is used when no broadcast channel is configured.
type NoopNotifier struct{}

func (NoopNotifier) OrderItemCreated(context.Context, domain.OrderItemCreatedEvent) error {
	return nil
}
