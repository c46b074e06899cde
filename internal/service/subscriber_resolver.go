package service

import (
	"context"
	"fmt"

	"webhook-gateway/internal/core/domain"
	"webhook-gateway/internal/core/ports"
)

// StoreSubscriberResolver implements ports.SubscriberResolver with direct
// store lookups. It is wired in when the subscriber cache is disabled, at
// the cost of one store query per dispatch.
type StoreSubscriberResolver struct {
	store ports.WebhookRepository
}

// NewStoreSubscriberResolver creates an uncached subscriber resolver.
func NewStoreSubscriberResolver(store ports.WebhookRepository) *StoreSubscriberResolver {
	return &StoreSubscriberResolver{store: store}
}

// ResolveSubscribers returns the active subscribers of topic from the store.
func (r *StoreSubscriberResolver) ResolveSubscribers(ctx context.Context, topic string) ([]domain.Subscriber, error) {
	subs, err := r.store.FindActiveByTopic(ctx, topic)
	if err != nil {
		return nil, fmt.Errorf("resolve subscribers for %q: %w", topic, err)
	}
	return subs, nil
}
