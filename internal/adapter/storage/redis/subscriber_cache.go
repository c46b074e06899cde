package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"webhook-gateway/internal/core/domain"
	"webhook-gateway/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// SubscriberCache implements ports.SubscriberResolver with a Redis TTL cache
// in front of the webhook store. A stale entry is at most TTL old, so a newly
// activated or deactivated webhook can be missed in targeting for up to that
// long. A Redis outage degrades to direct store lookups rather than failing
// dispatch.
type SubscriberCache struct {
	client *goredis.Client
	store  ports.WebhookRepository
	ttl    time.Duration
	prefix string
	log    zerolog.Logger
}

// NewSubscriberCache creates a Redis-backed subscriber resolution cache.
func NewSubscriberCache(client *goredis.Client, store ports.WebhookRepository, ttl time.Duration, log zerolog.Logger) *SubscriberCache {
	return &SubscriberCache{
		client: client,
		store:  store,
		ttl:    ttl,
		prefix: "subscribers:",
		log:    log,
	}
}

// ResolveSubscribers returns the active subscribers of topic, serving from
// cache when a fresh entry exists.
func (c *SubscriberCache) ResolveSubscribers(ctx context.Context, topic string) ([]domain.Subscriber, error) {
	key := c.prefix + topic

	val, err := c.client.Get(ctx, key).Bytes()
	if err == nil {
		var subs []domain.Subscriber
		if err := json.Unmarshal(val, &subs); err == nil {
			return subs, nil
		}
		// Corrupt entry: fall through and repopulate.
		c.log.Warn().Str("topic", topic).Msg("corrupt subscriber cache entry, refreshing")
	} else if err != goredis.Nil {
		c.log.Warn().Err(err).Str("topic", topic).Msg("subscriber cache unavailable, falling back to store")
	}

	subs, err := c.store.FindActiveByTopic(ctx, topic)
	if err != nil {
		return nil, fmt.Errorf("resolve subscribers for %q: %w", topic, err)
	}

	if encoded, err := json.Marshal(subs); err == nil {
		if err := c.client.Set(ctx, key, encoded, c.ttl).Err(); err != nil {
			c.log.Warn().Err(err).Str("topic", topic).Msg("subscriber cache write failed")
		}
	}
	return subs, nil
}

// Invalidate drops the cached entry for topic, forcing the next resolution
// to hit the store.
func (c *SubscriberCache) Invalidate(ctx context.Context, topic string) error {
	if err := c.client.Del(ctx, c.prefix+topic).Err(); err != nil {
		return fmt.Errorf("invalidate subscriber cache for %q: %w", topic, err)
	}
	return nil
}
