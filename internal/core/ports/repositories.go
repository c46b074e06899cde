package ports

import (
	"context"
	"time"

	"webhook-gateway/internal/core/domain"

	"github.com/google/uuid"
)

// WebhookRepository defines persistence operations for webhooks. The dispatch
// core only reads webhooks; mutation happens through the management service.
type WebhookRepository interface {
	Create(ctx context.Context, w *domain.Webhook) error
	Update(ctx context.Context, w *domain.Webhook) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Webhook, error)
	FindByPublicID(ctx context.Context, publicID uuid.UUID) (*domain.Webhook, error)
	// FindActiveByTopic returns the (id, public_id) pairs of active webhooks
	// subscribed to topic, ordered by creation time.
	FindActiveByTopic(ctx context.Context, topic string) ([]domain.Subscriber, error)
	List(ctx context.Context, activeOnly bool) ([]domain.Webhook, error)
}

// SecretRepository defines persistence for webhook secrets.
type SecretRepository interface {
	// Replace deletes any existing secrets for the webhook and inserts the
	// new one within a single transaction, so readers never observe zero or
	// two active secrets.
	Replace(ctx context.Context, s *domain.Secret) error
	GetActive(ctx context.Context, webhookID uuid.UUID) (*domain.Secret, error)
}

// EventRepository defines persistence for delivery event records.
type EventRepository interface {
	Create(ctx context.Context, e *domain.Event) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.EventStatus) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error)
	ListByWebhook(ctx context.Context, webhookID uuid.UUID, limit int) ([]domain.Event, error)
	// StatsByWebhook counts events per status created at or after since.
	StatsByWebhook(ctx context.Context, webhookID uuid.UUID, since time.Time) (domain.EventStats, error)
	// DeleteOlderThan purges events created before cutoff, returning the count.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// TopicRepository defines persistence for the topic catalog. The catalog is a
// mirror of the in-process registry, reconciled at startup.
type TopicRepository interface {
	List(ctx context.Context) ([]string, error)
	Create(ctx context.Context, name string) error
	Delete(ctx context.Context, name string) error
}
