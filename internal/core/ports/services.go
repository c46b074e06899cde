package ports

import (
	"context"

	"webhook-gateway/internal/core/domain"

	"github.com/google/uuid"
)

// SubscriberResolver resolves the active subscribers of a topic, possibly
// through a time-bounded cache.
type SubscriberResolver interface {
	ResolveSubscribers(ctx context.Context, topic string) ([]domain.Subscriber, error)
}

// JobScheduler enqueues delivery jobs for asynchronous execution. Schedule is
// fire-and-forget: the dispatcher never awaits job completion.
type JobScheduler interface {
	Schedule(ctx context.Context, job domain.DeliveryJob) error
}

// Transport issues the outbound HTTP calls of the delivery worker.
type Transport interface {
	// Send POSTs body to url with the given headers and returns the response
	// status code. A non-nil error means the call never produced a response.
	Send(ctx context.Context, url string, body []byte, headers map[string]string) (int, error)
	// Head probes url and returns the response status code.
	Head(ctx context.Context, url string) (int, error)
}

// SignatureService handles HMAC-SHA256 signing and verification of delivery
// payloads.
type SignatureService interface {
	Sign(secretKey string, payload string) string
	Verify(secretKey string, payload string, signature string) bool
}

// --- Service Ports (Business Logic) ---

// Dispatcher is the event dispatch entry point. targetID, when non-nil,
// restricts delivery to exactly that webhook (no existence check; deferred to
// the delivery worker).
type Dispatcher interface {
	Dispatch(ctx context.Context, topic string, data map[string]any, targetID *uuid.UUID) error
}

// DeliveryService consumes scheduled delivery jobs and records outcomes.
type DeliveryService interface {
	HandleJob(ctx context.Context, job domain.DeliveryJob) error
	RetryFailedEvent(ctx context.Context, eventID uuid.UUID) error
}

// SecretService manages the per-webhook shared secret lifecycle.
type SecretService interface {
	Generate(ctx context.Context, webhookID uuid.UUID, length int) (*domain.Secret, error)
	GetActive(ctx context.Context, webhookID uuid.UUID) (*domain.Secret, error)
	Validate(ctx context.Context, webhookID uuid.UUID, candidate string) (bool, error)
	Rotate(ctx context.Context, webhookID uuid.UUID) (*domain.Secret, error)
}

// HealthService computes delivery statistics and purges expired events.
type HealthService interface {
	GetEventStats(ctx context.Context, webhookID uuid.UUID, windowDays int) (domain.EventStats, error)
	GetWebhookHealth(ctx context.Context, webhookID uuid.UUID) (*domain.HealthReport, error)
	// Cleanup deletes events older than retentionDays (0 = configured
	// default) and returns the number deleted.
	Cleanup(ctx context.Context, retentionDays int) (int64, error)
}

// BulkResult accumulates per-item outcomes of a bulk operation. Partial
// success is expected and reported, not treated as an overall failure.
type BulkResult struct {
	Succeeded int      `json:"succeeded"`
	Failed    int      `json:"failed"`
	Errors    []string `json:"errors,omitempty"`
}

// WebhookInput carries caller-supplied webhook fields.
type WebhookInput struct {
	URL    string
	Topics []string
	Active *bool
}

// WebhookManager is the administrative CRUD surface around webhooks.
type WebhookManager interface {
	Create(ctx context.Context, in WebhookInput) (*domain.Webhook, error)
	Update(ctx context.Context, publicID uuid.UUID, in WebhookInput) (*domain.Webhook, error)
	Delete(ctx context.Context, publicID uuid.UUID) error
	Get(ctx context.Context, publicID uuid.UUID) (*domain.Webhook, error)
	List(ctx context.Context, activeOnly bool) ([]domain.Webhook, error)
	BulkCreate(ctx context.Context, ins []WebhookInput) BulkResult
	// BulkUpdate applies one set of changes to every listed webhook.
	BulkUpdate(ctx context.Context, publicIDs []uuid.UUID, in WebhookInput) BulkResult
	BulkDelete(ctx context.Context, publicIDs []uuid.UUID) BulkResult
	// ReconcileTopics mirrors the registry's topic set into the store:
	// catalog entries without a registered handler are removed, registered
	// topics missing from the catalog are created.
	ReconcileTopics(ctx context.Context) error
	// ValidateURL probes the endpoint with a HEAD request; reachable iff the
	// response status is below 500.
	ValidateURL(ctx context.Context, url string) bool
	// TestFire dispatches a synthetic webhook.test event at one webhook.
	TestFire(ctx context.Context, publicID uuid.UUID, data map[string]any) error
}
