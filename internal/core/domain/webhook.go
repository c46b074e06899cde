package domain

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

// TopicNameRE matches dot-structured topic names such as "order.created".
var TopicNameRE = regexp.MustCompile(`^[a-z0-9_]+(\.[a-z0-9_]+)+$`)

// Webhook is a subscribed endpoint. ID is the internal identity; PublicID is
// the identifier exposed to receivers in delivered payloads.
type Webhook struct {
	ID        uuid.UUID `json:"id"`
	PublicID  uuid.UUID `json:"public_id"`
	URL       string    `json:"url"`
	Active    bool      `json:"active"`
	Topics    []string  `json:"topics"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SubscribedTo reports whether the webhook subscribes to topic.
func (w *Webhook) SubscribedTo(topic string) bool {
	for _, t := range w.Topics {
		if t == topic {
			return true
		}
	}
	return false
}

// Subscriber is the minimal identity pair resolved for dispatch targeting.
type Subscriber struct {
	ID       uuid.UUID `json:"id"`
	PublicID uuid.UUID `json:"public_id"`
}

// Secret is the single live shared-secret token for one webhook.
type Secret struct {
	ID        uuid.UUID `json:"id"`
	WebhookID uuid.UUID `json:"webhook_id"`
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"created_at"`
}
