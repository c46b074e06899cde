package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Envelope is the in-flight delivery unit built fresh per (topic, subscriber)
// pair. The wire shape is fixed: receivers depend on these field names and on
// timestamp being epoch seconds as a float.
type Envelope struct {
	Object      any     `json:"object"`
	Topic       string  `json:"topic"`
	Timestamp   float64 `json:"timestamp"`
	WebhookUUID string  `json:"webhook_uuid"`
}

// NewEnvelope stamps an envelope for one subscriber with the current time.
func NewEnvelope(topic string, body any, publicID uuid.UUID) Envelope {
	return Envelope{
		Object:      body,
		Topic:       topic,
		Timestamp:   float64(time.Now().UnixNano()) / float64(time.Second),
		WebhookUUID: publicID.String(),
	}
}

// Marshal serializes the envelope for transport and for the event record.
func (e Envelope) Marshal() (string, error) {
	b, err := json.Marshal(e)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DeliveryJob is the queued unit consumed by the delivery worker.
type DeliveryJob struct {
	WebhookID uuid.UUID `json:"webhook_id"`
	Payload   string    `json:"payload"`
	Topic     string    `json:"topic"`
}
