package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventStatus represents the terminal (or pending) state of one delivery attempt.
type EventStatus string

const (
	EventStatusPending EventStatus = "PENDING"
	EventStatusSuccess EventStatus = "SUCCESS"
	EventStatusFailure EventStatus = "FAILURE"
)

// Event is the durable audit record of one delivery attempt. Created by the
// delivery worker, its status is written exactly once after the outbound call
// and the record is removed only by the retention sweep.
type Event struct {
	ID        uuid.UUID   `json:"id"`
	WebhookID uuid.UUID   `json:"webhook_id"`
	Topic     string      `json:"topic"`
	Payload   string      `json:"payload"` // serialized envelope JSON
	Status    EventStatus `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
}

// EventStats aggregates delivery outcomes over a trailing window.
type EventStats struct {
	Total   int64 `json:"total"`
	Success int64 `json:"success"`
	Failed  int64 `json:"failed"`
	Pending int64 `json:"pending"`
}

// SuccessRate returns success/total as a percentage, 0 when no events exist.
func (s EventStats) SuccessRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Success) / float64(s.Total) * 100
}

// Health classification thresholds, evaluated over a fixed 7-day window.
const (
	HealthStatusHealthy   = "healthy"
	HealthStatusWarning   = "warning"
	HealthStatusUnhealthy = "unhealthy"

	HealthWindowDays = 7
)

// ClassifyHealth maps a success rate to a health status.
func ClassifyHealth(successRate float64) string {
	switch {
	case successRate >= 95:
		return HealthStatusHealthy
	case successRate >= 80:
		return HealthStatusWarning
	default:
		return HealthStatusUnhealthy
	}
}

// HealthReport describes one webhook's delivery health.
type HealthReport struct {
	WebhookID   uuid.UUID  `json:"webhook_id"`
	URL         string     `json:"url"`
	Active      bool       `json:"active"`
	Status      string     `json:"health_status"`
	SuccessRate float64    `json:"success_rate"`
	Stats       EventStats `json:"events_last_7_days"`
	LastEventAt *time.Time `json:"last_event,omitempty"`
}
