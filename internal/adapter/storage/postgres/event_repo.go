package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"webhook-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// EventRepo implements ports.EventRepository.
type EventRepo struct {
	pool Pool
}

// NewEventRepo creates a new EventRepo.
func NewEventRepo(pool Pool) *EventRepo {
	return &EventRepo{pool: pool}
}

// Create inserts a delivery event record.
func (r *EventRepo) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO webhook_events (id, webhook_id, topic, payload, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.pool.Exec(ctx, query, e.ID, e.WebhookID, e.Topic, e.Payload, e.Status, e.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

// UpdateStatus sets the outcome of an event.
func (r *EventRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.EventStatus) error {
	_, err := r.pool.Exec(ctx, `UPDATE webhook_events SET status=$1 WHERE id=$2`, status, id)
	if err != nil {
		return fmt.Errorf("update event status: %w", err)
	}
	return nil
}

// GetByID fetches an event, nil when not found.
func (r *EventRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	query := `SELECT id, webhook_id, topic, payload, status, created_at
		FROM webhook_events WHERE id = $1`

	e := &domain.Event{}
	err := r.pool.QueryRow(ctx, query, id).Scan(&e.ID, &e.WebhookID, &e.Topic, &e.Payload, &e.Status, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get event by id: %w", err)
	}
	return e, nil
}

// ListByWebhook returns the webhook's most recent events, newest first.
func (r *EventRepo) ListByWebhook(ctx context.Context, webhookID uuid.UUID, limit int) ([]domain.Event, error) {
	query := `SELECT id, webhook_id, topic, payload, status, created_at
		FROM webhook_events WHERE webhook_id = $1
		ORDER BY created_at DESC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, webhookID, limit)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		var e domain.Event
		if err := rows.Scan(&e.ID, &e.WebhookID, &e.Topic, &e.Payload, &e.Status, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return events, nil
}

// StatsByWebhook counts events per status created at or after since.
func (r *EventRepo) StatsByWebhook(ctx context.Context, webhookID uuid.UUID, since time.Time) (domain.EventStats, error) {
	query := `SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'SUCCESS'),
			COUNT(*) FILTER (WHERE status = 'FAILURE'),
			COUNT(*) FILTER (WHERE status = 'PENDING')
		FROM webhook_events
		WHERE webhook_id = $1 AND created_at >= $2`

	var stats domain.EventStats
	err := r.pool.QueryRow(ctx, query, webhookID, since).
		Scan(&stats.Total, &stats.Success, &stats.Failed, &stats.Pending)
	if err != nil {
		return domain.EventStats{}, fmt.Errorf("event stats: %w", err)
	}
	return stats, nil
}

// DeleteOlderThan purges events created before cutoff and returns the count.
func (r *EventRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM webhook_events WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("delete old events: %w", err)
	}
	return tag.RowsAffected(), nil
}
