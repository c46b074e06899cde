package postgres

import (
	"context"
	"errors"
	"fmt"

	"webhook-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// WebhookRepo implements ports.WebhookRepository.
type WebhookRepo struct {
	pool Pool
}

// NewWebhookRepo creates a new WebhookRepo.
func NewWebhookRepo(pool Pool) *WebhookRepo {
	return &WebhookRepo{pool: pool}
}

// Create inserts a new webhook into the database.
func (r *WebhookRepo) Create(ctx context.Context, w *domain.Webhook) error {
	query := `INSERT INTO webhooks (id, public_id, url, active, topics, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, query,
		w.ID, w.PublicID, w.URL, w.Active, w.Topics, w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert webhook: %w", err)
	}
	return nil
}

// Update updates a webhook record.
func (r *WebhookRepo) Update(ctx context.Context, w *domain.Webhook) error {
	query := `UPDATE webhooks
		SET url=$1, active=$2, topics=$3, updated_at=$4
		WHERE id=$5`

	_, err := r.pool.Exec(ctx, query, w.URL, w.Active, w.Topics, w.UpdatedAt, w.ID)
	if err != nil {
		return fmt.Errorf("update webhook: %w", err)
	}
	return nil
}

// Delete removes a webhook. Secrets and events go with it via ON DELETE CASCADE.
func (r *WebhookRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM webhooks WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete webhook: %w", err)
	}
	return nil
}

// FindByID fetches a webhook by its internal UUID.
func (r *WebhookRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Webhook, error) {
	query := `SELECT id, public_id, url, active, topics, created_at, updated_at
		FROM webhooks WHERE id = $1`
	return r.scanOne(r.pool.QueryRow(ctx, query, id), "id")
}

// FindByPublicID fetches a webhook by its public UUID, the identifier
// receivers and delivery jobs carry.
func (r *WebhookRepo) FindByPublicID(ctx context.Context, publicID uuid.UUID) (*domain.Webhook, error) {
	query := `SELECT id, public_id, url, active, topics, created_at, updated_at
		FROM webhooks WHERE public_id = $1`
	return r.scanOne(r.pool.QueryRow(ctx, query, publicID), "public_id")
}

// FindActiveByTopic returns identifiers of active webhooks subscribed to
// topic, ordered by creation time.
func (r *WebhookRepo) FindActiveByTopic(ctx context.Context, topic string) ([]domain.Subscriber, error) {
	query := `SELECT id, public_id FROM webhooks
		WHERE active = TRUE AND $1 = ANY(topics)
		ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, topic)
	if err != nil {
		return nil, fmt.Errorf("find active webhooks by topic: %w", err)
	}
	defer rows.Close()

	var subs []domain.Subscriber
	for rows.Next() {
		var s domain.Subscriber
		if err := rows.Scan(&s.ID, &s.PublicID); err != nil {
			return nil, fmt.Errorf("scan subscriber: %w", err)
		}
		subs = append(subs, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate subscribers: %w", err)
	}
	return subs, nil
}

// List returns all webhooks, optionally only active ones.
func (r *WebhookRepo) List(ctx context.Context, activeOnly bool) ([]domain.Webhook, error) {
	query := `SELECT id, public_id, url, active, topics, created_at, updated_at
		FROM webhooks`
	if activeOnly {
		query += ` WHERE active = TRUE`
	}
	query += ` ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list webhooks: %w", err)
	}
	defer rows.Close()

	var webhooks []domain.Webhook
	for rows.Next() {
		var w domain.Webhook
		if err := rows.Scan(&w.ID, &w.PublicID, &w.URL, &w.Active, &w.Topics, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan webhook: %w", err)
		}
		webhooks = append(webhooks, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate webhooks: %w", err)
	}
	return webhooks, nil
}

func (r *WebhookRepo) scanOne(row pgx.Row, by string) (*domain.Webhook, error) {
	w := &domain.Webhook{}
	err := row.Scan(&w.ID, &w.PublicID, &w.URL, &w.Active, &w.Topics, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get webhook by %s: %w", by, err)
	}
	return w, nil
}
