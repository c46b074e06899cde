package postgres

import (
	"context"
	"errors"
	"fmt"

	"webhook-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SecretRepo implements ports.SecretRepository.
type SecretRepo struct {
	pool Pool
}

// NewSecretRepo creates a new SecretRepo.
func NewSecretRepo(pool Pool) *SecretRepo {
	return &SecretRepo{pool: pool}
}

// Replace deletes any existing secrets for the webhook and inserts the new
// one inside a single transaction. Concurrent readers see either the old
// secret or the new one, never both and never none.
func (r *SecretRepo) Replace(ctx context.Context, s *domain.Secret) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin secret replace: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM webhook_secrets WHERE webhook_id=$1`, s.WebhookID); err != nil {
		return fmt.Errorf("delete old secrets: %w", err)
	}

	query := `INSERT INTO webhook_secrets (id, webhook_id, token, created_at)
		VALUES ($1, $2, $3, $4)`
	if _, err := tx.Exec(ctx, query, s.ID, s.WebhookID, s.Token, s.CreatedAt); err != nil {
		return fmt.Errorf("insert secret: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit secret replace: %w", err)
	}
	return nil
}

// GetActive returns the webhook's current secret, or nil when none exists.
func (r *SecretRepo) GetActive(ctx context.Context, webhookID uuid.UUID) (*domain.Secret, error) {
	query := `SELECT id, webhook_id, token, created_at
		FROM webhook_secrets WHERE webhook_id = $1`

	s := &domain.Secret{}
	err := r.pool.QueryRow(ctx, query, webhookID).Scan(&s.ID, &s.WebhookID, &s.Token, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get active secret: %w", err)
	}
	return s, nil
}
