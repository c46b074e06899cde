package postgres

import (
	"context"
	"fmt"
)

// TopicRepo implements ports.TopicRepository, backing the persisted topic
// catalog the registry is reconciled against at startup.
type TopicRepo struct {
	pool Pool
}

// NewTopicRepo creates a new TopicRepo.
func NewTopicRepo(pool Pool) *TopicRepo {
	return &TopicRepo{pool: pool}
}

// List returns all catalog topic names.
func (r *TopicRepo) List(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT name FROM webhook_topics ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan topic: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate topics: %w", err)
	}
	return names, nil
}

// Create adds a topic to the catalog. Idempotent.
func (r *TopicRepo) Create(ctx context.Context, name string) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO webhook_topics (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, name)
	if err != nil {
		return fmt.Errorf("insert topic: %w", err)
	}
	return nil
}

// Delete removes a topic from the catalog.
func (r *TopicRepo) Delete(ctx context.Context, name string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM webhook_topics WHERE name=$1`, name)
	if err != nil {
		return fmt.Errorf("delete topic: %w", err)
	}
	return nil
}
