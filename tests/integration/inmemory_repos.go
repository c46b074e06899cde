package integration

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"webhook-gateway/internal/core/domain"

	"github.com/google/uuid"
)

// --- In-Memory Webhook Repo ---

type inMemoryWebhookRepo struct {
	mu       sync.RWMutex
	webhooks map[uuid.UUID]*domain.Webhook
}

func newInMemoryWebhookRepo() *inMemoryWebhookRepo {
	return &inMemoryWebhookRepo{webhooks: make(map[uuid.UUID]*domain.Webhook)}
}

func (r *inMemoryWebhookRepo) Create(ctx context.Context, w *domain.Webhook) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *w
	r.webhooks[w.ID] = &cp
	return nil
}

func (r *inMemoryWebhookRepo) Update(ctx context.Context, w *domain.Webhook) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.webhooks[w.ID]; !ok {
		return fmt.Errorf("webhook not found")
	}
	cp := *w
	r.webhooks[w.ID] = &cp
	return nil
}

func (r *inMemoryWebhookRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.webhooks[id]; !ok {
		return fmt.Errorf("webhook not found")
	}
	delete(r.webhooks, id)
	return nil
}

func (r *inMemoryWebhookRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Webhook, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.webhooks[id]
	if !ok {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}

func (r *inMemoryWebhookRepo) FindByPublicID(ctx context.Context, publicID uuid.UUID) (*domain.Webhook, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, w := range r.webhooks {
		if w.PublicID == publicID {
			cp := *w
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryWebhookRepo) FindActiveByTopic(ctx context.Context, topic string) ([]domain.Subscriber, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var ordered []*domain.Webhook
	for _, w := range r.webhooks {
		if w.Active && w.SubscribedTo(topic) {
			ordered = append(ordered, w)
		}
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].CreatedAt.Before(ordered[j].CreatedAt) })
	subs := make([]domain.Subscriber, 0, len(ordered))
	for _, w := range ordered {
		subs = append(subs, domain.Subscriber{ID: w.ID, PublicID: w.PublicID})
	}
	return subs, nil
}

func (r *inMemoryWebhookRepo) List(ctx context.Context, activeOnly bool) ([]domain.Webhook, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Webhook
	for _, w := range r.webhooks {
		if activeOnly && !w.Active {
			continue
		}
		out = append(out, *w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// --- In-Memory Secret Repo ---

type inMemorySecretRepo struct {
	mu      sync.RWMutex
	secrets map[uuid.UUID]*domain.Secret // keyed by webhook ID
}

func newInMemorySecretRepo() *inMemorySecretRepo {
	return &inMemorySecretRepo{secrets: make(map[uuid.UUID]*domain.Secret)}
}

func (r *inMemorySecretRepo) Replace(ctx context.Context, s *domain.Secret) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *s
	r.secrets[s.WebhookID] = &cp
	return nil
}

func (r *inMemorySecretRepo) GetActive(ctx context.Context, webhookID uuid.UUID) (*domain.Secret, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.secrets[webhookID]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

// --- In-Memory Event Repo ---

type inMemoryEventRepo struct {
	mu     sync.RWMutex
	events map[uuid.UUID]*domain.Event
}

func newInMemoryEventRepo() *inMemoryEventRepo {
	return &inMemoryEventRepo{events: make(map[uuid.UUID]*domain.Event)}
}

func (r *inMemoryEventRepo) Create(ctx context.Context, e *domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *e
	r.events[e.ID] = &cp
	return nil
}

func (r *inMemoryEventRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.EventStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.events[id]
	if !ok {
		return fmt.Errorf("event not found")
	}
	e.Status = status
	return nil
}

func (r *inMemoryEventRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.events[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *inMemoryEventRepo) ListByWebhook(ctx context.Context, webhookID uuid.UUID, limit int) ([]domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Event
	for _, e := range r.events {
		if e.WebhookID == webhookID {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *inMemoryEventRepo) StatsByWebhook(ctx context.Context, webhookID uuid.UUID, since time.Time) (domain.EventStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var stats domain.EventStats
	for _, e := range r.events {
		if e.WebhookID != webhookID || e.CreatedAt.Before(since) {
			continue
		}
		stats.Total++
		switch e.Status {
		case domain.EventStatusSuccess:
			stats.Success++
		case domain.EventStatusFailure:
			stats.Failed++
		case domain.EventStatusPending:
			stats.Pending++
		}
	}
	return stats, nil
}

func (r *inMemoryEventRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var deleted int64
	for id, e := range r.events {
		if e.CreatedAt.Before(cutoff) {
			delete(r.events, id)
			deleted++
		}
	}
	return deleted, nil
}

// --- In-Memory Topic Repo ---

type inMemoryTopicRepo struct {
	mu     sync.RWMutex
	topics map[string]bool
}

func newInMemoryTopicRepo() *inMemoryTopicRepo {
	return &inMemoryTopicRepo{topics: make(map[string]bool)}
}

func (r *inMemoryTopicRepo) List(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.topics))
	for name := range r.topics {
		out = append(out, name)
	}
	sort.Strings(out)
	return out, nil
}

func (r *inMemoryTopicRepo) Create(ctx context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.topics[name] = true
	return nil
}

func (r *inMemoryTopicRepo) Delete(ctx context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.topics, name)
	return nil
}
