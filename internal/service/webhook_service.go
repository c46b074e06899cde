package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"webhook-gateway/internal/core/domain"
	"webhook-gateway/internal/core/ports"
	"webhook-gateway/internal/registry"
	"webhook-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// TestTopic is the built-in topic used by TestFire. The gateway registers an
// identity handler for it at startup.
const TestTopic = "webhook.test"

// WebhookManagementService implements ports.WebhookManager: the thin
// administrative layer around the store, plus topic catalog reconciliation.
type WebhookManagementService struct {
	webhookRepo ports.WebhookRepository
	topicRepo   ports.TopicRepository
	registry    *registry.Registry
	secretSvc   ports.SecretService
	dispatcher  ports.Dispatcher
	transport   ports.Transport
	log         zerolog.Logger
}

// NewWebhookManagementService creates a new WebhookManagementService.
func NewWebhookManagementService(
	webhookRepo ports.WebhookRepository,
	topicRepo ports.TopicRepository,
	reg *registry.Registry,
	secretSvc ports.SecretService,
	dispatcher ports.Dispatcher,
	transport ports.Transport,
	log zerolog.Logger,
) *WebhookManagementService {
	return &WebhookManagementService{
		webhookRepo: webhookRepo,
		topicRepo:   topicRepo,
		registry:    reg,
		secretSvc:   secretSvc,
		dispatcher:  dispatcher,
		transport:   transport,
		log:         log,
	}
}

// Create registers a new webhook subscribed to the given topics and issues
// its initial secret.
func (s *WebhookManagementService) Create(ctx context.Context, in ports.WebhookInput) (*domain.Webhook, error) {
	if err := s.validateTopics(in.Topics); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	webhook := &domain.Webhook{
		ID:        uuid.New(),
		PublicID:  uuid.New(),
		URL:       in.URL,
		Active:    true,
		Topics:    in.Topics,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if in.Active != nil {
		webhook.Active = *in.Active
	}

	if err := s.webhookRepo.Create(ctx, webhook); err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}

	if _, err := s.secretSvc.Generate(ctx, webhook.ID, 0); err != nil {
		s.log.Error().Err(err).Str("webhook_id", webhook.ID.String()).Msg("initial secret generation failed")
		return nil, err
	}

	s.log.Info().
		Str("webhook_uuid", webhook.PublicID.String()).
		Str("url", webhook.URL).
		Strs("topics", webhook.Topics).
		Msg("webhook created")
	return webhook, nil
}

// Update modifies URL, topics, or the active flag of an existing webhook.
func (s *WebhookManagementService) Update(ctx context.Context, publicID uuid.UUID, in ports.WebhookInput) (*domain.Webhook, error) {
	webhook, err := s.webhookRepo.FindByPublicID(ctx, publicID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if webhook == nil {
		return nil, apperror.ErrWebhookNotFound()
	}

	if in.URL != "" {
		webhook.URL = in.URL
	}
	if in.Topics != nil {
		if err := s.validateTopics(in.Topics); err != nil {
			return nil, err
		}
		webhook.Topics = in.Topics
	}
	if in.Active != nil {
		webhook.Active = *in.Active
	}
	webhook.UpdatedAt = time.Now().UTC()

	if err := s.webhookRepo.Update(ctx, webhook); err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}

	s.log.Info().Str("webhook_uuid", publicID.String()).Msg("webhook updated")
	return webhook, nil
}

// Delete removes a webhook and (via the store's cascade) its secrets and events.
func (s *WebhookManagementService) Delete(ctx context.Context, publicID uuid.UUID) error {
	webhook, err := s.webhookRepo.FindByPublicID(ctx, publicID)
	if err != nil {
		return apperror.ErrDatabaseError(err)
	}
	if webhook == nil {
		return apperror.ErrWebhookNotFound()
	}
	if err := s.webhookRepo.Delete(ctx, webhook.ID); err != nil {
		return apperror.ErrDatabaseError(err)
	}
	s.log.Info().Str("webhook_uuid", publicID.String()).Msg("webhook deleted")
	return nil
}

// Get fetches a webhook by its public identifier.
func (s *WebhookManagementService) Get(ctx context.Context, publicID uuid.UUID) (*domain.Webhook, error) {
	webhook, err := s.webhookRepo.FindByPublicID(ctx, publicID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if webhook == nil {
		return nil, apperror.ErrWebhookNotFound()
	}
	return webhook, nil
}

// List returns webhooks, optionally filtered to active ones.
func (s *WebhookManagementService) List(ctx context.Context, activeOnly bool) ([]domain.Webhook, error) {
	webhooks, err := s.webhookRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	return webhooks, nil
}

// BulkCreate creates many webhooks, continuing past individual failures.
func (s *WebhookManagementService) BulkCreate(ctx context.Context, ins []ports.WebhookInput) ports.BulkResult {
	var result ports.BulkResult
	for i, in := range ins {
		if _, err := s.Create(ctx, in); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("item %d: %v", i, err))
			continue
		}
		result.Succeeded++
	}
	return result
}

// BulkUpdate applies one set of changes to many webhooks, continuing past
// individual failures.
func (s *WebhookManagementService) BulkUpdate(ctx context.Context, publicIDs []uuid.UUID, in ports.WebhookInput) ports.BulkResult {
	var result ports.BulkResult
	for _, id := range publicIDs {
		if _, err := s.Update(ctx, id, in); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", id, err))
			continue
		}
		result.Succeeded++
	}
	return result
}

// BulkDelete deletes many webhooks, continuing past individual failures.
func (s *WebhookManagementService) BulkDelete(ctx context.Context, publicIDs []uuid.UUID) ports.BulkResult {
	var result ports.BulkResult
	for _, id := range publicIDs {
		if err := s.Delete(ctx, id); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", id, err))
			continue
		}
		result.Succeeded++
	}
	return result
}

// ReconcileTopics mirrors the registry's key set into the persisted topic
// catalog. After it runs the catalog equals the set of registered topics.
func (s *WebhookManagementService) ReconcileTopics(ctx context.Context) error {
	registered := make(map[string]bool)
	for _, name := range s.registry.Topics() {
		registered[name] = true
	}

	stored, err := s.topicRepo.List(ctx)
	if err != nil {
		return apperror.ErrDatabaseError(err)
	}
	storedSet := make(map[string]bool, len(stored))
	for _, name := range stored {
		storedSet[name] = true
	}

	var removed, created int
	for _, name := range stored {
		if !registered[name] {
			if err := s.topicRepo.Delete(ctx, name); err != nil {
				return apperror.ErrDatabaseError(err)
			}
			removed++
		}
	}
	for name := range registered {
		if !storedSet[name] {
			if err := s.topicRepo.Create(ctx, name); err != nil {
				return apperror.ErrDatabaseError(err)
			}
			created++
		}
	}

	s.log.Info().Int("created", created).Int("removed", removed).Msg("topic catalog reconciled")
	return nil
}

// ValidateURL probes the endpoint with a HEAD request. Reachable means any
// response below the server-error threshold.
func (s *WebhookManagementService) ValidateURL(ctx context.Context, url string) bool {
	code, err := s.transport.Head(ctx, url)
	if err != nil {
		return false
	}
	return code < serverErrorThreshold
}

// TestFire dispatches a synthetic webhook.test event at exactly one webhook.
func (s *WebhookManagementService) TestFire(ctx context.Context, publicID uuid.UUID, data map[string]any) error {
	if data == nil {
		data = map[string]any{
			"test":      true,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"message":   "This is a test webhook event",
		}
	}
	return s.dispatcher.Dispatch(ctx, TestTopic, data, &publicID)
}

// validateTopics rejects topic names with no registered handler.
func (s *WebhookManagementService) validateTopics(topics []string) error {
	registered := make(map[string]bool)
	for _, name := range s.registry.Topics() {
		registered[name] = true
	}

	var invalid []string
	for _, name := range topics {
		if !registered[name] {
			invalid = append(invalid, name)
		}
	}
	if len(invalid) > 0 {
		return apperror.Validation(fmt.Sprintf("invalid topics: %s", strings.Join(invalid, ", ")))
	}
	return nil
}
