package service

import (
	"context"
	"time"

	"webhook-gateway/config"
	"webhook-gateway/internal/core/domain"
	"webhook-gateway/internal/core/ports"
	"webhook-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Outcomes below this response status are recorded as SUCCESS; server errors
// and transport failures are FAILURE.
const serverErrorThreshold = 500

// DeliveryWorkerService implements ports.DeliveryService. It consumes one
// scheduled job at a time: webhook lookup, signed outbound call, exactly one
// event record with the terminal status. The worker never retries on its own;
// retry is the explicit RetryFailedEvent operation.
type DeliveryWorkerService struct {
	webhookRepo     ports.WebhookRepository
	secretRepo      ports.SecretRepository
	eventRepo       ports.EventRepository
	transport       ports.Transport
	sigSvc          ports.SignatureService
	scheduler       ports.JobScheduler
	signatureHeader string
	deliveryTimeout time.Duration
	log             zerolog.Logger
}

// NewDeliveryWorkerService creates a new DeliveryWorkerService.
func NewDeliveryWorkerService(
	webhookRepo ports.WebhookRepository,
	secretRepo ports.SecretRepository,
	eventRepo ports.EventRepository,
	transport ports.Transport,
	sigSvc ports.SignatureService,
	scheduler ports.JobScheduler,
	cfg config.WebhookConfig,
	log zerolog.Logger,
) *DeliveryWorkerService {
	return &DeliveryWorkerService{
		webhookRepo:     webhookRepo,
		secretRepo:      secretRepo,
		eventRepo:       eventRepo,
		transport:       transport,
		sigSvc:          sigSvc,
		scheduler:       scheduler,
		signatureHeader: cfg.SignatureHeader,
		deliveryTimeout: cfg.DeliveryTimeout,
		log:             log,
	}
}

// HandleJob performs one delivery attempt. A webhook that no longer exists or
// is inactive fails terminally without an event record: there is no valid
// webhook reference to audit against.
func (s *DeliveryWorkerService) HandleJob(ctx context.Context, job domain.DeliveryJob) error {
	webhook, err := s.webhookRepo.FindByPublicID(ctx, job.WebhookID)
	if err != nil {
		s.log.Error().Err(err).Str("webhook_uuid", job.WebhookID.String()).Msg("delivery: webhook lookup failed")
		return apperror.ErrDatabaseError(err)
	}
	if webhook == nil {
		s.log.Warn().Str("webhook_uuid", job.WebhookID.String()).Str("topic", job.Topic).
			Msg("delivery: webhook no longer exists, dropping job")
		return nil
	}
	if !webhook.Active {
		s.log.Warn().Str("webhook_uuid", job.WebhookID.String()).Str("topic", job.Topic).
			Msg("delivery: webhook inactive, dropping job")
		return nil
	}

	headers := map[string]string{}
	secret, err := s.secretRepo.GetActive(ctx, webhook.ID)
	if err != nil {
		s.log.Error().Err(err).Str("webhook_uuid", job.WebhookID.String()).Msg("delivery: secret lookup failed")
	} else if secret != nil {
		headers[s.signatureHeader] = s.sigSvc.Sign(secret.Token, job.Payload)
	}

	// The PENDING record goes in before the outbound call so every attempted
	// delivery leaves an audit trail even if the process dies mid-send.
	event := &domain.Event{
		ID:        uuid.New(),
		WebhookID: webhook.ID,
		Topic:     job.Topic,
		Payload:   job.Payload,
		Status:    domain.EventStatusPending,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		s.log.Error().Err(err).Str("webhook_uuid", job.WebhookID.String()).Msg("delivery: failed to record event")
		return apperror.ErrDatabaseError(err)
	}

	callCtx, cancel := context.WithTimeout(ctx, s.deliveryTimeout)
	defer cancel()

	status := domain.EventStatusSuccess
	code, sendErr := s.transport.Send(callCtx, webhook.URL, []byte(job.Payload), headers)
	if sendErr != nil || code >= serverErrorThreshold {
		status = domain.EventStatusFailure
	}

	if err := s.eventRepo.UpdateStatus(ctx, event.ID, status); err != nil {
		s.log.Error().Err(err).Str("event_id", event.ID.String()).Msg("delivery: failed to finalize event status")
		return apperror.ErrDatabaseError(err)
	}
	event.Status = status

	logEvent := s.log.Info()
	if status == domain.EventStatusFailure {
		logEvent = s.log.Warn().AnErr("send_error", sendErr)
	}
	logEvent.
		Str("topic", job.Topic).
		Str("webhook_uuid", job.WebhookID.String()).
		Str("event_id", event.ID.String()).
		Int("status_code", code).
		Str("status", string(status)).
		Msg("delivery: attempt recorded")

	return nil
}

// RetryFailedEvent re-schedules the original payload of a failed event to its
// original webhook. Preconditions: the event's current status is FAILURE and
// the webhook is still active; a violation is a validation error, never a
// silent retry.
func (s *DeliveryWorkerService) RetryFailedEvent(ctx context.Context, eventID uuid.UUID) error {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return apperror.ErrDatabaseError(err)
	}
	if event == nil {
		return apperror.ErrEventNotFound()
	}
	if event.Status != domain.EventStatusFailure {
		return apperror.ErrEventNotRetryable()
	}

	webhook, err := s.webhookRepo.FindByID(ctx, event.WebhookID)
	if err != nil {
		return apperror.ErrDatabaseError(err)
	}
	if webhook == nil {
		return apperror.ErrWebhookNotFound()
	}
	if !webhook.Active {
		return apperror.ErrWebhookInactive()
	}

	job := domain.DeliveryJob{
		WebhookID: webhook.PublicID,
		Payload:   event.Payload,
		Topic:     event.Topic,
	}
	if err := s.scheduler.Schedule(ctx, job); err != nil {
		return apperror.ErrQueueError(err)
	}

	s.log.Info().
		Str("event_id", eventID.String()).
		Str("webhook_uuid", webhook.PublicID.String()).
		Str("topic", event.Topic).
		Msg("failed event re-scheduled")
	return nil
}
