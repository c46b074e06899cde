package service

import (
	"context"
	"fmt"
	"time"

	"webhook-gateway/config"
	"webhook-gateway/internal/core/domain"
	"webhook-gateway/internal/core/ports"
	"webhook-gateway/internal/registry"
	"webhook-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DispatchService implements ports.Dispatcher. It validates the topic,
// invokes the handler, resolves targets, and either schedules asynchronous
// delivery jobs (live mode) or echoes envelopes to the log (diagnostic mode).
type DispatchService struct {
	registry      *registry.Registry
	resolver      ports.SubscriberResolver
	scheduler     ports.JobScheduler
	mode          string
	lookupTimeout time.Duration
	log           zerolog.Logger
}

// NewDispatchService creates a new DispatchService.
func NewDispatchService(
	reg *registry.Registry,
	resolver ports.SubscriberResolver,
	scheduler ports.JobScheduler,
	cfg config.WebhookConfig,
	log zerolog.Logger,
) *DispatchService {
	return &DispatchService{
		registry:      reg,
		resolver:      resolver,
		scheduler:     scheduler,
		mode:          cfg.Mode,
		lookupTimeout: cfg.LookupTimeout,
		log:           log,
	}
}

// Dispatch broadcasts one occurrence of topic to its subscribers, or to the
// single webhook identified by targetID when given. Delivery outcomes are
// observed later through event records, never through this call's result.
func (s *DispatchService) Dispatch(ctx context.Context, topic string, data map[string]any, targetID *uuid.UUID) error {
	handler, ok := s.registry.Resolve(topic)
	if !ok {
		return apperror.ErrTopicNotFound(topic)
	}

	body, err := invokeHandler(handler, data)
	if err != nil {
		s.log.Error().Err(err).Str("topic", topic).Msg("handler invocation failed, dispatch aborted")
		return err
	}
	if !validPayloadBody(body) {
		s.log.Error().Str("topic", topic).Msgf("handler returned %T, dispatch aborted", body)
		return apperror.ErrInvalidPayloadType()
	}

	var targets []domain.Subscriber
	if targetID != nil {
		// Explicit target: no existence check here, the delivery worker
		// resolves (and rejects) unknown or inactive webhooks.
		targets = []domain.Subscriber{{PublicID: *targetID}}
	} else {
		lookupCtx, cancel := context.WithTimeout(ctx, s.lookupTimeout)
		defer cancel()
		targets, err = s.resolver.ResolveSubscribers(lookupCtx, topic)
		if err != nil {
			return apperror.ErrDatabaseError(err)
		}
	}

	// Each subscriber's job is an independent unit: a scheduling failure for
	// one does not roll back jobs already scheduled for others.
	var firstErr error
	for _, target := range targets {
		envelope := domain.NewEnvelope(topic, body, target.PublicID)
		payload, err := envelope.Marshal()
		if err != nil {
			s.log.Error().Err(err).Str("topic", topic).Msg("envelope serialization failed")
			if firstErr == nil {
				firstErr = apperror.InternalError(err)
			}
			continue
		}

		if s.mode != config.ModeLive {
			s.echoEnvelope(envelope, payload)
			continue
		}

		job := domain.DeliveryJob{
			WebhookID: target.PublicID,
			Payload:   payload,
			Topic:     topic,
		}
		if err := s.scheduler.Schedule(ctx, job); err != nil {
			s.log.Error().Err(err).
				Str("topic", topic).
				Str("webhook_uuid", target.PublicID.String()).
				Msg("failed to schedule delivery job")
			if firstErr == nil {
				firstErr = apperror.ErrQueueError(err)
			}
		}
	}

	return firstErr
}

// echoEnvelope is the diagnostic-mode sink: no network call, the envelope is
// written synchronously to the log for local development.
func (s *DispatchService) echoEnvelope(envelope domain.Envelope, payload string) {
	s.log.Info().
		Str("mode", config.ModeDiagnostic).
		Str("topic", envelope.Topic).
		Str("webhook_uuid", envelope.WebhookUUID).
		Float64("timestamp", envelope.Timestamp).
		RawJSON("envelope", []byte(payload)).
		Msg("webhook fired")
}

// invokeHandler isolates handler panics so a misbehaving handler fails the
// dispatch call instead of the process.
func invokeHandler(h registry.Handler, data map[string]any) (body any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = apperror.InternalError(fmt.Errorf("handler panic: %v", r))
		}
	}()
	return h(data), nil
}

// validPayloadBody enforces the handler contract: nil, string, or map.
func validPayloadBody(body any) bool {
	switch body.(type) {
	case nil, string, map[string]any:
		return true
	default:
		return false
	}
}
