package service

import (
	"context"
	"math"
	"time"

	"webhook-gateway/internal/core/domain"
	"webhook-gateway/internal/core/ports"
	"webhook-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// EventHealthService implements ports.HealthService: rolling delivery stats,
// health classification, and event retention cleanup.
type EventHealthService struct {
	webhookRepo          ports.WebhookRepository
	eventRepo            ports.EventRepository
	defaultRetentionDays int
	log                  zerolog.Logger
}

// NewEventHealthService creates a new EventHealthService.
func NewEventHealthService(
	webhookRepo ports.WebhookRepository,
	eventRepo ports.EventRepository,
	defaultRetentionDays int,
	log zerolog.Logger,
) *EventHealthService {
	return &EventHealthService{
		webhookRepo:          webhookRepo,
		eventRepo:            eventRepo,
		defaultRetentionDays: defaultRetentionDays,
		log:                  log,
	}
}

// GetEventStats aggregates delivery outcomes over the trailing windowDays.
func (s *EventHealthService) GetEventStats(ctx context.Context, webhookID uuid.UUID, windowDays int) (domain.EventStats, error) {
	since := time.Now().UTC().AddDate(0, 0, -windowDays)
	stats, err := s.eventRepo.StatsByWebhook(ctx, webhookID, since)
	if err != nil {
		return domain.EventStats{}, apperror.ErrDatabaseError(err)
	}
	return stats, nil
}

// GetWebhookHealth classifies a webhook's delivery health. Unlike
// GetEventStats, the window is fixed at 7 days regardless of what callers
// request elsewhere.
func (s *EventHealthService) GetWebhookHealth(ctx context.Context, webhookID uuid.UUID) (*domain.HealthReport, error) {
	webhook, err := s.webhookRepo.FindByID(ctx, webhookID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if webhook == nil {
		return nil, apperror.ErrWebhookNotFound()
	}

	stats, err := s.GetEventStats(ctx, webhookID, domain.HealthWindowDays)
	if err != nil {
		return nil, err
	}

	rate := stats.SuccessRate()
	report := &domain.HealthReport{
		WebhookID:   webhook.PublicID,
		URL:         webhook.URL,
		Active:      webhook.Active,
		Status:      domain.ClassifyHealth(rate),
		SuccessRate: math.Round(rate*100) / 100,
		Stats:       stats,
	}

	events, err := s.eventRepo.ListByWebhook(ctx, webhookID, 1)
	if err == nil && len(events) > 0 {
		report.LastEventAt = &events[0].CreatedAt
	}

	return report, nil
}

// Cleanup purges events older than retentionDays (0 = configured default)
// and returns the number deleted.
func (s *EventHealthService) Cleanup(ctx context.Context, retentionDays int) (int64, error) {
	if retentionDays == 0 {
		retentionDays = s.defaultRetentionDays
	}
	if retentionDays < 0 {
		return 0, apperror.Validation("retention days must not be negative")
	}

	cutoff := time.Now().UTC().AddDate(0, 0, -retentionDays)
	deleted, err := s.eventRepo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, apperror.ErrDatabaseError(err)
	}

	s.log.Info().Int64("deleted", deleted).Int("retention_days", retentionDays).Msg("event retention cleanup completed")
	return deleted, nil
}
