package service

import (
	"context"
	"crypto/hmac"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"webhook-gateway/internal/core/domain"
	"webhook-gateway/internal/core/ports"
	"webhook-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	minSecretLength = 16
	maxSecretLength = 64
)

// WebhookSecretService implements ports.SecretService. Each webhook carries
// at most one live secret; generation replaces any previous secret in the
// same store transaction, so no overlap window exists.
type WebhookSecretService struct {
	secretRepo    ports.SecretRepository
	defaultLength int
	log           zerolog.Logger
}

// NewWebhookSecretService creates a new WebhookSecretService.
func NewWebhookSecretService(secretRepo ports.SecretRepository, defaultLength int, log zerolog.Logger) *WebhookSecretService {
	return &WebhookSecretService{
		secretRepo:    secretRepo,
		defaultLength: defaultLength,
		log:           log,
	}
}

// Generate creates a cryptographically random URL-safe token of length random
// bytes (0 = configured default, bounded 16-64) and atomically replaces the
// webhook's existing secret.
func (s *WebhookSecretService) Generate(ctx context.Context, webhookID uuid.UUID, length int) (*domain.Secret, error) {
	if length == 0 {
		length = s.defaultLength
	}
	if length < minSecretLength || length > maxSecretLength {
		return nil, apperror.ErrInvalidSecretLength()
	}

	token, err := randomToken(length)
	if err != nil {
		return nil, apperror.InternalError(err)
	}

	secret := &domain.Secret{
		ID:        uuid.New(),
		WebhookID: webhookID,
		Token:     token,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.secretRepo.Replace(ctx, secret); err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}

	s.log.Info().Str("webhook_id", webhookID.String()).Msg("webhook secret generated")
	return secret, nil
}

// GetActive returns the webhook's current secret, or nil when none exists.
func (s *WebhookSecretService) GetActive(ctx context.Context, webhookID uuid.UUID) (*domain.Secret, error) {
	secret, err := s.secretRepo.GetActive(ctx, webhookID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	return secret, nil
}

// Validate reports whether candidate equals the webhook's active secret. The
// comparison is constant-time to resist timing attacks.
func (s *WebhookSecretService) Validate(ctx context.Context, webhookID uuid.UUID, candidate string) (bool, error) {
	secret, err := s.secretRepo.GetActive(ctx, webhookID)
	if err != nil {
		return false, apperror.ErrDatabaseError(err)
	}
	if secret == nil {
		return false, nil
	}
	return hmac.Equal([]byte(secret.Token), []byte(candidate)), nil
}

// Rotate replaces the webhook's secret with a fresh default-length token. It
// is Generate with the default length, same atomicity guarantee.
func (s *WebhookSecretService) Rotate(ctx context.Context, webhookID uuid.UUID) (*domain.Secret, error) {
	return s.Generate(ctx, webhookID, 0)
}

// randomToken returns a URL-safe base64 encoding of n random bytes.
func randomToken(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("reading random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
