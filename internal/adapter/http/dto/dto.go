package dto

// CreateWebhookRequest is the request body for webhook registration.
type CreateWebhookRequest struct {
	URL    string   `json:"url" binding:"required,safe_url"`
	Topics []string `json:"topics" binding:"required,min=1,dive,topic_name"`
	Active *bool    `json:"active,omitempty"`
}

// UpdateWebhookRequest is the request body for webhook updates. All fields
// are optional; absent fields are left unchanged.
type UpdateWebhookRequest struct {
	URL    string   `json:"url,omitempty" binding:"omitempty,safe_url"`
	Topics []string `json:"topics,omitempty" binding:"omitempty,min=1,dive,topic_name"`
	Active *bool    `json:"active,omitempty"`
}

// BulkCreateRequest carries multiple webhook registrations.
type BulkCreateRequest struct {
	Webhooks []CreateWebhookRequest `json:"webhooks" binding:"required,min=1,max=100,dive"`
}

// BulkUpdateRequest applies one set of changes to many webhooks.
type BulkUpdateRequest struct {
	IDs     []string             `json:"ids" binding:"required,min=1,max=100,dive,uuid"`
	Updates UpdateWebhookRequest `json:"updates" binding:"required"`
}

// BulkDeleteRequest carries the public IDs of webhooks to delete.
type BulkDeleteRequest struct {
	IDs []string `json:"ids" binding:"required,min=1,max=100,dive,uuid"`
}

// DispatchRequest is the request body for firing an event.
type DispatchRequest struct {
	Topic string         `json:"topic" binding:"required,topic_name"`
	Data  map[string]any `json:"data" binding:"required"`
	// WebhookID, when set, targets exactly one webhook instead of all
	// subscribers of the topic.
	WebhookID *string `json:"webhook_id,omitempty" binding:"omitempty,uuid"`
}

// TestFireRequest is the optional request body for test deliveries.
type TestFireRequest struct {
	Data map[string]any `json:"data,omitempty"`
}

// ValidateURLRequest is the request body for endpoint reachability probes.
type ValidateURLRequest struct {
	URL string `json:"url" binding:"required,safe_url"`
}

// CleanupRequest is the request body for event retention cleanup.
type CleanupRequest struct {
	// RetentionDays of 0 (or an absent body) uses the configured default.
	RetentionDays int `json:"retention_days" binding:"omitempty,gte=0"`
}

// GenerateSecretRequest is the request body for secret generation.
type GenerateSecretRequest struct {
	// Length of 0 uses the configured default.
	Length int `json:"length" binding:"omitempty,gte=0"`
}

// WebhookResponse is the public representation of a webhook.
type WebhookResponse struct {
	ID        string   `json:"id"`
	URL       string   `json:"url"`
	Active    bool     `json:"active"`
	Topics    []string `json:"topics"`
	CreatedAt string   `json:"created_at"`
	UpdatedAt string   `json:"updated_at"`
}

// EventResponse is the public representation of a delivery event.
type EventResponse struct {
	ID        string `json:"id"`
	WebhookID string `json:"webhook_id"`
	Topic     string `json:"topic"`
	Payload   string `json:"payload"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

// SecretResponse exposes a webhook's secret token, either freshly generated
// or read back for receiver-side verification setup.
type SecretResponse struct {
	WebhookID string `json:"webhook_id"`
	Token     string `json:"token"`
	CreatedAt string `json:"created_at"`
}
