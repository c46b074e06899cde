package handler

import (
	"math"
	"strconv"
	"time"

	"webhook-gateway/internal/adapter/http/dto"
	"webhook-gateway/internal/core/domain"
	"webhook-gateway/internal/core/ports"
	"webhook-gateway/pkg/apperror"
	"webhook-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const defaultStatsWindowDays = 30

// WebhookHandler handles webhook administration endpoints.
type WebhookHandler struct {
	manager   ports.WebhookManager
	secretSvc ports.SecretService
	healthSvc ports.HealthService
}

// NewWebhookHandler creates a new webhook handler.
func NewWebhookHandler(manager ports.WebhookManager, secretSvc ports.SecretService, healthSvc ports.HealthService) *WebhookHandler {
	return &WebhookHandler{manager: manager, secretSvc: secretSvc, healthSvc: healthSvc}
}

func toWebhookResponse(w *domain.Webhook) dto.WebhookResponse {
	return dto.WebhookResponse{
		ID:        w.PublicID.String(),
		URL:       w.URL,
		Active:    w.Active,
		Topics:    w.Topics,
		CreatedAt: w.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: w.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.Error(c, apperror.Validation("invalid webhook id"))
		return uuid.Nil, false
	}
	return id, true
}

// Create registers a new webhook.
func (h *WebhookHandler) Create(c *gin.Context) {
	var req dto.CreateWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	webhook, err := h.manager.Create(c.Request.Context(), ports.WebhookInput{
		URL:    req.URL,
		Topics: req.Topics,
		Active: req.Active,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toWebhookResponse(webhook))
}

// Update modifies an existing webhook.
func (h *WebhookHandler) Update(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	webhook, err := h.manager.Update(c.Request.Context(), id, ports.WebhookInput{
		URL:    req.URL,
		Topics: req.Topics,
		Active: req.Active,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toWebhookResponse(webhook))
}

// Delete removes a webhook.
func (h *WebhookHandler) Delete(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.manager.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// Get fetches one webhook.
func (h *WebhookHandler) Get(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	webhook, err := h.manager.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toWebhookResponse(webhook))
}

// List returns all webhooks, filtered to active ones with ?active=true.
func (h *WebhookHandler) List(c *gin.Context) {
	activeOnly := c.Query("active") == "true"

	webhooks, err := h.manager.List(c.Request.Context(), activeOnly)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.WebhookResponse, 0, len(webhooks))
	for i := range webhooks {
		items = append(items, toWebhookResponse(&webhooks[i]))
	}
	response.OK(c, gin.H{"items": items, "total": len(items)})
}

// BulkCreate registers multiple webhooks, reporting per-item outcomes.
func (h *WebhookHandler) BulkCreate(c *gin.Context) {
	var req dto.BulkCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	ins := make([]ports.WebhookInput, 0, len(req.Webhooks))
	for _, w := range req.Webhooks {
		ins = append(ins, ports.WebhookInput{URL: w.URL, Topics: w.Topics, Active: w.Active})
	}

	response.OK(c, h.manager.BulkCreate(c.Request.Context(), ins))
}

// BulkUpdate applies one set of changes to multiple webhooks, reporting
// per-item outcomes.
func (h *WebhookHandler) BulkUpdate(c *gin.Context) {
	var req dto.BulkUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	ids := make([]uuid.UUID, 0, len(req.IDs))
	for _, raw := range req.IDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.Error(c, apperror.Validation("invalid webhook id: "+raw))
			return
		}
		ids = append(ids, id)
	}

	in := ports.WebhookInput{
		URL:    req.Updates.URL,
		Topics: req.Updates.Topics,
		Active: req.Updates.Active,
	}
	response.OK(c, h.manager.BulkUpdate(c.Request.Context(), ids, in))
}

// BulkDelete removes multiple webhooks, reporting per-item outcomes.
func (h *WebhookHandler) BulkDelete(c *gin.Context) {
	var req dto.BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	ids := make([]uuid.UUID, 0, len(req.IDs))
	for _, raw := range req.IDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.Error(c, apperror.Validation("invalid webhook id: "+raw))
			return
		}
		ids = append(ids, id)
	}

	response.OK(c, h.manager.BulkDelete(c.Request.Context(), ids))
}

// TestFire sends a synthetic webhook.test event to one webhook.
func (h *WebhookHandler) TestFire(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req dto.TestFireRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, apperror.Validation(err.Error()))
			return
		}
	}

	if err := h.manager.TestFire(c.Request.Context(), id, req.Data); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"message": "test event dispatched"})
}

// RotateSecret replaces the webhook's secret and returns the new token.
func (h *WebhookHandler) RotateSecret(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	// Secrets attach to the internal id; resolve through the public one.
	webhook, err := h.manager.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.GenerateSecretRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, apperror.Validation(err.Error()))
			return
		}
	}

	secret, err := h.secretSvc.Generate(c.Request.Context(), webhook.ID, req.Length)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.SecretResponse{
		WebhookID: webhook.PublicID.String(),
		Token:     secret.Token,
		CreatedAt: secret.CreatedAt.UTC().Format(time.RFC3339),
	})
}

// Secret returns the webhook's current active secret.
func (h *WebhookHandler) Secret(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	webhook, err := h.manager.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	secret, err := h.secretSvc.GetActive(c.Request.Context(), webhook.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if secret == nil {
		response.Error(c, apperror.Validation("no active secret for this webhook"))
		return
	}

	response.OK(c, dto.SecretResponse{
		WebhookID: webhook.PublicID.String(),
		Token:     secret.Token,
		CreatedAt: secret.CreatedAt.UTC().Format(time.RFC3339),
	})
}

// Stats returns delivery statistics over a trailing window of days,
// defaulting to 30.
func (h *WebhookHandler) Stats(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	days := defaultStatsWindowDays
	if raw := c.Query("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			response.Error(c, apperror.Validation("days must be a positive integer"))
			return
		}
		days = n
	}

	webhook, err := h.manager.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	stats, err := h.healthSvc.GetEventStats(c.Request.Context(), webhook.ID, days)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{
		"total":        stats.Total,
		"success":      stats.Success,
		"failed":       stats.Failed,
		"pending":      stats.Pending,
		"success_rate": math.Round(stats.SuccessRate()*100) / 100,
		"window_days":  days,
	})
}

// Health reports the webhook's delivery health over the trailing week.
func (h *WebhookHandler) Health(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	webhook, err := h.manager.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	report, err := h.healthSvc.GetWebhookHealth(c.Request.Context(), webhook.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, report)
}

// ValidateURL probes an endpoint for reachability.
func (h *WebhookHandler) ValidateURL(c *gin.Context) {
	var req dto.ValidateURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	reachable := h.manager.ValidateURL(c.Request.Context(), req.URL)
	response.OK(c, gin.H{"url": req.URL, "reachable": reachable})
}
