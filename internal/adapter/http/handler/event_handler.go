package handler

import (
	"strconv"
	"time"

	"webhook-gateway/internal/adapter/http/dto"
	"webhook-gateway/internal/core/domain"
	"webhook-gateway/internal/core/ports"
	"webhook-gateway/pkg/apperror"
	"webhook-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

const defaultEventListLimit = 50

// EventHandler handles delivery event endpoints.
type EventHandler struct {
	deliverySvc ports.DeliveryService
	eventRepo   ports.EventRepository
	manager     ports.WebhookManager
}

// NewEventHandler creates a new event handler.
func NewEventHandler(deliverySvc ports.DeliveryService, eventRepo ports.EventRepository, manager ports.WebhookManager) *EventHandler {
	return &EventHandler{deliverySvc: deliverySvc, eventRepo: eventRepo, manager: manager}
}

func toEventResponse(e *domain.Event) dto.EventResponse {
	return dto.EventResponse{
		ID:        e.ID.String(),
		WebhookID: e.WebhookID.String(),
		Topic:     e.Topic,
		Payload:   e.Payload,
		Status:    string(e.Status),
		CreatedAt: e.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// Get fetches one delivery event.
func (h *EventHandler) Get(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	event, err := h.eventRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, apperror.ErrDatabaseError(err))
		return
	}
	if event == nil {
		response.Error(c, apperror.ErrEventNotFound())
		return
	}

	response.OK(c, toEventResponse(event))
}

// Retry re-schedules a failed delivery.
func (h *EventHandler) Retry(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.deliverySvc.RetryFailedEvent(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"message": "delivery re-scheduled"})
}

// ListByWebhook returns a webhook's recent delivery events, newest first.
func (h *EventHandler) ListByWebhook(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	limit := defaultEventListLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 500 {
			response.Error(c, apperror.Validation("limit must be between 1 and 500"))
			return
		}
		limit = n
	}

	webhook, err := h.manager.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	events, err := h.eventRepo.ListByWebhook(c.Request.Context(), webhook.ID, limit)
	if err != nil {
		response.Error(c, apperror.ErrDatabaseError(err))
		return
	}

	items := make([]dto.EventResponse, 0, len(events))
	for i := range events {
		items = append(items, toEventResponse(&events[i]))
	}
	response.OK(c, gin.H{"items": items, "total": len(items)})
}
