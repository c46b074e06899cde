package handler

import (
	"webhook-gateway/internal/adapter/http/dto"
	"webhook-gateway/internal/core/ports"
	"webhook-gateway/internal/registry"
	"webhook-gateway/pkg/apperror"
	"webhook-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DispatchHandler exposes the event dispatch entry point and the topic
// catalog.
type DispatchHandler struct {
	dispatcher ports.Dispatcher
	registry   *registry.Registry
}

// NewDispatchHandler creates a new dispatch handler.
func NewDispatchHandler(dispatcher ports.Dispatcher, reg *registry.Registry) *DispatchHandler {
	return &DispatchHandler{dispatcher: dispatcher, registry: reg}
}

// Dispatch fires an event at all subscribers of a topic, or at one webhook
// when webhook_id is given.
func (h *DispatchHandler) Dispatch(c *gin.Context) {
	var req dto.DispatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	var targetID *uuid.UUID
	if req.WebhookID != nil {
		id, err := uuid.Parse(*req.WebhookID)
		if err != nil {
			response.Error(c, apperror.Validation("invalid webhook id"))
			return
		}
		targetID = &id
	}

	if err := h.dispatcher.Dispatch(c.Request.Context(), req.Topic, req.Data, targetID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"message": "event dispatched", "topic": req.Topic})
}

// Topics lists the registered topic names.
func (h *DispatchHandler) Topics(c *gin.Context) {
	response.OK(c, gin.H{"topics": h.registry.Topics()})
}
