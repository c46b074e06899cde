package handler

import (
	"webhook-gateway/internal/adapter/http/middleware"
	"webhook-gateway/internal/core/ports"
	"webhook-gateway/internal/registry"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Manager        ports.WebhookManager
	Dispatcher     ports.Dispatcher
	DeliverySvc    ports.DeliveryService
	SecretSvc      ports.SecretService
	HealthSvc      ports.HealthService
	EventRepo      ports.EventRepository
	Registry       *registry.Registry
	HealthCheckers []ports.HealthChecker
	AdminToken     string // empty disables admin auth
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (pings PostgreSQL and Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	webhookHandler := NewWebhookHandler(deps.Manager, deps.SecretSvc, deps.HealthSvc)
	dispatchHandler := NewDispatchHandler(deps.Dispatcher, deps.Registry)
	eventHandler := NewEventHandler(deps.DeliverySvc, deps.EventRepo, deps.Manager)
	maintenanceHandler := NewMaintenanceHandler(deps.HealthSvc)

	// Admin API
	v1 := r.Group("/api/v1", middleware.AdminAuth(deps.AdminToken))

	webhooks := v1.Group("/webhooks")
	{
		webhooks.POST("", webhookHandler.Create)
		webhooks.GET("", webhookHandler.List)
		webhooks.POST("/bulk", webhookHandler.BulkCreate)
		webhooks.POST("/bulk-update", webhookHandler.BulkUpdate)
		webhooks.POST("/bulk-delete", webhookHandler.BulkDelete)
		webhooks.POST("/validate-url", webhookHandler.ValidateURL)
		webhooks.GET("/:id", webhookHandler.Get)
		webhooks.PUT("/:id", webhookHandler.Update)
		webhooks.DELETE("/:id", webhookHandler.Delete)
		webhooks.POST("/:id/test", webhookHandler.TestFire)
		webhooks.POST("/:id/rotate-secret", webhookHandler.RotateSecret)
		webhooks.GET("/:id/secret", webhookHandler.Secret)
		webhooks.GET("/:id/health", webhookHandler.Health)
		webhooks.GET("/:id/stats", webhookHandler.Stats)
		webhooks.GET("/:id/events", eventHandler.ListByWebhook)
	}

	events := v1.Group("/events")
	{
		events.GET("/:id", eventHandler.Get)
		events.POST("/:id/retry", eventHandler.Retry)
	}

	v1.POST("/dispatch", dispatchHandler.Dispatch)
	v1.GET("/topics", dispatchHandler.Topics)
	v1.POST("/maintenance/cleanup", maintenanceHandler.Cleanup)

	return r
}
