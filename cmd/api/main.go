package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"webhook-gateway/config"
	httpHandler "webhook-gateway/internal/adapter/http/handler"
	pgStorage "webhook-gateway/internal/adapter/storage/postgres"
	redisStorage "webhook-gateway/internal/adapter/storage/redis"
	"webhook-gateway/internal/adapter/transport"
	"webhook-gateway/internal/core/ports"
	"webhook-gateway/internal/registry"
	"webhook-gateway/internal/service"
	"webhook-gateway/pkg/logger"

	"github.com/rs/zerolog"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Webhook.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Webhook Gateway")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	webhookRepo := pgStorage.NewWebhookRepo(pool)
	secretRepo := pgStorage.NewSecretRepo(pool)
	eventRepo := pgStorage.NewEventRepo(pool)
	topicRepo := pgStorage.NewTopicRepo(pool)

	// Subscriber resolution: Redis-cached lookups when enabled, store
	// lookups otherwise.
	var resolver ports.SubscriberResolver
	if cfg.Webhook.UseCache {
		resolver = redisStorage.NewSubscriberCache(rdb, webhookRepo, cfg.Webhook.CacheTTL, log)
	} else {
		resolver = service.NewStoreSubscriberResolver(webhookRepo)
	}

	// Delivery queue and outbound transport
	queue := redisStorage.NewDeliveryQueue(rdb, log)
	httpTransport := transport.NewHTTPTransport(cfg.Webhook.DeliveryTimeout, log)

	// Topic registry with the built-in test topic
	reg := registry.New(log)
	reg.Register(service.TestTopic, func(data map[string]any) any { return data })

	// Initialize core services
	sigSvc := service.NewHMACSignatureService()
	secretSvc := service.NewWebhookSecretService(secretRepo, cfg.Webhook.DefaultSecretLength, log)
	dispatchSvc := service.NewDispatchService(reg, resolver, queue, cfg.Webhook, log)
	deliverySvc := service.NewDeliveryWorkerService(webhookRepo, secretRepo, eventRepo, httpTransport, sigSvc, queue, cfg.Webhook, log)
	healthSvc := service.NewEventHealthService(webhookRepo, eventRepo, cfg.Webhook.RetentionDays, log)
	managementSvc := service.NewWebhookManagementService(webhookRepo, topicRepo, reg, secretSvc, dispatchSvc, httpTransport, log)

	// Converge the stored topic catalog with the registered handlers
	if err := managementSvc.ReconcileTopics(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to reconcile topics")
	}

	// Start delivery workers
	queue.Run(ctx, cfg.Webhook.QueueWorkers, deliverySvc)

	// Periodic event retention sweep
	go runRetentionSweep(ctx, healthSvc, cfg.Webhook, log)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Manager:        managementSvc,
		Dispatcher:     dispatchSvc,
		DeliverySvc:    deliverySvc,
		SecretSvc:      secretSvc,
		HealthSvc:      healthSvc,
		EventRepo:      eventRepo,
		Registry:       reg,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		AdminToken:     cfg.Admin.Token,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	<-ctx.Done()
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	// Drain in-flight delivery jobs before closing the pool
	queue.Wait()

	log.Info().Msg("Server exited")
}

// runRetentionSweep deletes events past the retention window on a fixed
// interval until ctx is cancelled.
func runRetentionSweep(ctx context.Context, healthSvc ports.HealthService, cfg config.WebhookConfig, log zerolog.Logger) {
	if cfg.CleanupInterval <= 0 {
		return
	}

	ticker := time.NewTicker(cfg.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			deleted, err := healthSvc.Cleanup(ctx, cfg.RetentionDays)
			if err != nil {
				log.Error().Err(err).Msg("retention sweep failed")
				continue
			}
			if deleted > 0 {
				log.Info().Int64("deleted", deleted).Msg("retention sweep completed")
			}
		}
	}
}
