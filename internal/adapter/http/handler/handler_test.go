package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"webhook-gateway/internal/adapter/http/dto"
	"webhook-gateway/internal/core/domain"
	"webhook-gateway/internal/core/ports"
	"webhook-gateway/internal/core/ports/mocks"
	"webhook-gateway/internal/registry"
	"webhook-gateway/pkg/apperror"
	"webhook-gateway/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testContext(t *testing.T, method, path string, body any) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	c.Request = httptest.NewRequest(method, path, reader)
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func sampleWebhook() *domain.Webhook {
	now := time.Now().UTC()
	return &domain.Webhook{
		ID:        uuid.New(),
		PublicID:  uuid.New(),
		URL:       "https://receiver.example.com/hooks",
		Active:    true,
		Topics:    []string{"order.created"},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// --- Webhook Handler Tests ---

func TestCreateWebhook_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	manager := mocks.NewMockWebhookManager(ctrl)
	h := NewWebhookHandler(manager, mocks.NewMockSecretService(ctrl), mocks.NewMockHealthService(ctrl))

	webhook := sampleWebhook()
	manager.EXPECT().Create(gomock.Any(), ports.WebhookInput{
		URL:    webhook.URL,
		Topics: webhook.Topics,
	}).Return(webhook, nil)

	c, w := testContext(t, http.MethodPost, "/api/v1/webhooks", dto.CreateWebhookRequest{
		URL:    webhook.URL,
		Topics: webhook.Topics,
	})

	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]any)
	assert.Equal(t, webhook.PublicID.String(), data["id"])
	assert.Equal(t, webhook.URL, data["url"])
}

func TestCreateWebhook_BadTopic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	manager := mocks.NewMockWebhookManager(ctrl)
	h := NewWebhookHandler(manager, mocks.NewMockSecretService(ctrl), mocks.NewMockHealthService(ctrl))

	c, w := testContext(t, http.MethodPost, "/api/v1/webhooks", map[string]any{
		"url":    "https://receiver.example.com/hooks",
		"topics": []string{"NotDotted"},
	})

	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetWebhook_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	manager := mocks.NewMockWebhookManager(ctrl)
	h := NewWebhookHandler(manager, mocks.NewMockSecretService(ctrl), mocks.NewMockHealthService(ctrl))

	id := uuid.New()
	manager.EXPECT().Get(gomock.Any(), id).Return(nil, apperror.ErrWebhookNotFound())

	c, w := testContext(t, http.MethodGet, "/api/v1/webhooks/"+id.String(), nil)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	h.Get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "WH_004")
}

func TestGetWebhook_MalformedID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	manager := mocks.NewMockWebhookManager(ctrl)
	h := NewWebhookHandler(manager, mocks.NewMockSecretService(ctrl), mocks.NewMockHealthService(ctrl))

	c, w := testContext(t, http.MethodGet, "/api/v1/webhooks/nope", nil)
	c.Params = gin.Params{{Key: "id", Value: "nope"}}

	h.Get(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteWebhook_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	manager := mocks.NewMockWebhookManager(ctrl)
	h := NewWebhookHandler(manager, mocks.NewMockSecretService(ctrl), mocks.NewMockHealthService(ctrl))

	id := uuid.New()
	manager.EXPECT().Delete(gomock.Any(), id).Return(nil)

	c, w := testContext(t, http.MethodDelete, "/api/v1/webhooks/"+id.String(), nil)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	h.Delete(c)
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestBulkDelete_ReportsPartialFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	manager := mocks.NewMockWebhookManager(ctrl)
	h := NewWebhookHandler(manager, mocks.NewMockSecretService(ctrl), mocks.NewMockHealthService(ctrl))

	a, b := uuid.New(), uuid.New()
	manager.EXPECT().BulkDelete(gomock.Any(), []uuid.UUID{a, b}).
		Return(ports.BulkResult{Succeeded: 1, Failed: 1, Errors: []string{b.String() + ": Webhook not found"}})

	c, w := testContext(t, http.MethodPost, "/api/v1/webhooks/bulk-delete", dto.BulkDeleteRequest{
		IDs: []string{a.String(), b.String()},
	})

	h.BulkDelete(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]any)
	assert.Equal(t, float64(1), data["succeeded"])
	assert.Equal(t, float64(1), data["failed"])
}

func TestBulkUpdate_AppliesOneChangeSet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	manager := mocks.NewMockWebhookManager(ctrl)
	h := NewWebhookHandler(manager, mocks.NewMockSecretService(ctrl), mocks.NewMockHealthService(ctrl))

	a, b := uuid.New(), uuid.New()
	inactive := false
	manager.EXPECT().BulkUpdate(gomock.Any(), []uuid.UUID{a, b}, ports.WebhookInput{Active: &inactive}).
		Return(ports.BulkResult{Succeeded: 1, Failed: 1, Errors: []string{b.String() + ": Webhook not found"}})

	c, w := testContext(t, http.MethodPost, "/api/v1/webhooks/bulk-update", dto.BulkUpdateRequest{
		IDs:     []string{a.String(), b.String()},
		Updates: dto.UpdateWebhookRequest{Active: &inactive},
	})

	h.BulkUpdate(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]any)
	assert.Equal(t, float64(1), data["succeeded"])
	assert.Equal(t, float64(1), data["failed"])
}

func TestTestFire_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	manager := mocks.NewMockWebhookManager(ctrl)
	h := NewWebhookHandler(manager, mocks.NewMockSecretService(ctrl), mocks.NewMockHealthService(ctrl))

	id := uuid.New()
	manager.EXPECT().TestFire(gomock.Any(), id, nil).Return(nil)

	c, w := testContext(t, http.MethodPost, "/api/v1/webhooks/"+id.String()+"/test", nil)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	h.TestFire(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRotateSecret_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	manager := mocks.NewMockWebhookManager(ctrl)
	secretSvc := mocks.NewMockSecretService(ctrl)
	h := NewWebhookHandler(manager, secretSvc, mocks.NewMockHealthService(ctrl))

	webhook := sampleWebhook()
	manager.EXPECT().Get(gomock.Any(), webhook.PublicID).Return(webhook, nil)
	secretSvc.EXPECT().Generate(gomock.Any(), webhook.ID, 0).
		Return(&domain.Secret{WebhookID: webhook.ID, Token: "fresh-token", CreatedAt: time.Now().UTC()}, nil)

	c, w := testContext(t, http.MethodPost, "/api/v1/webhooks/"+webhook.PublicID.String()+"/rotate-secret", nil)
	c.Params = gin.Params{{Key: "id", Value: webhook.PublicID.String()}}

	h.RotateSecret(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "fresh-token")
}

func TestGetSecret_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	manager := mocks.NewMockWebhookManager(ctrl)
	secretSvc := mocks.NewMockSecretService(ctrl)
	h := NewWebhookHandler(manager, secretSvc, mocks.NewMockHealthService(ctrl))

	webhook := sampleWebhook()
	manager.EXPECT().Get(gomock.Any(), webhook.PublicID).Return(webhook, nil)
	secretSvc.EXPECT().GetActive(gomock.Any(), webhook.ID).
		Return(&domain.Secret{WebhookID: webhook.ID, Token: "current-token", CreatedAt: time.Now().UTC()}, nil)

	c, w := testContext(t, http.MethodGet, "/api/v1/webhooks/"+webhook.PublicID.String()+"/secret", nil)
	c.Params = gin.Params{{Key: "id", Value: webhook.PublicID.String()}}

	h.Secret(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "current-token")
}

func TestGetSecret_NoneActive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	manager := mocks.NewMockWebhookManager(ctrl)
	secretSvc := mocks.NewMockSecretService(ctrl)
	h := NewWebhookHandler(manager, secretSvc, mocks.NewMockHealthService(ctrl))

	webhook := sampleWebhook()
	manager.EXPECT().Get(gomock.Any(), webhook.PublicID).Return(webhook, nil)
	secretSvc.EXPECT().GetActive(gomock.Any(), webhook.ID).Return(nil, nil)

	c, w := testContext(t, http.MethodGet, "/api/v1/webhooks/"+webhook.PublicID.String()+"/secret", nil)
	c.Params = gin.Params{{Key: "id", Value: webhook.PublicID.String()}}

	h.Secret(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "WH_003")
}

func TestWebhookStats_DefaultWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	manager := mocks.NewMockWebhookManager(ctrl)
	healthSvc := mocks.NewMockHealthService(ctrl)
	h := NewWebhookHandler(manager, mocks.NewMockSecretService(ctrl), healthSvc)

	webhook := sampleWebhook()
	manager.EXPECT().Get(gomock.Any(), webhook.PublicID).Return(webhook, nil)
	healthSvc.EXPECT().GetEventStats(gomock.Any(), webhook.ID, 30).
		Return(domain.EventStats{Total: 3, Success: 2, Failed: 1}, nil)

	c, w := testContext(t, http.MethodGet, "/api/v1/webhooks/"+webhook.PublicID.String()+"/stats", nil)
	c.Params = gin.Params{{Key: "id", Value: webhook.PublicID.String()}}

	h.Stats(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]any)
	assert.Equal(t, float64(3), data["total"])
	assert.Equal(t, 66.67, data["success_rate"])
	assert.Equal(t, float64(30), data["window_days"])
}

func TestWebhookStats_CustomWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	manager := mocks.NewMockWebhookManager(ctrl)
	healthSvc := mocks.NewMockHealthService(ctrl)
	h := NewWebhookHandler(manager, mocks.NewMockSecretService(ctrl), healthSvc)

	webhook := sampleWebhook()
	manager.EXPECT().Get(gomock.Any(), webhook.PublicID).Return(webhook, nil)
	healthSvc.EXPECT().GetEventStats(gomock.Any(), webhook.ID, 7).
		Return(domain.EventStats{}, nil)

	c, w := testContext(t, http.MethodGet, "/api/v1/webhooks/"+webhook.PublicID.String()+"/stats?days=7", nil)
	c.Params = gin.Params{{Key: "id", Value: webhook.PublicID.String()}}

	h.Stats(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestWebhookStats_InvalidWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	manager := mocks.NewMockWebhookManager(ctrl)
	h := NewWebhookHandler(manager, mocks.NewMockSecretService(ctrl), mocks.NewMockHealthService(ctrl))

	id := uuid.New()
	c, w := testContext(t, http.MethodGet, "/api/v1/webhooks/"+id.String()+"/stats?days=0", nil)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	h.Stats(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWebhookHealth_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	manager := mocks.NewMockWebhookManager(ctrl)
	healthSvc := mocks.NewMockHealthService(ctrl)
	h := NewWebhookHandler(manager, mocks.NewMockSecretService(ctrl), healthSvc)

	webhook := sampleWebhook()
	manager.EXPECT().Get(gomock.Any(), webhook.PublicID).Return(webhook, nil)
	healthSvc.EXPECT().GetWebhookHealth(gomock.Any(), webhook.ID).
		Return(&domain.HealthReport{
			WebhookID:   webhook.PublicID,
			URL:         webhook.URL,
			Active:      true,
			Status:      domain.HealthStatusWarning,
			SuccessRate: 85.5,
		}, nil)

	c, w := testContext(t, http.MethodGet, "/api/v1/webhooks/"+webhook.PublicID.String()+"/health", nil)
	c.Params = gin.Params{{Key: "id", Value: webhook.PublicID.String()}}

	h.Health(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "warning")
}

// --- Dispatch Handler Tests ---

func newDispatchRegistry() *registry.Registry {
	r := registry.New(logger.Discard())
	r.Register("order.created", func(data map[string]any) any { return data })
	return r
}

func TestDispatch_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dispatcher := mocks.NewMockDispatcher(ctrl)
	h := NewDispatchHandler(dispatcher, newDispatchRegistry())

	dispatcher.EXPECT().Dispatch(gomock.Any(), "order.created", map[string]any{"id": float64(7)}, nil).Return(nil)

	c, w := testContext(t, http.MethodPost, "/api/v1/dispatch", dto.DispatchRequest{
		Topic: "order.created",
		Data:  map[string]any{"id": 7},
	})

	h.Dispatch(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDispatch_TopicNotRegistered(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dispatcher := mocks.NewMockDispatcher(ctrl)
	h := NewDispatchHandler(dispatcher, newDispatchRegistry())

	dispatcher.EXPECT().Dispatch(gomock.Any(), "order.unknown", gomock.Any(), nil).
		Return(apperror.ErrTopicNotFound("order.unknown"))

	c, w := testContext(t, http.MethodPost, "/api/v1/dispatch", dto.DispatchRequest{
		Topic: "order.unknown",
		Data:  map[string]any{},
	})

	h.Dispatch(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "WH_001")
}

func TestDispatch_Targeted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dispatcher := mocks.NewMockDispatcher(ctrl)
	h := NewDispatchHandler(dispatcher, newDispatchRegistry())

	target := uuid.New()
	targetStr := target.String()
	dispatcher.EXPECT().Dispatch(gomock.Any(), "order.created", gomock.Any(), &target).Return(nil)

	c, w := testContext(t, http.MethodPost, "/api/v1/dispatch", dto.DispatchRequest{
		Topic:     "order.created",
		Data:      map[string]any{},
		WebhookID: &targetStr,
	})

	h.Dispatch(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTopics_Listed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewDispatchHandler(mocks.NewMockDispatcher(ctrl), newDispatchRegistry())

	c, w := testContext(t, http.MethodGet, "/api/v1/topics", nil)

	h.Topics(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "order.created")
}

// --- Event Handler Tests ---

func TestRetryEvent_NotRetryable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deliverySvc := mocks.NewMockDeliveryService(ctrl)
	h := NewEventHandler(deliverySvc, mocks.NewMockEventRepository(ctrl), mocks.NewMockWebhookManager(ctrl))

	id := uuid.New()
	deliverySvc.EXPECT().RetryFailedEvent(gomock.Any(), id).Return(apperror.ErrEventNotRetryable())

	c, w := testContext(t, http.MethodPost, "/api/v1/events/"+id.String()+"/retry", nil)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	h.Retry(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "WH_007")
}

func TestGetEvent_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eventRepo := mocks.NewMockEventRepository(ctrl)
	h := NewEventHandler(mocks.NewMockDeliveryService(ctrl), eventRepo, mocks.NewMockWebhookManager(ctrl))

	event := &domain.Event{
		ID:        uuid.New(),
		WebhookID: uuid.New(),
		Topic:     "order.created",
		Payload:   `{"object":{"id":7}}`,
		Status:    domain.EventStatusFailure,
		CreatedAt: time.Now().UTC(),
	}
	eventRepo.EXPECT().GetByID(gomock.Any(), event.ID).Return(event, nil)

	c, w := testContext(t, http.MethodGet, "/api/v1/events/"+event.ID.String(), nil)
	c.Params = gin.Params{{Key: "id", Value: event.ID.String()}}

	h.Get(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "FAILURE")
}

func TestListEvents_LimitValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewEventHandler(mocks.NewMockDeliveryService(ctrl), mocks.NewMockEventRepository(ctrl), mocks.NewMockWebhookManager(ctrl))

	id := uuid.New()
	c, w := testContext(t, http.MethodGet, "/api/v1/webhooks/"+id.String()+"/events?limit=9999", nil)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	h.ListByWebhook(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Health / Maintenance Tests ---

type stubChecker struct {
	name string
	err  error
}

func (s stubChecker) Ping(ctx context.Context) error { return s.err }

func (s stubChecker) Name() string { return s.name }

func TestHealthCheck_AllHealthy(t *testing.T) {
	router := gin.New()
	router.GET("/health", HealthCheck(stubChecker{name: "postgresql"}, stubChecker{name: "redis"}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"healthy"`)
}

func TestHealthCheck_Degraded(t *testing.T) {
	router := gin.New()
	router.GET("/health", HealthCheck(
		stubChecker{name: "postgresql"},
		stubChecker{name: "redis", err: assert.AnError},
	))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "degraded")
}

func TestCleanup_ReturnsCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	healthSvc := mocks.NewMockHealthService(ctrl)
	h := NewMaintenanceHandler(healthSvc)

	healthSvc.EXPECT().Cleanup(gomock.Any(), 7).Return(int64(12), nil)

	c, w := testContext(t, http.MethodPost, "/api/v1/maintenance/cleanup", dto.CleanupRequest{RetentionDays: 7})

	h.Cleanup(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"deleted":12`)
}
