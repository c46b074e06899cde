package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"webhook-gateway/internal/core/domain"
	"webhook-gateway/internal/core/ports/mocks"
	"webhook-gateway/pkg/apperror"
	"webhook-gateway/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type deliveryFixture struct {
	webhookRepo *mocks.MockWebhookRepository
	secretRepo  *mocks.MockSecretRepository
	eventRepo   *mocks.MockEventRepository
	transport   *mocks.MockTransport
	scheduler   *mocks.MockJobScheduler
	svc         *DeliveryWorkerService
}

func newDeliveryFixture(t *testing.T, ctrl *gomock.Controller) *deliveryFixture {
	t.Helper()
	f := &deliveryFixture{
		webhookRepo: mocks.NewMockWebhookRepository(ctrl),
		secretRepo:  mocks.NewMockSecretRepository(ctrl),
		eventRepo:   mocks.NewMockEventRepository(ctrl),
		transport:   mocks.NewMockTransport(ctrl),
		scheduler:   mocks.NewMockJobScheduler(ctrl),
	}
	f.svc = NewDeliveryWorkerService(
		f.webhookRepo, f.secretRepo, f.eventRepo,
		f.transport, NewHMACSignatureService(), f.scheduler,
		testWebhookConfig("live"), logger.Discard(),
	)
	return f
}

func activeWebhook() *domain.Webhook {
	return &domain.Webhook{
		ID:       uuid.New(),
		PublicID: uuid.New(),
		URL:      "https://receiver.example.com/hook",
		Active:   true,
		Topics:   []string{"order.created"},
	}
}

func TestHandleJob_SuccessRecordsSuccessEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newDeliveryFixture(t, ctrl)

	webhook := activeWebhook()
	job := domain.DeliveryJob{WebhookID: webhook.PublicID, Payload: `{"object":{"id":7}}`, Topic: "order.created"}

	f.webhookRepo.EXPECT().FindByPublicID(gomock.Any(), webhook.PublicID).Return(webhook, nil)
	f.secretRepo.EXPECT().GetActive(gomock.Any(), webhook.ID).Return(&domain.Secret{Token: "tok"}, nil)

	sig := NewHMACSignatureService().Sign("tok", job.Payload)
	f.transport.EXPECT().Send(gomock.Any(), webhook.URL, []byte(job.Payload), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ []byte, headers map[string]string) (int, error) {
			assert.Equal(t, sig, headers["X-Webhook-Signature"])
			return 204, nil
		})

	var eventID uuid.UUID
	f.eventRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *domain.Event) error {
			assert.Equal(t, webhook.ID, e.WebhookID)
			assert.Equal(t, "order.created", e.Topic)
			assert.Equal(t, job.Payload, e.Payload)
			assert.Equal(t, domain.EventStatusPending, e.Status)
			eventID = e.ID
			return nil
		})
	f.eventRepo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), domain.EventStatusSuccess).
		DoAndReturn(func(_ context.Context, id uuid.UUID, _ domain.EventStatus) error {
			assert.Equal(t, eventID, id)
			return nil
		})

	require.NoError(t, f.svc.HandleJob(context.Background(), job))
}

func TestHandleJob_ClientErrorIsStillSuccess(t *testing.T) {
	// Any response below the server-error threshold counts as delivered;
	// idempotence and semantic rejection are the receiver's concern.
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newDeliveryFixture(t, ctrl)

	webhook := activeWebhook()
	job := domain.DeliveryJob{WebhookID: webhook.PublicID, Payload: "{}", Topic: "order.created"}

	f.webhookRepo.EXPECT().FindByPublicID(gomock.Any(), webhook.PublicID).Return(webhook, nil)
	f.secretRepo.EXPECT().GetActive(gomock.Any(), webhook.ID).Return(nil, nil)
	f.transport.EXPECT().Send(gomock.Any(), webhook.URL, gomock.Any(), gomock.Any()).Return(404, nil)
	f.eventRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	f.eventRepo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), domain.EventStatusSuccess).Return(nil)

	require.NoError(t, f.svc.HandleJob(context.Background(), job))
}

func TestHandleJob_ServerErrorRecordsFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newDeliveryFixture(t, ctrl)

	webhook := activeWebhook()
	job := domain.DeliveryJob{WebhookID: webhook.PublicID, Payload: "{}", Topic: "order.created"}

	f.webhookRepo.EXPECT().FindByPublicID(gomock.Any(), webhook.PublicID).Return(webhook, nil)
	f.secretRepo.EXPECT().GetActive(gomock.Any(), webhook.ID).Return(nil, nil)
	f.transport.EXPECT().Send(gomock.Any(), webhook.URL, gomock.Any(), gomock.Any()).Return(500, nil)
	f.eventRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	f.eventRepo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), domain.EventStatusFailure).Return(nil)

	require.NoError(t, f.svc.HandleJob(context.Background(), job))
}

func TestHandleJob_TransportErrorRecordsFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newDeliveryFixture(t, ctrl)

	webhook := activeWebhook()
	job := domain.DeliveryJob{WebhookID: webhook.PublicID, Payload: "{}", Topic: "order.created"}

	f.webhookRepo.EXPECT().FindByPublicID(gomock.Any(), webhook.PublicID).Return(webhook, nil)
	f.secretRepo.EXPECT().GetActive(gomock.Any(), webhook.ID).Return(nil, nil)
	f.transport.EXPECT().Send(gomock.Any(), webhook.URL, gomock.Any(), gomock.Any()).Return(0, errors.New("connection refused"))
	f.eventRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	f.eventRepo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), domain.EventStatusFailure).Return(nil)

	require.NoError(t, f.svc.HandleJob(context.Background(), job))
}

func TestHandleJob_RecordCreatedBeforeSend(t *testing.T) {
	// The PENDING record must exist before the outbound call is attempted.
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newDeliveryFixture(t, ctrl)

	webhook := activeWebhook()
	job := domain.DeliveryJob{WebhookID: webhook.PublicID, Payload: "{}", Topic: "order.created"}

	f.webhookRepo.EXPECT().FindByPublicID(gomock.Any(), webhook.PublicID).Return(webhook, nil)
	f.secretRepo.EXPECT().GetActive(gomock.Any(), webhook.ID).Return(nil, nil)

	created := f.eventRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *domain.Event) error {
			assert.Equal(t, domain.EventStatusPending, e.Status)
			return nil
		})
	sent := f.transport.EXPECT().Send(gomock.Any(), webhook.URL, gomock.Any(), gomock.Any()).
		Return(200, nil).After(created)
	f.eventRepo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), domain.EventStatusSuccess).
		Return(nil).After(sent)

	require.NoError(t, f.svc.HandleJob(context.Background(), job))
}

func TestHandleJob_CreateFailureSkipsSend(t *testing.T) {
	// If the audit record cannot be written, no unrecorded delivery happens.
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newDeliveryFixture(t, ctrl)

	webhook := activeWebhook()
	job := domain.DeliveryJob{WebhookID: webhook.PublicID, Payload: "{}", Topic: "order.created"}

	f.webhookRepo.EXPECT().FindByPublicID(gomock.Any(), webhook.PublicID).Return(webhook, nil)
	f.secretRepo.EXPECT().GetActive(gomock.Any(), webhook.ID).Return(nil, nil)
	f.eventRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))
	// No transport call.

	err := f.svc.HandleJob(context.Background(), job)
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "SYS_001", appErr.Code)
}

func TestHandleJob_MissingWebhookDropsJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newDeliveryFixture(t, ctrl)

	id := uuid.New()
	f.webhookRepo.EXPECT().FindByPublicID(gomock.Any(), id).Return(nil, nil)
	// No transport call, no event record.

	err := f.svc.HandleJob(context.Background(), domain.DeliveryJob{WebhookID: id, Payload: "{}", Topic: "x.y"})
	assert.NoError(t, err)
}

func TestHandleJob_InactiveWebhookDropsJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newDeliveryFixture(t, ctrl)

	webhook := activeWebhook()
	webhook.Active = false
	f.webhookRepo.EXPECT().FindByPublicID(gomock.Any(), webhook.PublicID).Return(webhook, nil)

	err := f.svc.HandleJob(context.Background(), domain.DeliveryJob{WebhookID: webhook.PublicID, Payload: "{}", Topic: "x.y"})
	assert.NoError(t, err)
}

func TestRetryFailedEvent_SchedulesOriginalPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newDeliveryFixture(t, ctrl)

	webhook := activeWebhook()
	event := &domain.Event{
		ID:        uuid.New(),
		WebhookID: webhook.ID,
		Topic:     "order.created",
		Payload:   `{"object":{"id":7}}`,
		Status:    domain.EventStatusFailure,
		CreatedAt: time.Now(),
	}

	f.eventRepo.EXPECT().GetByID(gomock.Any(), event.ID).Return(event, nil)
	f.webhookRepo.EXPECT().FindByID(gomock.Any(), webhook.ID).Return(webhook, nil)
	f.scheduler.EXPECT().Schedule(gomock.Any(), domain.DeliveryJob{
		WebhookID: webhook.PublicID,
		Payload:   event.Payload,
		Topic:     event.Topic,
	}).Return(nil)

	require.NoError(t, f.svc.RetryFailedEvent(context.Background(), event.ID))
}

func TestRetryFailedEvent_RejectsNonFailureStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	for _, status := range []domain.EventStatus{domain.EventStatusSuccess, domain.EventStatusPending} {
		f := newDeliveryFixture(t, ctrl)
		event := &domain.Event{ID: uuid.New(), WebhookID: uuid.New(), Status: status}
		f.eventRepo.EXPECT().GetByID(gomock.Any(), event.ID).Return(event, nil)
		// No webhook lookup, no scheduling.

		err := f.svc.RetryFailedEvent(context.Background(), event.ID)
		require.Error(t, err, "status %s", status)

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "WH_007", appErr.Code)
	}
}

func TestRetryFailedEvent_RejectsInactiveWebhook(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newDeliveryFixture(t, ctrl)

	webhook := activeWebhook()
	webhook.Active = false
	event := &domain.Event{ID: uuid.New(), WebhookID: webhook.ID, Status: domain.EventStatusFailure}

	f.eventRepo.EXPECT().GetByID(gomock.Any(), event.ID).Return(event, nil)
	f.webhookRepo.EXPECT().FindByID(gomock.Any(), webhook.ID).Return(webhook, nil)

	err := f.svc.RetryFailedEvent(context.Background(), event.ID)
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "WH_005", appErr.Code)
}

func TestRetryFailedEvent_UnknownEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newDeliveryFixture(t, ctrl)

	id := uuid.New()
	f.eventRepo.EXPECT().GetByID(gomock.Any(), id).Return(nil, nil)

	err := f.svc.RetryFailedEvent(context.Background(), id)
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "WH_006", appErr.Code)
}
