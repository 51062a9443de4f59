package nsq

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	gonsq "github.com/nsqio/go-nsq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hushryd/tracking-service/internal/pkg/models"
	"github.com/hushryd/tracking-service/services/tracking/mocks"
)

func nsqMessage(t *testing.T, job dispatchJob) *gonsq.Message {
	body, err := json.Marshal(job)
	require.NoError(t, err)
	return gonsq.NewMessage(gonsq.MessageID{}, body)
}

func TestWorkerDeliversPushAndRecordsSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	sosUC := mocks.NewMockSOSUC(ctrl)

	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		assert.Equal(t, "api-key", r.Header.Get("X-API-Key"))
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	worker := NewWorker(sosUC, models.NotificationConfig{ServiceURL: server.URL, APIKey: "api-key"})

	sosUC.EXPECT().
		RecordNotificationOutcome(gomock.Any(), "alert-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, outcome models.NotificationOutcome) error {
			assert.Equal(t, "push", outcome.Channel)
			assert.Equal(t, "user-1", outcome.Recipient)
			assert.True(t, outcome.Success)
			return nil
		})

	err := worker.handleMessage(nsqMessage(t, dispatchJob{
		AlertRef: "alert-1",
		Push:     &models.PushJob{UserID: "user-1", Title: "Safety check"},
	}))
	assert.NoError(t, err)
	assert.Equal(t, "/internal/push", gotPath)
}

func TestWorkerRecordsFailureAfterRetriesExhausted(t *testing.T) {
	ctrl := gomock.NewController(t)
	sosUC := mocks.NewMockSOSUC(ctrl)

	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	worker := NewWorker(sosUC, models.NotificationConfig{ServiceURL: server.URL, APIKey: "api-key"})

	sosUC.EXPECT().
		RecordNotificationOutcome(gomock.Any(), "alert-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, outcome models.NotificationOutcome) error {
			assert.False(t, outcome.Success)
			assert.NotEmpty(t, outcome.Error)
			return nil
		})

	err := worker.handleMessage(nsqMessage(t, dispatchJob{
		AlertRef: "alert-1",
		SMS:      &models.SMSJob{Phone: "+628111", Message: "SOS"},
	}))
	// Never requeued, even when delivery keeps failing
	assert.NoError(t, err)
	assert.Equal(t, 4, attempts)
}

func TestWorkerSkipsOutcomeWithoutAlertRef(t *testing.T) {
	ctrl := gomock.NewController(t)
	sosUC := mocks.NewMockSOSUC(ctrl)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	worker := NewWorker(sosUC, models.NotificationConfig{ServiceURL: server.URL, APIKey: "api-key"})

	// No RecordNotificationOutcome expectation: nothing to record against
	err := worker.handleMessage(nsqMessage(t, dispatchJob{
		Push: &models.PushJob{UserID: "user-1", Title: "Safety check"},
	}))
	assert.NoError(t, err)
}

func TestWorkerDropsUnparseableJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	sosUC := mocks.NewMockSOSUC(ctrl)
	worker := NewWorker(sosUC, models.NotificationConfig{ServiceURL: "http://127.0.0.1:1"})

	msg := gonsq.NewMessage(gonsq.MessageID{}, []byte("not json"))
	assert.NoError(t, worker.handleMessage(msg))
}
