package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hushryd/tracking-service/internal/pkg/models"
)

func TestPlaceCallReturnsAnsweredResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/internal/calls", r.URL.Path)
		assert.Equal(t, "secret-key", r.Header.Get("X-API-Key"))

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "+628111", payload["phone"])

		json.NewEncoder(w).Encode(models.CallResult{Answered: true, CallID: "call-1"})
	}))
	defer srv.Close()

	gw := NewNotifyGW(nil, models.NotificationConfig{
		ServiceURL: srv.URL,
		APIKey:     "secret-key",
	})

	result, err := gw.PlaceCall(context.Background(), "+628111", "safety check")
	require.NoError(t, err)
	assert.True(t, result.Answered)
	assert.Equal(t, "call-1", result.CallID)
}

func TestPlaceCallSurfacesUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "telephony down", http.StatusBadGateway)
	}))
	defer srv.Close()

	gw := NewNotifyGW(nil, models.NotificationConfig{ServiceURL: srv.URL, APIKey: "secret-key"})

	_, err := gw.PlaceCall(context.Background(), "+628111", "safety check")
	assert.Error(t, err)
}
