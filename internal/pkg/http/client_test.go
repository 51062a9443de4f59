package http

import (
	"context"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostJSONSendsAPIKey(t *testing.T) {
	var gotKey, gotContentType string
	var gotBody map[string]string

	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		gotKey = r.Header.Get(APIKeyHeader)
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"queued"}`))
	}))
	defer server.Close()

	client := NewAPIKeyClient(server.URL, "secret-key")

	var result map[string]string
	err := client.PostJSON(context.Background(), "/internal/push", map[string]string{"user_id": "user-1"}, &result)
	require.NoError(t, err)

	assert.Equal(t, "secret-key", gotKey)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "user-1", gotBody["user_id"])
	assert.Equal(t, "queued", result["status"])
}

func TestPostJSONErrorStatus(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.WriteHeader(nethttp.StatusBadGateway)
	}))
	defer server.Close()

	client := NewAPIKeyClient(server.URL, "secret-key")
	err := client.PostJSON(context.Background(), "/internal/sms", map[string]string{}, nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestGetJSONDecodesResponse(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, nethttp.MethodGet, r.Method)
		w.Write([]byte(`{"healthy":true}`))
	}))
	defer server.Close()

	client := NewAPIKeyClient(server.URL, "")

	var result struct {
		Healthy bool `json:"healthy"`
	}
	require.NoError(t, client.GetJSON(context.Background(), "/health", &result))
	assert.True(t, result.Healthy)
}

func TestPostJSONUnreachableService(t *testing.T) {
	client := NewAPIKeyClient("http://127.0.0.1:1", "secret-key")
	err := client.PostJSON(context.Background(), "/internal/push", map[string]string{}, nil)
	assert.Error(t, err)
}
