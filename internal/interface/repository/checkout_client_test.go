package repository

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"recharge-travels-service/internal/domain/entity"
	"recharge-travels-service/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckoutClient_CreateSession(t *testing.T) {
	var got entity.CheckoutRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/checkout/sessions", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"success":true,"data":{"sessionId":"cs_test_123"}}`))
	}))
	defer server.Close()

	client := NewCheckoutClient(server.URL+"/", "secret", logger.NewNop())

	id, err := client.CreateSession(context.Background(), entity.CheckoutRequest{
		BookingRef:     "RT-ABC-1234",
		TotalAmountUSD: 260,
		Currency:       "USD",
	})
	require.NoError(t, err)
	assert.Equal(t, "cs_test_123", id)
	assert.Equal(t, "RT-ABC-1234", got.BookingRef)
	assert.Equal(t, 260.0, got.TotalAmountUSD)
}

func TestCheckoutClient_CreateSessionErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"server error", http.StatusBadGateway, `{"success":false,"error":{"message":"upstream down"}}`},
		{"unsuccessful envelope", http.StatusOK, `{"success":false,"error":{"message":"invalid amount","code":"E_AMOUNT"}}`},
		{"missing session id", http.StatusOK, `{"success":true,"data":{}}`},
		{"malformed body", http.StatusOK, `not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewCheckoutClient(server.URL, "", logger.NewNop())
			id, err := client.CreateSession(context.Background(), entity.CheckoutRequest{BookingRef: "RT-X"})
			assert.Error(t, err)
			assert.Empty(t, id)
		})
	}
}
