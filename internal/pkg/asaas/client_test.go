package asaas

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_CreatePixCharge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/payments", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("access_token"))

		var req ChargeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "PIX", req.BillingType)
		assert.InDelta(t, 50, req.Value, 1e-9)

		json.NewEncoder(w).Encode(Charge{ID: "pay_123", Status: "PENDING", Value: req.Value})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key")
	charge, err := client.CreatePixCharge(context.Background(), ChargeRequest{
		Customer: "cus_1",
		Value:    50,
		DueDate:  "2025-03-20",
	})

	require.NoError(t, err)
	assert.Equal(t, "pay_123", charge.ID)
	assert.Equal(t, "PENDING", charge.Status)
}

func TestClient_GetPixQRCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/payments/pay_123/pixQrCode", r.URL.Path)

		json.NewEncoder(w).Encode(PixQRCode{Payload: "00020126...", EncodedImage: "iVBOR"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key")
	qr, err := client.GetPixQRCode(context.Background(), "pay_123")

	require.NoError(t, err)
	assert.Equal(t, "00020126...", qr.Payload)
}

func TestClient_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"errors": []map[string]string{{"code": "invalid_value", "description": "O valor informado é inválido."}},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key")
	_, err := client.CreatePixCharge(context.Background(), ChargeRequest{Value: -1})

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "O valor informado é inválido.", apiErr.Message)
}
