// Package asaas is a minimal client for the Asaas payment API, covering the
// Pix charge flow the platform needs: create a charge, fetch its QR code.
package asaas

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const billingTypePix = "PIX"

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type ChargeRequest struct {
	Customer          string  `json:"customer"`
	BillingType       string  `json:"billingType"`
	Value             float64 `json:"value"`
	DueDate           string  `json:"dueDate"`
	Description       string  `json:"description,omitempty"`
	ExternalReference string  `json:"externalReference,omitempty"`
}

type Charge struct {
	ID         string  `json:"id"`
	Status     string  `json:"status"`
	Value      float64 `json:"value"`
	InvoiceURL string  `json:"invoiceUrl"`
}

type PixQRCode struct {
	EncodedImage   string `json:"encodedImage"`
	Payload        string `json:"payload"`
	ExpirationDate string `json:"expirationDate"`
}

// APIError carries the status and first message returned by Asaas on a
// non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("asaas: status %v: %v", e.StatusCode, e.Message)
}

type errorBody struct {
	Errors []struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"errors"`
}

// CreatePixCharge opens a Pix charge regardless of the billing type set on
// the request; the caller only chooses value, due date and references.
func (c *Client) CreatePixCharge(ctx context.Context, req ChargeRequest) (*Charge, error) {
	req.BillingType = billingTypePix

	charge := &Charge{}
	if err := c.do(ctx, http.MethodPost, "/payments", req, charge); err != nil {
		return nil, fmt.Errorf("c.do -> %w", err)
	}

	return charge, nil
}

// GetPixQRCode fetches the copy-paste payload and QR image for a charge.
func (c *Client) GetPixQRCode(ctx context.Context, chargeID string) (*PixQRCode, error) {
	qr := &PixQRCode{}
	if err := c.do(ctx, http.MethodGet, "/payments/"+chargeID+"/pixQrCode", nil, qr); err != nil {
		return nil, fmt.Errorf("c.do -> %w", err)
	}

	return qr, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody *bytes.Buffer = bytes.NewBuffer(nil)
	if body != nil {
		if err := json.NewEncoder(reqBody).Encode(body); err != nil {
			return fmt.Errorf("json.NewEncoder.Encode -> %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("http.NewRequestWithContext -> %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("access_token", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("httpClient.Do -> %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}

		var parsed errorBody
		if err := json.NewDecoder(resp.Body).Decode(&parsed); err == nil && len(parsed.Errors) > 0 {
			apiErr.Message = parsed.Errors[0].Description
		}

		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("json.NewDecoder.Decode -> %w", err)
	}

	return nil
}
