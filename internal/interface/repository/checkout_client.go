package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"recharge-travels-service/internal/domain/entity"
	"recharge-travels-service/internal/domain/repository"
	"recharge-travels-service/pkg/logger"
)

// CheckoutClient handles creating hosted checkout sessions on the payment service
type CheckoutClient struct {
	logger      logger.Logger
	baseURL     string
	bearerToken string
	httpClient  *http.Client
}

// NewCheckoutClient creates a new checkout service client
func NewCheckoutClient(baseURL, bearerToken string, logger logger.Logger) repository.CheckoutGateway {
	if baseURL == "" {
		baseURL = "http://localhost:8090"
	}

	return &CheckoutClient{
		logger:      logger,
		baseURL:     strings.TrimRight(baseURL, "/"),
		bearerToken: bearerToken,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
	}
}

// CreateSession asks the payment service for a checkout session and returns its id.
// The redirect URL arrives later through the notification channel.
func (c *CheckoutClient) CreateSession(ctx context.Context, checkout entity.CheckoutRequest) (string, error) {
	jsonData, err := json.Marshal(checkout)
	if err != nil {
		return "", fmt.Errorf("failed to marshal checkout request: %w", err)
	}

	c.logger.Info("Creating checkout session",
		"bookingRef", checkout.BookingRef,
		"tourId", checkout.TourID,
		"totalAmountUSD", checkout.TotalAmountUSD)

	url := fmt.Sprintf("%s/api/v1/checkout/sessions", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	if c.bearerToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.bearerToken)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	var response struct {
		Success bool `json:"success"`
		Data    struct {
			SessionID string `json:"sessionId"`
		} `json:"data"`
		Error struct {
			Message string `json:"message"`
			Code    string `json:"code"`
		} `json:"error"`
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		json.NewDecoder(resp.Body).Decode(&response)
		return "", fmt.Errorf("checkout service returned status %d: %s", resp.StatusCode, response.Error.Message)
	}

	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if !response.Success {
		return "", fmt.Errorf("failed to create checkout session: %s (code: %s)", response.Error.Message, response.Error.Code)
	}

	if response.Data.SessionID == "" {
		return "", errors.New("checkout service returned no session id")
	}

	c.logger.Info("Checkout session created",
		"bookingRef", checkout.BookingRef,
		"sessionId", response.Data.SessionID)

	return response.Data.SessionID, nil
}
