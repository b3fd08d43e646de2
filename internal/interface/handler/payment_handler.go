package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"recharge-travels-service/internal/domain/entity"
	"recharge-travels-service/internal/usecase"
	"recharge-travels-service/pkg/logger"

	"github.com/go-chi/chi/v5"
)

const SignatureHeader = "X-Checkout-Signature"

// CheckoutIntake records results posted by the payment service
type CheckoutIntake interface {
	Notify(ctx context.Context, notification *entity.CheckoutNotification) error
}

type PaymentHandlers struct {
	Checkout      CheckoutIntake
	WebhookSecret string
	Log           logger.Logger
}

type notifyRequest struct {
	URL   string `json:"url"`
	Error string `json:"error"`
}

// Notify accepts a signed checkout result for the session in the path
func (h PaymentHandlers) Notify(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_body", "could not read body")
		return
	}

	sessionID := chi.URLParam(r, "sessionId")
	if !usecase.VerifyCheckoutSignature(sessionID, body, r.Header.Get(SignatureHeader), h.WebhookSecret) {
		h.Log.Warn("Rejected unsigned checkout notification", "path", r.URL.Path)
		WriteError(w, http.StatusUnauthorized, "invalid_signature", "invalid signature")
		return
	}

	var req notifyRequest
	if err := json.Unmarshal(body, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	notification := &entity.CheckoutNotification{
		SessionID: sessionID,
		URL:       req.URL,
		Error:     req.Error,
	}
	if err := h.Checkout.Notify(r.Context(), notification); err != nil {
		writeServiceError(w, r, h.Log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
