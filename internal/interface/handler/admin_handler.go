package handler

import (
	"context"
	"net/http"
	"strconv"

	"recharge-travels-service/internal/domain/entity"
	"recharge-travels-service/internal/usecase"
	"recharge-travels-service/pkg/logger"

	"github.com/go-chi/chi/v5"
)

// EmailLogReader lists recorded notification emails
type EmailLogReader interface {
	Logs(ctx context.Context, status string, limit int) ([]*entity.EmailLog, error)
}

// AdminHandlers covers the status and bulk operations of the back office
type AdminHandlers struct {
	Drivers   *usecase.DriverService
	Luxury    *usecase.LuxuryService
	Cultural  *usecase.CulturalService
	Bookings  *usecase.TourBookingService
	Concierge *usecase.ConciergeService
	Emails    EmailLogReader
	Log       logger.Logger
}

type statusRequest struct {
	Status        string `json:"status"`
	PaymentStatus string `json:"paymentStatus"`
}

func (h AdminHandlers) status(w http.ResponseWriter, r *http.Request, apply func(ctx context.Context, id, status string) error) {
	var req statusRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	id := chi.URLParam(r, "id")
	if err := apply(r.Context(), id, req.Status); err != nil {
		writeServiceError(w, r, h.Log, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"id": id, "status": req.Status})
}

func (h AdminHandlers) DriverStatus(w http.ResponseWriter, r *http.Request) {
	h.status(w, r, h.Drivers.UpdateStatus)
}

func (h AdminHandlers) LuxuryStatus(w http.ResponseWriter, r *http.Request) {
	h.status(w, r, h.Luxury.SetStatus)
}

func (h AdminHandlers) CulturalBookingStatus(w http.ResponseWriter, r *http.Request) {
	h.status(w, r, h.Cultural.UpdateBookingStatus)
}

func (h AdminHandlers) ConciergeBookingStatus(w http.ResponseWriter, r *http.Request) {
	h.status(w, r, h.Concierge.UpdateBookingStatus)
}

func (h AdminHandlers) ConciergePaymentStatus(w http.ResponseWriter, r *http.Request) {
	h.status(w, r, h.Concierge.UpdatePaymentStatus)
}

// BookingStatus sets the record and/or payment status of a tour booking
func (h AdminHandlers) BookingStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.Bookings.UpdateStatus(r.Context(), id, req.Status, req.PaymentStatus); err != nil {
		writeServiceError(w, r, h.Log, err)
		return
	}

	booking, err := h.Bookings.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.Log, err)
		return
	}
	WriteJSON(w, http.StatusOK, booking)
}

type reorderRequest struct {
	IDs []string `json:"ids"`
}

func (h AdminHandlers) ReorderConciergeServices(w http.ResponseWriter, r *http.Request) {
	var req reorderRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.Concierge.Reorder(r.Context(), req.IDs); err != nil {
		writeServiceError(w, r, h.Log, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{"items": h.Concierge.Services.List(r.Context())})
}

func (h AdminHandlers) SeedConciergeServices(w http.ResponseWriter, r *http.Request) {
	created, err := h.Concierge.SeedDefaults(r.Context())
	if err != nil {
		writeServiceError(w, r, h.Log, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]int{"created": created})
}

func (h AdminHandlers) ConciergeStats(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.Concierge.Stats(r.Context()))
}

// EmailLogs lists notification emails by delivery status, failed by default
func (h AdminHandlers) EmailLogs(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	logs, err := h.Emails.Logs(r.Context(), r.URL.Query().Get("status"), limit)
	if err != nil {
		writeServiceError(w, r, h.Log, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{"items": logs})
}
