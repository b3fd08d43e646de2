package handler

import (
	"context"
	"io"
	"net/http"

	"recharge-travels-service/internal/domain/entity"
	"recharge-travels-service/internal/usecase"
	"recharge-travels-service/pkg/logger"

	"github.com/go-chi/chi/v5"
)

// Wizard is the booking wizard as seen by HTTP
type Wizard interface {
	Start(ctx context.Context, tourID string, user *entity.User) *usecase.WizardView
	Get(id string) (*usecase.WizardView, error)
	Patch(id string, patch []byte) (*usecase.WizardView, error)
	Next(id string) (*usecase.WizardView, error)
	Back(id string) (*usecase.WizardView, error)
	Submit(ctx context.Context, id string) (*usecase.WizardView, error)
}

type WizardHandlers struct {
	Wizard Wizard
	Log    logger.Logger
}

// wizardError carries the session snapshot next to the error so the
// client can redraw the form
type wizardError struct {
	ErrorEnvelope
	Wizard *usecase.WizardView `json:"wizard,omitempty"`
}

func (h WizardHandlers) respond(w http.ResponseWriter, r *http.Request, view *usecase.WizardView, err error) {
	if err == nil {
		WriteJSON(w, http.StatusOK, view)
		return
	}

	status, body := classify(err)
	if status >= http.StatusInternalServerError {
		h.Log.Error("Wizard request failed",
			"requestId", RequestIDFromContext(r.Context()),
			"path", r.URL.Path,
			"error", err)
	}
	WriteJSON(w, status, wizardError{ErrorEnvelope: body, Wizard: view})
}

type startRequest struct {
	TourID string `json:"tourId"`
}

func (h WizardHandlers) Start(w http.ResponseWriter, r *http.Request) {
	var req startRequest
	if r.ContentLength != 0 {
		if !decodeJSON(w, r, &req) {
			return
		}
	}

	view := h.Wizard.Start(r.Context(), req.TourID, UserFromContext(r.Context()))
	WriteJSON(w, http.StatusCreated, view)
}

func (h WizardHandlers) Get(w http.ResponseWriter, r *http.Request) {
	view, err := h.Wizard.Get(chi.URLParam(r, "id"))
	h.respond(w, r, view, err)
}

func (h WizardHandlers) Patch(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	view, err := h.Wizard.Patch(chi.URLParam(r, "id"), body)
	h.respond(w, r, view, err)
}

func (h WizardHandlers) Next(w http.ResponseWriter, r *http.Request) {
	view, err := h.Wizard.Next(chi.URLParam(r, "id"))
	h.respond(w, r, view, err)
}

func (h WizardHandlers) Back(w http.ResponseWriter, r *http.Request) {
	view, err := h.Wizard.Back(chi.URLParam(r, "id"))
	h.respond(w, r, view, err)
}

func (h WizardHandlers) Submit(w http.ResponseWriter, r *http.Request) {
	view, err := h.Wizard.Submit(r.Context(), chi.URLParam(r, "id"))
	h.respond(w, r, view, err)
}
