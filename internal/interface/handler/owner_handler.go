package handler

import (
	"context"
	"net/http"
	"strings"

	"recharge-travels-service/internal/domain/entity"
	"recharge-travels-service/pkg/logger"

	"github.com/go-chi/chi/v5"
)

// OwnerReviewer is the vehicle owner verification workflow
type OwnerReviewer interface {
	List(ctx context.Context, filter entity.OwnerFilter) []entity.OwnerSubmission
	Stats(ctx context.Context) (entity.OwnerCounts, error)
	Get(ctx context.Context, id string) (*entity.OwnerSubmission, error)
	Approve(ctx context.Context, id string, admin *entity.User, notes string) (*entity.OwnerSubmission, error)
	Reject(ctx context.Context, id string, admin *entity.User, notes string) (*entity.OwnerSubmission, error)
	Suspend(ctx context.Context, id string, admin *entity.User, notes string) (*entity.OwnerSubmission, error)
	Reactivate(ctx context.Context, id string, admin *entity.User) (*entity.OwnerSubmission, error)
	Documents(ctx context.Context, ownerID string) ([]entity.OwnerDocument, error)
	VerifyDocument(ctx context.Context, id string) (*entity.OwnerDocument, error)
	RejectDocument(ctx context.Context, id, reason string) (*entity.OwnerDocument, error)
}

type OwnerHandlers struct {
	Owners OwnerReviewer
	Log    logger.Logger
}

type decisionRequest struct {
	Notes  string `json:"notes"`
	Reason string `json:"reason"`
}

// decision reads an optional JSON body; an empty body means no notes
func decision(w http.ResponseWriter, r *http.Request) (decisionRequest, bool) {
	var req decisionRequest
	if r.ContentLength == 0 {
		return req, true
	}
	return req, decodeJSON(w, r, &req)
}

func (h OwnerHandlers) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := entity.OwnerFilter{
		Status: entity.VerificationStatus(q.Get("status")),
		Search: strings.TrimSpace(q.Get("search")),
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{"items": h.Owners.List(r.Context(), filter)})
}

func (h OwnerHandlers) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Owners.Stats(r.Context())
	if err != nil {
		writeServiceError(w, r, h.Log, err)
		return
	}
	WriteJSON(w, http.StatusOK, stats)
}

func (h OwnerHandlers) Get(w http.ResponseWriter, r *http.Request) {
	owner, err := h.Owners.Get(r.Context(), chi.URLParam(r, "id"))
	h.writeOwner(w, r, owner, err)
}

func (h OwnerHandlers) Approve(w http.ResponseWriter, r *http.Request) {
	req, ok := decision(w, r)
	if !ok {
		return
	}
	owner, err := h.Owners.Approve(r.Context(), chi.URLParam(r, "id"), UserFromContext(r.Context()), req.Notes)
	h.writeOwner(w, r, owner, err)
}

func (h OwnerHandlers) Reject(w http.ResponseWriter, r *http.Request) {
	req, ok := decision(w, r)
	if !ok {
		return
	}
	owner, err := h.Owners.Reject(r.Context(), chi.URLParam(r, "id"), UserFromContext(r.Context()), req.Notes)
	h.writeOwner(w, r, owner, err)
}

func (h OwnerHandlers) Suspend(w http.ResponseWriter, r *http.Request) {
	req, ok := decision(w, r)
	if !ok {
		return
	}
	owner, err := h.Owners.Suspend(r.Context(), chi.URLParam(r, "id"), UserFromContext(r.Context()), req.Notes)
	h.writeOwner(w, r, owner, err)
}

func (h OwnerHandlers) Reactivate(w http.ResponseWriter, r *http.Request) {
	owner, err := h.Owners.Reactivate(r.Context(), chi.URLParam(r, "id"), UserFromContext(r.Context()))
	h.writeOwner(w, r, owner, err)
}

func (h OwnerHandlers) writeOwner(w http.ResponseWriter, r *http.Request, owner *entity.OwnerSubmission, err error) {
	if err != nil {
		writeServiceError(w, r, h.Log, err)
		return
	}
	WriteJSON(w, http.StatusOK, owner)
}

func (h OwnerHandlers) Documents(w http.ResponseWriter, r *http.Request) {
	docs, err := h.Owners.Documents(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, h.Log, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{"items": docs})
}

func (h OwnerHandlers) VerifyDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := h.Owners.VerifyDocument(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, h.Log, err)
		return
	}
	WriteJSON(w, http.StatusOK, doc)
}

func (h OwnerHandlers) RejectDocument(w http.ResponseWriter, r *http.Request) {
	req, ok := decision(w, r)
	if !ok {
		return
	}

	doc, err := h.Owners.RejectDocument(r.Context(), chi.URLParam(r, "id"), req.Reason)
	if err != nil {
		writeServiceError(w, r, h.Log, err)
		return
	}
	WriteJSON(w, http.StatusOK, doc)
}
