package handler

import (
	"net/http"

	"recharge-travels-service/internal/domain/entity"
	"recharge-travels-service/internal/usecase"
	"recharge-travels-service/pkg/logger"

	"github.com/go-chi/chi/v5"
)

type ContentHandlers struct {
	Content   *usecase.ContentService
	Concierge *usecase.ConciergeService
	Luxury    *usecase.LuxuryService
	Log       logger.Logger
}

func (h ContentHandlers) Destination(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.Content.Destination(r.Context(), chi.URLParam(r, "slug")))
}

func (h ContentHandlers) SaveDestination(w http.ResponseWriter, r *http.Request) {
	var content entity.DestinationContent
	if !decodeJSON(w, r, &content) {
		return
	}

	slug := chi.URLParam(r, "slug")
	if err := h.Content.SaveDestination(r.Context(), slug, &content); err != nil {
		writeServiceError(w, r, h.Log, err)
		return
	}
	WriteJSON(w, http.StatusOK, h.Content.Destination(r.Context(), slug))
}

func (h ContentHandlers) PrivateCharters(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.Content.PrivateCharters(r.Context()))
}

func (h ContentHandlers) SavePrivateCharters(w http.ResponseWriter, r *http.Request) {
	// decode over the current page so omitted sections survive
	content := h.Content.PrivateCharters(r.Context())
	if !decodeJSON(w, r, &content) {
		return
	}

	if err := h.Content.SavePrivateCharters(r.Context(), content); err != nil {
		writeServiceError(w, r, h.Log, err)
		return
	}
	WriteJSON(w, http.StatusOK, content)
}

func (h ContentHandlers) ResetPrivateCharters(w http.ResponseWriter, r *http.Request) {
	content, err := h.Content.ResetPrivateCharters(r.Context())
	if err != nil {
		writeServiceError(w, r, h.Log, err)
		return
	}
	WriteJSON(w, http.StatusOK, content)
}

// ConciergePage is everything the public concierge page renders
func (h ContentHandlers) ConciergePage(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"hero":     h.Content.ConciergeHero(r.Context()),
		"settings": h.Content.ConciergeSettings(r.Context()),
		"services": h.Concierge.ActiveServices(r.Context()),
	})
}

func (h ContentHandlers) ConciergeHero(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.Content.ConciergeHero(r.Context()))
}

func (h ContentHandlers) SaveConciergeHero(w http.ResponseWriter, r *http.Request) {
	hero := h.Content.ConciergeHero(r.Context())
	if !decodeJSON(w, r, &hero) {
		return
	}
	if err := h.Content.SaveConciergeHero(r.Context(), hero); err != nil {
		writeServiceError(w, r, h.Log, err)
		return
	}
	WriteJSON(w, http.StatusOK, hero)
}

func (h ContentHandlers) ConciergeSettings(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.Content.ConciergeSettings(r.Context()))
}

func (h ContentHandlers) SaveConciergeSettings(w http.ResponseWriter, r *http.Request) {
	settings := h.Content.ConciergeSettings(r.Context())
	if !decodeJSON(w, r, &settings) {
		return
	}
	if err := h.Content.SaveConciergeSettings(r.Context(), settings); err != nil {
		writeServiceError(w, r, h.Log, err)
		return
	}
	WriteJSON(w, http.StatusOK, settings)
}

// LuxuryExperiences lists published experiences for the public site
func (h ContentHandlers) LuxuryExperiences(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]interface{}{"items": h.Luxury.ListPublished(r.Context())})
}
