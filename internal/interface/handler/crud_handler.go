package handler

import (
	"net/http"

	"recharge-travels-service/internal/usecase"
	"recharge-travels-service/pkg/logger"

	"github.com/go-chi/chi/v5"
)

// CRUDHandlers exposes a catalog service as list, get, create, update and delete
type CRUDHandlers[T any] struct {
	Service *usecase.CatalogService[T]
	Log     logger.Logger
}

func (h CRUDHandlers[T]) List(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]interface{}{"items": h.Service.List(r.Context())})
}

func (h CRUDHandlers[T]) Get(w http.ResponseWriter, r *http.Request) {
	doc, err := h.Service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, h.Log, err)
		return
	}
	WriteJSON(w, http.StatusOK, doc)
}

func (h CRUDHandlers[T]) Create(w http.ResponseWriter, r *http.Request) {
	doc := new(T)
	if !decodeJSON(w, r, doc) {
		return
	}

	id, err := h.Service.Create(r.Context(), doc)
	if err != nil {
		writeServiceError(w, r, h.Log, err)
		return
	}
	WriteJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (h CRUDHandlers[T]) Update(w http.ResponseWriter, r *http.Request) {
	var fields map[string]interface{}
	if !decodeJSON(w, r, &fields) {
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.Service.Update(r.Context(), id, fields); err != nil {
		writeServiceError(w, r, h.Log, err)
		return
	}

	doc, err := h.Service.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.Log, err)
		return
	}
	WriteJSON(w, http.StatusOK, doc)
}

func (h CRUDHandlers[T]) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, h.Log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Mount registers the five routes on r
func (h CRUDHandlers[T]) Mount(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Patch("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}
