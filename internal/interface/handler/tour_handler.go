package handler

import (
	"net/http"
	"time"

	"recharge-travels-service/internal/usecase"

	"github.com/go-chi/chi/v5"
)

type TourHandlers struct {
	Tours *usecase.TourConfigService
	Now   func() time.Time
}

func (h TourHandlers) Config(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.Tours.Config(r.Context(), chi.URLParam(r, "tourId")))
}

// Dates lists the bookable dates starting tomorrow
func (h TourHandlers) Dates(w http.ResponseWriter, r *http.Request) {
	now := time.Now
	if h.Now != nil {
		now = h.Now
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"tourId": chi.URLParam(r, "tourId"),
		"dates":  usecase.AvailableDates(now()),
	})
}
