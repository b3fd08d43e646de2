package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"recharge-travels-service/internal/usecase"
	"recharge-travels-service/pkg/logger"

	"github.com/go-chi/chi/v5"
)

// VoucherRenderer produces the voucher PDF for a booking reference
type VoucherRenderer interface {
	Voucher(ctx context.Context, reference string, who usecase.VoucherRequester) ([]byte, string, error)
}

type VoucherHandlers struct {
	Vouchers VoucherRenderer
	Log      logger.Logger
}

// Download serves the voucher to its owner. Callers prove ownership with a
// bearer token or the booking email in the email query parameter.
func (h VoucherHandlers) Download(w http.ResponseWriter, r *http.Request) {
	who := usecase.VoucherRequester{
		Email: r.URL.Query().Get("email"),
		User:  UserFromContext(r.Context()),
	}
	pdf, filename, err := h.Vouchers.Voucher(r.Context(), chi.URLParam(r, "reference"), who)
	if err != nil {
		writeServiceError(w, r, h.Log, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(pdf)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}
