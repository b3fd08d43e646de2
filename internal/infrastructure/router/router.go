package router

import (
	"net/http"

	"recharge-travels-service/internal/domain/entity"
	"recharge-travels-service/internal/interface/handler"
	"recharge-travels-service/internal/usecase"
	"recharge-travels-service/pkg/logger"
	"recharge-travels-service/pkg/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Dependencies struct {
	Log     logger.Logger
	Metrics *metrics.Metrics
	// MetricsHandler serves /metrics; nil uses the default registry
	MetricsHandler http.Handler

	Verifier handler.TokenVerifier
	Policy   handler.Authorizer

	Wizard    handler.Wizard
	Tours     *usecase.TourConfigService
	Checkout  handler.CheckoutIntake
	Vouchers  handler.VoucherRenderer
	Uploads   handler.Uploader
	Owners    handler.OwnerReviewer
	Emails    handler.EmailLogReader
	Content   *usecase.ContentService
	Concierge *usecase.ConciergeService
	Drivers   *usecase.DriverService
	Luxury    *usecase.LuxuryService
	Cultural  *usecase.CulturalService
	Bookings  *usecase.TourBookingService

	WebhookSecret string
}

func NewRouter(deps Dependencies) http.Handler {
	r := chi.NewRouter()
	r.Use(handler.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(handler.RequestLogger(deps.Log, deps.Metrics))

	metricsHandler := deps.MetricsHandler
	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}
	r.Handle("/metrics", metricsHandler)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("Healthy"))
	})

	wizardHandlers := handler.WizardHandlers{Wizard: deps.Wizard, Log: deps.Log}
	tourHandlers := handler.TourHandlers{Tours: deps.Tours}
	paymentHandlers := handler.PaymentHandlers{Checkout: deps.Checkout, WebhookSecret: deps.WebhookSecret, Log: deps.Log}
	voucherHandlers := handler.VoucherHandlers{Vouchers: deps.Vouchers, Log: deps.Log}
	uploadHandlers := handler.UploadHandlers{Uploads: deps.Uploads, Log: deps.Log}
	ownerHandlers := handler.OwnerHandlers{Owners: deps.Owners, Log: deps.Log}
	contentHandlers := handler.ContentHandlers{
		Content:   deps.Content,
		Concierge: deps.Concierge,
		Luxury:    deps.Luxury,
		Log:       deps.Log,
	}
	adminHandlers := handler.AdminHandlers{
		Drivers:   deps.Drivers,
		Luxury:    deps.Luxury,
		Cultural:  deps.Cultural,
		Bookings:  deps.Bookings,
		Concierge: deps.Concierge,
		Emails:    deps.Emails,
		Log:       deps.Log,
	}

	r.Route("/v1", func(r chi.Router) {
		// Booking wizard; signed-in customers get their contact details prefilled
		r.Route("/booking-wizard", func(r chi.Router) {
			r.Use(handler.OptionalAuth(deps.Verifier, deps.Log))
			r.Post("/", wizardHandlers.Start)
			r.Get("/{id}", wizardHandlers.Get)
			r.Patch("/{id}", wizardHandlers.Patch)
			r.Post("/{id}/next", wizardHandlers.Next)
			r.Post("/{id}/back", wizardHandlers.Back)
			r.Post("/{id}/submit", wizardHandlers.Submit)
		})

		r.Get("/tours/{tourId}/config", tourHandlers.Config)
		r.Get("/tours/{tourId}/dates", tourHandlers.Dates)
		r.With(handler.OptionalAuth(deps.Verifier, deps.Log)).
			Get("/bookings/{reference}/voucher.pdf", voucherHandlers.Download)

		// Called by the payment service, authenticated by HMAC signature
		r.Post("/payments/checkout-sessions/{sessionId}/notify", paymentHandlers.Notify)

		// Public site content
		r.Get("/destinations/{slug}", contentHandlers.Destination)
		r.Get("/content/private-charters", contentHandlers.PrivateCharters)
		r.Get("/content/concierge", contentHandlers.ConciergePage)
		r.Get("/luxury-experiences", contentHandlers.LuxuryExperiences)

		r.Route("/admin", func(r chi.Router) {
			r.Use(handler.RequireAdmin(deps.Verifier, deps.Policy, deps.Log))

			r.Route("/owners", func(r chi.Router) {
				r.Get("/", ownerHandlers.List)
				r.Get("/stats", ownerHandlers.Stats)
				r.Get("/{id}", ownerHandlers.Get)
				r.Post("/{id}/approve", ownerHandlers.Approve)
				r.Post("/{id}/reject", ownerHandlers.Reject)
				r.Post("/{id}/suspend", ownerHandlers.Suspend)
				r.Post("/{id}/reactivate", ownerHandlers.Reactivate)
				r.Get("/{id}/documents", ownerHandlers.Documents)
			})
			r.Post("/documents/{id}/verify", ownerHandlers.VerifyDocument)
			r.Post("/documents/{id}/reject", ownerHandlers.RejectDocument)

			r.Route("/drivers", func(r chi.Router) {
				r.Patch("/{id}/status", adminHandlers.DriverStatus)
				handler.CRUDHandlers[entity.Driver]{Service: deps.Drivers.CatalogService, Log: deps.Log}.Mount(r)
			})
			r.Route("/luxury-experiences", func(r chi.Router) {
				r.Patch("/{id}/status", adminHandlers.LuxuryStatus)
				handler.CRUDHandlers[entity.LuxuryExperience]{Service: deps.Luxury.CatalogService, Log: deps.Log}.Mount(r)
			})
			r.Route("/cultural-tours", func(r chi.Router) {
				handler.CRUDHandlers[entity.CulturalTour]{Service: deps.Cultural.Tours, Log: deps.Log}.Mount(r)
			})
			r.Route("/cultural-bookings", func(r chi.Router) {
				r.Patch("/{id}/status", adminHandlers.CulturalBookingStatus)
				handler.CRUDHandlers[entity.CulturalBooking]{Service: deps.Cultural.Bookings, Log: deps.Log}.Mount(r)
			})
			r.Route("/bookings", func(r chi.Router) {
				r.Patch("/{id}/status", adminHandlers.BookingStatus)
				handler.CRUDHandlers[entity.BookingRecord]{Service: deps.Bookings.CatalogService, Log: deps.Log}.Mount(r)
			})

			r.Route("/concierge", func(r chi.Router) {
				r.Get("/stats", adminHandlers.ConciergeStats)
				r.Get("/hero", contentHandlers.ConciergeHero)
				r.Put("/hero", contentHandlers.SaveConciergeHero)
				r.Get("/settings", contentHandlers.ConciergeSettings)
				r.Put("/settings", contentHandlers.SaveConciergeSettings)
				r.Route("/services", func(r chi.Router) {
					r.Post("/reorder", adminHandlers.ReorderConciergeServices)
					r.Post("/seed", adminHandlers.SeedConciergeServices)
					handler.CRUDHandlers[entity.ConciergeService]{Service: deps.Concierge.Services, Log: deps.Log}.Mount(r)
				})
				r.Route("/bookings", func(r chi.Router) {
					r.Patch("/{id}/status", adminHandlers.ConciergeBookingStatus)
					r.Patch("/{id}/payment-status", adminHandlers.ConciergePaymentStatus)
					handler.CRUDHandlers[entity.ConciergeBooking]{Service: deps.Concierge.Bookings, Log: deps.Log}.Mount(r)
				})
			})

			r.Put("/destinations/{slug}", contentHandlers.SaveDestination)
			r.Get("/content/private-charters", contentHandlers.PrivateCharters)
			r.Put("/content/private-charters", contentHandlers.SavePrivateCharters)
			r.Post("/content/private-charters/reset", contentHandlers.ResetPrivateCharters)

			r.Post("/uploads", uploadHandlers.Create)
			r.Get("/emails", adminHandlers.EmailLogs)
		})
	})

	return r
}
