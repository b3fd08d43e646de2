package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"recharge-travels-service/internal/domain/entity"
	"recharge-travels-service/internal/domain/repository"
	"recharge-travels-service/pkg/logger"
	"recharge-travels-service/pkg/metrics"
)

type SubmitOutcome string

const (
	OutcomeComplete       SubmitOutcome = "complete"
	OutcomeRedirect       SubmitOutcome = "redirect"
	OutcomeCheckoutFailed SubmitOutcome = "checkout_failed"
	OutcomePaymentPending SubmitOutcome = "payment_pending"
)

// SubmitRequest is one submission attempt. Reference must be fresh.
type SubmitRequest struct {
	Reference string
	Draft     entity.BookingDraft
	Config    entity.TourConfig
	User      *entity.User
}

// SubmitResult reports how a submission ended
type SubmitResult struct {
	Outcome     SubmitOutcome `json:"outcome"`
	Reference   string        `json:"reference"`
	BookingID   string        `json:"bookingId"`
	RedirectURL string        `json:"redirectUrl,omitempty"`
	Message     string        `json:"message,omitempty"`
	Pricing     Pricing       `json:"pricing"`
}

// Submitter persists a validated draft and hands off to payment
type Submitter interface {
	Submit(ctx context.Context, req SubmitRequest) (*SubmitResult, error)
}

// BookingSubmitter handles final booking submission
type BookingSubmitter struct {
	bookings      repository.BookingRepository
	gateway       repository.CheckoutGateway
	awaiter       CheckoutAwaiter
	notifier      *Notifier
	publisher     repository.EventPublisher
	metrics       *metrics.Metrics
	logger        logger.Logger
	notifyTimeout time.Duration
}

// NewBookingSubmitter creates a new booking submitter
func NewBookingSubmitter(
	bookings repository.BookingRepository,
	gateway repository.CheckoutGateway,
	awaiter CheckoutAwaiter,
	notifier *Notifier,
	publisher repository.EventPublisher,
	metrics *metrics.Metrics,
	logger logger.Logger,
	notifyTimeout time.Duration,
) *BookingSubmitter {
	if notifyTimeout <= 0 {
		notifyTimeout = 10 * time.Second
	}

	return &BookingSubmitter{
		bookings:      bookings,
		gateway:       gateway,
		awaiter:       awaiter,
		notifier:      notifier,
		publisher:     publisher,
		metrics:       metrics,
		logger:        logger,
		notifyTimeout: notifyTimeout,
	}
}

// BuildBookingRecord assembles the stored snapshot of a draft
func BuildBookingRecord(req SubmitRequest, pricing Pricing) entity.BookingRecord {
	d := req.Draft
	name := strings.TrimSpace(d.FirstName + " " + d.LastName)
	phone := d.FullPhone()

	record := entity.BookingRecord{
		Reference:          req.Reference,
		BookingRef:         req.Reference,
		ConfirmationNumber: req.Reference,
		TourID:             req.Config.ID,
		TourTitle:          req.Config.Title,
		BookingType:        entity.BookingTypeTour,

		Customer: entity.BookingCustomer{
			FirstName: d.FirstName,
			LastName:  d.LastName,
			Email:     d.Email,
			Phone:     phone,
		},
		CustomerName:  name,
		CustomerEmail: d.Email,
		CustomerPhone: phone,
		Name:          name,
		EmailAddress:  d.Email,
		Phone:         phone,

		Details: entity.BookingDetails{
			Date:            d.TourDate,
			PickupOption:    d.PickupOption,
			PickupAddress:   d.PickupAddress,
			Adults:          d.Adults,
			Children:        d.Children,
			Infants:         d.Infants,
			SpecialRequests: d.SpecialRequests,
		},
		TravelDate:      d.TourDate,
		TourDate:        d.TourDate,
		Adults:          d.Adults,
		Children:        d.Children,
		SpecialRequests: d.SpecialRequests,

		Payment: entity.BookingPayment{
			Method:     d.PaymentMethod,
			Subtotal:   Amount(pricing.Subtotal),
			PickupCost: Amount(pricing.PickupCost),
			Total:      Amount(pricing.Total),
			Currency:   pricing.Currency,
		},
		TotalPrice:     Amount(pricing.Total),
		TotalAmountUSD: Amount(pricing.Total),
		Currency:       pricing.Currency,
		PaymentMethod:  d.PaymentMethod,
	}

	if req.User != nil {
		record.Customer.UserID = req.User.ID
	}

	return record
}

// Submit persists the booking and, for card payments, waits for the
// checkout redirect. Errors wrap ErrSubmissionFailed; nothing is retried.
func (s *BookingSubmitter) Submit(ctx context.Context, req SubmitRequest) (*SubmitResult, error) {
	pricing := CalculatePricing(req.Draft, req.Config)
	record := BuildBookingRecord(req, pricing)
	method := req.Draft.PaymentMethod

	s.metrics.BookingsSubmitted.WithLabelValues(method).Inc()

	switch method {
	case entity.PaymentCard:
		return s.submitCard(ctx, req, record, pricing)
	case entity.PaymentPayPal, entity.PaymentBank:
		return s.submitOffline(ctx, req, record, pricing)
	}

	return nil, &ValidationError{Fields: map[string]string{"paymentMethod": "Please select a payment method"}}
}

func (s *BookingSubmitter) submitCard(ctx context.Context, req SubmitRequest, record entity.BookingRecord, pricing Pricing) (*SubmitResult, error) {
	sessionID, err := s.gateway.CreateSession(ctx, entity.CheckoutRequest{
		BookingRef:       req.Reference,
		TourID:           req.Config.ID,
		TourTitle:        req.Config.Title,
		TourCategory:     "Tour",
		CustomerName:     record.CustomerName,
		CustomerEmail:    record.CustomerEmail,
		CustomerPhone:    record.CustomerPhone,
		TravelDate:       req.Draft.TourDate,
		TravellersAdults: req.Draft.Adults,
		TravellersKids:   req.Draft.Children,
		PricePerPerson:   req.Config.AdultPrice,
		TotalAmountUSD:   Amount(pricing.Total),
		Currency:         pricing.Currency,
	})
	if err != nil {
		s.metrics.ErrorsCount.WithLabelValues("create_checkout_session").Inc()
		s.logger.Error("Failed to create checkout session", "reference", req.Reference, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrSubmissionFailed, err)
	}

	record.Status = entity.BookingPendingPayment
	record.Payment.Status = entity.PaymentStatusPending
	record.CheckoutSessionID = sessionID

	id, err := s.bookings.Create(ctx, &record)
	if err != nil {
		s.metrics.ErrorsCount.WithLabelValues("persist_booking").Inc()
		s.logger.Error("Failed to persist card booking", "reference", req.Reference, "sessionId", sessionID, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrSubmissionFailed, err)
	}

	publishEvent(ctx, s.publisher, s.logger, EventBookingCreated, id, map[string]interface{}{
		"reference": req.Reference,
		"method":    entity.PaymentCard,
		"total":     pricing.Total.StringFixed(2),
	})

	result := &SubmitResult{Reference: req.Reference, BookingID: id, Pricing: pricing}

	waitCtx, cancel := context.WithTimeout(ctx, s.notifyTimeout)
	defer cancel()

	notification, err := s.awaiter.Await(waitCtx, sessionID)

	// The booking exists now; record its fate even if the caller has gone
	updateCtx := context.WithoutCancel(ctx)

	switch {
	case err != nil:
		if !isTimeout(err) {
			s.logger.Warn("Checkout wait ended early", "reference", req.Reference, "error", err)
		}
		if err := s.bookings.UpdateStatus(updateCtx, id, entity.BookingPaymentPendingVerification, entity.PaymentStatusPendingManual); err != nil {
			s.logger.Error("Failed to mark booking pending verification", "id", id, "error", err)
		}
		publishEvent(updateCtx, s.publisher, s.logger, EventBookingPaymentPending, id, map[string]interface{}{
			"reference": req.Reference,
			"sessionId": sessionID,
		})
		result.Outcome = OutcomePaymentPending
		result.Message = "We are confirming your payment. You will receive an email once it is verified."

	case notification.URL != "":
		result.Outcome = OutcomeRedirect
		result.RedirectURL = notification.URL

	default:
		if err := s.bookings.UpdateStatus(updateCtx, id, "", entity.PaymentStatusFailed); err != nil {
			s.logger.Error("Failed to mark booking payment failed", "id", id, "error", err)
		}
		result.Outcome = OutcomeCheckoutFailed
		result.Message = notification.Error
	}

	s.metrics.CheckoutOutcomes.WithLabelValues(string(result.Outcome)).Inc()
	s.logger.Info("Card booking submitted",
		"reference", req.Reference,
		"bookingId", id,
		"outcome", result.Outcome)

	return result, nil
}

func (s *BookingSubmitter) submitOffline(ctx context.Context, req SubmitRequest, record entity.BookingRecord, pricing Pricing) (*SubmitResult, error) {
	record.Status = entity.BookingConfirmed
	if req.Draft.PaymentMethod == entity.PaymentPayPal {
		record.Payment.Status = entity.PaymentStatusPendingPayPal
	} else {
		record.Payment.Status = entity.PaymentStatusPendingBank
	}

	id, err := s.bookings.Create(ctx, &record)
	if err != nil {
		s.metrics.ErrorsCount.WithLabelValues("persist_booking").Inc()
		s.logger.Error("Failed to persist booking", "reference", req.Reference, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrSubmissionFailed, err)
	}
	record.ID = id

	data := map[string]interface{}{
		"reference": req.Reference,
		"method":    req.Draft.PaymentMethod,
		"total":     pricing.Total.StringFixed(2),
	}
	publishEvent(ctx, s.publisher, s.logger, EventBookingCreated, id, data)
	publishEvent(ctx, s.publisher, s.logger, EventBookingConfirmed, id, data)

	if s.notifier != nil {
		s.notifier.Dispatch(EmailBookingConfirmation, BookingConfirmationEmail{
			Booking:        record,
			CurrencySymbol: req.Config.CurrencySymbol,
		})
	}

	s.logger.Info("Booking confirmed",
		"reference", req.Reference,
		"bookingId", id,
		"method", req.Draft.PaymentMethod)

	return &SubmitResult{
		Outcome:   OutcomeComplete,
		Reference: req.Reference,
		BookingID: id,
		Pricing:   pricing,
	}, nil
}
