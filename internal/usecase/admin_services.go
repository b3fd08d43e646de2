package usecase

import (
	"context"
	"fmt"

	"recharge-travels-service/internal/domain/entity"
	"recharge-travels-service/internal/domain/repository"
	"recharge-travels-service/pkg/logger"
	"recharge-travels-service/pkg/metrics"
)

// DriverService manages the driver directory
type DriverService struct {
	*CatalogService[entity.Driver]
}

func NewDriverService(repo repository.CollectionRepository[entity.Driver], m *metrics.Metrics, log logger.Logger) *DriverService {
	return &DriverService{NewCatalogService("drivers", repo, m, log).WithRules(FieldRules{
		"tier":           entity.ValidDriverTier,
		"current_status": entity.ValidDriverStatus,
	})}
}

// UpdateStatus sets current_status
func (s *DriverService) UpdateStatus(ctx context.Context, id, status string) error {
	return s.setStatus(ctx, id, "current_status", status, entity.ValidDriverStatus)
}

// LuxuryService manages luxury experiences
type LuxuryService struct {
	*CatalogService[entity.LuxuryExperience]
}

func NewLuxuryService(repo repository.CollectionRepository[entity.LuxuryExperience], m *metrics.Metrics, log logger.Logger) *LuxuryService {
	return &LuxuryService{NewCatalogService("luxury_experiences", repo, m, log).WithRules(FieldRules{
		"status": entity.ValidExperienceStatus,
	})}
}

// SetStatus publishes, archives or drafts an experience
func (s *LuxuryService) SetStatus(ctx context.Context, id, status string) error {
	return s.setStatus(ctx, id, "status", status, entity.ValidExperienceStatus)
}

// ListPublished returns experiences visible on the site
func (s *LuxuryService) ListPublished(ctx context.Context) []entity.LuxuryExperience {
	return s.Find(ctx, map[string]interface{}{"status": entity.ExperiencePublished})
}

// CulturalService manages cultural tours and their bookings
type CulturalService struct {
	Tours    *CatalogService[entity.CulturalTour]
	Bookings *CatalogService[entity.CulturalBooking]
}

func NewCulturalService(
	tours repository.CollectionRepository[entity.CulturalTour],
	bookings repository.CollectionRepository[entity.CulturalBooking],
	m *metrics.Metrics,
	log logger.Logger,
) *CulturalService {
	bookingCatalog := NewCatalogService("cultural_bookings", bookings, m, log).WithRules(FieldRules{
		"status": entity.ValidCulturalBookingStatus,
	})

	return &CulturalService{
		Tours:    NewCatalogService("cultural_tours", tours, m, log),
		Bookings: bookingCatalog,
	}
}

// UpdateBookingStatus confirms or cancels a pending booking
func (s *CulturalService) UpdateBookingStatus(ctx context.Context, id, status string) error {
	if status != entity.CulturalBookingConfirmed && status != entity.CulturalBookingCancelled {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	booking, err := s.Bookings.Get(ctx, id)
	if err != nil {
		return err
	}
	if booking.Status != entity.CulturalBookingPending {
		return fmt.Errorf("%w: booking is %s", ErrInvalidTransition, booking.Status)
	}

	return s.Bookings.Update(ctx, id, map[string]interface{}{"status": status})
}

// TourBookingService manages submitted tour bookings
type TourBookingService struct {
	*CatalogService[entity.BookingRecord]
	bookings repository.BookingRepository
}

func NewTourBookingService(repo repository.BookingRepository, m *metrics.Metrics, log logger.Logger) *TourBookingService {
	catalog := NewCatalogService[entity.BookingRecord]("bookings", repo, m, log).WithRules(FieldRules{
		"status":         entity.ValidBookingStatus,
		"payment.status": entity.ValidPaymentStatus,
		"booking_type":   entity.ValidBookingType,
	})

	return &TourBookingService{
		CatalogService: catalog,
		bookings:       repo,
	}
}

// UpdateStatus sets the record status and/or payment status
func (s *TourBookingService) UpdateStatus(ctx context.Context, id, status, paymentStatus string) error {
	if status == "" && paymentStatus == "" {
		return &ValidationError{Fields: map[string]string{"status": "Status or payment status is required"}}
	}
	if status != "" && !entity.ValidBookingStatus(status) {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	if paymentStatus != "" && !entity.ValidPaymentStatus(paymentStatus) {
		return fmt.Errorf("%w: payment %q", ErrInvalidStatus, paymentStatus)
	}

	if err := s.bookings.UpdateStatus(ctx, id, status, paymentStatus); err != nil {
		return fmt.Errorf("failed to update booking %s: %w", id, err)
	}

	s.logger.Info("Booking status updated", "id", id, "status", status, "paymentStatus", paymentStatus)
	return nil
}

// FindByReference looks a booking up by its reference
func (s *TourBookingService) FindByReference(ctx context.Context, reference string) (*entity.BookingRecord, error) {
	return s.bookings.FindByReference(ctx, reference)
}
