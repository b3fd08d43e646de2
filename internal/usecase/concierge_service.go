package usecase

import (
	"context"
	"fmt"

	"recharge-travels-service/internal/domain/entity"
	"recharge-travels-service/internal/domain/repository"
	"recharge-travels-service/pkg/logger"
	"recharge-travels-service/pkg/metrics"

	"github.com/shopspring/decimal"
)

// ConciergeService manages concierge services and bookings
type ConciergeService struct {
	Services *CatalogService[entity.ConciergeService]
	Bookings *CatalogService[entity.ConciergeBooking]

	serviceRepo repository.CollectionRepository[entity.ConciergeService]
	logger      logger.Logger
}

// NewConciergeService creates a new concierge service
func NewConciergeService(
	services repository.CollectionRepository[entity.ConciergeService],
	bookings repository.CollectionRepository[entity.ConciergeBooking],
	m *metrics.Metrics,
	log logger.Logger,
) *ConciergeService {
	bookingCatalog := NewCatalogService("concierge_bookings", bookings, m, log).WithRules(FieldRules{
		"status":        entity.ValidConciergeStatus,
		"paymentStatus": entity.ValidConciergePaymentStatus,
	})

	return &ConciergeService{
		Services:    NewCatalogService("concierge_services", services, m, log),
		Bookings:    bookingCatalog,
		serviceRepo: services,
		logger:      log,
	}
}

// ActiveServices lists services shown on the public page
func (s *ConciergeService) ActiveServices(ctx context.Context) []entity.ConciergeService {
	active := []entity.ConciergeService{}
	for _, svc := range s.Services.List(ctx) {
		if svc.Active() {
			active = append(active, svc)
		}
	}
	return active
}

// Reorder sets each service's order to its index in ids
func (s *ConciergeService) Reorder(ctx context.Context, ids []string) error {
	for i, id := range ids {
		if err := s.serviceRepo.Update(ctx, id, map[string]interface{}{"order": i}); err != nil {
			return fmt.Errorf("failed to reorder service %s: %w", id, err)
		}
	}

	s.logger.Info("Concierge services reordered", "count", len(ids))
	return nil
}

// SeedDefaults inserts the built-in catalogue into an empty collection and
// returns how many services were created.
func (s *ConciergeService) SeedDefaults(ctx context.Context) (int, error) {
	count, err := s.serviceRepo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count concierge services: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	created := 0
	for _, svc := range entity.DefaultConciergeServices() {
		svc := svc
		if _, err := s.serviceRepo.Create(ctx, &svc); err != nil {
			return created, fmt.Errorf("failed to seed %s: %w", svc.Category, err)
		}
		created++
	}

	s.logger.Info("Concierge services seeded", "count", created)
	return created, nil
}

// UpdateBookingStatus moves a booking through its lifecycle
func (s *ConciergeService) UpdateBookingStatus(ctx context.Context, id, status string) error {
	return s.Bookings.setStatus(ctx, id, "status", status, entity.ValidConciergeStatus)
}

// UpdatePaymentStatus records payment, refund or pending
func (s *ConciergeService) UpdatePaymentStatus(ctx context.Context, id, status string) error {
	return s.Bookings.setStatus(ctx, id, "paymentStatus", status, entity.ValidConciergePaymentStatus)
}

// Stats summarizes bookings. Revenue counts paid bookings only.
func (s *ConciergeService) Stats(ctx context.Context) entity.ConciergeStats {
	bookings := s.Bookings.List(ctx)

	stats := entity.ConciergeStats{TotalBookings: len(bookings)}
	revenue := decimal.Zero
	paid := 0

	for _, b := range bookings {
		switch b.Status {
		case entity.ConciergePending:
			stats.Pending++
		case entity.ConciergeConfirmed:
			stats.Confirmed++
		case entity.ConciergeCompleted:
			stats.Completed++
		}
		if b.PaymentStatus == entity.ConciergePaymentPaid {
			revenue = revenue.Add(decimal.NewFromFloat(b.TotalAmount))
			paid++
		}
	}

	stats.TotalRevenue = revenue.Round(2).InexactFloat64()
	if paid > 0 {
		stats.AverageOrderValue = revenue.Div(decimal.NewFromInt(int64(paid))).Round(2).InexactFloat64()
	}
	return stats
}
