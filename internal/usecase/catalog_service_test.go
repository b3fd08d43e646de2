package usecase

import (
	"context"
	"errors"
	"testing"

	"recharge-travels-service/internal/domain/entity"
	"recharge-travels-service/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_ListEmptyOnError(t *testing.T) {
	repo := newFakeCollection[entity.Driver]()
	repo.listErr = errors.New("connection refused")
	s := NewDriverService(repo, newTestMetrics(), testLogger)

	got := s.List(context.Background())
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCatalogService_EmptyCollection(t *testing.T) {
	s := NewDriverService(newFakeCollection[entity.Driver](), newTestMetrics(), testLogger)
	got := s.List(context.Background())
	assert.NotNil(t, got)
	assert.Len(t, got, 0)
}

func TestCatalogService_CreateValidates(t *testing.T) {
	repo := newFakeCollection[entity.CulturalTour]()
	s := NewCulturalService(repo, newFakeCollection[entity.CulturalBooking](), newTestMetrics(), testLogger)

	_, err := s.Tours.Create(context.Background(), &entity.CulturalTour{Title: "Tea Trails"})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "description")

	id, err := s.Tours.Create(context.Background(), &entity.CulturalTour{
		Title: "Tea Trails", Description: "Pluck and taste", Location: "Nuwara Eliya",
	})
	require.NoError(t, err)
	got, err := s.Tours.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Tea Trails", got.Title)
}

func TestCatalogService_GetDelete(t *testing.T) {
	repo := newFakeCollection(entity.Driver{FullName: "Nimal"})
	s := NewDriverService(repo, newTestMetrics(), testLogger)

	_, err := s.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	require.NoError(t, s.Delete(context.Background(), "doc-1"))
	assert.ErrorIs(t, s.Delete(context.Background(), "doc-1"), repository.ErrNotFound)
}

func TestDriverService_UpdateStatus(t *testing.T) {
	repo := newFakeCollection(entity.Driver{FullName: "Nimal"})
	s := NewDriverService(repo, newTestMetrics(), testLogger)

	require.NoError(t, s.UpdateStatus(context.Background(), "doc-1", entity.DriverVerified))
	assert.Equal(t, entity.DriverVerified, repo.updated("doc-1")["current_status"])

	err := s.UpdateStatus(context.Background(), "doc-1", "on_holiday")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestLuxuryService(t *testing.T) {
	repo := newFakeCollection(entity.LuxuryExperience{Title: "Yala Leopards"})
	s := NewLuxuryService(repo, newTestMetrics(), testLogger)

	assert.ErrorIs(t, s.SetStatus(context.Background(), "doc-1", "hidden"), ErrInvalidStatus)
	require.NoError(t, s.SetStatus(context.Background(), "doc-1", entity.ExperiencePublished))

	s.ListPublished(context.Background())
	require.Len(t, repo.filters, 1)
	assert.Equal(t, entity.ExperiencePublished, repo.filters[0]["status"])
}

func TestCulturalService_UpdateBookingStatus(t *testing.T) {
	bookings := newFakeCollection(
		entity.CulturalBooking{TourTitle: "Street Food", Status: entity.CulturalBookingPending},
		entity.CulturalBooking{TourTitle: "Fine Dining", Status: entity.CulturalBookingCancelled},
	)
	s := NewCulturalService(newFakeCollection[entity.CulturalTour](), bookings, newTestMetrics(), testLogger)

	assert.ErrorIs(t, s.UpdateBookingStatus(context.Background(), "doc-1", entity.CulturalBookingPending), ErrInvalidStatus)
	assert.ErrorIs(t, s.UpdateBookingStatus(context.Background(), "doc-2", entity.CulturalBookingConfirmed), ErrInvalidTransition)

	require.NoError(t, s.UpdateBookingStatus(context.Background(), "doc-1", entity.CulturalBookingConfirmed))
	assert.Equal(t, entity.CulturalBookingConfirmed, bookings.updated("doc-1")["status"])
}

func TestTourBookingService_UpdateStatus(t *testing.T) {
	repo := newFakeBookingRepo()
	id, _ := repo.Create(context.Background(), &entity.BookingRecord{Reference: "RT-1", Status: entity.BookingPendingPayment})
	s := NewTourBookingService(repo, newTestMetrics(), testLogger)

	var ve *ValidationError
	assert.ErrorAs(t, s.UpdateStatus(context.Background(), id, "", ""), &ve)
	assert.ErrorIs(t, s.UpdateStatus(context.Background(), id, "lost", ""), ErrInvalidStatus)
	assert.ErrorIs(t, s.UpdateStatus(context.Background(), id, "", "maybe"), ErrInvalidStatus)

	require.NoError(t, s.UpdateStatus(context.Background(), id, entity.BookingConfirmed, entity.PaymentStatusPaid))
	got, err := s.FindByReference(context.Background(), "RT-1")
	require.NoError(t, err)
	assert.Equal(t, entity.BookingConfirmed, got.Status)
	assert.Equal(t, entity.PaymentStatusPaid, got.Payment.Status)
}

func TestCatalogService_UpdateRejectsUnknownEnumValues(t *testing.T) {
	ctx := context.Background()

	drivers := newFakeCollection(entity.Driver{FullName: "Nimal", Tier: entity.TierTouristDriver})
	ds := NewDriverService(drivers, newTestMetrics(), testLogger)
	assert.ErrorIs(t, ds.Update(ctx, "doc-1", map[string]interface{}{"tier": "space_pilot"}), ErrInvalidStatus)
	assert.ErrorIs(t, ds.Update(ctx, "doc-1", map[string]interface{}{"current_status": "bogus"}), ErrInvalidStatus)
	assert.ErrorIs(t, ds.Update(ctx, "doc-1", map[string]interface{}{"tier": 3}), ErrInvalidStatus)
	assert.Nil(t, drivers.updated("doc-1"), "rejected updates are not written")

	require.NoError(t, ds.Update(ctx, "doc-1", map[string]interface{}{"tier": entity.TierNationalGuide, "phone": "+94 77 000 0000"}))
	assert.Equal(t, entity.TierNationalGuide, drivers.updated("doc-1")["tier"])

	bookings := newFakeBookingRepo()
	id, _ := bookings.Create(ctx, &entity.BookingRecord{Reference: "RT-1"})
	bs := NewTourBookingService(bookings, newTestMetrics(), testLogger)

	tests := []struct {
		name   string
		fields map[string]interface{}
		ok     bool
	}{
		{"bogus status", map[string]interface{}{"status": "bogus"}, false},
		{"bogus nested payment status", map[string]interface{}{"payment": map[string]interface{}{"status": "free"}}, false},
		{"bogus dotted payment status", map[string]interface{}{"payment.status": "free"}, false},
		{"unknown booking type", map[string]interface{}{"booking_type": "Sigiriya Day Tour"}, false},
		{"known values", map[string]interface{}{"status": entity.BookingConfirmed, "payment": map[string]interface{}{"status": entity.PaymentStatusPaid}}, true},
		{"free text", map[string]interface{}{"specialRequests": "Vegetarian lunch"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := bs.Update(ctx, id, tt.fields)
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidStatus)
		})
	}
}

func TestConciergeBookings_UpdateRejectsUnknownStatus(t *testing.T) {
	bookings := newFakeCollection(entity.ConciergeBooking{Status: entity.ConciergePending})
	s := NewConciergeService(newFakeCollection[entity.ConciergeService](), bookings, newTestMetrics(), testLogger)

	assert.ErrorIs(t, s.Bookings.Update(context.Background(), "doc-1", map[string]interface{}{"paymentStatus": "waived"}), ErrInvalidStatus)
	require.NoError(t, s.Bookings.Update(context.Background(), "doc-1", map[string]interface{}{"status": entity.ConciergeConfirmed}))
	assert.Equal(t, entity.ConciergeConfirmed, bookings.updated("doc-1")["status"])
}
