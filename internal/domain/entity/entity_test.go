package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDriverNormalize_Defaults(t *testing.T) {
	d := &Driver{FullName: "Nimal Perera", Tier: "unknown"}
	d.Normalize()

	assert.Equal(t, TierFreelanceDriver, d.Tier)
	assert.Equal(t, DriverPendingVerification, d.CurrentStatus)
	assert.Equal(t, []string{"English"}, d.SpecialtyLanguages)
	assert.Equal(t, "sedan", d.VehicleType)
	assert.Equal(t, 4, d.VehicleCapacity)
	require.NotNil(t, d.VehicleAC)
	assert.True(t, *d.VehicleAC)
	require.NotNil(t, d.IsChauffeur)
	assert.True(t, *d.IsChauffeur)
	assert.Equal(t, "own_vehicle", d.VehiclePreference)
	assert.Equal(t, 5.0, d.AverageRating)
}

func TestDriverNormalize_KeepsStoredValues(t *testing.T) {
	f := false
	d := &Driver{Tier: TierNationalGuide, CurrentStatus: DriverVerified, VehicleAC: &f, VehicleCapacity: 7}
	d.Normalize()

	assert.Equal(t, TierNationalGuide, d.Tier)
	assert.Equal(t, DriverVerified, d.CurrentStatus)
	assert.False(t, *d.VehicleAC)
	assert.Equal(t, 7, d.VehicleCapacity)
}

func TestLuxuryExperienceNormalize(t *testing.T) {
	e := &LuxuryExperience{Title: "Leopard Safari"}
	e.Normalize()

	assert.Equal(t, "luxury-safari", e.Category)
	assert.Equal(t, "USD", e.Price.Currency)
	assert.Equal(t, "person", e.Price.Per)
	assert.Equal(t, "daily", e.Availability.Type)
	assert.Equal(t, 24, e.Availability.MinimumNotice)
	assert.Equal(t, "easy", e.Difficulty)
	assert.Equal(t, ExperienceDraft, e.Status)
}

func TestCulturalTourValidate(t *testing.T) {
	tour := &CulturalTour{Title: "Spice Garden Walk", Description: "Matale spices"}
	err := tour.Validate()
	require.Error(t, err)

	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "location", fe.Field)

	tour.Location = "Matale"
	assert.NoError(t, tour.Validate())

	tour.Normalize()
	assert.Equal(t, "cooking-class", tour.Category)
	assert.Equal(t, 4.5, tour.Rating)
	assert.Equal(t, 10, tour.MaxGroupSize)
	assert.Equal(t, "Available", tour.Availability)
}

func TestConciergeBookingNormalize_TotalsSelectedServices(t *testing.T) {
	b := &ConciergeBooking{
		SelectedServiceDetails: []SelectedService{{ID: "a", Price: 120}, {ID: "b", Price: 80}},
	}
	b.Normalize()

	assert.Equal(t, ConciergePending, b.Status)
	assert.Equal(t, ConciergePaymentPending, b.PaymentStatus)
	assert.Equal(t, 1, b.Guests)
	assert.Equal(t, 200.0, b.TotalAmount)
}

func TestNewBookingDraft_PrefillsFromUser(t *testing.T) {
	cfg := DefaultTourConfig()
	draft := NewBookingDraft(cfg, &User{DisplayName: "Kasun de Silva", Email: "kasun@example.com"})

	assert.Equal(t, "Kasun", draft.FirstName)
	assert.Equal(t, "de Silva", draft.LastName)
	assert.Equal(t, "kasun@example.com", draft.Email)
	assert.Equal(t, "+94", draft.CountryCode)
	assert.Equal(t, 2, draft.Adults)
	assert.Equal(t, PaymentCard, draft.PaymentMethod)
	assert.Equal(t, "colombo", draft.PickupOption)
}

func TestDestinationContent_MergeOver(t *testing.T) {
	defaults := DefaultDestinationContent("kandy")
	require.NotEmpty(t, defaults.Attractions)

	stored := DestinationContent{
		Slug:       "kandy",
		HeroSlides: []DestinationSlide{{Title: "Esala Perahera"}},
	}
	merged := stored.MergeOver(defaults)

	assert.Equal(t, "Esala Perahera", merged.HeroSlides[0].Title)
	assert.Equal(t, defaults.Attractions, merged.Attractions)
	assert.Equal(t, defaults.DestinationInfo, merged.DestinationInfo)
}

func TestDefaultDestinationContent_UnknownSlug(t *testing.T) {
	content := DefaultDestinationContent("arugam-bay")

	require.Len(t, content.HeroSlides, 1)
	assert.Equal(t, "Discover Arugam Bay", content.HeroSlides[0].Title)
	assert.Empty(t, content.Attractions)
}

func TestDefaultPrivateChartersContent(t *testing.T) {
	content := DefaultPrivateChartersContent()

	assert.Equal(t, "Indian Ocean Private Charters", content.Hero.Title)
	assert.Equal(t, 16000.0, content.Pricing.YachtMinimum)
	assert.NotEmpty(t, content.ServiceTiers)
}

func TestTourConfig_FillsFromDefaults(t *testing.T) {
	cfg := Tour{TourID: "sigiriya-day", Title: "Sigiriya Day Trip", AdultPrice: 120, ChildPrice: 60}.Config()

	assert.Equal(t, "sigiriya-day", cfg.ID)
	assert.Equal(t, "USD", cfg.Currency)
	assert.Equal(t, 15, cfg.MaxGroupSize)
	assert.Len(t, cfg.PickupOptions, 3)
}

func TestBookingDraft_TravelersIgnoresNegativeCounts(t *testing.T) {
	d := BookingDraft{Adults: 20, Children: -1, Infants: -5}
	assert.Equal(t, 20, d.Travelers())

	d = BookingDraft{Adults: 2, Children: 1, Infants: 1}
	assert.Equal(t, 4, d.Travelers())
}
