package entity

import (
	_ "embed"
	"encoding/json"
)

// Concierge booking status
const (
	ConciergePending    = "pending"
	ConciergeConfirmed  = "confirmed"
	ConciergeInProgress = "in_progress"
	ConciergeCompleted  = "completed"
	ConciergeCancelled  = "cancelled"
)

// Concierge payment status
const (
	ConciergePaymentPaid     = "paid"
	ConciergePaymentPending  = "pending"
	ConciergePaymentRefunded = "refunded"
)

// ConciergeService is one service category on the concierge page
type ConciergeService struct {
	Meta `bson:",inline"`

	Category      string   `bson:"category" json:"category"`
	Icon          string   `bson:"icon" json:"icon"`
	Image         string   `bson:"image" json:"image"`
	Description   string   `bson:"description" json:"description"`
	Services      []string `bson:"services" json:"services"`
	StartingPrice float64  `bson:"startingPrice" json:"startingPrice"`
	IsActive      *bool    `bson:"isActive,omitempty" json:"isActive,omitempty"`
	Order         int      `bson:"order" json:"order"`
}

func (s *ConciergeService) Normalize() {
	if s.Services == nil {
		s.Services = []string{}
	}
	if s.IsActive == nil {
		t := true
		s.IsActive = &t
	}
	defaultString(&s.Icon, "Sparkles")
}

func (s *ConciergeService) Validate() error {
	if s.Category == "" {
		return &FieldError{Field: "category", Message: "Category is required"}
	}
	return nil
}

// Active reports whether the service is shown publicly
func (s *ConciergeService) Active() bool {
	return s.IsActive == nil || *s.IsActive
}

type SelectedService struct {
	ID       string  `bson:"id" json:"id"`
	Category string  `bson:"category" json:"category"`
	Price    float64 `bson:"price" json:"price"`
}

// ConciergeBooking is a request for one or more concierge services
type ConciergeBooking struct {
	Meta `bson:",inline"`

	BookingRef             string            `bson:"bookingRef" json:"bookingRef"`
	FirstName              string            `bson:"firstName" json:"firstName"`
	LastName               string            `bson:"lastName" json:"lastName"`
	Email                  string            `bson:"email" json:"email"`
	Phone                  string            `bson:"phone" json:"phone"`
	CountryCode            string            `bson:"countryCode" json:"countryCode"`
	PreferredDate          string            `bson:"preferredDate" json:"preferredDate"`
	AlternateDate          string            `bson:"alternateDate" json:"alternateDate"`
	Duration               string            `bson:"duration" json:"duration"`
	Guests                 int               `bson:"guests" json:"guests"`
	Location               string            `bson:"location" json:"location"`
	Budget                 string            `bson:"budget" json:"budget"`
	PaymentMethod          string            `bson:"paymentMethod" json:"paymentMethod"`
	SelectedServiceDetails []SelectedService `bson:"selectedServiceDetails" json:"selectedServiceDetails"`
	SpecialRequests        string            `bson:"specialRequests" json:"specialRequests"`
	TotalAmount            float64           `bson:"totalAmount" json:"totalAmount"`
	Status                 string            `bson:"status" json:"status"`
	PaymentStatus          string            `bson:"paymentStatus" json:"paymentStatus"`
}

func (b *ConciergeBooking) Normalize() {
	if !ValidConciergeStatus(b.Status) {
		b.Status = ConciergePending
	}
	if !ValidConciergePaymentStatus(b.PaymentStatus) {
		b.PaymentStatus = ConciergePaymentPending
	}
	if b.Guests <= 0 {
		b.Guests = 1
	}
	if b.SelectedServiceDetails == nil {
		b.SelectedServiceDetails = []SelectedService{}
	}
	if b.TotalAmount == 0 {
		for _, s := range b.SelectedServiceDetails {
			b.TotalAmount += s.Price
		}
	}
}

// CustomerName joins first and last name
func (b *ConciergeBooking) CustomerName() string {
	if b.LastName == "" {
		return b.FirstName
	}
	return b.FirstName + " " + b.LastName
}

func ValidConciergeStatus(s string) bool {
	return oneOf(s, ConciergePending, ConciergeConfirmed, ConciergeInProgress, ConciergeCompleted, ConciergeCancelled)
}

func ValidConciergePaymentStatus(s string) bool {
	return oneOf(s, ConciergePaymentPaid, ConciergePaymentPending, ConciergePaymentRefunded)
}

// ConciergeHero is the editable header of the concierge page
type ConciergeHero struct {
	Title     string `bson:"title" json:"title"`
	Subtitle  string `bson:"subtitle" json:"subtitle"`
	HeroImage string `bson:"heroImage" json:"heroImage"`
	Badge     string `bson:"badge" json:"badge"`
}

// ConciergeSettings holds contact details and booking policy
type ConciergeSettings struct {
	ContactPhone       string `bson:"contactPhone" json:"contactPhone"`
	ContactEmail       string `bson:"contactEmail" json:"contactEmail"`
	WhatsAppNumber     string `bson:"whatsappNumber" json:"whatsappNumber"`
	ResponseTime       string `bson:"responseTime" json:"responseTime"`
	EmergencyResponse  string `bson:"emergencyResponse" json:"emergencyResponse"`
	Currency           string `bson:"currency" json:"currency"`
	MinBookingNotice   int    `bson:"minBookingNotice" json:"minBookingNotice"`
	CancellationPolicy string `bson:"cancellationPolicy" json:"cancellationPolicy"`
}

// ConciergeStats summarizes concierge bookings for the dashboard
type ConciergeStats struct {
	TotalBookings     int     `json:"totalBookings"`
	Pending           int     `json:"pending"`
	Confirmed         int     `json:"confirmed"`
	Completed         int     `json:"completed"`
	TotalRevenue      float64 `json:"totalRevenue"`
	AverageOrderValue float64 `json:"averageOrderValue"`
}

//go:embed defaults/concierge.json
var conciergeDefaults []byte

type conciergeDefaultsDoc struct {
	Services []ConciergeService `json:"services"`
	Hero     ConciergeHero      `json:"hero"`
	Settings ConciergeSettings  `json:"settings"`
}

func loadConciergeDefaults() conciergeDefaultsDoc {
	var doc conciergeDefaultsDoc
	if err := json.Unmarshal(conciergeDefaults, &doc); err != nil {
		panic("entity: invalid concierge defaults: " + err.Error())
	}
	return doc
}

// DefaultConciergeServices is the built-in service catalogue, in display order
func DefaultConciergeServices() []ConciergeService {
	services := loadConciergeDefaults().Services
	for i := range services {
		services[i].Order = i
		services[i].Normalize()
	}
	return services
}

func DefaultConciergeHero() ConciergeHero {
	return loadConciergeDefaults().Hero
}

func DefaultConciergeSettings() ConciergeSettings {
	return loadConciergeDefaults().Settings
}
