package entity

import "time"

// Payment methods
const (
	PaymentCard   = "card"
	PaymentPayPal = "paypal"
	PaymentBank   = "bank"
)

// Booking record status
const (
	BookingPendingPayment             = "pending_payment"
	BookingConfirmed                  = "confirmed"
	BookingPaymentPendingVerification = "payment_pending_verification"
	BookingCancelled                  = "cancelled"
)

// Payment sub-status
const (
	PaymentStatusPending       = "pending"
	PaymentStatusPendingPayPal = "pending_paypal"
	PaymentStatusPendingBank   = "pending_bank"
	PaymentStatusPendingManual = "pending_manual"
	PaymentStatusFailed        = "failed"
	PaymentStatusPaid          = "paid"
)

// Booking types shared with the admin's unified booking list. Wizard
// bookings are always BookingTypeTour; the tour name lives in TourTitle.
const (
	BookingTypeTour      = "tour"
	BookingTypeTransport = "transport"
	BookingTypeHotel     = "hotel"
	BookingTypePackage   = "package"
	BookingTypeActivity  = "activity"
)

// CountryCodes offered by the contact step
var CountryCodes = []string{"+94", "+1", "+44", "+61", "+49", "+33", "+91", "+86", "+81", "+971"}

// PickupOption is a named collection point with a per-traveller surcharge
type PickupOption struct {
	ID             string  `json:"id"`
	Label          string  `json:"label"`
	Time           string  `json:"time"`
	AdditionalCost float64 `json:"additionalCost"`
}

// TourConfig is the bookable configuration of a single tour
type TourConfig struct {
	ID             string         `json:"id"`
	Title          string         `json:"title"`
	AdultPrice     float64        `json:"adultPrice"`
	ChildPrice     float64        `json:"childPrice"`
	InfantPrice    float64        `json:"infantPrice"`
	Currency       string         `json:"currency"`
	CurrencySymbol string         `json:"currencySymbol"`
	PickupOptions  []PickupOption `json:"pickupOptions"`
	MaxGroupSize   int            `json:"maxGroupSize"`
}

// DefaultTourConfig is used when the catalog has no entry for a tour
func DefaultTourConfig() TourConfig {
	return TourConfig{
		ID:             "default-tour",
		Title:          "Sri Lanka Tour Experience",
		AdultPrice:     85,
		ChildPrice:     45,
		InfantPrice:    0,
		Currency:       "USD",
		CurrencySymbol: "$",
		PickupOptions: []PickupOption{
			{ID: "colombo", Label: "Pickup from Colombo", Time: "7:00 AM", AdditionalCost: 0},
			{ID: "negombo", Label: "Pickup from Negombo", Time: "6:30 AM", AdditionalCost: 0},
			{ID: "airport", Label: "Airport Pickup (BIA)", Time: "6:00 AM", AdditionalCost: 15},
		},
		MaxGroupSize: 15,
	}
}

// Pickup returns the option with the given id
func (c TourConfig) Pickup(id string) (PickupOption, bool) {
	for _, p := range c.PickupOptions {
		if p.ID == id {
			return p, true
		}
	}
	return PickupOption{}, false
}

// BookingDraft is the in-progress wizard form
type BookingDraft struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	CountryCode string `json:"countryCode"`
	Phone       string `json:"phone"`

	TourDate        string `json:"tourDate"`
	PickupOption    string `json:"pickupOption"`
	PickupAddress   string `json:"pickupAddress"`
	Adults          int    `json:"adults"`
	Children        int    `json:"children"`
	Infants         int    `json:"infants"`
	SpecialRequests string `json:"specialRequests"`

	PaymentMethod string `json:"paymentMethod"`
	CardNumber    string `json:"cardNumber,omitempty"`
	CardExpiry    string `json:"cardExpiry,omitempty"`
	CardCVC       string `json:"cardCvc,omitempty"`
	CardName      string `json:"cardName,omitempty"`
	AgreeToTerms  bool   `json:"agreeToTerms"`
}

// NewBookingDraft creates a draft with defaults, pre-filled from user when present
func NewBookingDraft(cfg TourConfig, user *User) BookingDraft {
	draft := BookingDraft{
		CountryCode:   "+94",
		Adults:        2,
		PaymentMethod: PaymentCard,
	}
	if len(cfg.PickupOptions) > 0 {
		draft.PickupOption = cfg.PickupOptions[0].ID
	}
	if user != nil {
		draft.FirstName, draft.LastName = user.SplitName()
		draft.Email = user.Email
	}
	return draft
}

// FullPhone joins the country code and number
func (d BookingDraft) FullPhone() string {
	return d.CountryCode + d.Phone
}

// Travelers counts everyone including infants. Negative counts count as zero.
func (d BookingDraft) Travelers() int {
	return max(d.Adults, 0) + max(d.Children, 0) + max(d.Infants, 0)
}

type BookingCustomer struct {
	FirstName string `bson:"firstName" json:"firstName"`
	LastName  string `bson:"lastName" json:"lastName"`
	Email     string `bson:"email" json:"email"`
	Phone     string `bson:"phone" json:"phone"`
	UserID    string `bson:"userId,omitempty" json:"userId,omitempty"`
}

type BookingDetails struct {
	Date            string `bson:"date" json:"date"`
	PickupOption    string `bson:"pickupOption" json:"pickupOption"`
	PickupAddress   string `bson:"pickupAddress" json:"pickupAddress"`
	Adults          int    `bson:"adults" json:"adults"`
	Children        int    `bson:"children" json:"children"`
	Infants         int    `bson:"infants" json:"infants"`
	SpecialRequests string `bson:"specialRequests" json:"specialRequests"`
}

type BookingPayment struct {
	Method     string  `bson:"method" json:"method"`
	Subtotal   float64 `bson:"subtotal" json:"subtotal"`
	PickupCost float64 `bson:"pickupCost" json:"pickupCost"`
	Total      float64 `bson:"total" json:"total"`
	Currency   string  `bson:"currency" json:"currency"`
	Status     string  `bson:"status" json:"status"`
}

// BookingRecord is the persisted snapshot of a submitted draft. Flat copies
// of the customer and payment fields are kept for downstream consumers.
type BookingRecord struct {
	Meta `bson:",inline"`

	Reference          string `bson:"reference" json:"reference"`
	BookingRef         string `bson:"bookingRef" json:"bookingRef"`
	ConfirmationNumber string `bson:"confirmation_number" json:"confirmation_number"`
	TourID             string `bson:"tourId" json:"tourId"`
	TourTitle          string `bson:"tourTitle" json:"tourTitle"`
	BookingType        string `bson:"booking_type" json:"booking_type"`

	Customer      BookingCustomer `bson:"customer" json:"customer"`
	CustomerName  string          `bson:"customerName" json:"customerName"`
	CustomerEmail string          `bson:"customerEmail" json:"customerEmail"`
	CustomerPhone string          `bson:"customerPhone" json:"customerPhone"`
	Name          string          `bson:"name" json:"name"`
	EmailAddress  string          `bson:"email" json:"email"`
	Phone         string          `bson:"phone" json:"phone"`

	Details         BookingDetails `bson:"details" json:"details"`
	TravelDate      string         `bson:"travelDate" json:"travelDate"`
	TourDate        string         `bson:"tourDate" json:"tourDate"`
	Adults          int            `bson:"adults" json:"adults"`
	Children        int            `bson:"children" json:"children"`
	SpecialRequests string         `bson:"specialRequests" json:"specialRequests"`

	Payment        BookingPayment `bson:"payment" json:"payment"`
	TotalPrice     float64        `bson:"totalPrice" json:"totalPrice"`
	TotalAmountUSD float64        `bson:"totalAmountUSD" json:"totalAmountUSD"`
	Currency       string         `bson:"currency" json:"currency"`
	PaymentMethod  string         `bson:"paymentMethod" json:"paymentMethod"`

	CheckoutSessionID string `bson:"checkoutSessionId,omitempty" json:"checkoutSessionId,omitempty"`
	Status            string `bson:"status" json:"status"`
}

func (b *BookingRecord) Normalize() {
	defaultString(&b.BookingType, BookingTypeTour)
	defaultString(&b.Status, BookingPendingPayment)
	defaultString(&b.Payment.Currency, "USD")
	defaultString(&b.Currency, b.Payment.Currency)
	defaultString(&b.BookingRef, b.Reference)
	defaultString(&b.Reference, b.BookingRef)
	defaultString(&b.Payment.Method, b.PaymentMethod)
	defaultString(&b.PaymentMethod, b.Payment.Method)
	defaultString(&b.Payment.Status, PaymentStatusPending)
}

// ValidBookingType reports whether t is a known booking type
func ValidBookingType(t string) bool {
	return oneOf(t, BookingTypeTour, BookingTypeTransport, BookingTypeHotel, BookingTypePackage, BookingTypeActivity)
}

// ValidBookingStatus reports whether s is a known record status
func ValidBookingStatus(s string) bool {
	return oneOf(s, BookingPendingPayment, BookingConfirmed, BookingPaymentPendingVerification, BookingCancelled)
}

// ValidPaymentStatus reports whether s is a known payment sub-status
func ValidPaymentStatus(s string) bool {
	return oneOf(s, PaymentStatusPending, PaymentStatusPendingPayPal, PaymentStatusPendingBank,
		PaymentStatusPendingManual, PaymentStatusFailed, PaymentStatusPaid)
}

// CheckoutRequest is sent to the payment collaborator for card bookings
type CheckoutRequest struct {
	BookingRef       string  `json:"bookingRef"`
	TourID           string  `json:"tourId"`
	TourTitle        string  `json:"tourTitle"`
	TourCategory     string  `json:"tourCategory"`
	CustomerName     string  `json:"customerName"`
	CustomerEmail    string  `json:"customerEmail"`
	CustomerPhone    string  `json:"customerPhone"`
	TravelDate       string  `json:"travelDate"`
	TravellersAdults int     `json:"travellersAdults"`
	TravellersKids   int     `json:"travellersKids"`
	PricePerPerson   float64 `json:"pricePerPerson"`
	TotalAmountUSD   float64 `json:"totalAmountUSD"`
	Currency         string  `json:"currency"`
}

// CheckoutNotification is written out of band once the provider has a
// redirect URL or an error for the session.
type CheckoutNotification struct {
	SessionID string    `bson:"_id" json:"sessionId"`
	URL       string    `bson:"url,omitempty" json:"url,omitempty"`
	Error     string    `bson:"error,omitempty" json:"error,omitempty"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
