package usecase

import (
	"time"

	"recharge-travels-service/internal/domain/entity"
)

// Email kinds
const (
	EmailBookingConfirmation = "booking_confirmation"
	EmailOwnerDecision       = "owner_decision"
)

// EmailTemplate renders one kind of notification email
type EmailTemplate interface {
	// Kind is the key the template is registered under
	Kind() string

	// Render builds the message for data
	Render(data interface{}) (entity.EmailMessage, error)
}

// TemplateRegistry looks up email templates by kind
type TemplateRegistry interface {
	Register(template EmailTemplate)
	Get(kind string) EmailTemplate
}

// BookingConfirmationEmail is rendered for paypal and bank bookings
type BookingConfirmationEmail struct {
	Booking        entity.BookingRecord
	CurrencySymbol string
}

// OwnerDecisionEmail is rendered after an owner is approved or rejected
type OwnerDecisionEmail struct {
	OwnerID   string
	OwnerName string
	Email     string
	Status    entity.VerificationStatus
	Notes     string
	DecidedAt time.Time
}
