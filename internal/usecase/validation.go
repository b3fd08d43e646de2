package usecase

import (
	"regexp"
	"strings"
	"time"

	"recharge-travels-service/internal/domain/entity"
)

const (
	dateLayout    = "2006-01-02"
	bookingWindow = 90
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// AvailableDates lists bookable dates from tomorrow through 90 days out
func AvailableDates(today time.Time) []string {
	start := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())

	dates := make([]string, 0, bookingWindow)
	for i := 1; i <= bookingWindow; i++ {
		dates = append(dates, start.AddDate(0, 0, i).Format(dateLayout))
	}
	return dates
}

func isAvailableDate(date string, today time.Time) bool {
	for _, d := range AvailableDates(today) {
		if d == date {
			return true
		}
	}
	return false
}

// ValidateStep returns field messages for the given wizard step.
// An empty map means the step is valid.
func ValidateStep(step int, draft entity.BookingDraft, cfg entity.TourConfig, today time.Time) map[string]string {
	errs := map[string]string{}

	switch step {
	case 1:
		if strings.TrimSpace(draft.FirstName) == "" {
			errs["firstName"] = "First name is required"
		}
		if strings.TrimSpace(draft.LastName) == "" {
			errs["lastName"] = "Last name is required"
		}
		if !emailPattern.MatchString(draft.Email) {
			errs["email"] = "Valid email is required"
		}
		if strings.TrimSpace(draft.Phone) == "" {
			errs["phone"] = "Phone number is required"
		}

	case 2:
		if !isAvailableDate(draft.TourDate, today) {
			errs["tourDate"] = "Please select an available date"
		}
		if _, ok := cfg.Pickup(draft.PickupOption); !ok {
			errs["pickupOption"] = "Please select a pickup option"
		}
		if draft.Adults < 1 {
			errs["adults"] = "At least one adult is required"
		}
		if draft.Children < 0 {
			errs["children"] = "Children cannot be negative"
		}
		if draft.Infants < 0 {
			errs["infants"] = "Infants cannot be negative"
		}
		if draft.Travelers() > cfg.MaxGroupSize {
			errs["travelers"] = "Group size exceeds the maximum for this tour"
		}

	case 3:
		switch draft.PaymentMethod {
		case entity.PaymentCard:
			if strings.TrimSpace(draft.CardNumber) == "" {
				errs["cardNumber"] = "Card number is required"
			}
			if strings.TrimSpace(draft.CardExpiry) == "" {
				errs["cardExpiry"] = "Expiry date is required"
			}
			if strings.TrimSpace(draft.CardCVC) == "" {
				errs["cardCvc"] = "CVC is required"
			}
			if strings.TrimSpace(draft.CardName) == "" {
				errs["cardName"] = "Name on card is required"
			}
		case entity.PaymentPayPal, entity.PaymentBank:
		default:
			errs["paymentMethod"] = "Please select a payment method"
		}
		if !draft.AgreeToTerms {
			errs["agreeToTerms"] = "You must agree to the terms"
		}
	}

	return errs
}
