package templates

import (
	"fmt"

	"recharge-travels-service/internal/domain/entity"
	"recharge-travels-service/internal/usecase"
)

const bookingConfirmationHTML = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #1f2937;">
  <h2>Your Sri Lanka tour is booked</h2>
  <p>Dear {{.Booking.Customer.FirstName}},</p>
  <p>Thank you for booking <strong>{{.Booking.TourTitle}}</strong> with Recharge Travels.</p>
  <table cellpadding="4">
    <tr><td>Reference</td><td><strong>{{.Booking.Reference}}</strong></td></tr>
    <tr><td>Date</td><td>{{.Booking.Details.Date}}</td></tr>
    <tr><td>Pickup</td><td>{{.Booking.Details.PickupOption}}{{if .Booking.Details.PickupAddress}} ({{.Booking.Details.PickupAddress}}){{end}}</td></tr>
    <tr><td>Travellers</td><td>{{.Booking.Details.Adults}} adult(s), {{.Booking.Details.Children}} child(ren), {{.Booking.Details.Infants}} infant(s)</td></tr>
    <tr><td>Total</td><td><strong>{{.Symbol}}{{printf "%.2f" .Booking.Payment.Total}} {{.Booking.Payment.Currency}}</strong></td></tr>
  </table>
  <h3>How to pay</h3>
  <p>{{.Instructions}}</p>
  <p>Please quote your reference {{.Booking.Reference}} with your payment.</p>
  <p>Warm regards,<br>Recharge Travels</p>
</body>
</html>`

const bookingConfirmationText = `Dear {{.Booking.Customer.FirstName}},

Thank you for booking {{.Booking.TourTitle}} with Recharge Travels.

Reference:  {{.Booking.Reference}}
Date:       {{.Booking.Details.Date}}
Pickup:     {{.Booking.Details.PickupOption}}{{if .Booking.Details.PickupAddress}} ({{.Booking.Details.PickupAddress}}){{end}}
Travellers: {{.Booking.Details.Adults}} adult(s), {{.Booking.Details.Children}} child(ren), {{.Booking.Details.Infants}} infant(s)
Total:      {{.Symbol}}{{printf "%.2f" .Booking.Payment.Total}} {{.Booking.Payment.Currency}}

How to pay
{{.Instructions}}

Please quote your reference {{.Booking.Reference}} with your payment.

Warm regards,
Recharge Travels`

var (
	bookingConfirmationHTMLTmpl = mustHTML("booking_confirmation_html", bookingConfirmationHTML)
	bookingConfirmationTextTmpl = mustText("booking_confirmation_text", bookingConfirmationText)
)

// PaymentInstructions describes how to settle an offline booking
func PaymentInstructions(method string) string {
	switch method {
	case entity.PaymentPayPal:
		return "A PayPal payment request will be sent to this email address within 24 hours. " +
			"Your booking is held until the payment is received."
	case entity.PaymentBank:
		return "Transfer the total to Recharge Travels (Pvt) Ltd, Commercial Bank of Ceylon, " +
			"account 1000 2345 6789, SWIFT CCEYLKLX. Send the transfer slip to bookings@rechargetravels.com."
	default:
		return "Our team will contact you to arrange payment."
	}
}

// BookingConfirmationTemplate renders the confirmation for paypal and bank bookings
type BookingConfirmationTemplate struct{}

func NewBookingConfirmationTemplate() *BookingConfirmationTemplate {
	return &BookingConfirmationTemplate{}
}

func (t *BookingConfirmationTemplate) Kind() string {
	return usecase.EmailBookingConfirmation
}

func (t *BookingConfirmationTemplate) Render(data interface{}) (entity.EmailMessage, error) {
	email, ok := data.(usecase.BookingConfirmationEmail)
	if !ok {
		return entity.EmailMessage{}, fmt.Errorf("booking confirmation: unexpected data %T", data)
	}

	b := email.Booking
	symbol := email.CurrencySymbol
	if symbol == "" {
		symbol = "$"
	}
	view := struct {
		Booking      entity.BookingRecord
		Symbol       string
		Instructions string
	}{b, symbol, PaymentInstructions(b.Payment.Method)}

	html, err := renderHTML(bookingConfirmationHTMLTmpl, view)
	if err != nil {
		return entity.EmailMessage{}, fmt.Errorf("failed to render booking confirmation html: %w", err)
	}
	text, err := renderText(bookingConfirmationTextTmpl, view)
	if err != nil {
		return entity.EmailMessage{}, fmt.Errorf("failed to render booking confirmation text: %w", err)
	}

	return entity.EmailMessage{
		To:      b.Customer.Email,
		Subject: fmt.Sprintf("Booking confirmed: %s (%s)", b.TourTitle, b.Reference),
		HTML:    html,
		Text:    text,
	}, nil
}
