package usecase

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"recharge-travels-service/internal/domain/entity"
	"recharge-travels-service/internal/domain/repository"

	"github.com/phpdave11/gofpdf"
)

// VoucherService renders booking vouchers
type VoucherService struct {
	bookings repository.BookingRepository
	now      func() time.Time
}

func NewVoucherService(bookings repository.BookingRepository) *VoucherService {
	return &VoucherService{bookings: bookings, now: time.Now}
}

// VoucherRequester identifies who is asking for a voucher: the signed-in
// user, the booking email given with the request, or both.
type VoucherRequester struct {
	Email string
	User  *entity.User
}

// Voucher returns the PDF and its filename for the booking with reference.
// A booking the requester cannot prove ownership of reads as not found.
func (s *VoucherService) Voucher(ctx context.Context, reference string, who VoucherRequester) ([]byte, string, error) {
	record, err := s.bookings.FindByReference(ctx, reference)
	if err != nil {
		return nil, "", err
	}
	if !CanReadVoucher(*record, who) {
		return nil, "", repository.ErrNotFound
	}
	return BuildVoucherPDF(*record, s.now())
}

// CanReadVoucher reports whether who owns b. Admins, the customer's own
// account and anyone quoting the booking email qualify.
func CanReadVoucher(b entity.BookingRecord, who VoucherRequester) bool {
	if who.User != nil {
		if who.User.Role == entity.RoleAdmin {
			return true
		}
		if b.Customer.UserID != "" && who.User.ID == b.Customer.UserID {
			return true
		}
	}

	email := strings.TrimSpace(who.Email)
	if email == "" {
		return false
	}
	for _, owner := range []string{b.Customer.Email, b.CustomerEmail} {
		if owner != "" && strings.EqualFold(email, strings.TrimSpace(owner)) {
			return true
		}
	}
	return false
}

// BuildVoucherPDF lays out the tour, client and payment summary on one A4 page
func BuildVoucherPDF(b entity.BookingRecord, issuedAt time.Time) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Voucher "+b.Reference, false)
	pdf.SetAuthor("Recharge Travels", false)
	pdf.AddPage()

	// Core fonts are cp1252; translate so names like "Müller" render intact
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "RECHARGE TRAVELS - BOOKING VOUCHER")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, tr("Reference : "+b.Reference))
	pdf.Ln(6)
	pdf.Cell(0, 6, "Issued    : "+issuedAt.Format("2006-01-02 15:04"))
	pdf.Ln(6)
	pdf.Cell(0, 6, tr("Status    : "+humanize(b.Status)))
	pdf.Ln(10)

	section(pdf, "Tour")
	lines(pdf, tr,
		"Tour        : "+safe(b.TourTitle, "-"),
		"Date        : "+safe(b.Details.Date, "-"),
		"Pickup      : "+safe(b.Details.PickupOption, "-"),
		"Address     : "+safe(b.Details.PickupAddress, "-"),
		fmt.Sprintf("Travellers  : %d adult(s), %d child(ren), %d infant(s)", b.Details.Adults, b.Details.Children, b.Details.Infants),
	)

	section(pdf, "Client")
	lines(pdf, tr,
		"Name        : "+safe(b.CustomerName, "-"),
		"Email       : "+safe(b.CustomerEmail, "-"),
		"Phone       : "+safe(b.CustomerPhone, "-"),
	)

	section(pdf, "Payment")
	lines(pdf, tr,
		"Method      : "+strings.ToUpper(safe(b.Payment.Method, "-")),
		fmt.Sprintf("Subtotal    : %s %.2f", b.Payment.Currency, b.Payment.Subtotal),
		fmt.Sprintf("Pickup      : %s %.2f", b.Payment.Currency, b.Payment.PickupCost),
		fmt.Sprintf("Total       : %s %.2f", b.Payment.Currency, b.Payment.Total),
		"Payment     : "+humanize(b.Payment.Status),
	)

	if b.Details.SpecialRequests != "" {
		section(pdf, "Special requests")
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, tr(b.Details.SpecialRequests), "", "", false)
		pdf.Ln(4)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.MultiCell(0, 5, "Please present this voucher to your guide on the day of the tour. "+
		"For changes contact bookings@rechargetravels.com quoting your reference.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to render voucher: %w", err)
	}

	return buf.Bytes(), fmt.Sprintf("voucher_%s.pdf", b.Reference), nil
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, title)
	pdf.Ln(8)
}

func lines(pdf *gofpdf.Fpdf, tr func(string) string, rows ...string) {
	pdf.SetFont("Helvetica", "", 11)
	for _, r := range rows {
		pdf.Cell(0, 6, tr(r))
		pdf.Ln(6)
	}
	pdf.Ln(4)
}

func safe(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func humanize(s string) string {
	return strings.ReplaceAll(safe(s, "-"), "_", " ")
}
