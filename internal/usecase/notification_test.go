package usecase

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strings"
	"testing"
	"time"

	"recharge-travels-service/internal/domain/entity"
	"recharge-travels-service/internal/domain/repository"

	"github.com/phpdave11/gofpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifier_SendRecordsDelivery(t *testing.T) {
	emails := newFakeEmailRepo()
	sender := &fakeSender{}
	n := NewNotifier(emails, sender, newStubRegistry(), newTestMetrics(), testLogger)

	err := n.Send(context.Background(), EmailOwnerDecision, OwnerDecisionEmail{Email: "kasun@example.com", Status: entity.OwnerVerified})
	require.NoError(t, err)

	require.Len(t, emails.logs, 1)
	assert.Equal(t, EmailOwnerDecision, emails.logs[0].Kind)
	assert.Equal(t, "gmail-1", emails.sent["email-1"])
	assert.Empty(t, emails.failed)
}

func TestNotifier_Failures(t *testing.T) {
	tests := []struct {
		name      string
		sender    *fakeSender
		registry  mapRegistry
		kind      string
		wantLog   bool
		wantFails int
	}{
		{"sender error", &fakeSender{err: errors.New("quota")}, newStubRegistry(), EmailOwnerDecision, true, 1},
		{"no sender", nil, newStubRegistry(), EmailOwnerDecision, true, 1},
		{"unknown kind", &fakeSender{}, newStubRegistry(), "newsletter", false, 0},
		{"render error", &fakeSender{}, mapRegistry{EmailOwnerDecision: stubTemplate{kind: EmailOwnerDecision, err: errors.New("bad")}}, EmailOwnerDecision, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			emails := newFakeEmailRepo()
			var n *Notifier
			if tt.sender == nil {
				n = NewNotifier(emails, nil, tt.registry, newTestMetrics(), testLogger)
			} else {
				n = NewNotifier(emails, tt.sender, tt.registry, newTestMetrics(), testLogger)
			}

			err := n.Send(context.Background(), tt.kind, OwnerDecisionEmail{Email: "kasun@example.com"})
			assert.Error(t, err)
			assert.Equal(t, tt.wantLog, len(emails.logs) == 1)
			assert.Len(t, emails.failed, tt.wantFails)
		})
	}
}

func TestNotifier_Logs(t *testing.T) {
	emails := newFakeEmailRepo()
	n := NewNotifier(emails, &fakeSender{err: errors.New("down")}, newStubRegistry(), newTestMetrics(), testLogger)

	logs, err := n.Logs(context.Background(), "", 0)
	require.NoError(t, err)
	assert.NotNil(t, logs)
	assert.Empty(t, logs)

	_ = emails.Save(context.Background(), &entity.EmailLog{Kind: EmailOwnerDecision})
	logs, err = n.Logs(context.Background(), entity.StatusPending, 10)
	require.NoError(t, err)
	assert.Len(t, logs, 1)
}

func TestCheckoutNotifier_AwaitReturnsWhenWritten(t *testing.T) {
	repo := newFakeNotificationRepo()
	n := NewCheckoutNotifier(repo, testLogger, 5*time.Millisecond)

	go func() {
		time.Sleep(20 * time.Millisecond)
		_ = n.Notify(context.Background(), &entity.CheckoutNotification{SessionID: "cs_1", URL: "https://checkout.example/cs_1"})
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	got, err := n.Await(ctx, "cs_1")
	require.NoError(t, err)
	assert.Equal(t, "https://checkout.example/cs_1", got.URL)
}

func TestCheckoutNotifier_AwaitTimesOut(t *testing.T) {
	n := NewCheckoutNotifier(newFakeNotificationRepo(), testLogger, 5*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	got, err := n.Await(ctx, "cs_never")
	assert.Nil(t, got)
	assert.True(t, isTimeout(err))
}

func TestCheckoutNotifier_NotifyValidates(t *testing.T) {
	n := NewCheckoutNotifier(newFakeNotificationRepo(), testLogger, 0)

	var ve *ValidationError
	assert.ErrorAs(t, n.Notify(context.Background(), &entity.CheckoutNotification{URL: "x"}), &ve)
	assert.ErrorAs(t, n.Notify(context.Background(), &entity.CheckoutNotification{SessionID: "cs_1"}), &ve)
	assert.NoError(t, n.Notify(context.Background(), &entity.CheckoutNotification{SessionID: " cs_1 ", Error: "Card declined"}))
}

func TestVerifyCheckoutSignature(t *testing.T) {
	body := []byte(`{"url":"https://checkout.example/cs_1"}`)
	mac := hmac.New(sha256.New, []byte("whsec"))
	mac.Write([]byte("cs_1\n"))
	mac.Write(body)
	sig := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	assert.Equal(t, sig, SignCheckoutNotification("cs_1", body, "whsec"))
	assert.True(t, VerifyCheckoutSignature("cs_1", body, sig, "whsec"))
	assert.False(t, VerifyCheckoutSignature("cs_1", body, sig, "other"))
	assert.False(t, VerifyCheckoutSignature("cs_1", []byte(`{}`), sig, "whsec"))
	assert.False(t, VerifyCheckoutSignature("cs_1", body, "", "whsec"))
	assert.False(t, VerifyCheckoutSignature("cs_1", body, sig, ""))
	assert.False(t, VerifyCheckoutSignature("cs_2", body, sig, "whsec"), "signature is bound to its session")
	assert.False(t, VerifyCheckoutSignature("", body, sig, "whsec"))
}

func TestObjectPath(t *testing.T) {
	now := time.UnixMilli(1760000000000)

	p, err := ObjectPath("drivers", "My Photo (1).JPG", now)
	require.NoError(t, err)
	assert.Equal(t, "drivers/1760000000000_My_Photo_1_.JPG", p)

	p, err = ObjectPath("charters", `C:\fakepath\jet.png`, now)
	require.NoError(t, err)
	assert.Equal(t, "charters/1760000000000_jet.png", p)

	p, err = ObjectPath("luxury", "...", now)
	require.NoError(t, err)
	assert.Equal(t, "luxury/1760000000000_upload", p)

	_, err = ObjectPath("secrets", "a.png", now)
	assert.ErrorIs(t, err, ErrInvalidFolder)
}

func TestUploadService(t *testing.T) {
	storage := &fakeStorage{}
	s := NewUploadService(storage)
	s.now = func() time.Time { return time.UnixMilli(1760000000000) }

	url, err := s.Upload(context.Background(), "concierge", "yacht.webp", "image/webp", strings.NewReader("img"))
	require.NoError(t, err)
	assert.Equal(t, "https://storage.googleapis.com/bucket/concierge/1760000000000_yacht.webp", url)
	assert.Equal(t, []byte("img"), storage.body)

	storage.err = errors.New("403")
	_, err = s.Upload(context.Background(), "concierge", "yacht.webp", "image/webp", strings.NewReader("img"))
	assert.Error(t, err)

	_, err = NewUploadService(nil).Upload(context.Background(), "concierge", "a.png", "image/png", strings.NewReader(""))
	assert.Error(t, err)
}

func TestVoucher(t *testing.T) {
	repo := newFakeBookingRepo()
	record := BuildBookingRecord(submitRequest(entity.PaymentBank), CalculatePricing(validDraft(entity.PaymentBank), entity.DefaultTourConfig()))
	record.Status = entity.BookingConfirmed
	_, err := repo.Create(context.Background(), &record)
	require.NoError(t, err)

	s := NewVoucherService(repo)
	pdf, name, err := s.Voucher(context.Background(), "RT-MGJ6K3CW-00AB", VoucherRequester{Email: "Amara@Example.com "})
	require.NoError(t, err)
	assert.Equal(t, "voucher_RT-MGJ6K3CW-00AB.pdf", name)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))

	_, _, err = s.Voucher(context.Background(), "RT-NOPE", VoucherRequester{Email: "amara@example.com"})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestVoucher_RequiresOwnership(t *testing.T) {
	repo := newFakeBookingRepo()
	record := BuildBookingRecord(submitRequest(entity.PaymentBank), CalculatePricing(validDraft(entity.PaymentBank), entity.DefaultTourConfig()))
	_, err := repo.Create(context.Background(), &record)
	require.NoError(t, err)
	s := NewVoucherService(repo)

	tests := []struct {
		name    string
		who     VoucherRequester
		allowed bool
	}{
		{"anonymous", VoucherRequester{}, false},
		{"other email", VoucherRequester{Email: "someone@example.com"}, false},
		{"booking email", VoucherRequester{Email: "amara@example.com"}, true},
		{"owning account", VoucherRequester{User: &entity.User{ID: "user-7", Role: entity.RoleCustomer}}, true},
		{"other account", VoucherRequester{User: &entity.User{ID: "user-8", Role: entity.RoleCustomer}}, false},
		{"admin", VoucherRequester{User: &entity.User{ID: "ops-1", Role: entity.RoleAdmin}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := s.Voucher(context.Background(), "RT-MGJ6K3CW-00AB", tt.who)
			if tt.allowed {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, repository.ErrNotFound)
		})
	}
}

func TestCanReadVoucher_GuestBooking(t *testing.T) {
	record := entity.BookingRecord{CustomerEmail: "guest@example.com"}

	assert.False(t, CanReadVoucher(record, VoucherRequester{User: &entity.User{ID: ""}}), "an empty user id never matches a guest booking")
	assert.True(t, CanReadVoucher(record, VoucherRequester{Email: "GUEST@example.com"}))
}

func TestBuildVoucherPDF_NonASCIIText(t *testing.T) {
	record := entity.BookingRecord{
		Reference:     "RT-MGJ6K3CW-00AB",
		TourTitle:     "Sigiriya & Dambulla Café Tour",
		CustomerName:  "Jürgen Müller",
		CustomerEmail: "jurgen@example.de",
		Details:       entity.BookingDetails{Date: "2026-10-25", Adults: 2, SpecialRequests: "Végétarien, s’il vous plaît"},
		Payment:       entity.BookingPayment{Method: entity.PaymentBank, Total: 170, Currency: "EUR", Status: "pending"},
	}

	pdf, name, err := BuildVoucherPDF(record, testToday)
	require.NoError(t, err)
	assert.Equal(t, "voucher_RT-MGJ6K3CW-00AB.pdf", name)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))

	tr := gofpdf.New("P", "mm", "A4", "").UnicodeTranslatorFromDescriptor("")
	assert.Equal(t, "J\xfcrgen M\xfcller", tr("Jürgen Müller"))
}
