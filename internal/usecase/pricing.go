package usecase

import (
	"recharge-travels-service/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// Pricing is the cost breakdown of a draft. Amounts are rounded to cents
// and Total is always exactly Subtotal plus PickupCost.
type Pricing struct {
	Subtotal   decimal.Decimal `json:"subtotal"`
	PickupCost decimal.Decimal `json:"pickupCost"`
	Total      decimal.Decimal `json:"total"`
	Currency   string          `json:"currency"`
}

// CalculatePricing prices draft against cfg. Infants travel free and the
// pickup surcharge applies to adults and children only.
func CalculatePricing(draft entity.BookingDraft, cfg entity.TourConfig) Pricing {
	adults := decimal.NewFromInt(int64(max(draft.Adults, 0)))
	children := decimal.NewFromInt(int64(max(draft.Children, 0)))

	subtotal := adults.Mul(decimal.NewFromFloat(cfg.AdultPrice)).
		Add(children.Mul(decimal.NewFromFloat(cfg.ChildPrice))).
		Round(2)

	pickupCost := decimal.Zero
	if option, ok := cfg.Pickup(draft.PickupOption); ok {
		pickupCost = decimal.NewFromFloat(option.AdditionalCost).Mul(adults.Add(children)).Round(2)
	}

	return Pricing{
		Subtotal:   subtotal,
		PickupCost: pickupCost,
		Total:      subtotal.Add(pickupCost),
		Currency:   cfg.Currency,
	}
}

// Amount converts a priced amount for storage and wire formats that carry
// plain numbers
func Amount(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}
