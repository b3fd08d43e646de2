package entity

import "time"

// Tour is a catalog row from the relational store
type Tour struct {
	ID             uint
	TourID         string
	Title          string
	AdultPrice     float64
	ChildPrice     float64
	InfantPrice    float64
	Currency       string
	CurrencySymbol string
	MaxGroupSize   int
	Pickups        []PickupOption
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Config converts the catalog row into the bookable configuration,
// filling gaps from the default tour.
func (t Tour) Config() TourConfig {
	def := DefaultTourConfig()
	cfg := TourConfig{
		ID:             t.TourID,
		Title:          t.Title,
		AdultPrice:     t.AdultPrice,
		ChildPrice:     t.ChildPrice,
		InfantPrice:    t.InfantPrice,
		Currency:       t.Currency,
		CurrencySymbol: t.CurrencySymbol,
		PickupOptions:  t.Pickups,
		MaxGroupSize:   t.MaxGroupSize,
	}
	defaultString(&cfg.Title, def.Title)
	defaultString(&cfg.Currency, def.Currency)
	defaultString(&cfg.CurrencySymbol, def.CurrencySymbol)
	if len(cfg.PickupOptions) == 0 {
		cfg.PickupOptions = def.PickupOptions
	}
	if cfg.MaxGroupSize <= 0 {
		cfg.MaxGroupSize = def.MaxGroupSize
	}
	return cfg
}
