package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"recharge-travels-service/internal/domain/entity"
	"recharge-travels-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormTourCatalogRepository implements the TourCatalogRepository interface
type GormTourCatalogRepository struct {
	db *gorm.DB
}

// NewGormTourCatalogRepository creates a new GORM tour catalog repository
func NewGormTourCatalogRepository(db *gorm.DB) repository.TourCatalogRepository {
	return &GormTourCatalogRepository{
		db: db,
	}
}

// Tours GORM model for database mapping
type Tours struct {
	ID             uint           `gorm:"primaryKey"`
	TourID         string         `gorm:"column:tour_id;unique"`
	Title          string         `gorm:"column:title"`
	AdultPrice     float64        `gorm:"column:adult_price"`
	ChildPrice     float64        `gorm:"column:child_price"`
	InfantPrice    float64        `gorm:"column:infant_price"`
	Currency       string         `gorm:"column:currency"`
	CurrencySymbol string         `gorm:"column:currency_symbol"`
	MaxGroupSize   int            `gorm:"column:max_group_size"`
	DeletedAt      gorm.DeletedAt `gorm:"index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName overrides the default table name
func (Tours) TableName() string {
	return "m_tours"
}

// TourPickupOptions GORM model for per-tour pickup points
type TourPickupOptions struct {
	ID             uint    `gorm:"primaryKey"`
	TourID         string  `gorm:"column:tour_id"`
	OptionID       string  `gorm:"column:option_id"`
	Label          string  `gorm:"column:label"`
	PickupTime     string  `gorm:"column:pickup_time"`
	AdditionalCost float64 `gorm:"column:additional_cost"`
	SortOrder      int     `gorm:"column:sort_order"`
}

// TableName overrides the default table name
func (TourPickupOptions) TableName() string {
	return "m_tour_pickup_options"
}

// GetByTourID finds a tour and its pickup options. A missing tour returns nil, nil.
func (r *GormTourCatalogRepository) GetByTourID(ctx context.Context, tourID string) (*entity.Tour, error) {
	var tour Tours
	result := r.db.WithContext(ctx).Where("tour_id = ?", tourID).First(&tour)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get tour %s: %w", tourID, result.Error)
	}

	var pickups []TourPickupOptions
	result = r.db.WithContext(ctx).Where("tour_id = ?", tourID).Order("sort_order").Find(&pickups)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to get pickup options for %s: %w", tourID, result.Error)
	}

	// Convert GORM models to domain entity
	options := make([]entity.PickupOption, 0, len(pickups))
	for _, p := range pickups {
		options = append(options, entity.PickupOption{
			ID:             p.OptionID,
			Label:          p.Label,
			Time:           p.PickupTime,
			AdditionalCost: p.AdditionalCost,
		})
	}

	return &entity.Tour{
		ID:             tour.ID,
		TourID:         tour.TourID,
		Title:          tour.Title,
		AdultPrice:     tour.AdultPrice,
		ChildPrice:     tour.ChildPrice,
		InfantPrice:    tour.InfantPrice,
		Currency:       tour.Currency,
		CurrencySymbol: tour.CurrencySymbol,
		MaxGroupSize:   tour.MaxGroupSize,
		Pickups:        options,
		CreatedAt:      tour.CreatedAt,
		UpdatedAt:      tour.UpdatedAt,
	}, nil
}
