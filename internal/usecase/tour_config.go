package usecase

import (
	"context"

	"recharge-travels-service/internal/domain/entity"
	"recharge-travels-service/internal/domain/repository"
	"recharge-travels-service/pkg/logger"
)

// TourConfigService resolves bookable tour configuration from the catalog
type TourConfigService struct {
	catalog       repository.TourCatalogRepository
	defaultTourID string
	logger        logger.Logger
}

// NewTourConfigService creates a resolver. catalog may be nil when no
// relational store is configured.
func NewTourConfigService(catalog repository.TourCatalogRepository, defaultTourID string, logger logger.Logger) *TourConfigService {
	if defaultTourID == "" {
		defaultTourID = "default-tour"
	}

	return &TourConfigService{
		catalog:       catalog,
		defaultTourID: defaultTourID,
		logger:        logger,
	}
}

// Config returns the catalog entry for tourID, or the default tour when
// there is none or the catalog cannot be read.
func (s *TourConfigService) Config(ctx context.Context, tourID string) entity.TourConfig {
	if tourID == "" {
		tourID = s.defaultTourID
	}

	if s.catalog != nil {
		tour, err := s.catalog.GetByTourID(ctx, tourID)
		if err != nil {
			s.logger.Error("Failed to load tour from catalog, using defaults", "tourId", tourID, "error", err)
		} else if tour != nil {
			return tour.Config()
		}
	}

	cfg := entity.DefaultTourConfig()
	cfg.ID = tourID
	return cfg
}
