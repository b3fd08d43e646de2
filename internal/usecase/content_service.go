package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"recharge-travels-service/internal/domain/entity"
	"recharge-travels-service/internal/domain/repository"
	"recharge-travels-service/pkg/logger"
)

// Page content document ids
const (
	PagePrivateCharters   = "private-charters"
	PageConciergeHero     = "concierge-hero"
	PageConciergeSettings = "concierge-settings"
)

// ContentService serves CMS-editable page content with built-in defaults
type ContentService struct {
	pages        repository.PageContentRepository
	destinations repository.DestinationRepository
	logger       logger.Logger
}

// NewContentService creates a new content service
func NewContentService(
	pages repository.PageContentRepository,
	destinations repository.DestinationRepository,
	logger logger.Logger,
) *ContentService {
	return &ContentService{
		pages:        pages,
		destinations: destinations,
		logger:       logger,
	}
}

// Destination merges stored sections over the defaults for slug
func (s *ContentService) Destination(ctx context.Context, slug string) entity.DestinationContent {
	slug = strings.ToLower(strings.TrimSpace(slug))
	defaults := entity.DefaultDestinationContent(slug)

	stored, err := s.destinations.Get(ctx, slug)
	if err != nil {
		s.logger.Error("Failed to load destination, using defaults", "slug", slug, "error", err)
		return defaults
	}
	if stored == nil {
		return defaults
	}

	return stored.MergeOver(defaults)
}

// SaveDestination stores the sections present on content
func (s *ContentService) SaveDestination(ctx context.Context, slug string, content *entity.DestinationContent) error {
	slug = strings.ToLower(strings.TrimSpace(slug))
	if slug == "" {
		return &ValidationError{Fields: map[string]string{"slug": "Slug is required"}}
	}

	content.Slug = slug
	if err := s.destinations.Save(ctx, content); err != nil {
		return fmt.Errorf("failed to save destination %s: %w", slug, err)
	}
	return nil
}

// PrivateCharters returns the stored page over the defaults, seeding the
// defaults when nothing is stored yet.
func (s *ContentService) PrivateCharters(ctx context.Context) entity.PrivateChartersContent {
	content := entity.DefaultPrivateChartersContent()

	found, err := s.pages.Load(ctx, PagePrivateCharters, &content)
	if err != nil {
		s.logger.Error("Failed to load private charters content, using defaults", "error", err)
		return entity.DefaultPrivateChartersContent()
	}

	if !found {
		if err := s.pages.Save(ctx, PagePrivateCharters, content); err != nil {
			s.logger.Warn("Failed to seed private charters content", "error", err)
		}
	}

	return content
}

// SavePrivateCharters merges content into the stored page
func (s *ContentService) SavePrivateCharters(ctx context.Context, content entity.PrivateChartersContent) error {
	now := time.Now().UTC()
	content.UpdatedAt = &now

	if err := s.pages.Save(ctx, PagePrivateCharters, content); err != nil {
		return fmt.Errorf("failed to save private charters content: %w", err)
	}
	return nil
}

// ResetPrivateCharters overwrites the page with the defaults
func (s *ContentService) ResetPrivateCharters(ctx context.Context) (entity.PrivateChartersContent, error) {
	content := entity.DefaultPrivateChartersContent()
	if err := s.SavePrivateCharters(ctx, content); err != nil {
		return content, err
	}

	s.logger.Info("Private charters content reset to defaults")
	return content, nil
}

// ConciergeHero returns the stored hero over the defaults
func (s *ContentService) ConciergeHero(ctx context.Context) entity.ConciergeHero {
	hero := entity.DefaultConciergeHero()
	if _, err := s.pages.Load(ctx, PageConciergeHero, &hero); err != nil {
		s.logger.Error("Failed to load concierge hero, using defaults", "error", err)
		return entity.DefaultConciergeHero()
	}
	return hero
}

func (s *ContentService) SaveConciergeHero(ctx context.Context, hero entity.ConciergeHero) error {
	if err := s.pages.Save(ctx, PageConciergeHero, hero); err != nil {
		return fmt.Errorf("failed to save concierge hero: %w", err)
	}
	return nil
}

// ConciergeSettings returns the stored settings over the defaults
func (s *ContentService) ConciergeSettings(ctx context.Context) entity.ConciergeSettings {
	settings := entity.DefaultConciergeSettings()
	if _, err := s.pages.Load(ctx, PageConciergeSettings, &settings); err != nil {
		s.logger.Error("Failed to load concierge settings, using defaults", "error", err)
		return entity.DefaultConciergeSettings()
	}
	if settings.Currency == "" {
		settings.Currency = "USD"
	}
	return settings
}

func (s *ContentService) SaveConciergeSettings(ctx context.Context, settings entity.ConciergeSettings) error {
	if settings.Currency == "" {
		settings.Currency = "USD"
	}
	if err := s.pages.Save(ctx, PageConciergeSettings, settings); err != nil {
		return fmt.Errorf("failed to save concierge settings: %w", err)
	}
	return nil
}
