package usecase

import (
	"context"
	"fmt"

	"recharge-travels-service/internal/domain/entity"
	"recharge-travels-service/internal/domain/repository"
	"recharge-travels-service/pkg/logger"
	"recharge-travels-service/pkg/metrics"
)

// CatalogService is the admin CRUD surface over one collection
type CatalogService[T any] struct {
	name    string
	repo    repository.CollectionRepository[T]
	rules   FieldRules
	metrics *metrics.Metrics
	logger  logger.Logger
}

// FieldRules restricts enum-valued fields to their allowed values. Keys are
// stored field names; nested fields use dotted paths such as "payment.status".
type FieldRules map[string]func(string) bool

// NewCatalogService creates a CRUD service; name labels logs and metrics
func NewCatalogService[T any](
	name string,
	repo repository.CollectionRepository[T],
	metrics *metrics.Metrics,
	logger logger.Logger,
) *CatalogService[T] {
	return &CatalogService[T]{
		name:    name,
		repo:    repo,
		metrics: metrics,
		logger:  logger,
	}
}

// List never fails: read errors are logged and yield an empty list
func (s *CatalogService[T]) List(ctx context.Context) []T {
	items, err := s.repo.List(ctx)
	if err != nil {
		s.metrics.ErrorsCount.WithLabelValues("list_" + s.name).Inc()
		s.logger.Error("Failed to list documents", "collection", s.name, "error", err)
		return []T{}
	}
	if items == nil {
		return []T{}
	}
	return items
}

// Find lists documents matching filter, with the same error policy as List
func (s *CatalogService[T]) Find(ctx context.Context, filter map[string]interface{}) []T {
	items, err := s.repo.Find(ctx, filter)
	if err != nil {
		s.metrics.ErrorsCount.WithLabelValues("list_" + s.name).Inc()
		s.logger.Error("Failed to find documents", "collection", s.name, "error", err)
		return []T{}
	}
	if items == nil {
		return []T{}
	}
	return items
}

// Get returns repository.ErrNotFound when id does not exist
func (s *CatalogService[T]) Get(ctx context.Context, id string) (*T, error) {
	return s.repo.Get(ctx, id)
}

// Create validates doc when it has required fields and stores it
func (s *CatalogService[T]) Create(ctx context.Context, doc *T) (string, error) {
	if v, ok := any(doc).(entity.Validator); ok {
		if err := v.Validate(); err != nil {
			return "", toValidationError(err)
		}
	}

	id, err := s.repo.Create(ctx, doc)
	if err != nil {
		s.metrics.ErrorsCount.WithLabelValues("create_" + s.name).Inc()
		return "", fmt.Errorf("failed to create %s: %w", s.name, err)
	}

	s.logger.Info("Document created", "collection", s.name, "id", id)
	return id, nil
}

// WithRules sets the enum checks Update applies
func (s *CatalogService[T]) WithRules(rules FieldRules) *CatalogService[T] {
	s.rules = rules
	return s
}

// Update applies a partial update. Protected keys are ignored by the
// repository; enum fields must hold an allowed value.
func (s *CatalogService[T]) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	if err := s.rules.check("", fields); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, id, fields); err != nil {
		return fmt.Errorf("failed to update %s %s: %w", s.name, id, err)
	}
	return nil
}

// Delete removes the document permanently
func (s *CatalogService[T]) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete %s %s: %w", s.name, id, err)
	}

	s.logger.Info("Document deleted", "collection", s.name, "id", id)
	return nil
}

// setStatus writes a validated status field
func (s *CatalogService[T]) setStatus(ctx context.Context, id, field, status string, valid func(string) bool) error {
	if !valid(status) {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	return s.Update(ctx, id, map[string]interface{}{field: status})
}

func (r FieldRules) check(prefix string, fields map[string]interface{}) error {
	for key, value := range fields {
		path := prefix + key
		if nested, ok := value.(map[string]interface{}); ok {
			if err := r.check(path+".", nested); err != nil {
				return err
			}
			continue
		}

		valid, ok := r[path]
		if !ok {
			continue
		}
		str, isString := value.(string)
		if !isString || !valid(str) {
			return fmt.Errorf("%w: %s %v", ErrInvalidStatus, path, value)
		}
	}
	return nil
}

func toValidationError(err error) error {
	if fe, ok := err.(*entity.FieldError); ok {
		return &ValidationError{Fields: map[string]string{fe.Field: fe.Message}}
	}
	return &ValidationError{Fields: map[string]string{"body": err.Error()}}
}
