package repository

import (
	"context"

	"recharge-travels-service/internal/domain/entity"
)

// PageContentRepository reads and writes singleton page documents by id.
// Load decodes the stored document over out, so fields missing from the
// store keep whatever out already holds.
type PageContentRepository interface {
	Load(ctx context.Context, id string, out interface{}) (bool, error)
	Save(ctx context.Context, id string, content interface{}) error
}

// DestinationRepository stores per-slug destination content
type DestinationRepository interface {
	Get(ctx context.Context, slug string) (*entity.DestinationContent, error)
	Save(ctx context.Context, content *entity.DestinationContent) error
}
