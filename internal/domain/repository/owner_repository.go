package repository

import (
	"context"

	"recharge-travels-service/internal/domain/entity"
)

// OwnerRepository stores vehicle owner applications
type OwnerRepository interface {
	List(ctx context.Context, filter entity.OwnerFilter) ([]entity.OwnerSubmission, error)
	Get(ctx context.Context, id string) (*entity.OwnerSubmission, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) error
	CountByStatus(ctx context.Context) (map[entity.VerificationStatus]int, error)
}

// OwnerDocumentRepository stores the documents attached to owner applications
type OwnerDocumentRepository interface {
	ListByOwner(ctx context.Context, ownerID string) ([]entity.OwnerDocument, error)
	Get(ctx context.Context, id string) (*entity.OwnerDocument, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) error
}
