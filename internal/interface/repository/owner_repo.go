package repository

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"recharge-travels-service/internal/domain/entity"
	"recharge-travels-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoOwnerRepository implements the OwnerRepository interface
type MongoOwnerRepository struct {
	*MongoCollection[entity.OwnerSubmission, *entity.OwnerSubmission]
}

// NewMongoOwnerRepository creates a new MongoDB vehicle owner repository
func NewMongoOwnerRepository(db *mongo.Database) repository.OwnerRepository {
	base := NewMongoCollection[entity.OwnerSubmission](db, "vehicleOwners")

	base.collection.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys: bson.M{"verificationStatus": 1},
	})

	return &MongoOwnerRepository{MongoCollection: base}
}

// List returns owners matching the status filter and a case-insensitive
// search over name, email and phone.
func (r *MongoOwnerRepository) List(ctx context.Context, filter entity.OwnerFilter) ([]entity.OwnerSubmission, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["verificationStatus"] = filter.Status
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
		query["$or"] = []bson.M{
			{"fullName": pattern},
			{"email": pattern},
			{"phone": pattern},
		}
	}

	cursor, err := r.collection.Find(ctx, query, options.Find().SetSort(r.sort))
	if err != nil {
		return nil, fmt.Errorf("failed to query owners: %w", err)
	}
	defer cursor.Close(ctx)

	owners := []entity.OwnerSubmission{}
	if err := cursor.All(ctx, &owners); err != nil {
		return nil, fmt.Errorf("failed to decode owners: %w", err)
	}

	for i := range owners {
		owners[i].Normalize()
	}

	return owners, nil
}

// CountByStatus aggregates owners per verification status
func (r *MongoOwnerRepository) CountByStatus(ctx context.Context) (map[entity.VerificationStatus]int, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$verificationStatus"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate owner status: %w", err)
	}
	defer cursor.Close(ctx)

	counts := map[entity.VerificationStatus]int{}
	for cursor.Next(ctx) {
		var row struct {
			Status string `bson:"_id"`
			Count  int    `bson:"count"`
		}
		if err := cursor.Decode(&row); err != nil {
			continue
		}
		counts[entity.VerificationStatus(row.Status)] += row.Count
	}

	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}

// MongoOwnerDocumentRepository implements the OwnerDocumentRepository interface
type MongoOwnerDocumentRepository struct {
	*MongoCollection[entity.OwnerDocument, *entity.OwnerDocument]
}

// NewMongoOwnerDocumentRepository creates a new MongoDB owner document repository
func NewMongoOwnerDocumentRepository(db *mongo.Database) repository.OwnerDocumentRepository {
	base := NewMongoCollection[entity.OwnerDocument](db, "ownerDocuments")

	base.collection.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys: bson.D{{Key: "ownerId", Value: 1}, {Key: "uploadedAt", Value: -1}},
	})

	return &MongoOwnerDocumentRepository{MongoCollection: base}
}

// ListByOwner returns all documents uploaded by an owner
func (r *MongoOwnerDocumentRepository) ListByOwner(ctx context.Context, ownerID string) ([]entity.OwnerDocument, error) {
	return r.Find(ctx, map[string]interface{}{"ownerId": ownerID})
}
