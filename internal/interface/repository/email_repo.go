// internal/interface/repository/email_repo.go
package repository

import (
	"context"
	"fmt"
	"time"

	"recharge-travels-service/internal/domain/entity"
	"recharge-travels-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoEmailRepository implements the EmailRepository interface
type MongoEmailRepository struct {
	collection *mongo.Collection
}

// NewMongoEmailRepository creates a new MongoDB email log repository
func NewMongoEmailRepository(db *mongo.Database) repository.EmailRepository {
	collection := db.Collection("emailLogs")

	ctx := context.Background()

	// Index on status for finding failed deliveries
	statusIndex := mongo.IndexModel{
		Keys: bson.M{"status": 1},
	}

	// Index on createdAt for sorting and filtering
	createdAtIndex := mongo.IndexModel{
		Keys: bson.M{"createdAt": -1},
	}

	collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		statusIndex,
		createdAtIndex,
	})

	return &MongoEmailRepository{
		collection: collection,
	}
}

// Save inserts a new email log entry
func (r *MongoEmailRepository) Save(ctx context.Context, log *entity.EmailLog) error {
	if log.ID == "" {
		log.ID = primitive.NewObjectID().Hex()
	}
	if log.Status == "" {
		log.Status = entity.StatusPending
	}
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now().UTC()
	}

	_, err := r.collection.InsertOne(ctx, log)
	return err
}

// MarkSent records a successful delivery
func (r *MongoEmailRepository) MarkSent(ctx context.Context, id, providerID string, sentAt time.Time) error {
	update := bson.M{
		"$set": bson.M{
			"status":     entity.StatusCompleted,
			"providerId": providerID,
			"sentAt":     sentAt,
		},
	}

	return r.updateOne(ctx, id, update)
}

// MarkFailed records a failed delivery with its error detail
func (r *MongoEmailRepository) MarkFailed(ctx context.Context, id, errorDetail string) error {
	update := bson.M{
		"$set": bson.M{
			"status":      entity.StatusFailed,
			"errorDetail": errorDetail,
		},
	}

	return r.updateOne(ctx, id, update)
}

func (r *MongoEmailRepository) updateOne(ctx context.Context, id string, update bson.M) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update email log: %w", err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("no email log found with id: %s", id)
	}

	return nil
}

// FindByStatus finds email logs by status, most recent first
func (r *MongoEmailRepository) FindByStatus(ctx context.Context, status string, limit int) ([]*entity.EmailLog, error) {
	filter := bson.M{"status": status}

	limit64 := int64(limit)
	cursor, err := r.collection.Find(ctx, filter, &options.FindOptions{
		Limit: &limit64,
		Sort:  bson.D{{Key: "createdAt", Value: -1}},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var logs []*entity.EmailLog
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, err
	}

	return logs, nil
}
