package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"recharge-travels-service/internal/domain/entity"
	"recharge-travels-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCheckoutNotificationRepository implements CheckoutNotificationRepository
type MongoCheckoutNotificationRepository struct {
	collection *mongo.Collection
}

// NewMongoCheckoutNotificationRepository creates the checkout side-channel repository
func NewMongoCheckoutNotificationRepository(db *mongo.Database) repository.CheckoutNotificationRepository {
	collection := db.Collection("stripeCheckouts")

	// Notifications expire a day after their last write
	ctx := context.Background()
	ttlIndex := mongo.IndexModel{
		Keys:    bson.M{"updatedAt": 1},
		Options: options.Index().SetExpireAfterSeconds(int32((24 * time.Hour).Seconds())),
	}
	collection.Indexes().CreateOne(ctx, ttlIndex)

	return &MongoCheckoutNotificationRepository{
		collection: collection,
	}
}

// FindBySessionID returns the notification for a session, or nil when none has arrived yet
func (r *MongoCheckoutNotificationRepository) FindBySessionID(ctx context.Context, sessionID string) (*entity.CheckoutNotification, error) {
	var n entity.CheckoutNotification
	err := r.collection.FindOne(ctx, bson.M{"_id": sessionID}).Decode(&n)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &n, nil
}

// Upsert creates or replaces the notification for a session
func (r *MongoCheckoutNotificationRepository) Upsert(ctx context.Context, n *entity.CheckoutNotification) error {
	n.UpdatedAt = time.Now().UTC()

	updateDoc := bson.M{
		"url":       n.URL,
		"error":     n.Error,
		"updatedAt": n.UpdatedAt,
	}

	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": n.SessionID},
		bson.M{"$set": updateDoc},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert checkout notification: %w", err)
	}

	return nil
}
