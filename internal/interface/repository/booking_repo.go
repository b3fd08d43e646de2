package repository

import (
	"context"
	"errors"
	"fmt"

	"recharge-travels-service/internal/domain/entity"
	"recharge-travels-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBookingRepository implements the BookingRepository interface
type MongoBookingRepository struct {
	*MongoCollection[entity.BookingRecord, *entity.BookingRecord]
}

// NewMongoBookingRepository creates a new MongoDB booking repository
func NewMongoBookingRepository(db *mongo.Database) repository.BookingRepository {
	base := NewMongoCollection[entity.BookingRecord](db, "bookings")

	ctx := context.Background()

	// Reference lookups back the voucher download
	referenceIndex := mongo.IndexModel{
		Keys:    bson.M{"reference": 1},
		Options: options.Index().SetUnique(true),
	}

	statusIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "status", Value: 1},
			{Key: "createdAt", Value: -1},
		},
	}

	sessionIndex := mongo.IndexModel{
		Keys: bson.M{"checkoutSessionId": 1},
	}

	base.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		referenceIndex,
		statusIndex,
		sessionIndex,
	})

	return &MongoBookingRepository{MongoCollection: base}
}

// FindByReference finds a booking by its human-readable reference
func (r *MongoBookingRepository) FindByReference(ctx context.Context, reference string) (*entity.BookingRecord, error) {
	var record entity.BookingRecord
	err := r.collection.FindOne(ctx, bson.M{"reference": reference}).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find booking %s: %w", reference, err)
	}

	record.Normalize()
	return &record, nil
}

// UpdateStatus sets the record status and the nested payment status together
func (r *MongoBookingRepository) UpdateStatus(ctx context.Context, id, status, paymentStatus string) error {
	fields := map[string]interface{}{}
	if status != "" {
		fields["status"] = status
	}
	if paymentStatus != "" {
		fields["payment.status"] = paymentStatus
	}

	return r.Update(ctx, id, fields)
}
