package repository

import (
	"recharge-travels-service/internal/domain/entity"
	"recharge-travels-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// NewMongoDriverRepository creates the drivers collection repository
func NewMongoDriverRepository(db *mongo.Database) repository.CollectionRepository[entity.Driver] {
	return NewMongoCollection[entity.Driver](db, "drivers")
}

// NewMongoConciergeServiceRepository lists services by display order
func NewMongoConciergeServiceRepository(db *mongo.Database) repository.CollectionRepository[entity.ConciergeService] {
	return NewMongoCollection[entity.ConciergeService](db, "conciergeServices").
		WithSort(bson.D{{Key: "order", Value: 1}, {Key: "createdAt", Value: -1}})
}

func NewMongoConciergeBookingRepository(db *mongo.Database) repository.CollectionRepository[entity.ConciergeBooking] {
	return NewMongoCollection[entity.ConciergeBooking](db, "conciergeBookings")
}

func NewMongoLuxuryExperienceRepository(db *mongo.Database) repository.CollectionRepository[entity.LuxuryExperience] {
	return NewMongoCollection[entity.LuxuryExperience](db, "luxuryExperiences")
}

func NewMongoCulturalTourRepository(db *mongo.Database) repository.CollectionRepository[entity.CulturalTour] {
	return NewMongoCollection[entity.CulturalTour](db, "culturalTours")
}

func NewMongoCulturalBookingRepository(db *mongo.Database) repository.CollectionRepository[entity.CulturalBooking] {
	return NewMongoCollection[entity.CulturalBooking](db, "culturalBookings")
}
