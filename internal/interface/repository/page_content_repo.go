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

// MongoPageContentRepository stores singleton page documents in pageContent
type MongoPageContentRepository struct {
	collection *mongo.Collection
}

// NewMongoPageContentRepository creates a new page content repository
func NewMongoPageContentRepository(db *mongo.Database) repository.PageContentRepository {
	return &MongoPageContentRepository{
		collection: db.Collection("pageContent"),
	}
}

// Load decodes the stored document over out. The driver does not zero
// structs before decoding, so absent fields keep their defaults.
func (r *MongoPageContentRepository) Load(ctx context.Context, id string, out interface{}) (bool, error) {
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(out)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, fmt.Errorf("failed to load page content %s: %w", id, err)
	}
	return true, nil
}

// Save merges content into the stored document and stamps updatedAt
func (r *MongoPageContentRepository) Save(ctx context.Context, id string, content interface{}) error {
	raw, err := bson.Marshal(content)
	if err != nil {
		return fmt.Errorf("failed to marshal page content: %w", err)
	}

	var set bson.M
	if err := bson.Unmarshal(raw, &set); err != nil {
		return fmt.Errorf("failed to prepare page content: %w", err)
	}
	delete(set, "_id")
	set["updatedAt"] = time.Now().UTC()

	_, err = r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to save page content %s: %w", id, err)
	}

	return nil
}

// MongoDestinationRepository stores destination page content keyed by slug
type MongoDestinationRepository struct {
	collection *mongo.Collection
}

// NewMongoDestinationRepository creates a new destination content repository
func NewMongoDestinationRepository(db *mongo.Database) repository.DestinationRepository {
	return &MongoDestinationRepository{
		collection: db.Collection("destinations"),
	}
}

// Get returns stored content for slug, or nil when nothing is stored
func (r *MongoDestinationRepository) Get(ctx context.Context, slug string) (*entity.DestinationContent, error) {
	var content entity.DestinationContent
	err := r.collection.FindOne(ctx, bson.M{"_id": slug}).Decode(&content)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get destination %s: %w", slug, err)
	}
	return &content, nil
}

// Save upserts the sections present on content
func (r *MongoDestinationRepository) Save(ctx context.Context, content *entity.DestinationContent) error {
	now := time.Now().UTC()
	content.UpdatedAt = &now

	set := bson.M{"updatedAt": now}
	if content.HeroSlides != nil {
		set["heroSlides"] = content.HeroSlides
	}
	if content.Attractions != nil {
		set["attractions"] = content.Attractions
	}
	if content.Activities != nil {
		set["activities"] = content.Activities
	}
	if content.DestinationInfo != nil {
		set["destinationInfo"] = content.DestinationInfo
	}

	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": content.Slug},
		bson.M{"$set": set},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to save destination %s: %w", content.Slug, err)
	}

	return nil
}
