package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"recharge-travels-service/internal/domain/entity"
	"recharge-travels-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// protectedFields are never written through Update
var protectedFields = []string{"_id", "id", "createdAt"}

// MongoCollection implements CollectionRepository for any document type.
// PT is the pointer type of T and carries the Document methods.
type MongoCollection[T any, PT interface {
	*T
	entity.Document
}] struct {
	collection *mongo.Collection
	sort       bson.D
	now        func() time.Time
}

// NewMongoCollection creates a collection repository sorted by createdAt desc
func NewMongoCollection[T any, PT interface {
	*T
	entity.Document
}](db *mongo.Database, name string) *MongoCollection[T, PT] {
	collection := db.Collection(name)

	ctx := context.Background()
	collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "createdAt", Value: -1}},
	})

	return &MongoCollection[T, PT]{
		collection: collection,
		sort:       bson.D{{Key: "createdAt", Value: -1}},
		now:        time.Now,
	}
}

// WithSort overrides the list order
func (r *MongoCollection[T, PT]) WithSort(sort bson.D) *MongoCollection[T, PT] {
	r.sort = sort
	return r
}

// List returns every document in list order
func (r *MongoCollection[T, PT]) List(ctx context.Context) ([]T, error) {
	return r.Find(ctx, nil)
}

// Find returns documents matching a simple equality filter in list order
func (r *MongoCollection[T, PT]) Find(ctx context.Context, filter map[string]interface{}) ([]T, error) {
	query := bson.M{}
	for k, v := range filter {
		query[k] = v
	}

	cursor, err := r.collection.Find(ctx, query, options.Find().SetSort(r.sort))
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", r.collection.Name(), err)
	}
	defer cursor.Close(ctx)

	docs := []T{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", r.collection.Name(), err)
	}

	for i := range docs {
		PT(&docs[i]).Normalize()
	}

	return docs, nil
}

// Get finds a document by id
func (r *MongoCollection[T, PT]) Get(ctx context.Context, id string) (*T, error) {
	var doc T
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get %s %s: %w", r.collection.Name(), id, err)
	}

	PT(&doc).Normalize()
	return &doc, nil
}

// Create assigns an id and timestamps, then inserts the document
func (r *MongoCollection[T, PT]) Create(ctx context.Context, doc *T) (string, error) {
	p := PT(doc)
	if p.DocumentID() == "" {
		p.SetDocumentID(primitive.NewObjectID().Hex())
	}
	p.Touch(r.now().UTC(), true)
	p.Normalize()

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return "", fmt.Errorf("failed to insert into %s: %w", r.collection.Name(), err)
	}

	return p.DocumentID(), nil
}

// Update sets the given fields and always stamps updatedAt
func (r *MongoCollection[T, PT]) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	set := bson.M{}
	for k, v := range fields {
		set[k] = v
	}
	for _, k := range protectedFields {
		delete(set, k)
	}
	set["updatedAt"] = r.now().UTC()

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update %s %s: %w", r.collection.Name(), id, err)
	}

	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// Delete removes the document permanently
func (r *MongoCollection[T, PT]) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete %s %s: %w", r.collection.Name(), id, err)
	}

	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// Count returns the number of documents in the collection
func (r *MongoCollection[T, PT]) Count(ctx context.Context) (int64, error) {
	n, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", r.collection.Name(), err)
	}
	return n, nil
}
