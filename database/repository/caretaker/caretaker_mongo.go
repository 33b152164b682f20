package caretakerRepo

import (
	"context"
	"fmt"
	"time"

	"careconnect/database"
	"careconnect/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCaretakerRepo implements CaretakerRepository using MongoDB.
type MongoCaretakerRepo struct {
	coll *mongo.Collection
}

// NewMongoCaretakerRepo creates a new instance of CaretakerRepository using MongoDB.
func NewMongoCaretakerRepo() CaretakerRepository {
	coll := database.Collection("caretakers")
	repo := &MongoCaretakerRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in directory queries.
func (r *MongoCaretakerRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "specialization", Value: 1}, {Key: "availability", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new caretaker document.
func (r *MongoCaretakerRepo) Create(caretaker *models.Caretaker) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	caretaker.CreatedAt = now
	caretaker.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, caretaker)
	if err != nil {
		return fmt.Errorf("failed to create caretaker: %w", err)
	}
	return nil
}

// Update overwrites an existing caretaker document.
func (r *MongoCaretakerRepo) Update(caretaker *models.Caretaker) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	caretaker.UpdatedAt = time.Now()
	filter := bson.M{"id": caretaker.ID}
	update := bson.M{"$set": caretaker}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update caretaker with id %s: %w", caretaker.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("caretaker with id %s not found", caretaker.ID)
	}
	return nil
}

// GetByID retrieves a caretaker by its unique ID.
func (r *MongoCaretakerRepo) GetByID(id string) (*models.Caretaker, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var caretaker models.Caretaker
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&caretaker); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch caretaker with id %s: %w", id, err)
	}
	return &caretaker, nil
}

// GetByEmail retrieves a caretaker by its email address.
func (r *MongoCaretakerRepo) GetByEmail(email string) (*models.Caretaker, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var caretaker models.Caretaker
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&caretaker); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch caretaker with email %s: %w", email, err)
	}
	return &caretaker, nil
}

func buildFilter(f CaretakerFilter) bson.M {
	filter := bson.M{}
	if f.ActiveOnly {
		filter["isActive"] = true
	}
	if f.Verified != nil {
		filter["isVerified"] = *f.Verified
	}
	if f.Specialization != "" {
		filter["specialization"] = f.Specialization
	}
	if f.Availability != "" {
		filter["availability"] = f.Availability
	}
	if f.MinRating > 0 {
		filter["rating"] = bson.M{"$gte": f.MinRating}
	}
	if f.City != "" {
		filter["address.city"] = primitive.Regex{Pattern: f.City, Options: "i"}
	}
	if f.Search != "" {
		re := primitive.Regex{Pattern: f.Search, Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"name": re},
			bson.M{"email": re},
			bson.M{"bio": re},
		}
	}
	return filter
}

// List retrieves caretakers matching the filter, best rated first.
func (r *MongoCaretakerRepo) List(filter CaretakerFilter, skip, limit int64) ([]models.Caretaker, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "rating", Value: -1}, {Key: "createdAt", Value: -1}}).
		SetSkip(skip)
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.coll.Find(ctx, buildFilter(filter), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve caretakers: %w", err)
	}
	defer cursor.Close(ctx)

	var caretakers []models.Caretaker
	if err := cursor.All(ctx, &caretakers); err != nil {
		return nil, fmt.Errorf("failed to decode caretakers: %w", err)
	}
	return caretakers, nil
}

// Count counts caretakers matching the filter.
func (r *MongoCaretakerRepo) Count(filter CaretakerFilter) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, buildFilter(filter))
	if err != nil {
		return 0, fmt.Errorf("failed to count caretakers: %w", err)
	}
	return n, nil
}
