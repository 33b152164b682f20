package feedbackRepo

import (
	"context"
	"fmt"
	"time"

	"careconnect/database"
	"careconnect/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoFeedbackRepo implements FeedbackRepository using MongoDB.
type MongoFeedbackRepo struct {
	coll *mongo.Collection
}

// NewMongoFeedbackRepo creates a new instance of FeedbackRepository using MongoDB.
func NewMongoFeedbackRepo() FeedbackRepository {
	coll := database.Collection("feedback")
	repo := &MongoFeedbackRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes enforces one feedback per booking and speeds caretaker queries.
func (r *MongoFeedbackRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "bookingId", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "caretakerId", Value: 1}, {Key: "isVisible", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new feedback document.
func (r *MongoFeedbackRepo) Create(feedback *models.Feedback) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	feedback.CreatedAt = now
	feedback.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, feedback)
	if err != nil {
		return fmt.Errorf("failed to create feedback: %w", err)
	}
	return nil
}

// Update overwrites an existing feedback document.
func (r *MongoFeedbackRepo) Update(feedback *models.Feedback) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	feedback.UpdatedAt = time.Now()
	filter := bson.M{"id": feedback.ID}
	update := bson.M{"$set": feedback}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update feedback with id %s: %w", feedback.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("feedback with id %s not found", feedback.ID)
	}
	return nil
}

// Delete removes a feedback document by its ID.
func (r *MongoFeedbackRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete feedback with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("feedback with id %s not found", id)
	}
	return nil
}

// GetByID retrieves a feedback document by its unique ID.
func (r *MongoFeedbackRepo) GetByID(id string) (*models.Feedback, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var feedback models.Feedback
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&feedback); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch feedback with id %s: %w", id, err)
	}
	return &feedback, nil
}

// GetByBooking retrieves the feedback referencing a booking, if any.
func (r *MongoFeedbackRepo) GetByBooking(bookingID string) (*models.Feedback, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var feedback models.Feedback
	if err := r.coll.FindOne(ctx, bson.M{"bookingId": bookingID}).Decode(&feedback); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch feedback for booking %s: %w", bookingID, err)
	}
	return &feedback, nil
}

func caretakerFilter(caretakerID string, visibleOnly bool) bson.M {
	filter := bson.M{"caretakerId": caretakerID}
	if visibleOnly {
		filter["isVisible"] = true
	}
	return filter
}

// ListByCaretaker retrieves feedback for a caretaker, newest first.
func (r *MongoFeedbackRepo) ListByCaretaker(caretakerID string, visibleOnly bool, skip, limit int64) ([]models.Feedback, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetSkip(skip)
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.coll.Find(ctx, caretakerFilter(caretakerID, visibleOnly), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve feedback: %w", err)
	}
	defer cursor.Close(ctx)

	var feedbacks []models.Feedback
	if err := cursor.All(ctx, &feedbacks); err != nil {
		return nil, fmt.Errorf("failed to decode feedback: %w", err)
	}
	return feedbacks, nil
}

// CountByCaretaker counts feedback for a caretaker.
func (r *MongoFeedbackRepo) CountByCaretaker(caretakerID string, visibleOnly bool) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, caretakerFilter(caretakerID, visibleOnly))
	if err != nil {
		return 0, fmt.Errorf("failed to count feedback: %w", err)
	}
	return n, nil
}

// ListByUser retrieves a user's submitted feedback, newest first.
func (r *MongoFeedbackRepo) ListByUser(userID string) ([]models.Feedback, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve feedback: %w", err)
	}
	defer cursor.Close(ctx)

	var feedbacks []models.Feedback
	if err := cursor.All(ctx, &feedbacks); err != nil {
		return nil, fmt.Errorf("failed to decode feedback: %w", err)
	}
	return feedbacks, nil
}
