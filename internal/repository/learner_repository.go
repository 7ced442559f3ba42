package repository

import (
	"context"
	"time"

	"quiz-engine/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type LearnerRepository struct {
	Col *mongo.Collection
}

func NewLearnerRepository(db *mongo.Database) *LearnerRepository {
	return &LearnerRepository{Col: db.Collection("learners")}
}

// GetOrCreate returns the learner's state, inserting a fresh level-1 record
// on first contact.
func (r *LearnerRepository) GetOrCreate(ctx context.Context, userID string) (*models.LearnerState, error) {
	var learner models.LearnerState
	err := r.Col.FindOne(ctx, bson.M{"_id": userID}).Decode(&learner)
	if err == nil {
		return &learner, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}

	fresh := models.NewLearnerState(userID)
	if _, err := r.Col.InsertOne(ctx, fresh); err != nil {
		return nil, err
	}
	return fresh, nil
}

func (r *LearnerRepository) UpdateDifficulty(ctx context.Context, userID string, d float64) error {
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{"$set": bson.M{
		"current_difficulty": d,
		"updated_at":         time.Now(),
	}})
	return err
}

// UpdateProgress writes the full adaptive position in one shot: difficulty,
// level and the rolling score window.
func (r *LearnerRepository) UpdateProgress(ctx context.Context, userID string, d float64, level int, window []float64) error {
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{"$set": bson.M{
		"current_difficulty": d,
		"current_level":      level,
		"recent_score_pcts":  window,
		"updated_at":         time.Now(),
	}})
	return err
}
