package repository

import (
	"context"

	"quiz-engine/internal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type InteractionRepository struct {
	Col *mongo.Collection
}

func NewInteractionRepository(db *mongo.Database) *InteractionRepository {
	return &InteractionRepository{Col: db.Collection("interactions")}
}

func (r *InteractionRepository) Create(ctx context.Context, interaction *models.Interaction) error {
	if interaction.ID == "" {
		interaction.ID = uuid.NewString()
	}
	_, err := r.Col.InsertOne(ctx, interaction)
	return err
}

func (r *InteractionRepository) FindByUser(ctx context.Context, userID string) ([]models.Interaction, error) {
	cur, err := r.Col.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var interactions []models.Interaction
	for cur.Next(ctx) {
		var in models.Interaction
		if err := cur.Decode(&in); err != nil {
			return nil, err
		}
		interactions = append(interactions, in)
	}
	return interactions, nil
}
