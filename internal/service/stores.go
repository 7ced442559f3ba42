package service

import (
	"context"

	"quiz-engine/internal/difficulty"
	"quiz-engine/internal/models"
)

// QuestionStore is the slice of persistence the engine consumes: create,
// read, and the candidate listings the nearest-difficulty selector works on.
type QuestionStore interface {
	Create(ctx context.Context, question *models.Question) error
	FindByID(ctx context.Context, id string) (*models.Question, error)
	FindByTopic(ctx context.Context, topic string) ([]models.Question, error)
	FindAll(ctx context.Context) ([]models.Question, error)
}

// LearnerStore owns per-learner adaptive state.
type LearnerStore interface {
	GetOrCreate(ctx context.Context, userID string) (*models.LearnerState, error)
	UpdateDifficulty(ctx context.Context, userID string, d float64) error
	UpdateProgress(ctx context.Context, userID string, d float64, level int, window []float64) error
}

// InteractionStore records the audit trail of submitted answers.
type InteractionStore interface {
	Create(ctx context.Context, interaction *models.Interaction) error
}

// Generator is the external content generation collaborator.
type Generator interface {
	Generate(ctx context.Context, level int, topic string, label difficulty.Label, proficiency string, asked []string) (*models.Question, error)
}
