package selection

import (
	"context"
	"math"

	"quiz-engine/internal/models"
)

// Nearest returns the question whose stored difficulty is numerically
// closest to target, never the one matching excludeID. Ties keep the first
// candidate in slice order, which for store-backed lookups means insertion
// order. Returns nil when no candidate remains.
func Nearest(questions []models.Question, target float64, excludeID string) *models.Question {
	var best *models.Question
	bestDist := math.MaxFloat64
	for i := range questions {
		q := &questions[i]
		if q.ID == excludeID {
			continue
		}
		dist := math.Abs(q.Difficulty - target)
		if dist < bestDist {
			best = q
			bestDist = dist
		}
	}
	return best
}

// QuestionSource is the slice of the question store the selector consumes.
type QuestionSource interface {
	FindByTopic(ctx context.Context, topic string) ([]models.Question, error)
	FindAll(ctx context.Context) ([]models.Question, error)
}

// Selector retrieves the stored question nearest to a target difficulty,
// preferring same-topic matches and falling back to a cross-topic search
// when the topic yields nothing.
type Selector struct {
	Source QuestionSource
}

func NewSelector(source QuestionSource) *Selector {
	return &Selector{Source: source}
}

// NearestQuestion runs the topic-restricted search first (when topic is
// non-empty), then the unrestricted one. A nil question with a nil error
// means the store has nothing to offer.
func (s *Selector) NearestQuestion(ctx context.Context, target float64, excludeID, topic string) (*models.Question, error) {
	if topic != "" {
		questions, err := s.Source.FindByTopic(ctx, topic)
		if err != nil {
			return nil, err
		}
		if q := Nearest(questions, target, excludeID); q != nil {
			return q, nil
		}
	}

	questions, err := s.Source.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return Nearest(questions, target, excludeID), nil
}
