package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"quiz-engine/internal/difficulty"
	"quiz-engine/internal/models"
	"quiz-engine/internal/selection"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrQuestionNotFound signals an unknown question id at submission time.
// The HTTP layer maps it to a 404.
var ErrQuestionNotFound = errors.New("question not found")

// SubmitRequest is one answer submission in the formula-based flow.
type SubmitRequest struct {
	UserID          string                     `json:"user_id"`
	QuestionID      string                     `json:"question_id"`
	FinalAnswer     string                     `json:"final_answer"`
	TimeTakenMs     int                        `json:"time_taken_ms"`
	ConfidenceLevel string                     `json:"confidence_level"`
	InteractionLog  []models.InteractionRecord `json:"interaction_log"`
}

// EngineService runs the formula-based difficulty pipeline: grade the
// answer, compute the clamped difficulty update, persist learner state and
// the audit record, then pick the nearest next question.
type EngineService struct {
	Questions    QuestionStore
	Learners     LearnerStore
	Interactions InteractionStore

	selector *selection.Selector
	weights  difficulty.Weights

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewEngineService(questions QuestionStore, learners LearnerStore, interactions InteractionStore, weights difficulty.Weights) *EngineService {
	return &EngineService{
		Questions:    questions,
		Learners:     learners,
		Interactions: interactions,
		selector:     selection.NewSelector(questions),
		weights:      weights,
		locks:        make(map[string]*sync.Mutex),
	}
}

// lockLearner serializes state updates per learner id. Two racing
// submissions for the same learner would otherwise lose a difficulty update.
func (s *EngineService) lockLearner(userID string) func() {
	s.mu.Lock()
	lock, ok := s.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[userID] = lock
	}
	s.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}

// SubmitAnswer applies one answer event end to end and returns the grading
// review, the difficulty trace and the next question (nil when the store
// holds nothing else to offer).
func (s *EngineService) SubmitAnswer(ctx context.Context, req SubmitRequest) (*models.SubmitResult, error) {
	question, err := s.Questions.FindByID(ctx, req.QuestionID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: %s", ErrQuestionNotFound, req.QuestionID)
		}
		return nil, fmt.Errorf("load question: %w", err)
	}

	unlock := s.lockLearner(req.UserID)
	defer unlock()

	learner, err := s.Learners.GetOrCreate(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("load learner: %w", err)
	}

	isCorrect := strings.EqualFold(strings.TrimSpace(req.FinalAnswer), question.CorrectAnswer)
	score := -1
	if isCorrect {
		score = 1
	}

	event := models.AnswerEvent{
		Score:           score,
		TimeTakenMs:     req.TimeTakenMs,
		ExpectedTimeMs:  question.ExpectedTimeMs,
		ConfidenceLevel: req.ConfidenceLevel,
		InteractionLog:  req.InteractionLog,
	}
	next, delta := difficulty.NextDifficulty(learner.CurrentDifficulty, event, s.weights)

	if err := s.Learners.UpdateDifficulty(ctx, req.UserID, next); err != nil {
		return nil, fmt.Errorf("update learner difficulty: %w", err)
	}

	// Audit trail is best-effort: a logging failure must not void the
	// already-applied state update.
	if err := s.Interactions.Create(ctx, &models.Interaction{
		UserID:          req.UserID,
		QuestionID:      req.QuestionID,
		FinalAnswer:     req.FinalAnswer,
		IsCorrect:       isCorrect,
		TimeTakenMs:     req.TimeTakenMs,
		ConfidenceLevel: req.ConfidenceLevel,
		InteractionLog:  req.InteractionLog,
		Delta:           delta,
		NextDifficulty:  next,
		AnsweredAt:      time.Now(),
	}); err != nil {
		log.Printf("failed to record interaction for user %s: %v", req.UserID, err)
	}

	nextQuestion, err := s.selector.NearestQuestion(ctx, next, question.ID, question.Topic)
	if err != nil {
		return nil, fmt.Errorf("select next question: %w", err)
	}

	return &models.SubmitResult{
		Review: models.AnswerReview{
			Correct:       isCorrect,
			CorrectAnswer: question.CorrectAnswer,
			Explanation:   question.Explanation,
			YourAnswer:    req.FinalAnswer,
		},
		Algorithm: models.AlgorithmTrace{
			Delta:    delta,
			Previous: learner.CurrentDifficulty,
			Next:     next,
			Label:    string(difficulty.LabelOf(next)),
		},
		NextQuestion: nextQuestion,
	}, nil
}

// GetLearner exposes the current adaptive position for display.
func (s *EngineService) GetLearner(ctx context.Context, userID string) (*models.LearnerState, error) {
	return s.Learners.GetOrCreate(ctx, userID)
}
