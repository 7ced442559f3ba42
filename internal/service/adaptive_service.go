package service

import (
	"context"
	"fmt"
	"log"
	"sync"

	"quiz-engine/internal/difficulty"
	"quiz-engine/internal/models"
	"quiz-engine/internal/progression"
)

// AdaptiveNextRequest carries the outcome of the last question in the
// unified adaptive flow.
type AdaptiveNextRequest struct {
	UserID         string   `json:"user_id"`
	Topic          string   `json:"topic"`
	Proficiency    string   `json:"proficiency"`
	LastScorePct   float64  `json:"last_score_pct"`
	TimeTakenMs    int      `json:"time_taken_ms"`
	AskedQuestions []string `json:"asked_questions"`
}

// AdaptiveNextResult is the generated next question plus where the learner
// now stands. Fallback is true when a level-3 scenario could not be
// generated and a level-2 open question was served instead.
type AdaptiveNextResult struct {
	Question      *models.Question `json:"question"`
	NewLevel      int              `json:"new_level"`
	NewDifficulty string           `json:"new_difficulty"`
	RecentScores  []float64        `json:"recent_scores"`
	LevelChanged  bool             `json:"level_changed"`
	Fallback      bool             `json:"fallback,omitempty"`
}

// AdaptiveService drives the unified flow: rolling-window level transitions
// with a medium reset on every transition, and the ordinal stepper within a
// level. It uses the stepper policy deliberately; the formula-based
// EngineService is the other, independent path.
type AdaptiveService struct {
	Learners  LearnerStore
	Questions QuestionStore
	Gen       Generator

	stepper progression.StepperPolicy

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewAdaptiveService(learners LearnerStore, questions QuestionStore, gen Generator) *AdaptiveService {
	return &AdaptiveService{
		Learners:  learners,
		Questions: questions,
		Gen:       gen,
		locks:     make(map[string]*sync.Mutex),
	}
}

func (s *AdaptiveService) lockLearner(userID string) func() {
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

// Start opens an adaptive run: always level 1, medium difficulty.
func (s *AdaptiveService) Start(ctx context.Context, userID, topic, proficiency string) (*models.Question, error) {
	if _, err := s.Learners.GetOrCreate(ctx, userID); err != nil {
		return nil, fmt.Errorf("load learner: %w", err)
	}

	question, err := s.Gen.Generate(ctx, progression.LevelKnowledge, topic, difficulty.LabelMedium, proficiency, nil)
	if err != nil {
		return nil, err
	}
	if err := s.Questions.Create(ctx, question); err != nil {
		return nil, fmt.Errorf("persist question: %w", err)
	}
	return question, nil
}

// NextQuestion folds the last score into the rolling window, runs the level
// state machine, and generates the next item. A level transition resets
// difficulty to the canonical medium value; otherwise the stepper moves the
// label within the level.
func (s *AdaptiveService) NextQuestion(ctx context.Context, req AdaptiveNextRequest) (*AdaptiveNextResult, error) {
	unlock := s.lockLearner(req.UserID)
	defer unlock()

	learner, err := s.Learners.GetOrCreate(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("load learner: %w", err)
	}

	window := progression.AppendScore(learner.RecentScorePcts, req.LastScorePct)
	newLevel := progression.NextLevel(learner.CurrentLevel, window)

	var label difficulty.Label
	var nextDifficulty float64
	if newLevel != learner.CurrentLevel {
		// A level change is a fresh context; recalibrate from the middle.
		label = difficulty.LabelMedium
		nextDifficulty = difficulty.CanonicalDifficulty(label)
	} else {
		decision := s.stepper.Next(learner, progression.Outcome{
			ScorePct:    req.LastScorePct,
			TimeTakenMs: req.TimeTakenMs,
		})
		label = decision.Label
		nextDifficulty = decision.Difficulty
	}

	question, fallback, err := s.generateWithFallback(ctx, newLevel, req.Topic, label, req.Proficiency, req.AskedQuestions)
	if err != nil {
		return nil, err
	}
	if err := s.Questions.Create(ctx, question); err != nil {
		return nil, fmt.Errorf("persist question: %w", err)
	}

	if err := s.Learners.UpdateProgress(ctx, req.UserID, nextDifficulty, newLevel, window); err != nil {
		return nil, fmt.Errorf("update learner progress: %w", err)
	}

	return &AdaptiveNextResult{
		Question:      question,
		NewLevel:      newLevel,
		NewDifficulty: string(label),
		RecentScores:  window,
		LevelChanged:  newLevel != learner.CurrentLevel,
		Fallback:      fallback,
	}, nil
}

// ManualNextRequest drives the legacy level-1 flow, where the client tracks
// its own label and the stepper is the only difficulty policy.
type ManualNextRequest struct {
	UserID            string   `json:"user_id"`
	Topic             string   `json:"topic"`
	Proficiency       string   `json:"proficiency"`
	CurrentDifficulty string   `json:"current_difficulty"`
	IsCorrect         bool     `json:"is_correct"`
	TimeTakenMs       int      `json:"time_taken_ms"`
	AskedQuestions    []string `json:"asked_questions"`
}

// ManualNext steps the label ordinally and generates a level-1 MCQ at the
// resulting difficulty.
func (s *AdaptiveService) ManualNext(ctx context.Context, req ManualNextRequest) (*models.Question, difficulty.Label, error) {
	label := progression.StepDifficulty(
		progression.LevelKnowledge,
		difficulty.ParseLabel(req.CurrentDifficulty),
		req.IsCorrect,
		req.TimeTakenMs,
	)

	question, err := s.Gen.Generate(ctx, progression.LevelKnowledge, req.Topic, label, req.Proficiency, req.AskedQuestions)
	if err != nil {
		return nil, label, err
	}
	if err := s.Questions.Create(ctx, question); err != nil {
		return nil, label, fmt.Errorf("persist question: %w", err)
	}
	return question, label, nil
}

// generateWithFallback degrades a failed level-3 scenario to a level-2 open
// question rather than failing the whole request.
func (s *AdaptiveService) generateWithFallback(ctx context.Context, level int, topic string, label difficulty.Label, proficiency string, asked []string) (*models.Question, bool, error) {
	question, err := s.Gen.Generate(ctx, level, topic, label, proficiency, asked)
	if err == nil {
		return question, false, nil
	}
	if level != progression.LevelMastery {
		return nil, false, err
	}

	log.Printf("scenario generation failed (%v), falling back to open question", err)
	question, err = s.Gen.Generate(ctx, progression.LevelUnderstanding, topic, label, proficiency, asked)
	if err != nil {
		return nil, false, err
	}
	return question, true, nil
}
