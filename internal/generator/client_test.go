package generator

import (
	"errors"
	"testing"

	"quiz-engine/internal/models"
)

func TestParseQuestion_MCQ(t *testing.T) {
	raw := `{"question": "What is 2+2?", "options": ["3", "4", "5", "22"], "correct": "B", "explanation": "Basic addition."}`

	q, err := parseQuestion(1, raw)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if q.Type != models.QuestionTypeMCQ {
		t.Errorf("Expected type mcq, got %s", q.Type)
	}
	if len(q.Options) != 4 {
		t.Fatalf("Expected 4 options, got %d", len(q.Options))
	}
	if q.Options[1].ID != "B" || q.Options[1].Text != "4" {
		t.Errorf("Expected option B = 4, got %+v", q.Options[1])
	}
	if q.CorrectAnswer != "B" {
		t.Errorf("Expected correct answer B, got %s", q.CorrectAnswer)
	}
}

func TestParseQuestion_Open(t *testing.T) {
	raw := `{"question": "Why does TCP use a three-way handshake?", "sample_answer": "To synchronize sequence numbers on both sides."}`

	q, err := parseQuestion(2, raw)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if q.Type != models.QuestionTypeOpen {
		t.Errorf("Expected type open, got %s", q.Type)
	}
	if q.SampleAnswer == "" {
		t.Error("Expected sample answer to be kept")
	}
}

func TestParseQuestion_Scenario(t *testing.T) {
	raw := `{"scenario": "Your primary database is down during peak traffic.",
		"decision_points": [
			{"prompt": "What do you do first?", "sample_answer": "Fail over to the replica."},
			{"prompt": "The replica is lagging. Now what?", "sample_answer": "Serve degraded reads."},
			{"prompt": "How do you prevent recurrence?", "sample_answer": "Add automated failover drills."}
		]}`

	q, err := parseQuestion(3, raw)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if q.Type != models.QuestionTypeScenario {
		t.Errorf("Expected type scenario, got %s", q.Type)
	}
	if len(q.DecisionPoints) != 3 {
		t.Errorf("Expected 3 decision points, got %d", len(q.DecisionPoints))
	}
}

func TestParseQuestion_Malformed(t *testing.T) {
	testCases := []struct {
		name  string
		level int
		raw   string
	}{
		{"not json", 1, "Sure! Here is your question:"},
		{"mcq missing options", 1, `{"question": "Q?", "correct": "A"}`},
		{"open missing prompt", 2, `{"sample_answer": "something"}`},
		{"scenario missing decisions", 3, `{"scenario": "A crisis."}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseQuestion(tc.level, tc.raw)
			if !errors.Is(err, ErrGenerationFailure) {
				t.Errorf("Expected ErrGenerationFailure, got %v", err)
			}
		})
	}
}
