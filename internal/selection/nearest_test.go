package selection

import (
	"context"
	"testing"

	"quiz-engine/internal/models"
)

type fakeSource struct {
	questions []models.Question
}

func (f *fakeSource) FindByTopic(_ context.Context, topic string) ([]models.Question, error) {
	var out []models.Question
	for _, q := range f.questions {
		if q.Topic == topic {
			out = append(out, q)
		}
	}
	return out, nil
}

func (f *fakeSource) FindAll(_ context.Context) ([]models.Question, error) {
	return f.questions, nil
}

func question(id, topic string, difficulty float64) models.Question {
	return models.Question{ID: id, Topic: topic, Difficulty: difficulty}
}

func TestNearest(t *testing.T) {
	questions := []models.Question{
		question("q1", "math", 6.1),
		question("q2", "math", 4.0),
		question("q3", "math", 7.5),
	}

	got := Nearest(questions, 6.0, "")
	if got == nil || got.ID != "q1" {
		t.Fatalf("Expected q1 as nearest to 6.0, got %+v", got)
	}
}

func TestNearest_ExcludesEvenClosestMatch(t *testing.T) {
	questions := []models.Question{
		question("q1", "math", 6.0), // exact match but excluded
		question("q2", "math", 5.0),
	}

	got := Nearest(questions, 6.0, "q1")
	if got == nil || got.ID != "q2" {
		t.Fatalf("Expected excluded question to be skipped, got %+v", got)
	}
}

func TestNearest_TieKeepsFirst(t *testing.T) {
	questions := []models.Question{
		question("q1", "math", 5.0),
		question("q2", "math", 7.0),
	}

	// Both are exactly 1.0 away from 6.0; slice order decides.
	got := Nearest(questions, 6.0, "")
	if got == nil || got.ID != "q1" {
		t.Fatalf("Expected first equidistant question, got %+v", got)
	}
}

func TestNearest_Empty(t *testing.T) {
	if got := Nearest(nil, 5.0, ""); got != nil {
		t.Errorf("Expected nil for empty candidate set, got %+v", got)
	}
	if got := Nearest([]models.Question{question("q1", "math", 5.0)}, 5.0, "q1"); got != nil {
		t.Errorf("Expected nil when the only candidate is excluded, got %+v", got)
	}
}

func TestSelector_PrefersTopic(t *testing.T) {
	source := &fakeSource{questions: []models.Question{
		question("q1", "math", 6.0),
		question("q2", "math", 3.0),
		question("q3", "history", 6.0), // exact match but wrong topic
	}}
	selector := NewSelector(source)

	got, err := selector.NearestQuestion(context.Background(), 6.0, "q1", "math")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got == nil || got.ID != "q2" {
		t.Fatalf("Expected same-topic q2, got %+v", got)
	}
}

func TestSelector_FallsBackAcrossTopics(t *testing.T) {
	source := &fakeSource{questions: []models.Question{
		question("q1", "math", 6.0),
		question("q3", "history", 5.5),
	}}
	selector := NewSelector(source)

	// Excluding q1 leaves no math question, so the search widens.
	got, err := selector.NearestQuestion(context.Background(), 6.0, "q1", "math")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got == nil || got.ID != "q3" {
		t.Fatalf("Expected cross-topic fallback to q3, got %+v", got)
	}
}

func TestSelector_EmptyStore(t *testing.T) {
	selector := NewSelector(&fakeSource{})

	got, err := selector.NearestQuestion(context.Background(), 6.0, "", "math")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("Expected nil from empty store, got %+v", got)
	}
}
