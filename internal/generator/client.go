package generator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"quiz-engine/internal/difficulty"
	"quiz-engine/internal/models"

	openai "github.com/sashabaranov/go-openai"
)

// ErrGenerationFailure wraps any upstream or parse failure from the content
// generator. Callers decide whether to fall back (the adaptive flow drops a
// failed level-3 scenario to a level-2 open question).
var ErrGenerationFailure = errors.New("content generation failed")

const defaultModel = "llama-3.3-70b-versatile"

// Client calls an OpenAI-compatible chat API (Groq in production) to
// produce question material. The engine treats it as an external
// collaborator: it only consumes the parsed result.
type Client struct {
	api   *openai.Client
	model string
}

// NewClient builds a generator client. baseURL overrides the OpenAI
// endpoint for compatible providers; model falls back to the production
// default when empty.
func NewClient(apiKey, baseURL, model string) *Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if model == "" {
		model = defaultModel
	}
	return &Client{api: openai.NewClientWithConfig(cfg), model: model}
}

// Generate produces a question for the given level: MCQ at level 1, open
// "why" question at level 2, branching decision-tree scenario at level 3.
// The returned question carries topic, level, type, the label's canonical
// difficulty and the level's expected response time, ready to persist.
func (c *Client) Generate(ctx context.Context, level int, topic string, label difficulty.Label, proficiency string, asked []string) (*models.Question, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt(level),
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: userPrompt(level, topic, label, proficiency, asked),
			},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Temperature: 0.8,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailure, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: empty response", ErrGenerationFailure)
	}

	question, err := parseQuestion(level, resp.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}

	question.Topic = topic
	question.Level = level
	question.Difficulty = difficulty.CanonicalDifficulty(label)
	question.ExpectedTimeMs = difficulty.ExpectedTimeMs(level, label)
	return question, nil
}

func parseQuestion(level int, raw string) (*models.Question, error) {
	var payload struct {
		Question       string                 `json:"question"`
		Options        []string               `json:"options"`
		Correct        string                 `json:"correct"`
		Explanation    string                 `json:"explanation"`
		SampleAnswer   string                 `json:"sample_answer"`
		Scenario       string                 `json:"scenario"`
		DecisionPoints []models.DecisionPoint `json:"decision_points"`
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &payload); err != nil {
		return nil, fmt.Errorf("%w: malformed output: %v", ErrGenerationFailure, err)
	}

	q := &models.Question{
		Content:       payload.Question,
		CorrectAnswer: payload.Correct,
		Explanation:   payload.Explanation,
		SampleAnswer:  payload.SampleAnswer,
	}

	switch level {
	case 1:
		q.Type = models.QuestionTypeMCQ
		if q.Content == "" || len(payload.Options) < 2 || q.CorrectAnswer == "" {
			return nil, fmt.Errorf("%w: MCQ is missing required fields", ErrGenerationFailure)
		}
		labels := []string{"A", "B", "C", "D", "E", "F"}
		for i, text := range payload.Options {
			id := fmt.Sprintf("%d", i)
			if i < len(labels) {
				id = labels[i]
			}
			q.Options = append(q.Options, models.Option{ID: id, Text: text})
		}
	case 2:
		q.Type = models.QuestionTypeOpen
		if q.Content == "" {
			return nil, fmt.Errorf("%w: open question is missing its prompt", ErrGenerationFailure)
		}
	default:
		q.Type = models.QuestionTypeScenario
		q.Scenario = payload.Scenario
		q.DecisionPoints = payload.DecisionPoints
		if q.Scenario == "" || len(q.DecisionPoints) == 0 {
			return nil, fmt.Errorf("%w: scenario is missing required fields", ErrGenerationFailure)
		}
	}
	return q, nil
}
