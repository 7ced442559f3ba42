package generator

import (
	"fmt"
	"strings"

	"quiz-engine/internal/difficulty"
)

func systemPrompt(level int) string {
	switch level {
	case 1:
		return "You are an expert quiz author. Generate one multiple-choice question with exactly 4 options. " +
			"Respond with JSON only: {\"question\": str, \"options\": [str, str, str, str], \"correct\": \"A\"|\"B\"|\"C\"|\"D\", \"explanation\": str}."
	case 2:
		return "You are an expert examiner testing conceptual understanding. Generate one open 'why' or 'explain' question. " +
			"Respond with JSON only: {\"question\": str, \"sample_answer\": str}."
	default:
		return "You are an expert assessment designer. Generate one real-world crisis or strategic scenario with exactly 3 sequential decision points, " +
			"each building on the consequence of the previous one. " +
			"Respond with JSON only: {\"scenario\": str, \"decision_points\": [{\"prompt\": str, \"context\": str, \"sample_answer\": str}]}."
	}
}

func userPrompt(level int, topic string, label difficulty.Label, proficiency string, asked []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Topic: %s\nDifficulty: %s\nLearner proficiency: %s\n", topic, label, proficiency)
	if level == 3 {
		b.WriteString("The scenario must require applying the topic under pressure, not reciting facts.\n")
	}
	if len(asked) > 0 {
		b.WriteString("Do not repeat any of these previously asked questions:\n")
		for _, q := range asked {
			fmt.Fprintf(&b, "- %s\n", q)
		}
	}
	return b.String()
}
