package expander

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode"

	"github.com/prepdeck/prepdeck/internal/ai"
	"github.com/prepdeck/prepdeck/internal/planner"
)

const expansionSystemPrompt = "You are a qualified academic instructor who designs exam syllabi."

const expansionPromptTemplate = `A student provided only ONE chapter name:

"%s"

Infer appropriate subtopics for it based on the difficulty level.

DIFFICULTY LEVEL: %s
GUIDANCE: %s

SYLLABUS RULES:
- Easy   means basic understanding, minimal theory
- Medium means normal curriculum depth
- Hard   means detailed conceptual and analytical depth

OUTPUT REQUIREMENTS:
- Return 6 to 12 subtopics as a numbered list
- Each subtopic must be 3 to 6 words only
- Curriculum-appropriate
- No explanations`

// LLM expands topics through the AI gateway. Any failure of the generative
// path, including output that parses to fewer than four subtopics, degrades
// to the deterministic fallback list; Expand never returns an error.
type LLM struct {
	ai ai.Completer
}

// NewLLM creates a model-backed expander on top of a completer, usually the
// provider router.
func NewLLM(completer ai.Completer) *LLM {
	return &LLM{ai: completer}
}

// Expand implements planner.Expander.
func (e *LLM) Expand(ctx context.Context, topic, difficulty string) ([]string, error) {
	difficulty = planner.NormalizeDifficulty(difficulty)

	temperature := 0.2
	if difficulty == "hard" {
		temperature = 0.25
	}

	prompt := buildExpansionPrompt(topic, difficulty)
	resp, err := e.ai.Complete(ctx, ai.CompletionRequest{
		Messages: []ai.Message{
			{Role: "system", Content: expansionSystemPrompt},
			{Role: "user", Content: prompt},
		},
		Task:        ai.TaskExpansion,
		Temperature: temperature,
		MaxTokens:   400,
	})
	if err != nil {
		slog.Warn("topic expansion failed, using fallback",
			"topic", topic,
			"difficulty", difficulty,
			"error", err,
		)
		return Fallback(topic, difficulty), nil
	}

	subs := parseNumberedList(resp.Content)
	if len(subs) < minSubtopics {
		slog.Warn("topic expansion too short, using fallback",
			"topic", topic,
			"difficulty", difficulty,
			"subtopics", len(subs),
		)
		return Fallback(topic, difficulty), nil
	}
	return subs, nil
}

func buildExpansionPrompt(topic, difficulty string) string {
	return fmt.Sprintf(expansionPromptTemplate,
		topic,
		strings.ToUpper(difficulty),
		planner.PromptHint(difficulty),
	)
}

// parseNumberedList extracts the items of a "1. foo" / "2) bar" style list
// from model output, dropping blank lines and any prose around the list.
func parseNumberedList(text string) []string {
	var items []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || !unicode.IsDigit(rune(line[0])) {
			continue
		}

		sep := strings.IndexAny(line, ".)")
		if sep < 0 {
			continue
		}
		item := strings.TrimSpace(line[sep+1:])
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}
