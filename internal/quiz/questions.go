// Package quiz generates study questions from provided material and
// evaluates student answers against it.
package quiz

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/prepdeck/prepdeck/internal/ai"
	"github.com/prepdeck/prepdeck/internal/planner"
)

// ErrEmptyContext is returned when no study material is provided.
var ErrEmptyContext = errors.New("study material is empty")

var difficultyInstructions = map[string]string{
	"easy": `Generate BASIC-LEVEL questions at the remembering and
understanding level: "Define ...", "What is ...", "Identify ...",
"Explain in simple terms ...". Avoid deep analysis or multi-step reasoning.`,

	"medium": `Generate INTERMEDIATE-LEVEL questions at the application and
reasoning level: "How does ... work?", "Explain the process of ...",
"Why is ... important?", brief comparisons between concepts. Avoid trivial
definitions and avoid extreme depth.`,

	"hard": `Generate ADVANCED-LEVEL questions requiring analysis,
evaluation, and synthesis: step-by-step mechanisms, limitations and
assumptions, critical comparison of alternatives, derivations, and
cause-effect relationships. Questions must require deep conceptual
understanding.`,
}

const questionPrompt = `You are a professional academic instructor.

Generate questions for students based ONLY on the study material provided
below. The subject domain may be anything academic.

DIFFICULTY LEVEL:
%s

Rules:
- Questions must be technical or concept-based and directly grounded in
  the given content
- Do NOT ask about authors, publications, conferences, or dates
- Do NOT ask anything outside the given text

CONTENT:
"""
%s
"""

OUTPUT:
- Return exactly %d questions as a numbered list
- No answers, no explanations, no extra text`

// Service generates and evaluates questions through a completer.
type Service struct {
	ai ai.Completer
}

// NewService creates a quiz service.
func NewService(completer ai.Completer) *Service {
	return &Service{ai: completer}
}

// GenerateQuestions produces study questions grounded in the given material.
// The difficulty label is normalized like everywhere else; unknown labels
// mean medium.
func (s *Service) GenerateQuestions(ctx context.Context, material string, count int, difficulty string) ([]string, error) {
	material = strings.TrimSpace(material)
	if material == "" {
		return nil, ErrEmptyContext
	}
	if count <= 0 {
		count = 3
	}
	difficulty = planner.NormalizeDifficulty(difficulty)

	prompt := fmt.Sprintf(questionPrompt, difficultyInstructions[difficulty], material, count)
	resp, err := s.ai.Complete(ctx, ai.CompletionRequest{
		Messages:    []ai.Message{{Role: "user", Content: prompt}},
		Task:        ai.TaskQuestions,
		Temperature: 0.3,
		MaxTokens:   500,
	})
	if err != nil {
		return nil, fmt.Errorf("generating questions: %w", err)
	}

	return parseNumberedLines(resp.Content), nil
}

// parseNumberedLines extracts "1. question" items from model output.
func parseNumberedLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || !unicode.IsDigit(rune(line[0])) {
			continue
		}
		if sep := strings.IndexAny(line, ".)"); sep >= 0 {
			if item := strings.TrimSpace(line[sep+1:]); item != "" {
				out = append(out, item)
			}
		}
	}
	return out
}
