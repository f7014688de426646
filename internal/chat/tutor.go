package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/prepdeck/prepdeck/internal/ai"
)

// ErrEmptyMessage is returned when the student sends a blank message.
var ErrEmptyMessage = errors.New("message is empty")

const tutorSystemPrompt = `You are a patient, encouraging study tutor.

Rules:
- Answer the student's question clearly and concretely
- Prefer short explanations with one worked example where it helps
- If the question is ambiguous, ask one clarifying question instead of
  guessing
- Stay on academic topics; politely decline anything else
- Never fabricate citations or facts`

// Tutor answers student questions, carrying recent turns as context.
type Tutor struct {
	ai     ai.Completer
	memory *Memory
}

// NewTutor creates a tutor with fresh conversation memory.
func NewTutor(completer ai.Completer) *Tutor {
	return &Tutor{ai: completer, memory: NewMemory()}
}

// Ask sends the student's message with the retained conversation window and
// records the exchange.
func (t *Tutor) Ask(ctx context.Context, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", ErrEmptyMessage
	}

	msgs := make([]ai.Message, 0, maxTurns*2+2)
	msgs = append(msgs, ai.Message{Role: "system", Content: tutorSystemPrompt})
	msgs = append(msgs, t.memory.Context()...)
	msgs = append(msgs, ai.Message{Role: "user", Content: message})

	resp, err := t.ai.Complete(ctx, ai.CompletionRequest{
		Messages:    msgs,
		Task:        ai.TaskChat,
		Temperature: 0.5,
		MaxTokens:   600,
	})
	if err != nil {
		return "", fmt.Errorf("tutor completion: %w", err)
	}

	answer := strings.TrimSpace(resp.Content)
	t.memory.Add(message, answer)
	return answer, nil
}

// Reset clears the conversation memory.
func (t *Tutor) Reset() {
	t.memory.Clear()
}
