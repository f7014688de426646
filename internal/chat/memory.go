// Package chat implements a study tutor conversation with short sliding
// window memory.
package chat

import (
	"sync"

	"github.com/prepdeck/prepdeck/internal/ai"
)

// maxTurns is how many question/answer pairs the memory retains.
const maxTurns = 5

// Memory keeps the most recent conversation turns. Older turns fall off the
// window so the prompt stays small.
type Memory struct {
	mu    sync.Mutex
	turns []turn
}

type turn struct {
	question string
	answer   string
}

// NewMemory creates an empty conversation memory.
func NewMemory() *Memory {
	return &Memory{}
}

// Add records one completed question/answer exchange.
func (m *Memory) Add(question, answer string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.turns = append(m.turns, turn{question: question, answer: answer})
	if len(m.turns) > maxTurns {
		m.turns = m.turns[len(m.turns)-maxTurns:]
	}
}

// Context returns the retained turns as alternating user/assistant messages,
// oldest first.
func (m *Memory) Context() []ai.Message {
	m.mu.Lock()
	defer m.mu.Unlock()

	msgs := make([]ai.Message, 0, len(m.turns)*2)
	for _, t := range m.turns {
		msgs = append(msgs,
			ai.Message{Role: "user", Content: t.question},
			ai.Message{Role: "assistant", Content: t.answer},
		)
	}
	return msgs
}

// Len reports how many turns are currently retained.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.turns)
}

// Clear drops all retained turns.
func (m *Memory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.turns = nil
}
