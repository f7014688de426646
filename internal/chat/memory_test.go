package chat_test

import (
	"testing"

	"github.com/prepdeck/prepdeck/internal/chat"
)

func TestMemory_AddAndContext(t *testing.T) {
	m := chat.NewMemory()
	m.Add("What is entropy?", "A measure of disorder.")
	m.Add("And enthalpy?", "Total heat content.")

	msgs := m.Context()
	if len(msgs) != 4 {
		t.Fatalf("Context() has %d messages, want 4", len(msgs))
	}
	if msgs[0].Role != "user" || msgs[0].Content != "What is entropy?" {
		t.Errorf("msgs[0] = %+v, want the first question", msgs[0])
	}
	if msgs[1].Role != "assistant" || msgs[1].Content != "A measure of disorder." {
		t.Errorf("msgs[1] = %+v, want the first answer", msgs[1])
	}
	if msgs[3].Content != "Total heat content." {
		t.Errorf("msgs[3] = %+v, want the latest answer", msgs[3])
	}
}

func TestMemory_SlidingWindow(t *testing.T) {
	m := chat.NewMemory()
	questions := []string{"q1", "q2", "q3", "q4", "q5", "q6", "q7"}
	for _, q := range questions {
		m.Add(q, "a-"+q)
	}

	if m.Len() != 5 {
		t.Fatalf("Len() = %d, want the window size 5", m.Len())
	}

	msgs := m.Context()
	if msgs[0].Content != "q3" {
		t.Errorf("oldest retained question = %q, want q3", msgs[0].Content)
	}
	if msgs[len(msgs)-1].Content != "a-q7" {
		t.Errorf("newest retained answer = %q, want a-q7", msgs[len(msgs)-1].Content)
	}
}

func TestMemory_Clear(t *testing.T) {
	m := chat.NewMemory()
	m.Add("q", "a")
	m.Clear()

	if m.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", m.Len())
	}
	if len(m.Context()) != 0 {
		t.Error("Context() after Clear should be empty")
	}
}
