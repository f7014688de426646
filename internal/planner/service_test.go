package planner_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/prepdeck/prepdeck/internal/expander"
	"github.com/prepdeck/prepdeck/internal/planner"
)

// stubExpander records calls and returns a fixed subtopic list.
type stubExpander struct {
	subs  []string
	err   error
	calls int
	topic string
	diff  string
}

func (s *stubExpander) Expand(_ context.Context, topic, difficulty string) ([]string, error) {
	s.calls++
	s.topic = topic
	s.diff = difficulty
	return s.subs, s.err
}

func TestService_SingleTopicExpansion(t *testing.T) {
	exp := &stubExpander{subs: []string{
		"Limits and continuity",
		"Derivatives",
		"Chain rule",
		"Integrals",
		"Series",
		"Applications",
	}}
	svc := planner.NewService(exp)

	plan, err := svc.GeneratePlanFrom(context.Background(),
		date(2026, 3, 1), "Calculus | hard", date(2026, 3, 11), 2)
	if err != nil {
		t.Fatalf("GeneratePlanFrom() error = %v", err)
	}

	if exp.calls != 1 {
		t.Fatalf("expander called %d times, want 1", exp.calls)
	}
	if exp.topic != "Calculus" || exp.diff != "hard" {
		t.Errorf("expander called with (%q, %q), want (Calculus, hard)", exp.topic, exp.diff)
	}

	// Every scheduled study topic must be a synthetic subtopic of the base.
	seen := map[string]bool{}
	for _, day := range plan {
		for _, s := range day.Sessions {
			if s.Type != planner.SessionStudy {
				continue
			}
			if !strings.HasPrefix(s.Topic, "Calculus — ") {
				t.Errorf("study topic %q does not carry the base chapter prefix", s.Topic)
			}
			seen[s.Topic] = true
		}
	}
	if len(seen) < 2 {
		t.Errorf("only %d distinct subtopics scheduled, want several", len(seen))
	}
}

func TestService_SingleTopicFallbackExpansion(t *testing.T) {
	// The static expander exercises the real fallback lists end to end.
	svc := planner.NewService(expander.NewStatic())

	plan, err := svc.GeneratePlanFrom(context.Background(),
		date(2026, 3, 1), "Thermodynamics | medium", date(2026, 3, 11), 2)
	if err != nil {
		t.Fatalf("GeneratePlanFrom() error = %v", err)
	}

	seen := map[string]bool{}
	for _, day := range plan {
		for _, s := range day.Sessions {
			if s.Type != planner.SessionStudy {
				continue
			}
			if !strings.HasPrefix(s.Topic, "Thermodynamics — ") {
				t.Errorf("study topic %q does not carry the base chapter prefix", s.Topic)
			}
			seen[s.Topic] = true
		}
	}
	if len(seen) < 6 {
		t.Errorf("%d distinct synthetic topics scheduled, want at least 6", len(seen))
	}
}

func TestService_MultipleTopicsSkipExpansion(t *testing.T) {
	exp := &stubExpander{subs: []string{"unused"}}
	svc := planner.NewService(exp)

	_, err := svc.GeneratePlanFrom(context.Background(),
		date(2026, 3, 1), "Algebra | easy\nCalculus | hard", date(2026, 3, 11), 2)
	if err != nil {
		t.Fatalf("GeneratePlanFrom() error = %v", err)
	}
	if exp.calls != 0 {
		t.Errorf("expander called %d times for multi-topic input, want 0", exp.calls)
	}
}

func TestService_NilExpander(t *testing.T) {
	svc := planner.NewService(nil)

	plan, err := svc.GeneratePlanFrom(context.Background(),
		date(2026, 3, 1), "Calculus", date(2026, 3, 11), 2)
	if err != nil {
		t.Fatalf("GeneratePlanFrom() error = %v", err)
	}

	for _, day := range plan {
		for _, s := range day.Sessions {
			if s.Type == planner.SessionStudy && s.Topic != "Calculus" {
				t.Errorf("study topic = %q, want the raw chapter name", s.Topic)
			}
		}
	}
}

func TestService_ExpanderError(t *testing.T) {
	exp := &stubExpander{err: errors.New("model unreachable")}
	svc := planner.NewService(exp)

	_, err := svc.GeneratePlanFrom(context.Background(),
		date(2026, 3, 1), "Calculus", date(2026, 3, 11), 2)
	if err == nil {
		t.Fatal("GeneratePlanFrom() should surface expander errors")
	}
}

func TestService_ParseErrorPassthrough(t *testing.T) {
	svc := planner.NewService(nil)

	_, err := svc.GeneratePlanFrom(context.Background(),
		date(2026, 3, 1), "   \n ", date(2026, 3, 11), 2)
	if !errors.Is(err, planner.ErrNoTopics) {
		t.Errorf("error = %v, want ErrNoTopics", err)
	}
}
