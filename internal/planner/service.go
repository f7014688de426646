package planner

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Expander turns a single chapter into an ordered list of subtopic names.
// Implementations may call a language model; they are expected to fall back
// to a deterministic list rather than fail, so Expand rarely returns an
// error in practice.
type Expander interface {
	Expand(ctx context.Context, topic, difficulty string) ([]string, error)
}

// DefaultPriority is attached to every topic that reaches the scheduler
// without an explicit priority. The scheduler itself ignores priority; it is
// carried for downstream consumers.
const DefaultPriority = "high"

// Service is the high-level study-plan generator: it parses raw topic text,
// expands a lone chapter into subtopics, and builds the schedule. It holds
// no state across calls.
type Service struct {
	expander Expander
}

// NewService creates a plan generator. A nil expander disables single-topic
// expansion; callers that want the guaranteed non-LLM fallback should pass
// expander.NewStatic().
func NewService(e Expander) *Service {
	return &Service{expander: e}
}

// GeneratePlan parses topicsText and builds a plan starting from the
// current wall-clock date.
func (s *Service) GeneratePlan(ctx context.Context, topicsText string, examDate time.Time, dailyHours int) (Plan, error) {
	return s.GeneratePlanFrom(ctx, time.Now(), topicsText, examDate, dailyHours)
}

// GeneratePlanFrom is GeneratePlan with an explicit "today", for
// deterministic scheduling in tests.
func (s *Service) GeneratePlanFrom(ctx context.Context, today time.Time, topicsText string, examDate time.Time, dailyHours int) (Plan, error) {
	topics, err := ParseTopics(topicsText)
	if err != nil {
		return nil, err
	}

	if IsSingleTopic(topics) && s.expander != nil {
		base := topics[0]
		subs, err := s.expander.Expand(ctx, base.Name, base.Difficulty)
		if err != nil {
			return nil, fmt.Errorf("expanding topic %q: %w", base.Name, err)
		}

		expanded := make([]Topic, 0, len(subs))
		for _, sub := range subs {
			expanded = append(expanded, Topic{
				Name:       base.Name + " — " + sub,
				Difficulty: base.Difficulty,
				Priority:   DefaultPriority,
			})
		}
		slog.Info("single topic expanded",
			"topic", base.Name,
			"difficulty", base.Difficulty,
			"subtopics", len(expanded),
		)
		topics = expanded
	}

	for i := range topics {
		if topics[i].Priority == "" {
			topics[i].Priority = DefaultPriority
		}
	}

	return BuildScheduleFrom(today, topics, examDate, dailyHours)
}
