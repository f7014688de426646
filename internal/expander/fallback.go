// Package expander breaks a single chapter into curriculum-appropriate
// subtopics. The generative path goes through the AI gateway; the
// deterministic fallback lists below guarantee the scheduler always receives
// a non-trivial topic list even when no model is reachable.
package expander

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/prepdeck/prepdeck/internal/planner"
)

// minSubtopics is the smallest expansion the planner will accept from the
// generative path; anything shorter is replaced with the fallback list.
const minSubtopics = 4

//go:embed fallbacks.yaml
var fallbacksYAML []byte

var fallbacks map[string][]string

func init() {
	if err := yaml.Unmarshal(fallbacksYAML, &fallbacks); err != nil {
		panic(fmt.Sprintf("expander: parsing embedded fallbacks.yaml: %v", err))
	}
}

// Fallback returns the fixed subtopic list for a difficulty, with the topic
// name interpolated into templates that reference it. Two calls with the
// same arguments always return identical lists.
func Fallback(topic, difficulty string) []string {
	templates := fallbacks[planner.NormalizeDifficulty(difficulty)]
	subs := make([]string, len(templates))
	for i, tmpl := range templates {
		subs[i] = strings.ReplaceAll(tmpl, "{topic}", topic)
	}
	return subs
}

// Static is an Expander that skips generation entirely and always returns
// the deterministic fallback list. It is the no-network path used in tests
// and when no AI provider is configured.
type Static struct{}

// NewStatic creates a fallback-only expander.
func NewStatic() Static {
	return Static{}
}

// Expand implements planner.Expander.
func (Static) Expand(_ context.Context, topic, difficulty string) ([]string, error) {
	return Fallback(topic, difficulty), nil
}
