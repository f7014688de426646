package planner

import "strings"

// Topic is one parsed line of topic input. It is never mutated after parsing.
type Topic struct {
	Name       string `json:"name"`
	Difficulty string `json:"difficulty"`
	Priority   string `json:"priority,omitempty"`
}

// ParseTopics parses raw topic input, one topic per line, in the form
// "name | difficulty". Blank lines are skipped, the difficulty segment is
// optional and normalized, and duplicates are preserved in input order.
// Segments past the second are ignored, so "name | difficulty | priority"
// still resolves the stated difficulty. A line consisting only of
// "| difficulty" yields a Topic with an empty name; that is the caller's
// mistake, not a parse error.
func ParseTopics(raw string) ([]Topic, error) {
	var topics []Topic

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		parts := strings.Split(line, "|")
		name := strings.TrimSpace(parts[0])

		difficulty := DefaultDifficulty
		if len(parts) > 1 {
			if d := strings.TrimSpace(parts[1]); d != "" {
				difficulty = NormalizeDifficulty(d)
			}
		}

		topics = append(topics, Topic{Name: name, Difficulty: difficulty})
	}

	if len(topics) == 0 {
		return nil, ErrNoTopics
	}
	return topics, nil
}

// IsSingleTopic reports whether only one chapter was provided, which is the
// trigger for automatic subtopic expansion.
func IsSingleTopic(topics []Topic) bool {
	return len(topics) == 1
}
