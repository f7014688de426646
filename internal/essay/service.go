// Package essay generates structured academic essays through the AI gateway.
package essay

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/prepdeck/prepdeck/internal/ai"
)

const (
	// DefaultWordLimit is used when the caller gives no target length.
	DefaultWordLimit = 500
	// DefaultTone is used when the caller gives no tone.
	DefaultTone = "academic"
)

// ErrEmptyTopic is returned when no essay topic is provided.
var ErrEmptyTopic = errors.New("essay topic is empty")

const essayPrompt = `You are an academic writing assistant.

Before writing anything, determine whether the topic has a clear and
meaningful academic interpretation. If it is random characters or contains
no recognizable subject, respond ONLY with this exact sentence:

"The topic you provided does not appear to have a clear or meaningful academic interpretation. Please provide a valid topic or subject so that an essay can be generated."

Otherwise, write the essay.

Topic:
%s

Tone:
%s

Target length:
Approximately %d words.

Required structure:
- Introduction
- One body paragraph per outline point (or two body paragraphs if no
  outline is provided)
- Conclusion

Optional outline:
%s

Rules:
- Do NOT copy text from any source or fabricate citations
- Do NOT mention real authors or research papers
- Write in continuous academic paragraphs without headings or bullets
- Always complete the final sentence; slightly exceeding the word limit
  is allowed

Return ONLY the essay text.`

var excessNewlines = regexp.MustCompile(`\n{3,}`)

// Service generates essays through a completer.
type Service struct {
	ai ai.Completer
}

// NewService creates an essay service.
func NewService(completer ai.Completer) *Service {
	return &Service{ai: completer}
}

// Request describes one essay. Zero values fall back to the defaults above.
type Request struct {
	Topic     string
	WordLimit int
	Tone      string
	Outline   string // free text; a comma-separated line becomes bullets
}

// Generate produces an essay for the request.
func (s *Service) Generate(ctx context.Context, req Request) (string, error) {
	topic := strings.TrimSpace(req.Topic)
	if topic == "" {
		return "", ErrEmptyTopic
	}

	wordLimit := req.WordLimit
	if wordLimit <= 0 {
		wordLimit = DefaultWordLimit
	}
	tone := req.Tone
	if tone == "" {
		tone = DefaultTone
	}

	prompt := fmt.Sprintf(essayPrompt, topic, tone, wordLimit, cleanOutline(req.Outline))

	resp, err := s.ai.Complete(ctx, ai.CompletionRequest{
		Messages:    []ai.Message{{Role: "user", Content: prompt}},
		Task:        ai.TaskEssay,
		Temperature: 0.7,
		MaxTokens:   wordLimit * 2, // room to finish the final sentence
	})
	if err != nil {
		return "", fmt.Errorf("generating essay: %w", err)
	}

	return strings.TrimSpace(excessNewlines.ReplaceAllString(resp.Content, "\n\n")), nil
}

// cleanOutline normalizes optional outline input: a single comma-separated
// line is converted into bullets, multi-line input is kept as-is.
func cleanOutline(outline string) string {
	outline = strings.TrimSpace(outline)
	if outline == "" {
		return "No outline provided."
	}

	if !strings.Contains(outline, "\n") {
		var bullets []string
		for _, point := range strings.Split(outline, ",") {
			if point = strings.TrimSpace(point); point != "" {
				bullets = append(bullets, "- "+point)
			}
		}
		outline = strings.Join(bullets, "\n")
	}
	return outline
}
