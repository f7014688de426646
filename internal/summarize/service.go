// Package summarize condenses pasted text through the AI gateway, using
// map-reduce over chunks when the input exceeds one prompt's worth.
package summarize

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/prepdeck/prepdeck/internal/ai"
)

// Mode selects the output shape of a summary.
type Mode string

const (
	// ModeShort produces a compact paragraph summary.
	ModeShort Mode = "short"
	// ModeBullet produces 5-10 numbered key insights.
	ModeBullet Mode = "bullet"
)

// ErrEmptyText is returned when there is nothing to summarize.
var ErrEmptyText = errors.New("input text is empty")

const shortSummaryPrompt = `You are an expert academic summarizer.

Create a concise, coherent summary of the text.

Rules:
- Use your own wording only.
- Do NOT copy sentences verbatim.
- Do NOT add external information or fabricate facts.
- Preserve the original meaning.
- Write in paragraph form.`

const bulletSummaryPrompt = `You are an expert academic summarizer.

Summarize the text into clear numbered key insights.

Rules:
- Use 5-10 numbered points, formatted strictly as "1. ...".
- Each point must capture one core idea.
- Do NOT use bullet symbols.
- Do NOT copy sentences verbatim.
- Do NOT add external information or fabricate facts.`

const mergeParagraphPrompt = `You are an expert academic summarizer.

Combine the following partial summaries into one coherent short summary.
Remove redundancy, preserve key ideas, maintain logical paragraph flow,
and do NOT add new information.

Summaries:
"""
%s
"""`

const mergeBulletPrompt = `You are an expert academic summarizer.

Combine the numbered summaries below into one final numbered list of 5-10
points. Merge duplicate ideas, preserve important technical details, and do
NOT convert to paragraph form or add new information.

Summaries:
"""
%s
"""`

var excessNewlines = regexp.MustCompile(`\n{3,}`)

// Service generates summaries through a completer.
type Service struct {
	ai ai.Completer
}

// NewService creates a summarization service.
func NewService(completer ai.Completer) *Service {
	return &Service{ai: completer}
}

// Options tune a summarization request. A zero MaxWords means "be concise".
type Options struct {
	Mode     Mode
	MaxWords int
}

// Summarize condenses text. Long inputs are chunked, summarized per chunk,
// and merged with a final completion.
func (s *Service) Summarize(ctx context.Context, text string, opts Options) (string, error) {
	cleaned := cleanText(text)
	if cleaned == "" {
		return "", ErrEmptyText
	}
	if opts.Mode == "" {
		opts.Mode = ModeShort
	}

	chunks := chunkText(cleaned)
	if len(chunks) == 1 {
		return s.summarizeOne(ctx, chunks[0], opts)
	}

	partials := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		partial, err := s.summarizeOne(ctx, chunk, opts)
		if err != nil {
			return "", err
		}
		partials = append(partials, partial)
	}

	mergeTmpl := mergeParagraphPrompt
	if opts.Mode == ModeBullet {
		mergeTmpl = mergeBulletPrompt
	}
	resp, err := s.ai.Complete(ctx, ai.CompletionRequest{
		Messages: []ai.Message{
			{Role: "user", Content: fmt.Sprintf(mergeTmpl, strings.Join(partials, "\n"))},
		},
		Task:        ai.TaskSummary,
		Temperature: 0.3,
		MaxTokens:   tokenLimit(opts.MaxWords, 300),
	})
	if err != nil {
		return "", fmt.Errorf("merging summaries: %w", err)
	}
	return tidy(resp.Content), nil
}

func (s *Service) summarizeOne(ctx context.Context, text string, opts Options) (string, error) {
	system := shortSummaryPrompt
	if opts.Mode == ModeBullet {
		system = bulletSummaryPrompt
	}

	wordRule := "Be concise while preserving key meaning."
	if opts.MaxWords > 0 {
		wordRule = fmt.Sprintf("Limit the summary to approximately %d words.", opts.MaxWords)
	}

	resp, err := s.ai.Complete(ctx, ai.CompletionRequest{
		Messages: []ai.Message{
			{Role: "system", Content: system},
			{Role: "user", Content: fmt.Sprintf("%s\n\nText:\n\"\"\"\n%s\n\"\"\"", wordRule, text)},
		},
		Task:        ai.TaskSummary,
		Temperature: 0.3,
		MaxTokens:   tokenLimit(opts.MaxWords, 250),
	})
	if err != nil {
		return "", fmt.Errorf("summarizing text: %w", err)
	}
	return tidy(resp.Content), nil
}

// cleanText normalizes line endings and collapses excess blank lines.
func cleanText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = excessNewlines.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

func tidy(text string) string {
	return strings.TrimSpace(excessNewlines.ReplaceAllString(text, "\n\n"))
}

// tokenLimit gives the model room for roughly twice the requested words so
// the final sentence is not truncated.
func tokenLimit(maxWords, fallback int) int {
	if maxWords <= 0 {
		maxWords = fallback
	}
	return maxWords * 2
}
