// Package ai provides a provider-agnostic gateway to hosted language models
// with ordered fallback between providers.
package ai

import "context"

// TaskType labels what a completion is for, so providers and usage tracking
// can distinguish the app's AI surfaces.
type TaskType int

const (
	TaskExpansion TaskType = iota
	TaskSummary
	TaskEssay
	TaskQuestions
	TaskEvaluation
	TaskChat
)

func (t TaskType) String() string {
	switch t {
	case TaskExpansion:
		return "expansion"
	case TaskSummary:
		return "summary"
	case TaskEssay:
		return "essay"
	case TaskQuestions:
		return "questions"
	case TaskEvaluation:
		return "evaluation"
	case TaskChat:
		return "chat"
	default:
		return "unknown"
	}
}

// Message represents a chat message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CompletionRequest is the input to an AI completion.
type CompletionRequest struct {
	Messages    []Message `json:"messages"`
	Model       string    `json:"model,omitempty"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
	Temperature float64   `json:"temperature,omitempty"`
	Task        TaskType  `json:"task,omitempty"`
}

// CompletionResponse is the output from an AI completion.
type CompletionResponse struct {
	Content      string `json:"content"`
	Model        string `json:"model"`
	InputTokens  int    `json:"input_tokens"`
	OutputTokens int    `json:"output_tokens"`
}

// TotalTokens returns the sum of input and output tokens.
func (r CompletionResponse) TotalTokens() int {
	return r.InputTokens + r.OutputTokens
}

// ModelInfo describes an available model.
type ModelInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	MaxTokens   int    `json:"max_tokens"`
	Description string `json:"description"`
}

// Completer is the minimal completion surface consumed by the app's
// services. Both *Router and individual Providers satisfy it.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (CompletionResponse, error)
}

// Provider is the interface all AI providers must implement.
type Provider interface {
	Complete(ctx context.Context, req CompletionRequest) (CompletionResponse, error)
	Models() []ModelInfo
	HealthCheck(ctx context.Context) error
}
