package ai

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// Router tries registered providers in registration order until one
// succeeds. An optional UsageTracker records token consumption per task.
type Router struct {
	providers map[string]Provider
	fallback  []string // ordered fallback chain
	usage     *UsageTracker
	mu        sync.RWMutex
}

// NewRouter creates a new AI router.
func NewRouter() *Router {
	return &Router{
		providers: make(map[string]Provider),
	}
}

// Register adds a provider to the end of the fallback chain.
func (r *Router) Register(name string, provider Provider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[name] = provider
	r.fallback = append(r.fallback, name)
}

// SetUsageTracker enables token usage recording for completed requests.
func (r *Router) SetUsageTracker(t *UsageTracker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.usage = t
}

// Complete routes a request to the first provider that can serve it.
func (r *Router) Complete(ctx context.Context, req CompletionRequest) (CompletionResponse, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, name := range r.fallback {
		provider := r.providers[name]

		resp, err := provider.Complete(ctx, req)
		if err != nil {
			slog.Warn("AI provider failed, trying next",
				"provider", name,
				"task", req.Task.String(),
				"error", err,
			)
			continue
		}

		if r.usage != nil {
			r.usage.Record(req.Task, resp.TotalTokens())
		}
		slog.Debug("AI request completed",
			"provider", name,
			"task", req.Task.String(),
			"model", resp.Model,
			"input_tokens", resp.InputTokens,
			"output_tokens", resp.OutputTokens,
		)
		return resp, nil
	}

	return CompletionResponse{}, fmt.Errorf("all AI providers failed")
}

// HasProvider returns true if at least one provider is registered.
func (r *Router) HasProvider() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.providers) > 0
}
