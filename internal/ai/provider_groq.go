package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const (
	defaultGroqBaseURL = "https://api.groq.com/openai/v1"
	defaultGroqModel   = "llama-3.3-70b-versatile"
)

// GroqProvider implements Provider for Groq and any other API that speaks
// the OpenAI chat-completions dialect (OpenAI itself, DeepSeek, Together)
// via a configurable base URL.
type GroqProvider struct {
	apiKey       string
	baseURL      string
	defaultModel string
	client       *http.Client
	name         string
	models       []ModelInfo
}

// GroqOption configures a GroqProvider.
type GroqOption func(*GroqProvider)

// WithBaseURL points the provider at a different OpenAI-compatible API.
func WithBaseURL(url string) GroqOption {
	return func(p *GroqProvider) {
		p.baseURL = url
	}
}

// WithDefaultModel sets the model used when a request names none.
func WithDefaultModel(model string) GroqOption {
	return func(p *GroqProvider) {
		p.defaultModel = model
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) GroqOption {
	return func(p *GroqProvider) {
		p.client = client
	}
}

// WithProviderName sets the provider name for multi-instance registration.
func WithProviderName(name string) GroqOption {
	return func(p *GroqProvider) {
		p.name = name
	}
}

// WithModels sets the advertised model list.
func WithModels(models []ModelInfo) GroqOption {
	return func(p *GroqProvider) {
		p.models = models
	}
}

// NewGroqProvider creates a provider for the Groq API.
func NewGroqProvider(apiKey string, opts ...GroqOption) *GroqProvider {
	p := &GroqProvider{
		apiKey:       apiKey,
		baseURL:      defaultGroqBaseURL,
		defaultModel: defaultGroqModel,
		client:       http.DefaultClient,
		name:         "groq",
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewOpenAIProvider creates a provider for the OpenAI API using the same
// chat-completions codepath.
func NewOpenAIProvider(apiKey string, opts ...GroqOption) *GroqProvider {
	opts = append([]GroqOption{
		WithBaseURL("https://api.openai.com/v1"),
		WithDefaultModel("gpt-4o-mini"),
		WithProviderName("openai"),
	}, opts...)
	return NewGroqProvider(apiKey, opts...)
}

// chatRequest is the request body for the chat completions endpoint.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature *float64      `json:"temperature,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse is the response body from the chat completions endpoint.
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Model string `json:"model"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
	} `json:"usage"`
}

func (p *GroqProvider) Complete(ctx context.Context, req CompletionRequest) (CompletionResponse, error) {
	model := req.Model
	if model == "" {
		model = p.defaultModel
	}

	messages := make([]chatMessage, len(req.Messages))
	for i, m := range req.Messages {
		messages[i] = chatMessage(m)
	}

	apiReq := chatRequest{
		Model:    model,
		Messages: messages,
	}
	if req.MaxTokens > 0 {
		apiReq.MaxTokens = req.MaxTokens
	}
	if req.Temperature > 0 {
		temp := req.Temperature
		apiReq.Temperature = &temp
	}

	body, err := json.Marshal(apiReq)
	if err != nil {
		return CompletionResponse{}, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return CompletionResponse{}, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return CompletionResponse{}, fmt.Errorf("send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return CompletionResponse{}, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return CompletionResponse{}, fmt.Errorf("%s api error (status %d): %s", p.name, resp.StatusCode, string(respBody))
	}

	var apiResp chatResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return CompletionResponse{}, fmt.Errorf("unmarshal response: %w", err)
	}

	if len(apiResp.Choices) == 0 {
		return CompletionResponse{}, fmt.Errorf("no choices in response")
	}

	return CompletionResponse{
		Content:      apiResp.Choices[0].Message.Content,
		Model:        apiResp.Model,
		InputTokens:  apiResp.Usage.PromptTokens,
		OutputTokens: apiResp.Usage.CompletionTokens,
	}, nil
}

func (p *GroqProvider) Models() []ModelInfo {
	if p.models != nil {
		return p.models
	}
	return []ModelInfo{
		{ID: "llama-3.3-70b-versatile", Name: "Llama 3.3 70B", MaxTokens: 32768, Description: "Groq-hosted Llama 3.3, fast and capable"},
		{ID: "llama-3.1-8b-instant", Name: "Llama 3.1 8B", MaxTokens: 131072, Description: "Groq-hosted small model for cheap tasks"},
	}
}

func (p *GroqProvider) HealthCheck(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/models", nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check returned status %d", resp.StatusCode)
	}
	return nil
}
