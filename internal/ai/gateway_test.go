package ai_test

import (
	"context"
	"testing"

	"github.com/prepdeck/prepdeck/internal/ai"
)

func TestTaskType_String(t *testing.T) {
	tests := []struct {
		task ai.TaskType
		want string
	}{
		{ai.TaskExpansion, "expansion"},
		{ai.TaskSummary, "summary"},
		{ai.TaskEssay, "essay"},
		{ai.TaskQuestions, "questions"},
		{ai.TaskEvaluation, "evaluation"},
		{ai.TaskChat, "chat"},
		{ai.TaskType(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.task.String(); got != tt.want {
			t.Errorf("TaskType(%d).String() = %q, want %q", tt.task, got, tt.want)
		}
	}
}

func TestCompletionResponse_TotalTokens(t *testing.T) {
	resp := ai.CompletionResponse{InputTokens: 120, OutputTokens: 34}
	if got := resp.TotalTokens(); got != 154 {
		t.Errorf("TotalTokens() = %d, want 154", got)
	}
}

func TestMockProvider_ServesResponsesInOrder(t *testing.T) {
	mock := ai.NewMockProvider("one", "two")

	for i, want := range []string{"one", "two", "two"} {
		resp, err := mock.Complete(context.Background(), ai.CompletionRequest{})
		if err != nil {
			t.Fatalf("Complete() #%d error = %v", i, err)
		}
		if resp.Content != want {
			t.Errorf("Complete() #%d = %q, want %q", i, resp.Content, want)
		}
	}

	if len(mock.Requests) != 3 {
		t.Errorf("captured %d requests, want 3", len(mock.Requests))
	}
}
