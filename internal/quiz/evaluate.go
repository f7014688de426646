package quiz

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/prepdeck/prepdeck/internal/ai"
)

// ErrAnswerMismatch is returned when the number of answers does not match
// the number of questions being evaluated.
var ErrAnswerMismatch = errors.New("answer count does not match question count")

// ErrEmptyAnswer is returned when a single-answer evaluation gets no answer.
var ErrEmptyAnswer = errors.New("answer is empty")

const evaluationPrompt = `You are a strict but fair academic examiner.

Evaluate the student's answer to the question below, using ONLY the provided
study material as the source of truth.

STUDY MATERIAL:
"""
%s
"""

QUESTION:
%s

STUDENT ANSWER:
%s

Evaluation rules:
- Award marks out of 10
- Judge correctness, completeness, and clarity against the material only
- An empty or irrelevant answer scores 0
- Do NOT reward information not supported by the material

OUTPUT FORMAT (exactly):
Marks: X/10
Feedback: <2-3 sentences of specific, constructive feedback>`

const examReportPrompt = `You are an academic examiner writing a final exam
report.

Below are per-question evaluations for one student's practice exam. Combine
them into a short overall report.

EVALUATIONS:
"""
%s
"""

OUTPUT:
- Total marks as "Total: X/Y"
- 2-4 sentences covering overall strengths and the most important areas to
  improve
- Do NOT repeat each question's feedback verbatim`

// Evaluation is the result of grading one answer.
type Evaluation struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Feedback string `json:"feedback"`
}

// ExamResult aggregates per-question evaluations with a final report.
type ExamResult struct {
	Evaluations []Evaluation `json:"evaluations"`
	Report      string       `json:"report"`
}

// EvaluateAnswer grades a single answer against the study material.
func (s *Service) EvaluateAnswer(ctx context.Context, material, question, answer string) (Evaluation, error) {
	question = strings.TrimSpace(question)
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return Evaluation{}, ErrEmptyAnswer
	}

	prompt := fmt.Sprintf(evaluationPrompt, strings.TrimSpace(material), question, answer)
	resp, err := s.ai.Complete(ctx, ai.CompletionRequest{
		Messages:    []ai.Message{{Role: "user", Content: prompt}},
		Task:        ai.TaskEvaluation,
		Temperature: 0.2,
		MaxTokens:   300,
	})
	if err != nil {
		return Evaluation{}, fmt.Errorf("evaluating answer: %w", err)
	}

	return Evaluation{
		Question: question,
		Answer:   answer,
		Feedback: strings.TrimSpace(resp.Content),
	}, nil
}

// EvaluateExam grades every answer in order and produces a combined report.
// Questions and answers must align one to one.
func (s *Service) EvaluateExam(ctx context.Context, material string, questions, answers []string) (ExamResult, error) {
	if len(questions) != len(answers) {
		return ExamResult{}, ErrAnswerMismatch
	}
	if len(questions) == 0 {
		return ExamResult{}, ErrEmptyContext
	}

	result := ExamResult{Evaluations: make([]Evaluation, 0, len(questions))}
	var combined strings.Builder
	for i := range questions {
		eval, err := s.EvaluateAnswer(ctx, material, questions[i], answers[i])
		if err != nil {
			return ExamResult{}, fmt.Errorf("question %d: %w", i+1, err)
		}
		result.Evaluations = append(result.Evaluations, eval)
		fmt.Fprintf(&combined, "Question %d: %s\n%s\n\n", i+1, eval.Question, eval.Feedback)
	}

	resp, err := s.ai.Complete(ctx, ai.CompletionRequest{
		Messages:    []ai.Message{{Role: "user", Content: fmt.Sprintf(examReportPrompt, combined.String())}},
		Task:        ai.TaskEvaluation,
		Temperature: 0.2,
		MaxTokens:   300,
	})
	if err != nil {
		return ExamResult{}, fmt.Errorf("building exam report: %w", err)
	}
	result.Report = strings.TrimSpace(resp.Content)

	return result, nil
}
