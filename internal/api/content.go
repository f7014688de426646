package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/prepdeck/prepdeck/internal/essay"
	"github.com/prepdeck/prepdeck/internal/quiz"
	"github.com/prepdeck/prepdeck/internal/summarize"
)

type summarizeRequest struct {
	Text     string `json:"text"`
	Mode     string `json:"mode,omitempty"`
	MaxWords int    `json:"max_words,omitempty"`
}

func (s *Server) handleSummarize(w http.ResponseWriter, r *http.Request) {
	var req summarizeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	summary, err := s.summarize.Summarize(r.Context(), req.Text, summarize.Options{
		Mode:     summarize.Mode(req.Mode),
		MaxWords: req.MaxWords,
	})
	if err != nil {
		if errors.Is(err, summarize.ErrEmptyText) {
			writeError(w, http.StatusBadRequest, "text is required")
			return
		}
		slog.Error("summarization failed", "error", err)
		writeError(w, http.StatusBadGateway, "summarization failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"summary": summary})
}

type essayRequest struct {
	Topic     string `json:"topic"`
	WordLimit int    `json:"word_limit,omitempty"`
	Tone      string `json:"tone,omitempty"`
	Outline   string `json:"outline,omitempty"`
}

func (s *Server) handleEssay(w http.ResponseWriter, r *http.Request) {
	var req essayRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	text, err := s.essay.Generate(r.Context(), essay.Request{
		Topic:     req.Topic,
		WordLimit: req.WordLimit,
		Tone:      req.Tone,
		Outline:   req.Outline,
	})
	if err != nil {
		if errors.Is(err, essay.ErrEmptyTopic) {
			writeError(w, http.StatusBadRequest, "topic is required")
			return
		}
		slog.Error("essay generation failed", "error", err)
		writeError(w, http.StatusBadGateway, "essay generation failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"essay": text})
}

type questionsRequest struct {
	Material   string `json:"material"`
	Count      int    `json:"count,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
}

func (s *Server) handleQuestions(w http.ResponseWriter, r *http.Request) {
	var req questionsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	questions, err := s.quiz.GenerateQuestions(r.Context(), req.Material, req.Count, req.Difficulty)
	if err != nil {
		if errors.Is(err, quiz.ErrEmptyContext) {
			writeError(w, http.StatusBadRequest, "material is required")
			return
		}
		slog.Error("question generation failed", "error", err)
		writeError(w, http.StatusBadGateway, "question generation failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"questions": questions})
}

type evaluationsRequest struct {
	Material  string   `json:"material"`
	Questions []string `json:"questions"`
	Answers   []string `json:"answers"`
}

func (s *Server) handleEvaluations(w http.ResponseWriter, r *http.Request) {
	var req evaluationsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := s.quiz.EvaluateExam(r.Context(), req.Material, req.Questions, req.Answers)
	if err != nil {
		switch {
		case errors.Is(err, quiz.ErrAnswerMismatch):
			writeError(w, http.StatusBadRequest, "questions and answers must align one to one")
		case errors.Is(err, quiz.ErrEmptyContext):
			writeError(w, http.StatusBadRequest, "at least one question is required")
		case errors.Is(err, quiz.ErrEmptyAnswer):
			writeError(w, http.StatusBadRequest, "every question needs an answer")
		default:
			slog.Error("evaluation failed", "error", err)
			writeError(w, http.StatusBadGateway, "evaluation failed")
		}
		return
	}

	writeJSON(w, http.StatusOK, result)
}
