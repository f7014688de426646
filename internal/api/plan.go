package api

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/prepdeck/prepdeck/internal/export"
	"github.com/prepdeck/prepdeck/internal/planner"
)

// maxBodyBytes caps request bodies; pasted study material can be large but
// not unbounded.
const maxBodyBytes = 1 << 20

type studyPlanRequest struct {
	Topics     string `json:"topics"`
	ExamDate   string `json:"exam_date"`
	DailyHours int    `json:"daily_hours"`
}

type studyPlanResponse struct {
	Plan planner.Plan `json:"plan"`
}

// parseStudyPlanRequest validates the body against the JSON schema and
// decodes it. Schema violations come back as *schemaError so the handler can
// answer 422 instead of 400.
func parseStudyPlanRequest(r *http.Request) (studyPlanRequest, time.Time, error) {
	var req studyPlanRequest

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return req, time.Time{}, fmt.Errorf("reading request: %w", err)
	}
	if err := validateStudyPlan(body); err != nil {
		return req, time.Time{}, &schemaError{err: err}
	}
	if err := decodeBytes(body, &req); err != nil {
		return req, time.Time{}, err
	}

	examDate, err := time.Parse("2006-01-02", req.ExamDate)
	if err != nil {
		return req, time.Time{}, fmt.Errorf("invalid exam_date: %w", err)
	}
	return req, examDate, nil
}

// schemaError marks a validation failure found by the JSON schema.
type schemaError struct{ err error }

func (e *schemaError) Error() string { return e.err.Error() }
func (e *schemaError) Unwrap() error { return e.err }

func (s *Server) handleStudyPlan(w http.ResponseWriter, r *http.Request) {
	req, examDate, err := parseStudyPlanRequest(r)
	if err != nil {
		writePlanError(w, err)
		return
	}

	plan, err := s.planner.GeneratePlan(r.Context(), req.Topics, examDate, req.DailyHours)
	if err != nil {
		writePlanError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, studyPlanResponse{Plan: plan})
}

func (s *Server) handleStudyPlanExport(w http.ResponseWriter, r *http.Request) {
	req, examDate, err := parseStudyPlanRequest(r)
	if err != nil {
		writePlanError(w, err)
		return
	}

	plan, err := s.planner.GeneratePlan(r.Context(), req.Topics, examDate, req.DailyHours)
	if err != nil {
		writePlanError(w, err)
		return
	}

	wb, err := export.Workbook(plan)
	if err != nil {
		slog.Error("failed to build workbook", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to build workbook")
		return
	}
	defer wb.Close()

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="study_plan.xlsx"`)
	if err := wb.Write(w); err != nil {
		slog.Error("failed to write workbook", "error", err)
	}
}

type expandRequest struct {
	Topic      string `json:"topic"`
	Difficulty string `json:"difficulty"`
}

type expandResponse struct {
	Topic      string   `json:"topic"`
	Difficulty string   `json:"difficulty"`
	Subtopics  []string `json:"subtopics"`
}

func (s *Server) handleExpandTopic(w http.ResponseWriter, r *http.Request) {
	var req expandRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Topic == "" {
		writeError(w, http.StatusBadRequest, "topic is required")
		return
	}

	difficulty := planner.NormalizeDifficulty(req.Difficulty)
	subs, err := s.expander.Expand(r.Context(), req.Topic, difficulty)
	if err != nil {
		slog.Error("topic expansion failed", "topic", req.Topic, "error", err)
		writeError(w, http.StatusBadGateway, "topic expansion failed")
		return
	}

	writeJSON(w, http.StatusOK, expandResponse{
		Topic:      req.Topic,
		Difficulty: difficulty,
		Subtopics:  subs,
	})
}

// writePlanError maps scheduling failures onto HTTP statuses: schema
// violations are 422, constraint violations are 400, everything else 500.
func writePlanError(w http.ResponseWriter, err error) {
	var se *schemaError
	switch {
	case errors.As(err, &se):
		writeError(w, http.StatusUnprocessableEntity, se.Error())
	case errors.Is(err, planner.ErrNoTopics):
		writeError(w, http.StatusBadRequest, "at least one topic is required")
	case errors.Is(err, planner.ErrExamDateNotFuture):
		writeError(w, http.StatusBadRequest, "exam date must be in the future")
	case errors.Is(err, planner.ErrInsufficientTime):
		writeError(w, http.StatusBadRequest, "not enough study time before the exam")
	default:
		slog.Error("plan generation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to generate plan")
	}
}
