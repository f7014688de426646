// Package api exposes the HTTP surface: study-plan generation and export,
// topic expansion, summaries, essays, question generation and evaluation, a
// websocket tutor chat, and operational endpoints.
package api

import (
	"context"
	"net/http"

	"github.com/prepdeck/prepdeck/internal/ai"
	"github.com/prepdeck/prepdeck/internal/essay"
	"github.com/prepdeck/prepdeck/internal/planner"
	"github.com/prepdeck/prepdeck/internal/quiz"
	"github.com/prepdeck/prepdeck/internal/summarize"
)

// HealthChecker is anything with a liveness probe, e.g. the cache client.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Server holds the wired services behind the HTTP handlers.
type Server struct {
	planner   *planner.Service
	expander  planner.Expander
	summarize *summarize.Service
	essay     *essay.Service
	quiz      *quiz.Service
	ai        ai.Completer
	usage     *ai.UsageTracker
	cache     HealthChecker // nil when the cache is not configured
}

// Options carries the dependencies for a Server. Planner, Expander, and AI
// are required; Cache may be nil.
type Options struct {
	Planner   *planner.Service
	Expander  planner.Expander
	Summarize *summarize.Service
	Essay     *essay.Service
	Quiz      *quiz.Service
	AI        ai.Completer
	Usage     *ai.UsageTracker
	Cache     HealthChecker
}

// NewServer creates the HTTP server facade.
func NewServer(opts Options) *Server {
	return &Server{
		planner:   opts.Planner,
		expander:  opts.Expander,
		summarize: opts.Summarize,
		essay:     opts.Essay,
		quiz:      opts.Quiz,
		ai:        opts.AI,
		usage:     opts.Usage,
		cache:     opts.Cache,
	}
}

// Routes creates the HTTP router.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /v1/study-plan", s.handleStudyPlan)
	mux.HandleFunc("POST /v1/study-plan/export", s.handleStudyPlanExport)
	mux.HandleFunc("POST /v1/topics/expand", s.handleExpandTopic)
	mux.HandleFunc("POST /v1/summaries", s.handleSummarize)
	mux.HandleFunc("POST /v1/essays", s.handleEssay)
	mux.HandleFunc("POST /v1/questions", s.handleQuestions)
	mux.HandleFunc("POST /v1/evaluations", s.handleEvaluations)
	mux.HandleFunc("GET /v1/chat", s.handleChat)
	mux.HandleFunc("GET /v1/usage", s.handleUsage)
	mux.HandleFunc("GET /healthz", s.handleHealthz)
	mux.HandleFunc("GET /readyz", s.handleReadyz)

	return mux
}

func (s *Server) handleUsage(w http.ResponseWriter, r *http.Request) {
	usage := []ai.TaskUsage{}
	if s.usage != nil {
		if snap := s.usage.Snapshot(); snap != nil {
			usage = snap
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"usage": usage})
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleReadyz(w http.ResponseWriter, r *http.Request) {
	if s.cache != nil {
		if err := s.cache.HealthCheck(r.Context()); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "degraded",
				"cache":  err.Error(),
			})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
