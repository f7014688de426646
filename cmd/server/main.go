package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prepdeck/prepdeck/internal/ai"
	"github.com/prepdeck/prepdeck/internal/api"
	"github.com/prepdeck/prepdeck/internal/essay"
	"github.com/prepdeck/prepdeck/internal/expander"
	"github.com/prepdeck/prepdeck/internal/planner"
	"github.com/prepdeck/prepdeck/internal/platform/cache"
	"github.com/prepdeck/prepdeck/internal/platform/config"
	"github.com/prepdeck/prepdeck/internal/quiz"
	"github.com/prepdeck/prepdeck/internal/summarize"
)

// expansionTTL is how long cached subtopic expansions stay valid.
const expansionTTL = 24 * time.Hour

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	setupLogging(cfg.Log)

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}

	router := buildRouter(cfg)
	usage := ai.NewUsageTracker()
	router.SetUsageTracker(usage)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	// Expansion path: LLM when a provider exists, static fallback lists
	// otherwise, with an optional Redis memoization layer on top.
	var exp planner.Expander
	if cfg.HasAIProvider() || cfg.AI.AllowMock {
		exp = expander.NewLLM(router)
	} else {
		exp = expander.NewStatic()
	}

	var cacheClient *cache.Cache
	if cfg.Cache.URL != "" {
		cacheClient, err = cache.New(ctx, cfg.Cache.URL)
		if err != nil {
			slog.Error("failed to connect to cache", "error", err)
			os.Exit(1)
		}
		defer cacheClient.Close()
		exp = expander.NewCached(exp, cacheClient, expansionTTL)
		slog.Info("expansion cache enabled", "ttl", expansionTTL)
	}

	srv := api.NewServer(api.Options{
		Planner:   planner.NewService(exp),
		Expander:  exp,
		Summarize: summarize.NewService(router),
		Essay:     essay.NewService(router),
		Quiz:      quiz.NewService(router),
		AI:        router,
		Usage:     usage,
		Cache:     healthChecker(cacheClient),
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	httpSrv := &http.Server{
		Addr:         addr,
		Handler:      srv.Routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 120 * time.Second, // AI completions are slow
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("server starting", "addr", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}

// buildRouter registers the configured providers in fallback order:
// Groq first, then OpenAI, then self-hosted Ollama, then the canned mock
// when explicitly allowed.
func buildRouter(cfg *config.Config) *ai.Router {
	router := ai.NewRouter()

	if cfg.AI.Groq.APIKey != "" {
		router.Register("groq", ai.NewGroqProvider(cfg.AI.Groq.APIKey,
			ai.WithDefaultModel(cfg.AI.Groq.Model)))
		slog.Info("registered AI provider", "provider", "groq", "model", cfg.AI.Groq.Model)
	}
	if cfg.AI.OpenAI.APIKey != "" {
		router.Register("openai", ai.NewOpenAIProvider(cfg.AI.OpenAI.APIKey))
		slog.Info("registered AI provider", "provider", "openai")
	}
	if cfg.AI.Ollama.Enabled {
		router.Register("ollama", ai.NewOllamaProvider(cfg.AI.Ollama.URL))
		slog.Info("registered AI provider", "provider", "ollama", "url", cfg.AI.Ollama.URL)
	}
	if !router.HasProvider() && cfg.AI.AllowMock {
		router.Register("mock", ai.NewMockProvider("This is a canned development response."))
		slog.Warn("no real AI provider configured, serving mock responses")
	}

	return router
}

// healthChecker avoids storing a typed nil behind the interface when the
// cache is not configured.
func healthChecker(c *cache.Cache) api.HealthChecker {
	if c == nil {
		return nil
	}
	return c
}

func setupLogging(cfg config.Log) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "text" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}
