// Package server provides the HTTP REST API for the prompt generator.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/minsu/prompt-generator/internal/apperr"
	"github.com/minsu/prompt-generator/internal/checklist"
	"github.com/minsu/prompt-generator/internal/config"
	"github.com/minsu/prompt-generator/internal/llm"
	"github.com/minsu/prompt-generator/internal/pipeline"
	"github.com/minsu/prompt-generator/internal/rulepack"
	"github.com/minsu/prompt-generator/internal/server/middleware"
	"github.com/minsu/prompt-generator/internal/server/ratelimit"
	"github.com/minsu/prompt-generator/internal/tokens"
	"github.com/minsu/prompt-generator/internal/validation"
)

// Server owns the HTTP surface and the process-wide stores. Everything is
// constructor-injected; there is no package-level mutable state.
type Server struct {
	httpServer  *http.Server
	logger      *zap.Logger
	development bool

	rulepacks  *rulepack.Store
	checklists *checklist.Store
	generator  *pipeline.Generator
	validator  *validation.Validator
	limiter    *ratelimit.Limiter
	identities *ratelimit.IdentityResolver
	llmClient  llm.Client

	startedAt time.Time
}

// New creates a server with its full dependency graph.
func New(cfg *config.Config, logger *zap.Logger) (*Server, error) {
	llmCfg := llm.DefaultConfig()
	if cfg.Model != "" {
		llmCfg.Model = cfg.Model
	}
	llmCfg.Timeout = cfg.LLMTimeout

	client, err := llm.NewGeminiClient(context.Background(), llmCfg, cfg.GeminiAPIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	s, err := newWithClient(cfg, logger, client)
	if err != nil {
		_ = client.Close()
		return nil, err
	}
	return s, nil
}

// newWithClient wires everything around an injected model client; tests
// use it with a fake.
func newWithClient(cfg *config.Config, logger *zap.Logger, client llm.Client) (*Server, error) {
	rulepacks := rulepack.NewStore()
	checklists := checklist.NewStore()
	governor := tokens.NewGovernor()
	usage := tokens.NewUsageLogger(logger.Named("usage"), nil)
	validator := validation.New(validation.Config{})

	s := &Server{
		logger:      logger,
		development: cfg.Development(),
		rulepacks:   rulepacks,
		checklists:  checklists,
		generator:   pipeline.New(rulepacks, checklists, governor, usage, client, validator, logger),
		validator:   validator,
		limiter:     ratelimit.NewLimiter(ratelimit.DefaultPolicies(), ratelimit.DefaultSweepInterval),
		identities:  ratelimit.NewIdentityResolver([]byte(cfg.JWTSecret)),
		llmClient:   client,
		startedAt:   time.Now(),
	}

	mux := http.NewServeMux()
	mux.Handle("POST /api/generate", s.withRateLimit(http.HandlerFunc(s.handleGenerate), ratelimit.PolicyDefault, ratelimit.PolicyBurst))
	mux.Handle("POST /api/validate", s.withRateLimit(http.HandlerFunc(s.handleValidate), ratelimit.PolicyDefault))
	mux.Handle("GET /api/rulepacks", s.withRateLimit(http.HandlerFunc(s.handleListRulePacks), ratelimit.PolicyDefault))
	mux.Handle("GET /api/rulepacks/{format}", s.withRateLimit(http.HandlerFunc(s.handleGetRulePack), ratelimit.PolicyDefault))
	mux.Handle("GET /api/checklists/{format}/{level}", s.withRateLimit(http.HandlerFunc(s.handleGetChecklist), ratelimit.PolicyDefault))
	mux.HandleFunc("GET /health", s.handleHealth)

	chain := middleware.RequestID(
		middleware.Logger(logger)(
			middleware.Recover(logger, s.writeInternalError)(mux)))

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      chain,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 2 * time.Minute, // generation calls can be slow
	}
	return s, nil
}

// Start runs the server until SIGINT/SIGTERM, then shuts down gracefully.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-stop:
	}
	s.logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.limiter.Stop()
	if err := s.llmClient.Close(); err != nil {
		s.logger.Warn("LLM client close failed", zap.Error(err))
	}
	s.logger.Info("server stopped")
	return nil
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Warn("failed to encode response", zap.Error(err))
	}
}

// writeInternalError is the panic-recovery error writer.
func (s *Server) writeInternalError(w http.ResponseWriter, r *http.Request) {
	s.errorResponse(w, r, apperr.NewInternal())
}
