package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"insight-backend/internal/config"
	"insight-backend/internal/insight"
	"insight-backend/internal/llm"
	"insight-backend/internal/prompts"
	"insight-backend/internal/types"
)

const (
	maxBodyBytes    = 1 << 20
	shutdownTimeout = 30 * time.Second
)

type Server struct {
	router   *chi.Mux
	insights *insight.Service
	provider string
	cfg      config.Config
	log      *zap.Logger
}

func NewServer(cfg config.Config, completer llm.Completer, catalog *prompts.Catalog, log *zap.Logger) (*Server, error) {
	if completer == nil {
		return nil, errors.New("completer is required")
	}
	if catalog == nil {
		return nil, errors.New("prompt catalog is required")
	}
	if log == nil {
		log = zap.NewNop()
	}
	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(log))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))

	s := &Server{
		router:   r,
		insights: insight.NewService(completer, catalog, cfg.LLMTimeout, log),
		provider: completer.Name(),
		cfg:      cfg,
		log:      log,
	}
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	s.router.Get("/", s.handleRoot)
	s.router.Get("/api/health", s.handleHealth)
	s.router.Post("/api/generate-strategy", s.handleStrategy)
	s.router.Post("/api/generate-risk", s.handleRisk)
	s.router.Post("/api/generate-market", s.handleMarket)
	s.router.Post("/api/reports", s.handleReports)
}

func (s *Server) Router() http.Handler { return s.router }

// Run serves on cfg.Addr() until ctx is cancelled, then drains in-flight
// requests for up to shutdownTimeout.
func (s *Server) Run(ctx context.Context) error {
	srv := s.httpServer()

	serverErrors := make(chan error, 1)
	go func() {
		s.log.Info("server listening", zap.String("addr", srv.Addr), zap.String("provider", s.provider))
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		s.log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown error: %w", err)
		}
	}
	return nil
}

// httpServer leaves WriteTimeout unset when LLMTimeout is zero so the
// provider call is bounded by the request context alone.
func (s *Server) httpServer() *http.Server {
	srv := &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
	}
	if s.cfg.LLMTimeout > 0 {
		srv.WriteTimeout = s.cfg.LLMTimeout + 30*time.Second
	}
	return srv
}

func requestLogger(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			log.Info("http request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(start)),
				zap.String("request_id", middleware.GetReqID(r.Context())),
				zap.String("remote_addr", r.RemoteAddr),
			)
		})
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Warn("failed to write response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, code int, msg string) {
	s.writeJSON(w, code, types.ErrorResponse{Success: false, Message: msg})
}
