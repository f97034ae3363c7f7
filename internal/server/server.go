// Package server provides the HTTP REST API for resume feedback analysis.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/therrshan/resume-feedback/internal/analyzer"
	"github.com/therrshan/resume-feedback/internal/config"
	"github.com/therrshan/resume-feedback/internal/server/middleware"
	"github.com/therrshan/resume-feedback/internal/server/ratelimit"
)

// requestIDHeader carries the per-request correlation ID.
const requestIDHeader = "X-Request-ID"

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	analyzer    *analyzer.Analyzer
	rateLimiter *ratelimit.Limiter
	jwtService  *JWTService // nil when auth is not configured
}

// Config holds server configuration
type Config struct {
	Addr string

	// RequireAuth protects /analyze with JWT bearer auth. JWT_SECRET must
	// be set in the environment when enabled.
	RequireAuth bool
}

// New creates a new server instance around the given analyzer.
func New(cfg Config, a *analyzer.Analyzer) (*Server, error) {
	if a == nil {
		a = analyzer.NewDeterministic()
	}

	s := &Server{analyzer: a}
	s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())

	if cfg.RequireAuth {
		jwtConfig, err := config.NewJWTConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to create JWT config: %w", err)
		}
		s.jwtService = NewJWTService(jwtConfig)
	}

	addr := cfg.Addr
	if addr == "" {
		addr = ":8080"
	}

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // Analysis fans out to the LLM API
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Handler builds the routed handler with all middleware applied. Exposed
// separately from Start so tests can drive it through httptest.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	analyze := http.Handler(http.HandlerFunc(s.handleAnalyze))
	if s.jwtService != nil {
		analyze = middleware.AuthMiddleware(s.jwtService.AsTokenValidator())(analyze)
	}
	mux.Handle("POST /analyze", analyze)
	mux.HandleFunc("POST /projects/latex", s.handleParseProjects)
	mux.HandleFunc("GET /health", s.handleHealth)

	return s.withRateLimit(s.withRequestID(s.withLogging(mux)))
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	// Stop rate limiter cleanup goroutine
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}

	log.Println("Server stopped")
	return nil
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// withRequestID assigns a correlation ID to every request unless the caller
// provided one.
func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := clientAddr(r)

		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)
		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.jsonResponse(w, http.StatusTooManyRequests, map[string]string{
				"error": "rate limit exceeded",
			})
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit <= 0 {
		return
	}
	w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
	w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
	w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
}

// clientAddr extracts the client identifier from the request. For now this
// is the IP from RemoteAddr; X-Forwarded-For would need a trusted proxy
// list first.
func clientAddr(r *http.Request) string {
	return r.RemoteAddr
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
