// Package server exposes the analyzer over a JSON HTTP API.
package server

import (
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"dabuild/internal/analyzer"
	"dabuild/internal/storage"
)

// Server wires HTTP handlers to the analyzer core and the document store.
type Server struct {
	analyzer *analyzer.Analyzer
	store    *storage.Store
	logger   *zap.Logger
}

// New creates a Server.
func New(a *analyzer.Analyzer, store *storage.Store, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{analyzer: a, store: store, logger: logger}
}

// Handler returns the root HTTP handler with CORS and request logging
// applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/parse", s.handleParse)
	mux.HandleFunc("/validate", s.handleValidate)
	mux.HandleFunc("/variables", s.handleVariables)
	mux.HandleFunc("/fields", s.handleFields)
	mux.HandleFunc("/save", s.handleSave)

	return withCORS(s.logRequests(mux))
}

// logRequests logs every request with its duration.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)))
	})
}

// withCORS applies a permissive CORS policy; the API is consumed by a
// browser-based editor frontend.
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := strings.TrimSpace(r.Header.Get("Origin"))
		if origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Vary", "Origin")
		} else {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		}
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Authorization")

		if r.Method == http.MethodOptions {
			return
		}
		next.ServeHTTP(w, r)
	})
}
