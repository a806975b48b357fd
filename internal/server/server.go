// Package server exposes the calculator over a small JSON HTTP API.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	calculator "github.com/Enduranc3/Calculator"
	"github.com/Enduranc3/Calculator/internal/config"
)

// Server is the HTTP front end of the evaluator.
type Server struct {
	cfg *config.ServerConfig
	log *zap.Logger
	srv *http.Server
}

// New creates a server with its routes mounted.
func New(cfg *config.ServerConfig, log *zap.Logger) *Server {
	s := &Server{cfg: cfg, log: log}
	s.srv = &http.Server{
		Addr:         cfg.Addr(),
		Handler:      s.Routes(),
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
	}
	return s
}

// Routes builds the router. Exposed separately so tests can drive the
// handlers without a listener.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(s.requestLogger)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Get("/healthz", s.handleHealth)
	r.Get("/functions", s.handleFunctions)
	r.Post("/evaluate", s.handleEvaluate)
	return r
}

// ListenAndServe runs the server until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errc := make(chan error, 1)
	go func() {
		s.log.Info("listening", zap.String("addr", s.srv.Addr))
		errc <- s.srv.ListenAndServe()
	}()
	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.log.Info("shutting down")
	return s.srv.Shutdown(shutdownCtx)
}

type evaluateRequest struct {
	Expression string `json:"expression"`
}

// evaluateResponse carries the value both numerically and formatted.
// Result is null for NaN and infinite values, which JSON cannot encode;
// Formatted always names the value.
type evaluateResponse struct {
	Result    *float64 `json:"result"`
	Formatted string   `json:"formatted"`
	Integral  bool     `json:"integral"`
}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req evaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed request body", Kind: "bad_request"})
		return
	}
	v, err := calculator.Evaluate(req.Expression)
	if err != nil {
		status, kind := classifyError(err)
		writeJSON(w, status, errorResponse{Error: err.Error(), Kind: kind})
		return
	}
	resp := evaluateResponse{
		Formatted: calculator.Format(v),
		Integral:  calculator.Integral(v),
	}
	if !math.IsNaN(v) && !math.IsInf(v, 0) {
		resp.Result = &v
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleFunctions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, calculator.Aliases())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// classifyError maps evaluator errors onto HTTP statuses: invalid input
// and domain errors are the client's fault, anything else is ours.
func classifyError(err error) (int, string) {
	var de *calculator.DomainError
	if errors.As(err, &de) {
		return http.StatusUnprocessableEntity, "domain_error"
	}
	var ie calculator.InputError
	if errors.As(err, &ie) {
		return http.StatusBadRequest, "invalid_input"
	}
	return http.StatusInternalServerError, "internal"
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// requestLogger logs one line per request with status and latency.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("took", time.Since(start)),
			zap.String("request_id", chimw.GetReqID(r.Context())),
		)
	})
}
