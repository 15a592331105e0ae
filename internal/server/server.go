// Package server exposes the calculator over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/goccy/go-json"

	"github.com/rgehrsitz/labourrate/internal/calculation"
	"github.com/rgehrsitz/labourrate/internal/config"
	"github.com/rgehrsitz/labourrate/internal/domain"
	"github.com/rgehrsitz/labourrate/internal/output"
)

const maxBodyBytes = 1 << 20

// Server serves calculation, report and markup endpoints
type Server struct {
	engine   *calculation.CalculationEngine
	parser   *config.InputParser
	logger   calculation.Logger
	settings config.Settings
	now      func() time.Time
}

// New creates a server. A nil engine gets a default one.
func New(engine *calculation.CalculationEngine, settings config.Settings) *Server {
	if engine == nil {
		engine = calculation.NewCalculationEngine()
	}
	return &Server{
		engine:   engine,
		parser:   config.NewInputParser(),
		logger:   engine.Logger,
		settings: settings,
		now:      time.Now,
	}
}

// Routes builds the chi router
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/defaults", s.handleDefaults)
		r.Get("/parameters", s.handleParameters)
		r.Post("/calculate", s.handleCalculate)
		r.Post("/report", s.handleReport)
		r.Post("/markup", s.handleMarkup)
	})
	return r
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Infof("listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Infof("%s %s %d %s [%s]", r.Method, r.URL.Path, ww.Status(), time.Since(start),
			middleware.GetReqID(r.Context()))
	})
}

const errOverflow = "inputs are too large: results overflow the number range"

type errorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

type calculateResponse struct {
	Results   domain.CalculationResults `json:"results"`
	Breakdown output.Breakdown          `json:"breakdown"`
	Warnings  []string                  `json:"warnings,omitempty"`
}

type markupResponse struct {
	TargetRate    float64                   `json:"targetRate"`
	MarkupPercent float64                   `json:"markupPercent"`
	Results       domain.CalculationResults `json:"results"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleDefaults(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, domain.DefaultState())
}

func (s *Server) handleParameters(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, domain.Parameters())
}

func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	state, err := s.readState(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	results, err := s.engine.Calculate(r.Context(), *state)
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	if !results.IsFinite() {
		writeError(w, http.StatusUnprocessableEntity, errOverflow)
		return
	}
	writeJSON(w, http.StatusOK, calculateResponse{
		Results:   results,
		Breakdown: output.NewBreakdown(*state, results),
		Warnings:  config.Warnings(*state),
	})
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "html"
	}
	formatter := output.GetFormatterByName(format)
	if formatter == nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown format %q", format))
		return
	}
	student := r.URL.Query().Get("student")
	if student == "" {
		student = s.settings.Student
	}

	state, err := s.readState(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	results, err := s.engine.Calculate(r.Context(), *state)
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	if !results.IsFinite() {
		writeError(w, http.StatusUnprocessableEntity, errOverflow)
		return
	}

	data, err := formatter.Format(output.NewReport(*state, results, student, s.now()))
	if err != nil {
		s.logger.Errorf("report %s failed: %v", formatter.Name(), err)
		writeError(w, http.StatusInternalServerError, "failed to render report")
		return
	}
	w.Header().Set("Content-Type", output.ContentType(formatter))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (s *Server) handleMarkup(w http.ResponseWriter, r *http.Request) {
	target, err := strconv.ParseFloat(r.URL.Query().Get("target"), 64)
	if err != nil || math.IsNaN(target) || math.IsInf(target, 0) || target <= 0 {
		writeError(w, http.StatusBadRequest, "target must be a positive hourly rate")
		return
	}
	state, err := s.readState(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	adjusted, results, err := calculation.ApplyTargetRate(*state, target)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, calculation.ErrNoCostBase) {
			status = http.StatusUnprocessableEntity
		}
		writeError(w, status, err.Error())
		return
	}
	if !results.IsFinite() {
		writeError(w, http.StatusUnprocessableEntity, errOverflow)
		return
	}
	writeJSON(w, http.StatusOK, markupResponse{
		TargetRate:    target,
		MarkupPercent: adjusted.MarkupPercent,
		Results:       results,
	})
}

// readState decodes and validates a JSON state body
func (s *Server) readState(r *http.Request) (*domain.CalculatorState, error) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}
	if len(data) == 0 {
		return nil, errors.New("request body is empty")
	}
	return s.parser.LoadFromBytes(data, config.FormatJSON)
}

// writeJSON encodes before writing the header so an encoding failure becomes a 500
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		status = http.StatusInternalServerError
		data, _ = json.Marshal(errorResponse{Status: status, Message: "failed to encode response"})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(data, '\n'))
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Status: status, Message: message})
}
