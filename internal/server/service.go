package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"docreview/internal/common"
	"docreview/internal/llm"
)

// Reviewer is the pipeline contract the HTTP layer depends on.
type Reviewer interface {
	Run(ctx context.Context, path string) (llm.ReviewResult, error)
}

// Config holds the HTTP-facing knobs.
type Config struct {
	CORSOrigin     string
	MaxUploadBytes int64
}

type Service struct {
	pipeline Reviewer
	cfg      Config
	log      *slog.Logger
}

func NewService(pipeline Reviewer, cfg Config, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 10 << 20
	}
	return &Service{pipeline: pipeline, cfg: cfg, log: log}
}

// Handler builds the routed handler with CORS, request-id, and recovery
// middleware applied.
func (s *Service) Handler() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/review", s.handleReview).Methods(http.MethodPost)
	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	var h http.Handler = r
	h = s.withRequestLog(h)
	h = s.withRecovery(h)

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{s.cfg.CORSOrigin}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)
	return cors(h)
}

func (s *Service) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// withRequestLog tags each request with an id and logs its outcome.
func (s *Service) withRequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, rid := common.EnsureRequestID(r.Context())
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, r.WithContext(ctx))

		s.log.Info("http.request",
			"req_id", rid,
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
	})
}

// withRecovery is the outermost boundary: unexpected panics are logged with
// full detail and surfaced as a generic internal error, never as a
// half-constructed result.
func (s *Service) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				s.log.Error("http.panic",
					"req_id", common.RequestIDFromContext(r.Context()),
					"path", r.URL.Path,
					"panic", rec,
				)
				writeError(w, http.StatusInternalServerError, "internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// statusFor maps the error taxonomy to HTTP statuses: input and business
// failures are the caller's problem, everything else is ours.
func statusFor(err error) int {
	switch {
	case errors.Is(err, common.ErrUnsupportedFormat):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, common.ErrInvalidInput),
		errors.Is(err, common.ErrExtraction),
		errors.Is(err, common.ErrModel):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// clientMessage keeps operator detail out of caller-visible errors.
func clientMessage(err error) string {
	if statusFor(err) == http.StatusInternalServerError {
		return "internal server error"
	}
	var appErr *common.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
