package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	appfeedback "github.com/bryanwahyu/feedback-analyzer/internal/application/feedback"
	domain "github.com/bryanwahyu/feedback-analyzer/internal/domain/feedback"
	"github.com/bryanwahyu/feedback-analyzer/internal/logging"
	"github.com/bryanwahyu/feedback-analyzer/internal/middleware"
)

const AnalyzeFeedbackPath = "/api/analyze_feedback"

type Options struct {
	Logger      *slog.Logger
	Metrics     *middleware.Metrics
	Health      map[string]middleware.HealthChecker
	CORSOrigins []string
}

type Router struct {
	feedbackSvc *appfeedback.Service
	metrics     *middleware.Metrics
}

func NewRouter(feedbackSvc *appfeedback.Service, opts Options) http.Handler {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Metrics == nil {
		opts.Metrics = middleware.NewMetrics()
	}
	if len(opts.CORSOrigins) == 0 {
		opts.CORSOrigins = []string{"*"}
	}

	r := &Router{feedbackSvc: feedbackSvc, metrics: opts.Metrics}
	mux := chi.NewRouter()

	mux.Use(chimw.RealIP)
	mux.Use(middleware.RequestLogger(opts.Logger))
	mux.Use(chimw.Recoverer)
	mux.Use(opts.Metrics.Middleware)
	// CORS only decorates responses; preflights pass through so the analyze
	// handler still answers every non-POST method with 405.
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins:     opts.CORSOrigins,
		AllowedMethods:     []string{http.MethodPost, http.MethodOptions},
		AllowedHeaders:     []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:     []string{middleware.RequestIDHeader},
		MaxAge:             300,
		OptionsPassthrough: true,
	}))

	mux.Get("/health", middleware.HealthHandler(opts.Health))
	mux.Get("/healthz", middleware.LivenessHandler)
	mux.Get("/metrics", opts.Metrics.Handler)

	// All methods are routed here; the handler owns the 405 response.
	mux.HandleFunc(AnalyzeFeedbackPath, r.wrap(r.handleAnalyzeFeedback))

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		err := h(w, req)
		if err == nil {
			return
		}

		kind := domain.KindOf(err)
		r.metrics.ObserveFailure(kind)

		switch kind {
		case domain.KindMethodNotAllowed:
			// plain text, kept for compatibility with existing callers
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.WriteHeader(http.StatusMethodNotAllowed)
			_, _ = w.Write([]byte(domain.MsgMethodNotAllowed))
		case domain.KindMissingField:
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": domain.MsgMissingField})
		default:
			logging.FromContext(req.Context()).Error("analyze feedback failed", "kind", kind.String(), "err", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
	}
}

type successResponse struct {
	Status string          `json:"status"`
	Data   domain.Analysis `json:"data"`
}

// POST /api/analyze_feedback
// Body: {"message": "<feedback text>"}
func (r *Router) handleAnalyzeFeedback(w http.ResponseWriter, req *http.Request) error {
	fb, err := appfeedback.ParseRequest(req.Method, req.Body)
	if err != nil {
		return err
	}

	analysis, err := r.feedbackSvc.Submit(req.Context(), fb)
	if err != nil {
		return err
	}
	r.metrics.ObserveStored()

	writeJSON(w, http.StatusOK, successResponse{Status: "success", Data: analysis})
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
