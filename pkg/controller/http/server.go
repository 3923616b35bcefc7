package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/breedsense/breedsense/pkg/service/export"
	"github.com/breedsense/breedsense/pkg/service/telemetry"
	"github.com/breedsense/breedsense/pkg/usecase"
	"github.com/breedsense/breedsense/pkg/utils/errutil"
	"github.com/breedsense/breedsense/pkg/utils/logging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/m-mizutani/goerr/v2"
)

type Server struct {
	router        *chi.Mux
	archiver      *export.Archiver
	corsOrigins   []string
	enableMetrics bool
}

type Options func(*Server)

// WithSourceArchiver enables the source download endpoint
func WithSourceArchiver(a *export.Archiver) Options {
	return func(s *Server) {
		s.archiver = a
	}
}

// WithCORSOrigins sets the allowed CORS origins (default: any)
func WithCORSOrigins(origins []string) Options {
	return func(s *Server) {
		if len(origins) > 0 {
			s.corsOrigins = origins
		}
	}
}

// WithMetrics exposes the Prometheus scrape endpoint
func WithMetrics(enabled bool) Options {
	return func(s *Server) {
		s.enableMetrics = enabled
	}
}

func New(uc *usecase.UseCases, opts ...Options) (*Server, error) {
	if uc == nil {
		return nil, goerr.New("use cases are required")
	}

	r := chi.NewRouter()
	s := &Server{
		router:      r,
		corsOrigins: []string{"*"},
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/", rootHandler)

		r.Post("/predict", predictHandler(uc.Prediction))
		r.Get("/predictions", predictionsHandler(uc.Analytics))
		r.Get("/analytics/summary", summaryHandler(uc.Analytics))

		r.Post("/status", createStatusHandler(uc.Status))
		r.Get("/status", listStatusHandler(uc.Status))

		if s.archiver != nil {
			r.Get("/download/source", downloadSourceHandler(s.archiver))
		}
	})

	if s.enableMetrics {
		r.Get("/metrics", telemetry.Handler().ServeHTTP)
	}

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, map[string]string{"message": "Hello World"})
}

// respondJSON marshals v and writes it as a JSON response
func respondJSON(w http.ResponseWriter, r *http.Request, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		errutil.HandleHTTPOpaque(r.Context(), w, goerr.Wrap(err, "failed to marshal response"),
			"Internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data) //nolint:errcheck // header already committed
}
