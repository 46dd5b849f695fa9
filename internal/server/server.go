// Package server exposes the snapshotter, the backend selector, and the
// OpenHands proxy over HTTP.
package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/quantmind-br/hybridgit/internal/backend"
	"github.com/quantmind-br/hybridgit/internal/openhands"
	"github.com/quantmind-br/hybridgit/internal/snapshot"
	"github.com/quantmind-br/hybridgit/internal/utils"
)

// Server holds the handlers' dependencies
type Server struct {
	client     *openhands.Client
	selector   *backend.Selector
	snapshots  snapshot.Service
	instanceID string
	startedAt  time.Time
	now        func() time.Time
	logger     *utils.Logger
}

// Options contains options for creating a Server
type Options struct {
	Client    *openhands.Client
	Selector  *backend.Selector
	Snapshots snapshot.Service
	// InstanceID identifies this process in /health; a random one is used if empty
	InstanceID  string
	Logger      *utils.Logger
	Middlewares []func(http.Handler) http.Handler
}

// New creates the HTTP router
func New(opts Options) *chi.Mux {
	logger := opts.Logger
	if logger == nil {
		logger = utils.Nop()
	}
	instanceID := opts.InstanceID
	if instanceID == "" {
		instanceID = uuid.NewString()
	}

	s := &Server{
		client:     opts.Client,
		selector:   opts.Selector,
		snapshots:  opts.Snapshots,
		instanceID: instanceID,
		startedAt:  time.Now(),
		now:        time.Now,
		logger:     logger.WithComponent("server"),
	}
	return s.routes(opts.Middlewares)
}

func (s *Server) routes(middlewares []func(http.Handler) http.Handler) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(LoggingMiddleware(s.logger))
	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.HandleFunc("/openhands", s.handleProxy)
		r.HandleFunc("/openhands/*", s.handleProxy)

		r.Post("/server-git", s.handleServerGit)

		r.Get("/git/status", s.handleGitStatus)
		r.Post("/git/clone", s.handleGitClone)
		r.Post("/git/execute", s.handleGitExecute)
	})

	return r
}

// LoggingMiddleware logs HTTP requests
func LoggingMiddleware(logger *utils.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Debug().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Dur("duration", time.Since(start)).
				Str("request_id", middleware.GetReqID(r.Context())).
				Msg("HTTP request")
		})
	}
}
