// internal/server/router.go
package server

import (
	"net/http"
	"strconv"
	"time"

	"grant-portal/internal/application"
	"grant-portal/internal/common/logger"
	"grant-portal/internal/common/metrics"
	"grant-portal/internal/common/observability"
	"grant-portal/internal/genai"
	"grant-portal/internal/profile"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server is the thin HTTP layer. Handlers delegate to domain services and
// translate coded errors into the public JSON envelopes.
type Server struct {
	apps     *application.Service
	profiles *profile.Store
	ai       *genai.Client
	obs      *observability.Observability
	logger   logger.Logger

	staticDir string
}

func New(apps *application.Service, profiles *profile.Store, ai *genai.Client, obs *observability.Observability, staticDir string, log logger.Logger) *Server {
	return &Server{
		apps:      apps,
		profiles:  profiles,
		ai:        ai,
		obs:       obs,
		logger:    log.WithFields(map[string]interface{}{"component": "http-server"}),
		staticDir: staticDir,
	}
}

// Router wires all public endpoints. Everything that is not an API route
// falls through to the SPA handler so hash routing works client-side.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(s.instrument)

	r.Post("/submit", s.handleSubmit)

	r.Route("/api", func(r chi.Router) {
		r.Get("/grants", s.handleListGrants)
		r.Get("/grants/{id}", s.handleGetGrant)
		r.Get("/team", s.handleTeam)
		r.Get("/faqs", s.handleFAQs)
		r.Get("/resources", s.handleResources)

		r.Get("/applications/{id}", s.handleGetApplication)
		r.Get("/dashboard", s.handleDashboard)

		r.Get("/profile/{email}", s.handleGetProfile)
		r.Put("/profile/{email}", s.handleSaveProfile)
		r.Delete("/profile/{email}", s.handleDeleteProfile)

		r.Post("/assist/chat", s.handleChat)
		r.Post("/assist/narrative", s.handleNarrative)
		r.Post("/vision", s.handleStartVideo)
		r.Get("/vision/{id}", s.handlePollVideo)
	})

	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.NotFound(s.handleSPA)

	return r
}

// instrument records request counts and durations for every route.
func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := r.URL.Path
		status := strconv.Itoa(ww.Status())
		metrics.HTTPRequests.WithLabelValues(route, status).Inc()
		if s.obs != nil {
			s.obs.RecordRequest(r.Context(), route, status)
			s.obs.RecordRequestDuration(r.Context(), time.Since(start), route)
		}
	})
}
