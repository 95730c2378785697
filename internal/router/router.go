package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/newsrack-dev/newsrack/internal/middleware/metrics"
	"github.com/newsrack-dev/newsrack/internal/setup"
)

// New creates and configures the router with all routes.
func New(deps *setup.Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)

	// The archive frontend is served from a different origin; the API
	// is deliberately open.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	h := deps.Handler

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", promhttp.Handler())

	// Media store proxy endpoints
	r.Get("/ik-auth", h.UploadAuth)
	r.Post("/ik-delete", h.DeleteMedia)

	// Metadata store proxy endpoints
	r.Get("/sb-files", h.ListFiles)
	r.Post("/sb-upsert", h.UpsertFile)
	r.Post("/sb-delete", h.DeleteRecords)
	r.Route("/sb-newspapers", func(r chi.Router) {
		r.Get("/", h.ListNewspapers)
		r.Post("/", h.CreateNewspaper)
		r.Delete("/", h.DeleteNewspaper)
	})

	// Issue orchestration and read views
	r.Post("/issues/bundle", h.UploadBundle)
	r.Delete("/issues", h.DeleteIssue)
	r.Get("/issues", h.GetIssues)
	r.Get("/topics", h.GetTopics)
	r.Get("/topics/{topic}/files", h.GetTopicPdfs)

	return r
}
