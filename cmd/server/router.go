package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/pmaojo/ontos/internal/api"
	apimiddleware "github.com/pmaojo/ontos/internal/api/middleware"
)

// setupRouter configures the application router with all routes and
// middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apimiddleware.Trace)

	ontologyHandler := api.NewOntologyHandler(app.repository)
	reasonerHandler := api.NewReasonerHandler(app.reasoner)
	knowledgeHandler := api.NewKnowledgeHandler(app.reasoner, app.assistant)

	r.Route("/api", func(r chi.Router) {
		r.Post("/ontologies", ontologyHandler.CreateOntology)
		r.Get("/ontologies", ontologyHandler.ListOntologies)
		r.Get("/ontologies/detail", ontologyHandler.GetOntology)
		r.Delete("/ontologies", ontologyHandler.DeleteOntology)

		r.Post("/ontologies/classes", ontologyHandler.AttachClass)
		r.Post("/ontologies/properties", ontologyHandler.AttachProperty)
		r.Post("/ontologies/individuals", ontologyHandler.AttachIndividual)

		r.Post("/reasoner/ancestors", reasonerHandler.Ancestors)
		r.Post("/reasoner/descendants", reasonerHandler.Descendants)
		r.Post("/reasoner/related", reasonerHandler.Related)
		r.Post("/reasoner/shortest-path", reasonerHandler.ShortestPath)

		r.Post("/knowledge", knowledgeHandler.Invoke)
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})
	r.Method(http.MethodGet, "/metrics", app.metrics.Handler())

	return r
}
