package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/rfialho/bizledger/internal/http/company"
	"github.com/rfialho/bizledger/internal/http/industry"
	"github.com/rfialho/bizledger/internal/http/invoice"
)

func New(
	companies *company.Handler,
	invoices *invoice.Handler,
	industries *industry.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"https://*", "http://*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	router.Route("/companies", func(r chi.Router) {
		r.Use(middleware.AllowContentType("application/json"))
		companies.Routes(r)
	})

	router.Route("/invoices", func(r chi.Router) {
		r.Use(middleware.AllowContentType("application/json"))
		invoices.Routes(r)
	})

	router.Route("/industries", func(r chi.Router) {
		r.Use(middleware.AllowContentType("application/json"))
		industries.Routes(r)
	})

	return router
}
