package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

// NewRouter wires the HTTP surface. Telemetry submission and querying are
// request-parallel; nothing here serializes requests, the event store's
// uniqueness constraint is the only coordination point.
func NewRouter(handler *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(httprate.LimitByIP(600, time.Minute))

	r.Get("/api/v1/health", handler.Health)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/customers", handler.ListCustomers)
		r.Get("/customers/{customerID}/devices", handler.ListDevices)
		r.Get("/customers/{customerID}/devices/{deviceID}", handler.GetDevice)

		r.Post("/telemetry", handler.SubmitTelemetry)
		r.Get("/telemetry/{customerID}/{deviceID}", handler.GetTelemetry)
		r.Get("/telemetry/{customerID}/{deviceID}/insights", handler.GetInsights)
	})

	return r
}
