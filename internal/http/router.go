package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rogerio-castellano/expiry-tracker/internal/http/handlers"
	"github.com/rogerio-castellano/expiry-tracker/internal/metrics"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(MetricsMiddleware)

	r.Post("/register", handlers.RegisterHandler)
	r.Post("/login", handlers.LoginHandler)
	r.Post("/refresh", handlers.RefreshHandler)
	r.Get("/healthz", handlers.HealthHandler)
	r.Handle("/metrics", metrics.Handler(prometheus.DefaultGatherer))
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware)

		r.Post("/products", handlers.CreateProductHandler)
		r.Get("/products", handlers.GetProductsHandler)
		r.Get("/products/search", handlers.FilterProductsHandler)
		r.Get("/products/{id}", handlers.GetProductByIDHandler)
		r.Put("/products/{id}", handlers.UpdateProductHandler)
		r.Delete("/products/{id}", handlers.DeleteProductHandler)
		r.Get("/products/{id}/countdown", handlers.GetProductCountdownHandler)

		r.Get("/timeline", handlers.GetTimelineHandler)

		r.Post("/categories", handlers.CreateCategoryHandler)
		r.Get("/categories", handlers.GetCategoriesHandler)
		r.Delete("/categories/{id}", handlers.DeleteCategoryHandler)

		r.Get("/profile", handlers.GetProfileHandler)
		r.Put("/profile", handlers.UpdateProfileHandler)

		r.Get("/notifications", handlers.GetNotificationsHandler)
		r.Post("/notifications/{id}/read", handlers.MarkNotificationReadHandler)

		r.With(ScanRateLimitMiddleware).Post("/scan", handlers.ScanHandler)
	})

	return r
}
