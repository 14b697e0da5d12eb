package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/phrazzld/enroll-api/internal/api"
	apiMiddleware "github.com/phrazzld/enroll-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware. It accepts the application dependencies to
// create handlers and register routes. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	// API handlers over the application's services
	catalogHandler := api.NewCatalogHandler(app.catalogService, app.displayTZ)
	statsHandler := api.NewStatsHandler(app.statsService)
	enrollmentHandler := api.NewEnrollmentHandler(app.enrollmentService)
	lessonHandler := api.NewLessonHandler(app.lessonService)

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", catalogHandler.ListProducts)
		r.Get("/products/stats", statsHandler.ProductStats)

		r.Route("/students/{studentID}/products/{productID}", func(r chi.Router) {
			r.Post("/purchase", enrollmentHandler.Purchase)
			r.Get("/lessons", lessonHandler.ListLessons)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
