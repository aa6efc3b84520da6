package http

import (
	"log/slog"
	"net/http"

	"offerboard/internal/delivery/http/controllers"
	"offerboard/internal/delivery/http/helpers"
	"offerboard/internal/delivery/http/middleware"

	_ "offerboard/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter initializes the HTTP router with all application routes.
// Offer IDs in paths must match [1-9][0-9]*; anything else is a 404.
func NewRouter(
	logger *slog.Logger,
	allowedOrigins []string,
	offerController *controllers.OfferController,
	tagController *controllers.TagController,
	healthController *controllers.HealthController,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logging(logger))
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	r.Get("/health", healthController.Check)

	r.Route("/offers", func(r chi.Router) {
		r.Get("/", offerController.List)
		r.Get("/page/{page}", offerController.List)
		r.Post("/", offerController.Create)
		r.Route("/{id:[1-9][0-9]*}", func(r chi.Router) {
			r.Get("/", offerController.View)
			r.Put("/", offerController.Update)
			r.Delete("/", offerController.Delete)
		})
	})

	r.Get("/tags", tagController.List)

	// Swagger
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "route not found")
	})

	return r
}
