package routes

import (
	"log/slog"
	"net/http"

	"github.com/Dosada05/tournament-results/docs"
	"github.com/Dosada05/tournament-results/handlers"
	"github.com/Dosada05/tournament-results/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware" // Alias to avoid conflict
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AllowedOrigins []string
	Logger         *slog.Logger
}

func SetupRoutes(
	router chi.Router,
	opts Options,
	tournamentHandler *handlers.TournamentHandler,
	teamHandler *handlers.TeamHandler,
	healthHandler *handlers.HealthHandler,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(middleware.RequestLogger(opts.Logger))
	router.Use(chiMiddleware.Recoverer)
	// /api/teams/ и /api/teams обслуживаются одинаково
	router.Use(chiMiddleware.StripSlashes)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))

	router.NotFound(handlers.NotFound(opts.Logger))
	router.MethodNotAllowed(handlers.MethodNotAllowed(opts.Logger))

	router.Get("/healthz", healthHandler.CheckHandler)

	router.Route("/api", func(r chi.Router) {
		r.Route("/tournaments", func(r chi.Router) {
			r.Get("/", tournamentHandler.ListHandler)
			r.Get("/{tournamentID}", tournamentHandler.GetByIDHandler)
		})

		r.Route("/teams", func(r chi.Router) {
			r.Get("/", teamHandler.ListHandler)
			r.Get("/{teamID}", teamHandler.GetByIDHandler)
		})
	})

	router.Get("/swagger/doc.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write(docs.SwaggerJSON)
	})
	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
}
