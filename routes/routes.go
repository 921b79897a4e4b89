package routes

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/Dosada05/hero-registry/docs" // регистрирует swagger-документ
	"github.com/Dosada05/hero-registry/handlers"
)

func SetupRoutes(
	router *chi.Mux,
	heroHandler *handlers.HeroHandler,
	teamHandler *handlers.TeamHandler,
	healthHandler *handlers.HealthHandler,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"https://*", "http://*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	router.Get("/healthz", healthHandler.Healthz)

	router.Route("/heroes", func(r chi.Router) {
		r.Post("/", heroHandler.CreateHero)
		r.Get("/", heroHandler.ListHeroes)
		r.Get("/{heroID}", heroHandler.GetHeroByID)
		r.Patch("/{heroID}", heroHandler.UpdateHero)
		r.Delete("/{heroID}", heroHandler.DeleteHero)
	})

	router.Route("/teams", func(r chi.Router) {
		r.Post("/", teamHandler.CreateTeam)
		r.Get("/", teamHandler.ListTeams)
		r.Get("/{teamID}", teamHandler.GetTeamByID)
		r.Get("/{teamID}/heroes", teamHandler.ListTeamHeroes)
		r.Patch("/{teamID}", teamHandler.UpdateTeam)
		r.Delete("/{teamID}", teamHandler.DeleteTeam)
	})

	router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
}
