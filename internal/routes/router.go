package routes

import (
	"log/slog"

	"boardgames/internal/controllers"
	"boardgames/internal/services"
	"boardgames/internal/storage/database"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func SetupRouter(log *slog.Logger, storage *database.Storage, views controllers.Renderer) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(storage.Middleware(log))

	r.NotFound(controllers.NotFound(log, views))
	r.MethodNotAllowed(controllers.MethodNotAllowed(log, views))

	gameService := services.NewGameService(storage, log)
	sessionService := services.NewSessionService(storage, log)

	gameController := controllers.NewGameController(gameService, log, views)
	sessionController := controllers.NewSessionController(gameService, sessionService, log, views)

	r.Get("/", gameController.List)

	r.Route("/games", func(r chi.Router) {
		r.Get("/new", gameController.New)
		r.Post("/new", gameController.Create)
		r.Route("/{gameID:[0-9]+}/sessions", func(r chi.Router) {
			r.Get("/", sessionController.List)
			r.Get("/new", sessionController.New)
			r.Post("/new", sessionController.Create)
		})
	})

	return r
}
