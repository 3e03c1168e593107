package controllers

import (
	"context"
	"log/slog"
	"net/http"

	"boardgames/internal/models"

	"github.com/go-chi/chi/v5/middleware"
)

type GameServicer interface {
	GetAll(ctx context.Context) ([]models.Game, error)
	GetByID(ctx context.Context, id int64) (*models.Game, error)
	Create(ctx context.Context, game *models.Game) (*models.Game, error)
}

type GamesPage struct {
	Games []models.Game
}

type NewGamePage struct {
	Form  GameForm
	Error string
}

type GameController struct {
	service GameServicer
	log     *slog.Logger
	views   Renderer
}

func NewGameController(s GameServicer, log *slog.Logger, views Renderer) *GameController {
	return &GameController{
		service: s,
		log:     log,
		views:   views,
	}
}

func (c *GameController) List(w http.ResponseWriter, r *http.Request) {
	const op = "controllers.games.List"

	games, err := c.service.GetAll(r.Context())
	if err != nil {
		c.log.Error(
			ErrGetGames.Error(),
			slog.String("operation", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.String("error", err.Error()))
		renderError(w, r, c.log, c.views, http.StatusInternalServerError, ErrGetGames.Error())
		return
	}

	render(w, r, c.log, c.views, http.StatusOK, "games.html", GamesPage{Games: games})
}

func (c *GameController) New(w http.ResponseWriter, r *http.Request) {
	render(w, r, c.log, c.views, http.StatusOK, "new_game.html", NewGamePage{})
}

func (c *GameController) Create(w http.ResponseWriter, r *http.Request) {
	const op = "controllers.games.Create"

	if err := r.ParseForm(); err != nil {
		renderError(w, r, c.log, c.views, http.StatusBadRequest, ErrInvalidInput.Error())
		return
	}

	form := gameFormFromRequest(r)

	game, err := form.Game()
	if err != nil {
		c.log.Debug(
			ErrInvalidInput.Error(),
			slog.String("operation", op),
			slog.String("error", err.Error()))
		render(w, r, c.log, c.views, http.StatusBadRequest, "new_game.html", NewGamePage{
			Form:  form,
			Error: err.Error(),
		})
		return
	}

	game, err = c.service.Create(r.Context(), game)
	if err != nil {
		c.log.Error(
			ErrCreate.Error(),
			slog.String("operation", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.String("name", form.Name),
			slog.String("error", err.Error()))
		renderError(w, r, c.log, c.views, http.StatusInternalServerError, ErrCreate.Error())
		return
	}

	c.log.Info("game created", slog.Int64("id", game.ID), slog.String("name", game.Name))

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
