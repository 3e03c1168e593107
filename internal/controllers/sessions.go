package controllers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"boardgames/internal/models"
	"boardgames/internal/storage"

	"github.com/go-chi/chi/v5/middleware"
)

type SessionServicer interface {
	GetByGame(ctx context.Context, gameID int64) ([]models.Session, error)
	Create(ctx context.Context, session *models.Session) (*models.Session, error)
}

// SessionsPage and NewSessionPage carry a nil Game when the id in the path
// does not match any game.
type SessionsPage struct {
	GameID   int64
	Game     *models.Game
	Sessions []models.Session
}

type NewSessionPage struct {
	GameID int64
	Game   *models.Game
	Form   SessionForm
	Error  string
}

type SessionController struct {
	games    GameServicer
	sessions SessionServicer
	log      *slog.Logger
	views    Renderer
}

func NewSessionController(g GameServicer, s SessionServicer, log *slog.Logger, views Renderer) *SessionController {
	return &SessionController{
		games:    g,
		sessions: s,
		log:      log,
		views:    views,
	}
}

func (c *SessionController) List(w http.ResponseWriter, r *http.Request) {
	const op = "controllers.sessions.List"

	gameID, err := gameIDParam(r)
	if err != nil {
		renderError(w, r, c.log, c.views, http.StatusBadRequest, ErrInvalidInput.Error())
		return
	}

	game, err := c.lookupGame(r, op, gameID)
	if err != nil {
		renderError(w, r, c.log, c.views, http.StatusInternalServerError, ErrGetGame.Error())
		return
	}

	sessions, err := c.sessions.GetByGame(r.Context(), gameID)
	if err != nil {
		c.log.Error(
			ErrGetSessions.Error(),
			slog.String("operation", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.Int64("game_id", gameID),
			slog.String("error", err.Error()))
		renderError(w, r, c.log, c.views, http.StatusInternalServerError, ErrGetSessions.Error())
		return
	}

	render(w, r, c.log, c.views, http.StatusOK, "sessions.html", SessionsPage{
		GameID:   gameID,
		Game:     game,
		Sessions: sessions,
	})
}

func (c *SessionController) New(w http.ResponseWriter, r *http.Request) {
	const op = "controllers.sessions.New"

	gameID, err := gameIDParam(r)
	if err != nil {
		renderError(w, r, c.log, c.views, http.StatusBadRequest, ErrInvalidInput.Error())
		return
	}

	game, err := c.lookupGame(r, op, gameID)
	if err != nil {
		renderError(w, r, c.log, c.views, http.StatusInternalServerError, ErrGetGame.Error())
		return
	}

	render(w, r, c.log, c.views, http.StatusOK, "new_session.html", NewSessionPage{
		GameID: gameID,
		Game:   game,
	})
}

func (c *SessionController) Create(w http.ResponseWriter, r *http.Request) {
	const op = "controllers.sessions.Create"

	gameID, err := gameIDParam(r)
	if err != nil {
		renderError(w, r, c.log, c.views, http.StatusBadRequest, ErrInvalidInput.Error())
		return
	}

	if err := r.ParseForm(); err != nil {
		renderError(w, r, c.log, c.views, http.StatusBadRequest, ErrInvalidInput.Error())
		return
	}

	form := sessionFormFromRequest(r)

	session, err := form.Session(gameID)
	if err != nil {
		c.log.Debug(
			ErrInvalidInput.Error(),
			slog.String("operation", op),
			slog.Int64("game_id", gameID),
			slog.String("error", err.Error()))

		// The form is shown again even if the game can no longer be read.
		game, _ := c.lookupGame(r, op, gameID)
		render(w, r, c.log, c.views, http.StatusBadRequest, "new_session.html", NewSessionPage{
			GameID: gameID,
			Game:   game,
			Form:   form,
			Error:  err.Error(),
		})
		return
	}

	session, err = c.sessions.Create(r.Context(), session)
	if err != nil {
		c.log.Error(
			ErrCreate.Error(),
			slog.String("operation", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.Int64("game_id", gameID),
			slog.String("error", err.Error()))
		renderError(w, r, c.log, c.views, http.StatusInternalServerError, ErrCreate.Error())
		return
	}

	c.log.Info("session created", slog.Int64("id", session.ID), slog.Int64("game_id", gameID))

	http.Redirect(w, r, fmt.Sprintf("/games/%d/sessions", gameID), http.StatusSeeOther)
}

// lookupGame returns nil without an error when the game does not exist.
func (c *SessionController) lookupGame(r *http.Request, op string, gameID int64) (*models.Game, error) {
	game, err := c.games.GetByID(r.Context(), gameID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		c.log.Error(
			ErrGetGame.Error(),
			slog.String("operation", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.Int64("game_id", gameID),
			slog.String("error", err.Error()))
		return nil, err
	}

	return game, nil
}
