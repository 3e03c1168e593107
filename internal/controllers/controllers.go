package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrGetGames      = errors.New("failed to get games")
	ErrGetGame       = errors.New("failed to get game")
	ErrGetSessions   = errors.New("failed to get sessions")
	ErrCreate        = errors.New("failed to create")
	ErrRender        = errors.New("failed to render page")
	ErrNotAllowed    = errors.New("method not allowed")
)

type Renderer interface {
	Render(w http.ResponseWriter, status int, page string, data any) error
}

type ErrorPage struct {
	Status  int
	Title   string
	Message string
}

// render writes page and falls back to a plain text 500 when the template fails.
func render(w http.ResponseWriter, r *http.Request, log *slog.Logger, views Renderer, status int, page string, data any) {
	if err := views.Render(w, status, page, data); err != nil {
		log.Error(
			ErrRender.Error(),
			slog.String("page", page),
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.String("error", err.Error()))
		http.Error(w, ErrRender.Error(), http.StatusInternalServerError)
	}
}

func renderError(w http.ResponseWriter, r *http.Request, log *slog.Logger, views Renderer, status int, message string) {
	render(w, r, log, views, status, "error.html", ErrorPage{
		Status:  status,
		Title:   http.StatusText(status),
		Message: message,
	})
}

// NotFound and MethodNotAllowed replace the router's plain text responses.
func NotFound(log *slog.Logger, views Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderError(w, r, log, views, http.StatusNotFound, "The page you are looking for does not exist.")
	}
}

func MethodNotAllowed(log *slog.Logger, views Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderError(w, r, log, views, http.StatusMethodNotAllowed, ErrNotAllowed.Error())
	}
}

func gameIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "gameID"), 10, 64)
}
