package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"boardgames/internal/models"
)

const dateLayout = "2006-01-02"

// GameForm keeps the submitted values as text so an invalid form can be
// shown again exactly as it was entered.
type GameForm struct {
	Name        string
	MaxPlayers  string
	AvgDuration string
	Category    string
}

type SessionForm struct {
	Date        string
	Winner      string
	WinnerScore string
}

func gameFormFromRequest(r *http.Request) GameForm {
	return GameForm{
		Name:        strings.TrimSpace(r.PostFormValue("name")),
		MaxPlayers:  strings.TrimSpace(r.PostFormValue("max_players")),
		AvgDuration: strings.TrimSpace(r.PostFormValue("avg_duration")),
		Category:    strings.TrimSpace(r.PostFormValue("category")),
	}
}

func sessionFormFromRequest(r *http.Request) SessionForm {
	return SessionForm{
		Date:        strings.TrimSpace(r.PostFormValue("date")),
		Winner:      strings.TrimSpace(r.PostFormValue("winner")),
		WinnerScore: strings.TrimSpace(r.PostFormValue("winner_score")),
	}
}

func (f GameForm) Game() (*models.Game, error) {
	if err := required("name", f.Name); err != nil {
		return nil, err
	}
	if err := required("category", f.Category); err != nil {
		return nil, err
	}

	maxPlayers, err := count("max_players", f.MaxPlayers)
	if err != nil {
		return nil, err
	}

	avgDuration, err := count("avg_duration", f.AvgDuration)
	if err != nil {
		return nil, err
	}

	return &models.Game{
		Name:        f.Name,
		MaxPlayers:  maxPlayers,
		AvgDuration: avgDuration,
		Category:    f.Category,
	}, nil
}

func (f SessionForm) Session(gameID int64) (*models.Session, error) {
	if err := required("date", f.Date); err != nil {
		return nil, err
	}
	if _, err := time.Parse(dateLayout, f.Date); err != nil {
		return nil, fmt.Errorf("%w: date must be formatted as YYYY-MM-DD", ErrInvalidInput)
	}
	if err := required("winner", f.Winner); err != nil {
		return nil, err
	}

	score, err := count("winner_score", f.WinnerScore)
	if err != nil {
		return nil, err
	}

	return &models.Session{
		GameID:      gameID,
		Date:        f.Date,
		Winner:      f.Winner,
		WinnerScore: score,
	}, nil
}

func required(field, value string) error {
	if value == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalidInput, field)
	}
	return nil
}

func count(field, value string) (int, error) {
	if err := required(field, value); err != nil {
		return 0, err
	}

	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %s must be a non-negative integer", ErrInvalidInput, field)
	}

	return n, nil
}
