package services

import (
	"context"
	"fmt"
	"log/slog"

	"boardgames/internal/models"
	"boardgames/internal/storage/database"
)

type SessionService struct {
	storage *database.Storage
	log     *slog.Logger
}

func NewSessionService(s *database.Storage, log *slog.Logger) *SessionService {
	return &SessionService{
		storage: s,
		log:     log,
	}
}

// GetByGame returns the sessions recorded for gameID, most recent date first.
func (s *SessionService) GetByGame(ctx context.Context, gameID int64) ([]models.Session, error) {
	const op = "services.sessions.GetByGame"

	var sessions []models.Session

	rows := database.FromContext(ctx, s.storage.DB).
		Where("game_id = ?", gameID).
		Order("date DESC").
		Order("id DESC").
		Find(&sessions)
	if rows.Error != nil {
		return nil, fmt.Errorf("%s: %w", op, rows.Error)
	}

	return sessions, nil
}

// Create stores a session as submitted. The game is not looked up first.
func (s *SessionService) Create(ctx context.Context, session *models.Session) (*models.Session, error) {
	const op = "services.sessions.Create"

	if err := create(database.FromContext(ctx, s.storage.DB), session); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if s.log != nil {
		s.log.Debug(
			"session recorded",
			slog.Int64("id", session.ID),
			slog.Int64("game_id", session.GameID))
	}

	return session, nil
}
