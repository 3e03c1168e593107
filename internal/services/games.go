package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"boardgames/internal/models"
	"boardgames/internal/storage"
	"boardgames/internal/storage/database"

	"gorm.io/gorm"
)

type GameService struct {
	storage *database.Storage
	log     *slog.Logger
}

func NewGameService(s *database.Storage, log *slog.Logger) *GameService {
	return &GameService{
		storage: s,
		log:     log,
	}
}

func (s *GameService) GetAll(ctx context.Context) ([]models.Game, error) {
	const op = "services.games.GetAll"

	var games []models.Game

	rows := database.FromContext(ctx, s.storage.DB).Order("name").Find(&games)
	if rows.Error != nil {
		return nil, fmt.Errorf("%s: %w", op, rows.Error)
	}

	return games, nil
}

func (s *GameService) GetByID(ctx context.Context, id int64) (*models.Game, error) {
	const op = "services.games.GetByID"

	var g models.Game

	rows := database.FromContext(ctx, s.storage.DB).First(&g, id)
	if errors.Is(rows.Error, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}
	if rows.Error != nil {
		return nil, fmt.Errorf("%s: %w", op, rows.Error)
	}

	return &g, nil
}

func (s *GameService) Create(ctx context.Context, g *models.Game) (*models.Game, error) {
	const op = "services.games.Create"

	if err := create(database.FromContext(ctx, s.storage.DB), g); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return g, nil
}

// create inserts value in its own transaction and commits right away.
func create(db *gorm.DB, value any) error {
	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := tx.Create(value).Error; err != nil {
		tx.Rollback()
		return errors.Join(storage.ErrCreateFailed, err)
	}

	return tx.Commit().Error
}
