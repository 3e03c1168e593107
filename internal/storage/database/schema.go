package database

import (
	"context"
	"fmt"

	"boardgames/internal/models"
)

// tables lists the schema in creation order; games is the primary table.
var tables = []any{
	&models.Game{},
	&models.Session{},
}

// EnsureSchema creates every missing table and leaves existing ones untouched,
// so it can run on each startup.
func (s *Storage) EnsureSchema(ctx context.Context) error {
	const op = "storage.database.EnsureSchema"

	m := s.DB.WithContext(ctx).Migrator()

	for _, table := range tables {
		if m.HasTable(table) {
			continue
		}

		if err := m.CreateTable(table); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	return nil
}

// ResetSchema drops both tables and creates them again. All data is lost.
func (s *Storage) ResetSchema(ctx context.Context) error {
	const op = "storage.database.ResetSchema"

	m := s.DB.WithContext(ctx).Migrator()

	for i := len(tables) - 1; i >= 0; i-- {
		if err := m.DropTable(tables[i]); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := m.CreateTable(tables...); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
