package main

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"boardgames/internal/config"
	"boardgames/internal/models"
	"boardgames/internal/storage/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDB(t *testing.T) {
	storage, err := database.New(config.Database{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "games.db"),
	}, nil)
	require.NoError(t, err)
	defer storage.Close()

	var out bytes.Buffer
	require.NoError(t, initDB(context.Background(), storage, &out))
	assert.Equal(t, "Database initialized.\n", out.String())

	require.NoError(t, storage.DB.Create(&models.Game{Name: "Catan"}).Error)

	out.Reset()
	require.NoError(t, initDB(context.Background(), storage, &out))

	var games int64
	require.NoError(t, storage.DB.Model(&models.Game{}).Count(&games).Error)
	assert.Zero(t, games)
}

func TestSetupLogger(t *testing.T) {
	ctx := context.Background()

	assert.True(t, setupLogger(envLocal).Enabled(ctx, slog.LevelDebug))
	assert.False(t, setupLogger(envProd).Enabled(ctx, slog.LevelDebug))
	assert.True(t, setupLogger("staging").Enabled(ctx, slog.LevelInfo))
}
