package database

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"boardgames/internal/config"
	"boardgames/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupStorage(t *testing.T) *Storage {
	t.Helper()

	cfg := config.Database{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "games.db"),
	}

	storage, err := New(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(func() { _ = storage.Close() })

	return storage
}

func countTables(t *testing.T, s *Storage) int64 {
	t.Helper()

	var count int64
	err := s.DB.Raw(
		"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN ('games', 'sessions')",
	).Scan(&count).Error
	require.NoError(t, err)

	return count
}

func TestNew_UnsupportedDriver(t *testing.T) {
	_, err := New(config.Database{Driver: "oracle"}, nil)
	assert.Error(t, err)
}

func TestStorage_EnsureSchema(t *testing.T) {
	storage := setupStorage(t)
	ctx := context.Background()

	t.Run("creates tables", func(t *testing.T) {
		require.NoError(t, storage.EnsureSchema(ctx))
		assert.Equal(t, int64(2), countTables(t, storage))
	})

	t.Run("second call is a no-op", func(t *testing.T) {
		require.NoError(t, storage.DB.Create(&models.Game{Name: "Catan"}).Error)

		require.NoError(t, storage.EnsureSchema(ctx))
		assert.Equal(t, int64(2), countTables(t, storage))

		var games int64
		require.NoError(t, storage.DB.Model(&models.Game{}).Count(&games).Error)
		assert.Equal(t, int64(1), games)
	})

	t.Run("repairs a missing sessions table", func(t *testing.T) {
		require.NoError(t, storage.DB.Migrator().DropTable(&models.Session{}))

		require.NoError(t, storage.EnsureSchema(ctx))
		assert.True(t, storage.DB.Migrator().HasTable(&models.Session{}))
	})
}

func TestStorage_ResetSchema(t *testing.T) {
	storage := setupStorage(t)
	ctx := context.Background()

	require.NoError(t, storage.EnsureSchema(ctx))
	require.NoError(t, storage.DB.Create(&models.Game{Name: "Catan"}).Error)
	require.NoError(t, storage.DB.Create(&models.Session{GameID: 1, Date: "2024-01-01"}).Error)

	require.NoError(t, storage.ResetSchema(ctx))
	assert.Equal(t, int64(2), countTables(t, storage))

	var games, sessions int64
	require.NoError(t, storage.DB.Model(&models.Game{}).Count(&games).Error)
	require.NoError(t, storage.DB.Model(&models.Session{}).Count(&sessions).Error)
	assert.Zero(t, games)
	assert.Zero(t, sessions)

	t.Run("on an empty database", func(t *testing.T) {
		fresh := setupStorage(t)
		require.NoError(t, fresh.ResetSchema(ctx))
		assert.Equal(t, int64(2), countTables(t, fresh))
	})
}

func TestStorage_Middleware(t *testing.T) {
	storage := setupStorage(t)
	require.NoError(t, storage.EnsureSchema(context.Background()))

	sqlDB, err := storage.DB.DB()
	require.NoError(t, err)

	t.Run("binds one connection for the request", func(t *testing.T) {
		var inUse int
		handler := storage.Middleware(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			db := FromContext(r.Context(), storage.DB)
			require.NoError(t, db.Create(&models.Game{Name: "Azul"}).Error)

			var games []models.Game
			require.NoError(t, db.Order("name").Find(&games).Error)
			assert.Len(t, games, 1)

			inUse = sqlDB.Stats().InUse
			w.WriteHeader(http.StatusNoContent)
		}))

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, 1, inUse)
		assert.Zero(t, sqlDB.Stats().InUse)
	})

	t.Run("releases the connection on panic", func(t *testing.T) {
		handler := storage.Middleware(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("boom")
		}))

		assert.Panics(t, func() {
			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		})
		assert.Zero(t, sqlDB.Stats().InUse)
	})
}

func TestFromContext_Fallback(t *testing.T) {
	storage := setupStorage(t)

	db := FromContext(context.Background(), storage.DB)
	require.NotNil(t, db)
	assert.NotSame(t, storage.DB, db)

	bound := storage.DB.Session(&gorm.Session{})
	ctx := WithConn(context.Background(), bound)
	assert.Same(t, bound, FromContext(ctx, storage.DB))
}
