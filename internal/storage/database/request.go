package database

import (
	"context"
	"log/slog"
	"net/http"

	"gorm.io/gorm"
)

type contextKey string

const connKey = contextKey("db-conn")

// WithConn returns a copy of ctx carrying db as the request's handle.
func WithConn(ctx context.Context, db *gorm.DB) context.Context {
	return context.WithValue(ctx, connKey, db)
}

// FromContext returns the handle bound to the request, or fallback scoped to
// ctx when the request has none.
func FromContext(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if db, ok := ctx.Value(connKey).(*gorm.DB); ok {
		return db
	}
	return fallback.WithContext(ctx)
}

// Middleware pins one pooled connection to each request. Every query issued
// through FromContext during the request uses it, and it goes back to the
// pool when the handler returns or panics.
func (s *Storage) Middleware(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "storage.database.Middleware"

			ctx := r.Context()

			err := s.DB.WithContext(ctx).Connection(func(conn *gorm.DB) error {
				bound := conn.Session(&gorm.Session{Context: ctx})
				next.ServeHTTP(w, r.WithContext(WithConn(ctx, bound)))
				return nil
			})
			if err != nil {
				if log != nil {
					log.Error(
						"failed to acquire connection",
						slog.String("operation", op),
						slog.String("error", err.Error()))
				}
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}
		})
	}
}
