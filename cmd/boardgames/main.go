package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"boardgames/internal/config"
	"boardgames/internal/routes"
	"boardgames/internal/storage/database"
	"boardgames/internal/views"
)

const (
	envLocal = "local"
	envProd  = "prod"
)

const cmdInitDB = "init-db"

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	storage, err := database.New(cfg.Database, log)
	if err != nil {
		log.Error("failed to open database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := storage.Close(); err != nil {
			log.Error("failed to close database", slog.String("error", err.Error()))
		}
	}()

	switch cmd := flag.Arg(0); cmd {
	case "":
		err = serve(cfg, log, storage)
	case cmdInitDB:
		err = initDB(context.Background(), storage, os.Stdout)
	default:
		err = fmt.Errorf("unknown command %q, expected %q", cmd, cmdInitDB)
	}

	if err != nil {
		log.Error("exiting", slog.String("error", err.Error()))
		_ = storage.Close()
		os.Exit(1)
	}
}

func initDB(ctx context.Context, storage *database.Storage, out io.Writer) error {
	if err := storage.ResetSchema(ctx); err != nil {
		return err
	}

	_, err := fmt.Fprintln(out, "Database initialized.")
	return err
}

func serve(cfg *config.Config, log *slog.Logger, storage *database.Storage) error {
	log.Info("starting server", slog.String("env", cfg.Env), slog.String("driver", cfg.Database.Driver))

	if err := storage.EnsureSchema(context.Background()); err != nil {
		return err
	}

	log.Info("database init")

	v, err := views.New()
	if err != nil {
		return err
	}

	r := routes.SetupRouter(log, storage, v)

	log.Info("routes init")

	server := &http.Server{
		Addr:         cfg.Address,
		Handler:      r,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	serverErrors := make(chan error, 1)

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	go func() {
		log.Info("listening", slog.String("address", cfg.Address))
		serverErrors <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}

	case sig := <-shutdown:
		log.Info("shutting down", slog.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			log.Error("graceful shutdown error", slog.String("error", err.Error()))
			if err := server.Close(); err != nil {
				log.Error("force shutdown error", slog.String("error", err.Error()))
			}
		}
	}

	log.Info("server stopped")

	return nil
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger
	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	}
	return log
}
