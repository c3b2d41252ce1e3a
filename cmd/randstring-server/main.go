package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"randstring/internal/config"
	httpserver "randstring/internal/http-server"
	"randstring/internal/http-server/middleware/auth"
	"randstring/internal/lib/jwt"
	"randstring/internal/lib/logger/sl"
	"randstring/internal/lib/logger/slogcute"
	"randstring/internal/service/token"
	"randstring/internal/storage/instrumented"
	"randstring/internal/storage/sqlite"

	"golang.org/x/sync/errgroup"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := SetupLogger(cfg.Env)

	log.Info("starting randstring service", slog.String("env", cfg.Env))

	if err := run(log, cfg); err != nil {
		log.Error("service stopped with error", sl.Err(err))
		os.Exit(1)
	}

	log.Info("service stopped")
}

func run(log *slog.Logger, cfg *config.Config) error {
	store, err := sqlite.New(cfg.StoragePath)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error("failed to close storage", sl.Err(err))
		}
	}()

	if err = store.Migrate(cfg.Migrations.MigrationTable); err != nil {
		return err
	}

	svc, err := token.New(log, instrumented.New(store), token.Options{
		DefaultAlphabet: cfg.Tokens.DefaultAlphabet,
		DefaultLength:   cfg.Tokens.DefaultLength,
		MaxLength:       cfg.Tokens.MaxLength,
		MaxCount:        cfg.Tokens.MaxCount,
		Unbiased:        cfg.Tokens.Unbiased,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			log.Error("failed to release samplers", sl.Err(err))
		}
	}()

	var validator auth.ClaimsValidator
	if cfg.Auth.Enabled {
		v, err := jwt.NewFromFile(cfg.Auth.PublicKeyPath)
		if err != nil {
			return err
		}
		validator = v
	}

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      httpserver.NewRouter(log, svc, validator),
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting HTTP server", slog.String("addr", cfg.HTTPServer.Address))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		log.Info("shutting down HTTP server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.ShutdownTimeout)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func SetupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = SetupCuteSlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func SetupCuteSlog() *slog.Logger {
	opts := slogcute.CuteHandlerOptions{
		SlogOptions: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	handler := opts.NewCuteHandler(os.Stdout)

	return slog.New(handler)
}
