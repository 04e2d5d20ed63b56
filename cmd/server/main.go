package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	fiberadapter "github.com/lborres/gatehouse/adapters/fiber"
	pgxadapter "github.com/lborres/gatehouse/adapters/pgx"
	"github.com/lborres/gatehouse/core"
	"github.com/lborres/gatehouse/internal/config"
	"github.com/lborres/gatehouse/migrations"
)

const shutdownTimeout = 5 * time.Second

func main() {
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx := context.Background()
	if err := runMigrations(ctx, cfg.DatabaseDSN); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseDSN)
	if err != nil {
		return fmt.Errorf("pgxpool.New: %w", err)
	}
	defer pool.Close()

	auth, err := core.New(core.Config{
		Secret:  cfg.JWTSecret,
		Storage: pgxadapter.New(pool),
	})
	if err != nil {
		return err
	}

	app := fiberadapter.NewApp()
	adapter := fiberadapter.New(app, auth, fiberadapter.Config{
		Env:              cfg.Env,
		AuthCookieSecure: cfg.AuthCookieSecure,
		CSRFCookieSecure: cfg.CSRFCookieSecure,
	})
	adapter.RegisterRoutes()

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Addr()).Str("env", cfg.Env).Msg("listening")
		errCh <- app.Listen(cfg.Addr())
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		return fmt.Errorf("app.Shutdown: %w", err)
	}
	return nil
}

// runMigrations applies the embedded goose migrations over a separate
// database/sql handle (goose requires one); the pgx pool is opened
// afterwards for request traffic.
func runMigrations(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("db open error: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}
