package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aggelowe/techquiry"
	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
	"go.uber.org/zap"
)

func main() {
	cfg := techquiry.LoadConfig()

	zlog, err := newZap(cfg.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = zlog.Sync() }()

	logger := techquiry.NewZapLogger(zlog)

	if err := run(cfg, logger); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func newZap(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// Abandoned authenticated sessions are reclaimed after a day of silence.
const (
	sessionMaxIdle       = 24 * time.Hour
	sessionSweepInterval = time.Hour
)

func sweepSessions(ctx context.Context, sessions *techquiry.SessionManager, logger techquiry.Logger) {
	ticker := time.NewTicker(sessionSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := sessions.Sweep(sessionMaxIdle); removed > 0 {
				logger.Debug("swept idle sessions", "count", removed)
			}
		}
	}
}

func run(cfg *techquiry.Config, logger techquiry.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sqldb, err := sql.Open(sqliteshim.ShimName, cfg.DatabaseFile)
	if err != nil {
		return fmt.Errorf("open database %s: %w", cfg.DatabaseFile, err)
	}

	db := bun.NewDB(sqldb, sqlitedialect.New())
	defer func() { _ = db.Close() }()

	repo := techquiry.NewRepositoryManager(db)
	repo.MustValidate()

	if err := repo.CreateSchema(ctx); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	sessions := techquiry.NewSessionManager()
	go sweepSessions(ctx, sessions, logger)

	app := fiber.New(fiber.Config{
		AppName: "TechQuiry",
	})

	controller := techquiry.NewLoginController(
		techquiry.WithControllerRepo(repo),
		techquiry.WithControllerSessions(sessions),
		techquiry.WithControllerLogger(logger),
		techquiry.WithControllerDebug(cfg.Debug),
	)
	controller.RegisterRoutes(app)

	errCh := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Port)
		logger.Info("starting server", "addr", addr, "database", cfg.DatabaseFile)
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.Info("shutting down")
		return app.ShutdownWithTimeout(10 * time.Second)
	}
}
