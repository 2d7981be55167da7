// Package server initializes and runs the auth server: database handle,
// migrations, services, mailer, and the HTTP endpoint, with graceful
// shutdown on OS signals.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/labstack/echo/v4"

	"github.com/Wilovy09/pgmq-test/internal/logging"
	"github.com/Wilovy09/pgmq-test/internal/server/config"
	"github.com/Wilovy09/pgmq-test/internal/server/httpapi"
	"github.com/Wilovy09/pgmq-test/internal/server/mailer"
	"github.com/Wilovy09/pgmq-test/internal/server/repositories/repomanager"
	"github.com/Wilovy09/pgmq-test/internal/server/services"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	echo   *echo.Echo
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	userService := services.NewUserService(db, rm, cfg, logger)
	resetService := services.NewPasswordResetService(db, rm, mailer.NewSMTPMailer(cfg), cfg, logger)

	handlers := httpapi.NewHandlers(userService, resetService)
	e := httpapi.NewRouter(handlers, []byte(cfg.SecretKey))

	return &App{config: cfg, logger: logger, db: db, echo: e}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run starts the HTTP endpoint and blocks until the context is cancelled
// or the server fails. In-flight requests get shutdownTimeout to finish.
func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "addr", app.config.EndpointAddrHTTP)

	app.initSignalHandler(cancelFunc)

	errCh := make(chan error, 1)
	go func() {
		if err := app.echo.Start(app.config.EndpointAddrHTTP); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	app.logger.Info(ctx, "Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := app.echo.Shutdown(shutdownCtx); err != nil {
		app.logger.Error(shutdownCtx, "error stopping http server", "error", err)
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error(shutdownCtx, "error closing db", "error", err)
	}

	return nil
}
