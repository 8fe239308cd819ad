// Package server wires the development backend together: repositories,
// services and the HTTP API, and runs it until a shutdown signal arrives.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrijs2005/around/internal/logging"
	"github.com/dmitrijs2005/around/internal/server/auth"
	"github.com/dmitrijs2005/around/internal/server/config"
	"github.com/dmitrijs2005/around/internal/server/httpapi"
	"github.com/dmitrijs2005/around/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/around/internal/server/services"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	config  *config.Config
	logger  *logging.ZerologLogger
	repos   repomanager.RepositoryManager
	handler http.Handler
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.NewConsoleLogger(os.Stdout, cfg.LogLevel)

	repos, err := repomanager.New(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	us := services.NewUserService(repos.Users(), auth.NewTokens(cfg.SecretKey, cfg.TokenTTL))
	cs := services.NewCardService(repos.Cards())
	handler := httpapi.NewServer(us, cs, logger.Zerolog(), cfg.AllowedOrigins)

	return &App{config: cfg, logger: logger, repos: repos, handler: handler}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves until ctx is cancelled or a signal arrives, then shuts the
// listener down gracefully and closes the repositories.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()
	app.initSignalHandler(cancelFunc)

	ln, err := net.Listen("tcp", app.config.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", app.config.Addr, err)
	}
	return app.serve(ctx, ln)
}

func (app *App) serve(ctx context.Context, ln net.Listener) error {
	defer func() {
		if err := app.repos.Close(); err != nil {
			app.logger.Error(ctx, "close repositories", "error", err)
		}
	}()

	srv := &http.Server{
		Handler:           app.handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	storage := "memory"
	if app.config.DatabaseDSN != "" {
		storage = "postgres"
	}
	app.logger.Info(ctx, "starting server", "address", ln.Addr().String(), "storage", storage)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	app.logger.Info(ctx, "shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}
