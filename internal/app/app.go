package app

import (
	"context"
	"errors"
	"fmt"
	"mini_casino/internal/config"
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// App is the score server
type App struct {
	ServiceProvider *ServiceProvider
}

// NewApp creates the score server, dependencies are wired in Run
func NewApp() *App {
	return &App{}
}

func (s *App) initServiceProvider() {
	s.ServiceProvider = newServiceProvider()
}

// Run serves until ctx is cancelled, then shuts the server down gracefully
func (s *App) Run(ctx context.Context) error {
	envErr := config.Load(".env")
	s.initServiceProvider()

	logger := s.ServiceProvider.Logger()
	defer func() { _ = logger.Sync() }()
	if envErr != nil {
		logger.Info("no .env file loaded", zap.Error(envErr))
	}
	defer s.ServiceProvider.Close()

	if err := s.ServiceProvider.Migrate(ctx); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	srv := &http.Server{
		Addr:    s.ServiceProvider.HTTPCfg().Address(),
		Handler: s.ServiceProvider.Router(ctx),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.ServiceProvider.HTTPCfg().ShutdownTimeout())
		defer cancel()
		logger.Info("shutting down server")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
