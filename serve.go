package bio

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"time"
)

const shutdownTimeout = 5 * time.Second

// Serve builds the bio once and serves a preview until ctx is cancelled.
func (a *App) Serve(ctx context.Context) error {
	if err := a.Prepare(ctx); err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.WithField("addr", a.Config.Addr).Info("preview server listening")
		if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.Echo.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	a.log.Info("preview server stopped")
	return nil
}

// Prepare runs the build and registers middleware and routes without
// listening, so the handler can be exercised directly. Later calls are no-ops
// once a build has succeeded.
func (a *App) Prepare(ctx context.Context) error {
	if a.props != nil {
		return nil
	}
	p, err := a.Build(ctx)
	if err != nil {
		return err
	}
	a.props = &p
	a.setupMiddleware()
	a.setupRoutes()
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo
	e.Static("/static", filepath.Join(a.Config.OutDir, staticSubdir))
	e.GET("/", a.handleHome)
	e.GET("/bio", a.handleBio)
	e.GET("/healthz", handleHealth)
}
