package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/nguyentantai21042004/meeting-agent/internal/httpapi"
	"github.com/nguyentantai21042004/meeting-agent/internal/watcher"
)

// Serve runs the HTTP API, and the inbox watcher when an inbox is configured,
// until ctx is cancelled or either of them fails. Scratch areas are purged
// before start and after shutdown.
func (a *App) Serve(parent context.Context) error {
	cfg := a.Config
	ctx, cancelRun := context.WithCancel(parent)
	defer cancelRun()

	if err := a.PurgeScratch(ctx); err != nil {
		a.Logger.Warn(ctx, "Startup purge failed: %v", err)
	}
	defer func() {
		if err := a.PurgeScratch(context.Background()); err != nil {
			a.Logger.Warn(context.Background(), "Shutdown purge failed: %v", err)
		}
	}()

	if cfg.Transcription.Preload {
		a.Logger.Info(ctx, "Preloading %s transcription model...", cfg.Transcription.Backend)
		if err := a.Model.Preload(ctx); err != nil {
			return fmt.Errorf("preload model: %w", err)
		}
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           httpapi.New(a.Pipeline, a.Repo, a.Renderer, a.Store, cfg.Server, a.Logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 2)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("http server: %w", err)
		}
	}()

	var w watcher.Watcher
	watchDone := make(chan struct{})
	if cfg.Paths.Inbox != "" {
		var err error
		w, err = watcher.New(cfg.Paths.Inbox, cfg.Paths.Archived, a.watchHandler, a.Logger, cfg.Performance.MaxConcurrent)
		if err != nil {
			srv.Close()
			return fmt.Errorf("create watcher: %w", err)
		}
		go func() {
			defer close(watchDone)
			if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				errChan <- fmt.Errorf("watcher: %w", err)
			}
		}()
	}

	a.Logger.Info(ctx, "========================================")
	a.Logger.Info(ctx, "Meeting Agent API listening on %s", cfg.Server.Addr)
	a.Logger.Info(ctx, "Transcription backend: %s", cfg.Transcription.Backend)
	a.Logger.Info(ctx, "Max concurrent pipelines: %d", cfg.Performance.MaxConcurrent)
	if cfg.Paths.Inbox != "" {
		a.Logger.Info(ctx, "Inbox: %s", cfg.Paths.Inbox)
	}
	a.Logger.Info(ctx, "========================================")

	var runErr error
	select {
	case <-ctx.Done():
		a.Logger.Info(ctx, "Shutdown signal received")
	case runErr = <-errChan:
		a.Logger.Error(ctx, "%v", runErr)
	}

	// Inbox work must not outlive Serve: the deferred purge and App.Close
	// follow.
	cancelRun()

	a.Logger.Info(context.Background(), "Shutting down gracefully...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownSecs)*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.Logger.Warn(shutdownCtx, "HTTP shutdown: %v", err)
	}
	if w != nil {
		<-watchDone
		if err := w.Stop(); err != nil {
			a.Logger.Warn(shutdownCtx, "Watcher stop: %v", err)
		}
	}

	a.Logger.Info(context.Background(), "Meeting Agent stopped")
	return runErr
}

func (a *App) watchHandler(ctx context.Context, path string) error {
	res, err := a.ProcessFile(ctx, path)
	if err != nil {
		return err
	}
	a.Logger.Info(ctx, "Inbox file %s stored as meeting %s", path, res.MeetingID)
	return nil
}
