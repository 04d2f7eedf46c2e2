package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"fyne.io/fyne/v2"
	"github.com/spf13/cobra"

	"github.com/fabler/jetflix/internal/ctxlog"
	"github.com/fabler/jetflix/internal/metrics"
	"github.com/fabler/jetflix/internal/platform"
	"github.com/fabler/jetflix/internal/ui"
)

func runGUI(cmd *cobra.Command, flags globalFlags, metricsAddr string) error {
	logger := flags.logger(cmd.ErrOrStderr())
	logger.Info("starting")

	ctx, cancel := context.WithCancel(ctxlog.WithLogger(cmd.Context(), logger))
	defer cancel()

	myApp := newApp()
	myApp.Settings().SetTheme(ui.NewJetFlixTheme())

	settings, err := flags.loadSettings(myApp)
	if err != nil {
		return err
	}

	collector, reg := newCollector()
	if metricsAddr != "" {
		srv := &http.Server{
			Addr:              metricsAddr,
			Handler:           metrics.Router(reg),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			logger.Info("serving metrics", "addr", metricsAddr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server failed", "error", err)
			}
		}()
		defer shutdownMetrics(srv, metricsShutdownTimeout, logger)
	}

	window := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	window.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	ui.NewRootUI(ctx, window, settings, homeBuilder(settings, collector), posterLoader(logger))

	window.ShowAndRun()
	logger.Info("stopped")
	return nil
}

const metricsShutdownTimeout = 2 * time.Second

type shutdowner interface {
	Shutdown(ctx context.Context) error
}

// shutdownMetrics stops the metrics server, waiting at most timeout for
// in-flight scrapes
func shutdownMetrics(srv shutdowner, timeout time.Duration, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Warn("metrics server shutdown failed", "error", err)
	}
}

// posterLoader prefers the on-disk cache and falls back to plain loading
// when no cache directory is available
func posterLoader(logger *slog.Logger) ui.PosterLoader {
	dir, err := platform.CacheDir(AppID)
	if err == nil {
		err = platform.CreateDirectoryIfNotExists(dir)
	}
	if err != nil {
		logger.Warn("poster cache disabled", "error", err)
		return ui.LoadPoster
	}
	logger.Debug("poster cache", "dir", dir)
	return platform.NewPosterCache(dir, platform.DefaultMaxParallel, nil, logger).Load
}
