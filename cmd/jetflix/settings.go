package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/fabler/jetflix/internal/catalog"
	"github.com/fabler/jetflix/internal/config"
	"github.com/fabler/jetflix/internal/ctxlog"
	"github.com/fabler/jetflix/internal/metrics"
	"github.com/fabler/jetflix/internal/tmdb"
	"github.com/fabler/jetflix/internal/ui"
)

// newApp is replaced in tests with the fyne test app
var newApp = func() fyne.App {
	return app.NewWithID(AppID)
}

// globalFlags are shared by every command
type globalFlags struct {
	configPath string
	apiKey     string
	language   string
	baseURL    string
	logLevel   string
}

func (f *globalFlags) register(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.StringVarP(&f.configPath, "config", "c", "", "path to an HCL config file")
	pf.StringVar(&f.apiKey, "api-key", "", "TMDB v3 API key (overrides "+config.EnvAPIKey+")")
	pf.StringVarP(&f.language, "language", "l", "", "content language, e.g. en-US")
	pf.StringVar(&f.baseURL, "base-url", "", "TMDB API base URL")
	pf.StringVar(&f.logLevel, "log-level", "info", "log level: debug, info, warn, error")
}

// logger builds the command logger writing to w
func (f *globalFlags) logger(w io.Writer) *slog.Logger {
	return ctxlog.New(w, f.logLevel).With("app", AppName, "version", version)
}

// loadSettings layers the config file, the environment and the flags over
// the stored preferences of a. The layers live in memory only; the settings
// dialog is the single writer of preferences.
func (f *globalFlags) loadSettings(a fyne.App) (*config.Settings, error) {
	settings := config.NewSettings(a)

	file, err := config.LoadFile(f.configPath)
	if err != nil {
		return nil, err
	}
	file.Apply(settings)
	config.ApplyEnv(settings, os.LookupEnv)

	var flags config.Overrides
	if f.apiKey != "" {
		flags.APIKey = &f.apiKey
	}
	if f.language != "" {
		flags.ContentLanguage = &f.language
	}
	if f.baseURL != "" {
		flags.BaseURL = &f.baseURL
	}
	settings.Override(flags)
	return settings, nil
}

func userAgent() string {
	return fmt.Sprintf("%s/%s", AppName, version)
}

// homeBuilder returns a ui.HomeBuilder creating sessions from the current
// settings. Each session owns its own API client.
func homeBuilder(settings *config.Settings, collector *metrics.Collector) ui.HomeBuilder {
	return func(ctx context.Context) (*catalog.Home, error) {
		if settings.GetAPIKey() == "" {
			return nil, tmdb.ErrMissingAPIKey
		}
		client := tmdb.New(settings.ClientOptions(userAgent()))
		context.AfterFunc(ctx, func() { client.Close() })

		opts := []catalog.Option{catalog.WithLogger(ctxlog.FromContext(ctx))}
		if collector != nil {
			opts = append(opts, catalog.WithObserver(collector))
		}
		return catalog.NewHome(ctx, client, settings.HomeConfig(), opts...), nil
	}
}

// newCollector registers the fetch metrics on a fresh registry
func newCollector() (*metrics.Collector, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return metrics.NewCollector(reg), reg
}
