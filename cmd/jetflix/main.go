package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time via -ldflags "-X main.version=X.Y.Z"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const (
	AppID   = "com.fabler.jetflix"
	AppName = "JetFlix"

	WindowWidth  = 1024
	WindowHeight = 720
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		flags       globalFlags
		metricsAddr string
	)

	cmd := &cobra.Command{
		Use:   "jetflix",
		Short: "Browse movie listings from TMDB",
		Long: `JetFlix is a movie catalog client for The Movie Database.

Without a subcommand it opens the desktop UI. Settings are read from the
app preferences, then the optional HCL config file, then the environment
(TMDB_API_KEY), then command line flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(cmd, flags, metricsAddr)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address, e.g. 127.0.0.1:9090")

	cmd.AddCommand(
		sectionsCmd(&flags),
		versionCmd(),
	)
	return cmd
}
