package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/adamwoolhether/palworld"
	"github.com/adamwoolhether/palworld/config"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "palctl",
	Short: "Administer a Palworld dedicated server over its REST API",
	Long: `palctl talks to a Palworld dedicated server's REST API to query
server info, players, settings, and metrics, and to run administrative
actions (announce, kick, ban, unban, save, shutdown, stop).

Configuration comes from environment variables with the PALWORLD_
prefix (a .env file in the working directory is also read):

  PALWORLD_ADDRESS        base URL (default http://127.0.0.1:8212)
  PALWORLD_USERNAME       Basic Auth username (default admin)
  PALWORLD_PASSWORD       Basic Auth password
  PALWORLD_PASSWORD_FILE  path to a file holding the password
  PALWORLD_TIMEOUT        overall exchange timeout, e.g. 30s

The REST API must be enabled in the server settings (RESTAPIEnabled).`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// newClient loads the configuration and builds a blocking client from it.
func newClient() (*palworld.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	password, err := cfg.ResolvePassword()
	if err != nil {
		return nil, err
	}

	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	opts := []palworld.Option{palworld.WithLogger(logger)}
	if cfg.Address != "" {
		opts = append(opts, palworld.WithBaseURL(cfg.Address))
	}
	if cfg.Username != "" {
		opts = append(opts, palworld.WithUsername(cfg.Username))
	}
	if cfg.Timeout > 0 {
		t := palworld.DefaultTimeouts()
		t.Read = cfg.Timeout
		opts = append(opts, palworld.WithTimeouts(t))
	}

	return palworld.Build(password, opts...)
}

// printJSON renders v as indented JSON on stdout.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// callTimeout bounds each command's API call independently of the
// client's own transport timeouts.
const callTimeout = 60 * time.Second
