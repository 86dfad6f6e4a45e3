package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/fluix/internal/config"
	"github.com/aretw0/fluix/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "fluix",
	Short: "Fluix is a headless toast notification engine",
	Long: `Fluix manages the lifecycle of toast notifications (create, update, dismiss,
auto-dismiss) and encodes spring physics as CSS, leaving rendering to clients.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML toaster configuration file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")
}

// newLogger builds a stderr logger from --log-level, falling back to fallback.
func newLogger(cmd *cobra.Command, fallback string) (*slog.Logger, error) {
	level, _ := cmd.Flags().GetString("log-level")
	if level == "" {
		level = fallback
	}
	lvl, err := logging.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return logging.New(lvl), nil
}

// loadFile reads --config, or fallback when the flag is empty. A missing path
// yields an empty configuration.
func loadFile(cmd *cobra.Command, fallback string) (*config.File, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = fallback
	}
	if path == "" {
		return &config.File{}, nil
	}
	return config.Load(path)
}
