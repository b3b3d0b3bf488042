package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/keepmind9/combokey/internal/core"
	"github.com/keepmind9/combokey/internal/logger"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	configFile string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "combokey",
	Short: "combokey normalizes and expands keyboard chord strings",
	Long: `combokey turns key combinations such as "⌘-Control-A" into a canonical
lookup key ("ctrl-os-a") and enumerates every literal spelling of a chord whose
keys have alternate names (⌘/cmd/command/win/windows/os).

Alias tables, ordering and named bindings are read from a YAML config file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute executes the root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		reportError(rootCmd.ErrOrStderr(), err)
		stop()
		os.Exit(1)
	}
}

// reportError prints err once. Failed validations have already printed their report.
func reportError(w io.Writer, err error) {
	if errors.Is(err, errValidationFailed) {
		return
	}
	fmt.Fprintln(w, "Error:", err)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Configuration file path (default: search ./combokey.yaml, ~/.config/combokey, /etc/combokey)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override logging.level from the config file")

	rootCmd.AddCommand(normalizeCmd)
	rootCmd.AddCommand(expandCmd)
	rootCmd.AddCommand(tableCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfigPath returns --config or the first file found in the default locations.
// An empty result means built-in defaults.
func resolveConfigPath() string {
	if configFile != "" {
		return configFile
	}
	return core.FindConfig()
}

// loadConfig loads the configuration and initializes the logger from it
func loadConfig() (*core.Config, error) {
	path := resolveConfigPath()
	config, err := core.LoadConfig(path)
	if err != nil {
		return nil, err
	}

	logConfig := logger.Config{
		Level:        config.Logging.Level,
		File:         config.Logging.File,
		MaxSize:      config.Logging.MaxSize,
		MaxBackups:   config.Logging.MaxBackups,
		MaxAge:       config.Logging.MaxAge,
		Compress:     config.Logging.Compress,
		EnableStdout: config.Logging.EnableStdout,
	}
	if logLevel != "" {
		logConfig.Level = logLevel
	}
	if err := logger.InitLogger(logConfig); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"config_file": path,
		"log_level":   logConfig.Level,
		"log_file":    logConfig.File,
		"bindings":    len(config.Bindings),
	}).Debug("config-loaded")

	return config, nil
}
