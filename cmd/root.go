package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/psds-microservice/office-manager/internal/config"
	"github.com/psds-microservice/office-manager/internal/logger"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "office-manager",
	Short:         "AI Office Manager API: tickets, tasks, leads, reports and AI-assisted responses",
	RunE:          runAPI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "optional config file (yaml, json, toml)")
	rootCmd.AddCommand(apiCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(reportCmd)
}

// loadConfig читает и проверяет конфиг, затем настраивает логгер по нему.
func loadConfig() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("config: %w", err)
	}
	log := logger.Setup(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	return cfg, log, nil
}
