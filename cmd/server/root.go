package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"miniapp-studio/internal/config"
	"miniapp-studio/internal/log"
)

var (
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:          "miniapp-studio",
	Short:        "MiniApp Studio landing page and price estimator",
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(hashPasswordCmd)

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (overrides STUDIO_LOG_LEVEL)")
}

// setup читает конфиг и ставит глобальный логгер
func setup() (*config.Config, func(), error) {
	cfg, err := config.New()
	if err != nil {
		return nil, nil, err
	}

	lvl := cfg.Service.LogLevel
	if logLevel != "" {
		lvl = logLevel
	}

	logger := log.InitLog(log.ParseLevel(lvl))
	undo := zap.ReplaceGlobals(logger)

	return cfg, func() {
		_ = logger.Sync()
		undo()
	}, nil
}
