package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"miniapp-studio/internal/app"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, done, err := setup()
		if err != nil {
			return err
		}
		defer done()

		zap.S().Info("Starting server")
		defer zap.S().Info("Server stopped")

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGHUP, syscall.SIGTERM, syscall.SIGQUIT)
		defer cancel()

		var db *sql.DB
		if cfg.Database.DSN != "" {
			zap.S().Info("Initializing data store")
			db, err = app.OpenDB(ctx, cfg.Database.DSN)
			if err != nil {
				zap.S().Errorw("initializing data store", "error", err)
				return err
			}
			defer db.Close()
		} else {
			zap.S().Warn("DATABASE_URL is empty, running with built-in pricing")
		}

		a, err := app.New(ctx, cfg, db)
		if err != nil {
			zap.S().Errorw("initializing app", "error", err)
			return err
		}

		return a.Run(ctx)
	},
}
