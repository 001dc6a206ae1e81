package main

import (
	"context"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"miniapp-studio/internal/app"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the db schema and seed pricing",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, done, err := setup()
		if err != nil {
			return err
		}
		defer done()

		if cfg.Database.DSN == "" {
			return errors.New("DATABASE_URL is empty")
		}

		ctx := context.Background()
		db, err := app.OpenDB(ctx, cfg.Database.DSN)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := app.Migrate(ctx, db); err != nil {
			return err
		}

		zap.S().Info("Db migrated")
		return nil
	},
}
