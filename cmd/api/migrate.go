package main

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/mishasvintus/merge_request_service/internal/repository"
)

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Create the database tables",
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			if !cfg.UsesPostgres() {
				return errors.New("database.host is not set")
			}

			db, err := repository.NewPostgresDB(c.Context, cfg.Database.DSN())
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer db.Close()

			if err := repository.Migrate(c.Context, db); err != nil {
				return err
			}

			fmt.Fprintln(c.App.Writer, "schema applied")
			return nil
		},
	}
}
