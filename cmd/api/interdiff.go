package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/mishasvintus/merge_request_service/internal/interdiff"
)

func interdiffCommand() *cli.Command {
	return &cli.Command{
		Name:      "interdiff",
		Usage:     "Print the difference between two patch files",
		ArgsUsage: "OLD NEW",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "backend",
				Usage: "Override the configured backend (exec or line)",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return cli.Exit("expected two patch files", 2)
			}

			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			backend := cfg.Interdiff.Backend
			if b := c.String("backend"); b != "" {
				backend = b
			}

			oldDiff, err := os.ReadFile(c.Args().Get(0))
			if err != nil {
				return err
			}
			newDiff, err := os.ReadFile(c.Args().Get(1))
			if err != nil {
				return err
			}

			differ, err := interdiff.New(backend, cfg.Interdiff.Binary, 1, zerolog.Nop())
			if err != nil {
				return err
			}

			out, err := differ.Interdiff(c.Context,
				interdiff.PruneGitHeaders(string(oldDiff)),
				interdiff.PruneGitHeaders(string(newDiff)))
			if err != nil {
				return err
			}

			fmt.Fprint(c.App.Writer, out)
			return nil
		},
	}
}
