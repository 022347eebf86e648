package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/mishasvintus/merge_request_service/internal/config"
)

const version = "0.1.0"

func main() {
	app := &cli.App{
		Name:    "mrservice",
		Usage:   "Merge request lifecycle service",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Load configuration from `FILE`",
				EnvVars: []string{config.EnvPrefix + "CONFIG"},
			},
		},
		Commands: []*cli.Command{
			serveCommand(),
			migrateCommand(),
			interdiffCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
