package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/dev-tams/sweepkit/internal/age"
	"github.com/dev-tams/sweepkit/internal/app"
	"github.com/dev-tams/sweepkit/internal/config"
	"github.com/dev-tams/sweepkit/internal/logging"
	"github.com/dev-tams/sweepkit/internal/schedule"
	"github.com/dev-tams/sweepkit/internal/storage/factory"
)

const defaultTimeOld = "30d"

func main() {
	root := &cli.App{
		Name:      "sweepkit",
		Usage:     "delete objects in storage paths that are older than a given age",
		ArgsUsage: "<uri> [<uri> ...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "print more messages",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "suppress log output; just print deletion candidates to stdout",
			},
			&cli.StringFlag{
				Name:    "conf-path",
				Aliases: []string{"c"},
				Usage:   "path to alternate config file",
			},
			&cli.BoolFlag{
				Name:  "no-conf",
				Usage: "don't load a config file even if one is available",
			},
			&cli.StringFlag{
				Name:    "time",
				Aliases: []string{"t"},
				Value:   defaultTimeOld,
				Usage:   "age an object must reach before it is deleted (e.g. 45m, 2h, 7d; bare numbers are hours)",
			},
			&cli.BoolFlag{
				Name:  "test",
				Usage: "don't delete anything; just log what would be deleted",
			},
			&cli.StringFlag{
				Name:  "schedule",
				Usage: "run as a daemon, sweeping on this cron schedule (5 fields, UTC)",
			},
		},
		Action: run,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := root.RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.Exit("Please specify one or more URIs", 2)
	}

	threshold, err := age.Parse(c.String("time"))
	if err != nil {
		return err
	}

	cfg, err := loadValidatedConfig(c)
	if err != nil {
		return err
	}

	quiet := c.Bool("quiet")
	sw := &app.Sweeper{
		Log:     logging.New(logging.Options{Verbose: c.Bool("verbose"), Quiet: quiet}),
		Folders: factory.NewFactory(cfg),
		Out:     os.Stdout,
		Quiet:   quiet,
	}

	olderThan := threshold.Duration()
	dryRun := c.Bool("test")

	if expr := c.String("schedule"); expr != "" {
		spec, err := schedule.Parse(expr)
		if err != nil {
			return fmt.Errorf("invalid schedule %q: %w", expr, err)
		}
		return app.RunScheduled(c.Context, sw, spec, c.Args().Slice(), olderThan, dryRun)
	}

	for _, uri := range c.Args().Slice() {
		if _, err := sw.Run(c.Context, uri, olderThan, dryRun); err != nil {
			return err
		}
	}
	return nil
}

func loadValidatedConfig(c *cli.Context) (*config.Config, error) {
	if c.Bool("no-conf") {
		return config.Default(), nil
	}

	cfg, err := config.Load(c.String("conf-path"))
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
