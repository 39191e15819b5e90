package analyze

import (
	"github.com/dtnitsch/supplier-matcher/models"
	"github.com/urfave/cli/v2"
)

// Flags are the root command flags. Only flags set explicitly override the config file.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "path to a YAML config file (default: ./supplier-matcher.yaml if present)",
		},
		&cli.StringFlag{
			Name:  "dataset",
			Usage: "store directory: CSV path, SQLite file or postgres:// DSN",
			Value: models.DefaultDataset,
		},
		&cli.StringFlag{
			Name:  "output-dir",
			Usage: "directory for the CSV and summary files",
			Value: ".",
		},
		&cli.StringFlag{
			Name:  "summary-format",
			Usage: "summary file format: json or yaml",
			Value: models.DefaultSummaryFormat,
		},
		&cli.DurationFlag{
			Name:  "timeout",
			Usage: "HTTP timeout for the marketplace request",
			Value: models.DefaultTimeout,
		},
		&cli.BoolFlag{
			Name:  "fallback",
			Usage: "skip the store directory and recommend the built-in sample suppliers",
		},
		&cli.BoolFlag{
			Name:  "auto-fallback",
			Usage: "use the sample suppliers when the store directory is missing",
		},
		&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			Usage:   "only log errors",
		},
	}
}
