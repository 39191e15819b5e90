package main

import (
	"fmt"
	"os"

	"github.com/dtnitsch/supplier-matcher/internal/analyze"
	"github.com/dtnitsch/supplier-matcher/internal/db"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:      "supplier-matcher",
		Usage:     "recommend Japanese suppliers for an online marketplace",
		ArgsUsage: "<marketplace_url> [max_suppliers]",
		Flags:     analyze.Flags(),
		Action:    analyze.MatchAction,
		Commands: []*cli.Command{
			{
				Name:   "import",
				Usage:  "import a store directory CSV into a SQLite database",
				Flags:  db.ImportFlags(),
				Action: db.ImportAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
