package db

import (
	"fmt"

	"github.com/dtnitsch/supplier-matcher/pkg/directory"
	"github.com/urfave/cli/v2"
)

func ImportFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "from", Usage: "CSV export to read", Required: true},
		&cli.StringFlag{Name: "db", Usage: "SQLite database to create or extend", Required: true},
	}
}

// ImportAction builds a SQLite store directory from a CSV export.
func ImportAction(c *cli.Context) error {
	from := c.String("from")
	dbPath := c.String("db")

	count, err := directory.ImportCSV(c.Context, from, dbPath)
	if err != nil {
		return cli.Exit(fmt.Sprintf("import failed: %v", err), 2)
	}

	fmt.Fprintf(c.App.Writer, "Imported %d stores from %s into %s\n", count, from, dbPath)
	return nil
}
