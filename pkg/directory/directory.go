// Package directory loads supplier records from the external store directory.
package directory

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dtnitsch/supplier-matcher/models"
)

var (
	// ErrDatasetLoad matches every *DatasetLoadError via errors.Is.
	ErrDatasetLoad = errors.New("dataset load failed")
	// ErrDatasetNotFound is wrapped when the dataset location does not exist.
	ErrDatasetNotFound = errors.New("dataset not found")
)

// DatasetLoadError reports a missing or unreadable supplier directory.
type DatasetLoadError struct {
	Location string
	Err      error
}

func (e *DatasetLoadError) Error() string {
	return fmt.Sprintf("load dataset %s: %v", e.Location, e.Err)
}

func (e *DatasetLoadError) Unwrap() error { return e.Err }

func (e *DatasetLoadError) Is(target error) bool { return target == ErrDatasetLoad }

// Source yields the supplier records of one directory backend.
type Source interface {
	Load(ctx context.Context) ([]models.SupplierRecord, error)
	// Label names the data source in report summaries.
	Label() string
}

// Column headers of the delimited directory export.
const (
	ColumnURL            = "URL"
	ColumnCategories     = "Categories"
	ColumnDescription    = "Description"
	ColumnShipsTo        = "Ships To"
	ColumnEstimatedSales = "Estimated Sales"
	ColumnProductsCount  = "Products Count"
)

// Open picks a backend from the location: a postgres:// DSN, a SQLite file
// (.db, .sqlite, .sqlite3) or, by default, a CSV file.
func Open(location string) Source {
	lower := strings.ToLower(strings.TrimSpace(location))
	switch {
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return NewPostgresSource(location)
	}
	switch filepath.Ext(lower) {
	case ".db", ".sqlite", ".sqlite3":
		return NewSQLiteSource(location)
	}
	return NewCSVSource(location)
}
