package directory

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/dtnitsch/supplier-matcher/models"
	"github.com/dtnitsch/supplier-matcher/pkg/db"
)

// SQLiteSource reads the stores table of a database built by ImportCSV.
type SQLiteSource struct {
	path string
}

func NewSQLiteSource(path string) *SQLiteSource {
	return &SQLiteSource{path: path}
}

func (s *SQLiteSource) Label() string {
	return filepath.Base(s.path)
}

func (s *SQLiteSource) Load(ctx context.Context) ([]models.SupplierRecord, error) {
	database, err := db.OpenExisting(s.path)
	if err != nil {
		if errors.Is(err, db.ErrNotExist) {
			return nil, &DatasetLoadError{Location: s.path, Err: ErrDatasetNotFound}
		}
		return nil, &DatasetLoadError{Location: s.path, Err: err}
	}
	defer database.Close()

	records, err := database.Stores(ctx)
	if err != nil {
		return nil, &DatasetLoadError{Location: s.path, Err: err}
	}
	return records, nil
}

// ImportCSV copies a CSV store export into the SQLite database at dbPath,
// creating it if needed. It returns the number of stores written.
func ImportCSV(ctx context.Context, csvPath, dbPath string) (int, error) {
	records, err := NewCSVSource(csvPath).Load(ctx)
	if err != nil {
		return 0, err
	}

	database, err := db.Open(dbPath)
	if err != nil {
		return 0, fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	return database.InsertStores(ctx, records)
}
