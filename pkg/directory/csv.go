package directory

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dtnitsch/supplier-matcher/models"
)

// CSVSource reads a delimited store export with a header row.
// Unknown columns are ignored and absent ones leave the field empty.
type CSVSource struct {
	path string
}

func NewCSVSource(path string) *CSVSource {
	return &CSVSource{path: path}
}

func (s *CSVSource) Label() string {
	return filepath.Base(s.path)
}

func (s *CSVSource) Load(ctx context.Context) ([]models.SupplierRecord, error) {
	file, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &DatasetLoadError{Location: s.path, Err: ErrDatasetNotFound}
		}
		return nil, &DatasetLoadError{Location: s.path, Err: err}
	}
	defer file.Close()

	records, err := ReadCSV(file)
	if err != nil {
		return nil, &DatasetLoadError{Location: s.path, Err: err}
	}
	return records, nil
}

// ReadCSV parses a store export from r.
func ReadCSV(r io.Reader) ([]models.SupplierRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("missing header row")
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, dup := columns[name]; !dup {
			columns[name] = i
		}
	}

	field := func(row []string, name string) string {
		i, ok := columns[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	var records []models.SupplierRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", len(records)+1, err)
		}
		records = append(records, models.SupplierRecord{
			Index:          len(records),
			URL:            field(row, ColumnURL),
			Categories:     field(row, ColumnCategories),
			Description:    field(row, ColumnDescription),
			ShipsTo:        field(row, ColumnShipsTo),
			EstimatedSales: field(row, ColumnEstimatedSales),
			ProductsCount:  field(row, ColumnProductsCount),
		})
	}
	return records, nil
}
