package directory

import (
	"context"
	"fmt"
	"net/url"

	sq "github.com/Masterminds/squirrel"
	"github.com/dtnitsch/supplier-matcher/models"
	"github.com/dtnitsch/supplier-matcher/pkg/db"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresSource reads the stores table from a Postgres database.
type PostgresSource struct {
	dsn string
}

func NewPostgresSource(dsn string) *PostgresSource {
	return &PostgresSource{dsn: dsn}
}

// Label omits credentials from the DSN.
func (s *PostgresSource) Label() string {
	u, err := url.Parse(s.dsn)
	if err != nil {
		return "postgres:" + db.StoresTable
	}
	return fmt.Sprintf("postgres://%s%s#%s", u.Host, u.Path, db.StoresTable)
}

func (s *PostgresSource) Load(ctx context.Context) ([]models.SupplierRecord, error) {
	pool, err := pgxpool.New(ctx, s.dsn)
	if err != nil {
		return nil, &DatasetLoadError{Location: s.Label(), Err: err}
	}
	defer pool.Close()

	query, args, err := StoresQuery()
	if err != nil {
		return nil, &DatasetLoadError{Location: s.Label(), Err: err}
	}

	rows, err := pool.Query(ctx, query, args...)
	if err != nil {
		return nil, &DatasetLoadError{Location: s.Label(), Err: fmt.Errorf("query stores: %w", err)}
	}
	defer rows.Close()

	var records []models.SupplierRecord
	for rows.Next() {
		var storeURL, categories, description, shipsTo, sales, products *string
		if err := rows.Scan(&storeURL, &categories, &description, &shipsTo, &sales, &products); err != nil {
			return nil, &DatasetLoadError{Location: s.Label(), Err: fmt.Errorf("scan store: %w", err)}
		}
		records = append(records, models.SupplierRecord{
			Index:          len(records),
			URL:            deref(storeURL),
			Categories:     deref(categories),
			Description:    deref(description),
			ShipsTo:        deref(shipsTo),
			EstimatedSales: deref(sales),
			ProductsCount:  deref(products),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, &DatasetLoadError{Location: s.Label(), Err: fmt.Errorf("rows iteration: %w", err)}
	}
	return records, nil
}

// StoresQuery builds the Postgres select; every column is cast to text so
// numeric product counts scan like the CSV and SQLite backends.
func StoresQuery() (string, []interface{}, error) {
	cols := make([]string, len(db.StoreColumns))
	for i, c := range db.StoreColumns {
		cols[i] = fmt.Sprintf("%s::text", c)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select(cols...).
		From(db.StoresTable).
		OrderBy("store_id").
		ToSql()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
