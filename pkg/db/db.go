package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	sq "github.com/Masterminds/squirrel"
	"github.com/dtnitsch/supplier-matcher/models"
	_ "modernc.org/sqlite"
)

// ErrNotExist is returned by OpenExisting when the database file is absent.
var ErrNotExist = errors.New("database does not exist")

type DB struct {
	*sql.DB
}

// openDB opens a SQLite database at the given path
func openDB(dbPath string) (*sql.DB, error) {
	sqlDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := sqlDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = sqlDB.Close() // Close error less important than PRAGMA error
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return sqlDB, nil
}

// Open opens or creates the store directory database at dbPath.
func Open(dbPath string) (*DB, error) {
	sqlDB, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	db := &DB{DB: sqlDB}
	if err := db.InitSchema(); err != nil {
		_ = db.Close() // Close error less important than schema error
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return db, nil
}

// OpenExisting opens dbPath without creating it.
func OpenExisting(dbPath string) (*DB, error) {
	if _, err := os.Stat(dbPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotExist
		}
		return nil, fmt.Errorf("failed to stat database: %w", err)
	}
	sqlDB, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}
	return &DB{DB: sqlDB}, nil
}

// InitSchema initializes the database schema
func (db *DB) InitSchema() error {
	_, err := db.Exec(schema)
	return err
}

// InsertStores appends records in one transaction and returns the number inserted.
func (db *DB) InsertStores(ctx context.Context, records []models.SupplierRecord) (int, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	inserted := 0
	for _, r := range records {
		query, args, err := sq.Insert(StoresTable).
			Columns(StoreColumns...).
			Values(nullable(r.URL), nullable(r.Categories), nullable(r.Description),
				nullable(r.ShipsTo), nullable(r.EstimatedSales), nullable(r.ProductsCount)).
			ToSql()
		if err != nil {
			return 0, fmt.Errorf("failed to build insert: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return 0, fmt.Errorf("failed to insert store %q: %w", r.URL, err)
		}
		inserted++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return inserted, nil
}

// Stores returns every store in insertion order.
func (db *DB) Stores(ctx context.Context) ([]models.SupplierRecord, error) {
	query, args, err := sq.Select(StoreColumns...).From(StoresTable).OrderBy("store_id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query stores: %w", err)
	}
	defer rows.Close()

	var records []models.SupplierRecord
	for rows.Next() {
		var storeURL, categories, description, shipsTo, sales, products sql.NullString
		if err := rows.Scan(&storeURL, &categories, &description, &shipsTo, &sales, &products); err != nil {
			return nil, fmt.Errorf("failed to scan store: %w", err)
		}
		records = append(records, models.SupplierRecord{
			Index:          len(records),
			URL:            storeURL.String,
			Categories:     categories.String,
			Description:    description.String,
			ShipsTo:        shipsTo.String,
			EstimatedSales: sales.String,
			ProductsCount:  products.String,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate stores: %w", err)
	}
	return records, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
