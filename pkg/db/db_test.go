package db

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/dtnitsch/supplier-matcher/models"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()

	database, err := Open(filepath.Join(t.TempDir(), "stores.db"))
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	return database
}

func TestInsertAndListStores(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	records := []models.SupplierRecord{
		{URL: "https://tokyo-shop.example.com", Categories: "Fashion", Description: "Tokyo denim", ShipsTo: "International", EstimatedSales: "USD 12,000", ProductsCount: "150"},
		{URL: "https://osaka.example.com", Description: "Osaka tea"},
	}

	n, err := db.InsertStores(context.Background(), records)
	if err != nil {
		t.Fatalf("InsertStores() error = %v", err)
	}
	if n != 2 {
		t.Errorf("InsertStores() = %d, want 2", n)
	}

	stores, err := db.Stores(context.Background())
	if err != nil {
		t.Fatalf("Stores() error = %v", err)
	}
	if len(stores) != 2 {
		t.Fatalf("len(Stores()) = %d, want 2", len(stores))
	}

	first := stores[0]
	if first != (models.SupplierRecord{Index: 0, URL: records[0].URL, Categories: "Fashion", Description: "Tokyo denim",
		ShipsTo: "International", EstimatedSales: "USD 12,000", ProductsCount: "150"}) {
		t.Errorf("Stores()[0] = %+v", first)
	}

	second := stores[1]
	if second.Index != 1 {
		t.Errorf("Stores()[1].Index = %d, want 1", second.Index)
	}
	if second.Categories != "" || second.ProductsCount != "" {
		t.Errorf("missing columns should read back empty, got %+v", second)
	}
}

func TestInsertStores_Empty(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	n, err := db.InsertStores(context.Background(), nil)
	if err != nil {
		t.Fatalf("InsertStores(nil) error = %v", err)
	}
	if n != 0 {
		t.Errorf("InsertStores(nil) = %d, want 0", n)
	}
}

func TestOpenExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.db")

	if _, err := OpenExisting(path); !errors.Is(err, ErrNotExist) {
		t.Fatalf("OpenExisting(missing) error = %v, want ErrNotExist", err)
	}

	created, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	created.Close()

	existing, err := OpenExisting(path)
	if err != nil {
		t.Fatalf("OpenExisting() error = %v", err)
	}
	defer existing.Close()

	stores, err := existing.Stores(context.Background())
	if err != nil {
		t.Fatalf("Stores() error = %v", err)
	}
	if len(stores) != 0 {
		t.Errorf("len(Stores()) = %d, want 0", len(stores))
	}
}
