package db

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;

-- Store directory: one row per candidate supplier, columns mirror the CSV export
CREATE TABLE IF NOT EXISTS stores (
    store_id INTEGER PRIMARY KEY AUTOINCREMENT,
    url TEXT,
    categories TEXT,
    description TEXT,
    ships_to TEXT,
    estimated_sales TEXT,
    products_count TEXT,
    imported_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_stores_url ON stores(url);
`

// StoresTable and its columns, shared with other SQL backends.
const StoresTable = "stores"

var StoreColumns = []string{
	"url", "categories", "description", "ships_to", "estimated_sales", "products_count",
}
