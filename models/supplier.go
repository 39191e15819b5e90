package models

import (
	"strconv"
	"strings"
)

// SupplierRecord is one row of the external store directory.
// Empty fields are treated as missing.
type SupplierRecord struct {
	Index          int    `json:"-"`
	URL            string `json:"url"`
	Categories     string `json:"categories"`
	Description    string `json:"description"`
	ShipsTo        string `json:"ships_to"`
	EstimatedSales string `json:"estimated_sales"`
	ProductsCount  string `json:"products_count"`
}

// ProductCount returns the numeric product count, if one can be parsed.
func (r SupplierRecord) ProductCount() (float64, bool) {
	raw := strings.TrimSpace(r.ProductsCount)
	if raw == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ScoredSupplier is a supplier projected into its report row.
type ScoredSupplier struct {
	StoreName             string `json:"store_name" yaml:"store_name"`
	StoreURL              string `json:"store_url" yaml:"store_url"`
	Categories            string `json:"categories" yaml:"categories"`
	Description           string `json:"description" yaml:"description"`
	PriceRange            string `json:"price_range" yaml:"price_range"`
	InternationalShipping string `json:"international_shipping,omitempty" yaml:"international_shipping,omitempty"`
	EstimatedMonthlySales string `json:"estimated_monthly_sales,omitempty" yaml:"estimated_monthly_sales,omitempty"`
	CompatibilityScore    int    `json:"compatibility_score" yaml:"compatibility_score"`
	ProductsCount         string `json:"products_count,omitempty" yaml:"products_count,omitempty"`
}
