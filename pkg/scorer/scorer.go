// Package scorer rates supplier records against a marketplace analysis.
package scorer

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/dtnitsch/supplier-matcher/models"
	"golang.org/x/text/width"
)

var salesNumber = regexp.MustCompile(`[\d０-９,]+`)

type Scorer struct {
	weights Weights
}

func New(w Weights) *Scorer {
	return &Scorer{weights: w}
}

// Score sums the independent bonuses for record and caps the total at MaxScore.
func (s *Scorer) Score(analysis *models.MarketplaceAnalysis, record models.SupplierRecord) int {
	w := s.weights
	categories := strings.ToLower(record.Categories)
	description := strings.ToLower(record.Description)

	score := 0
	for _, category := range analysis.Categories {
		if strings.Contains(categories, category) || strings.Contains(description, category) {
			score += w.CategoryMatch
		}
	}

	score += s.priceBonus(analysis.PriceAnalysis.AveragePrice, record)

	switch analysis.BrandAnalysis.Positioning {
	case models.PositioningPremium:
		if containsAny(description, premiumWords) {
			score += w.Positioning
		}
	case models.PositioningValue:
		if containsAny(description, valueWords) {
			score += w.Positioning
		}
	}

	if containsAny(record.ShipsTo, shippingMarkers) {
		score += w.Shipping
	}

	if n, ok := record.ProductCount(); ok {
		switch {
		case n > w.LargeCatalogMin:
			score += w.LargeCatalog
		case n > w.MediumCatalogMin:
			score += w.MediumCatalog
		}
	}

	if containsAny(description, originWords) {
		score += w.JapaneseOrigin
	}

	if score > w.MaxScore {
		score = w.MaxScore
	}
	return score
}

func (s *Scorer) priceBonus(marketAvg float64, record models.SupplierRecord) int {
	if marketAvg <= 0 {
		return 0
	}
	estimate, ok := s.estimatedItemPrice(record)
	if !ok {
		return 0
	}
	diff := math.Abs(estimate - marketAvg)
	switch {
	case diff < marketAvg*s.weights.PriceCloseRatio:
		return s.weights.PriceClose
	case diff < marketAvg:
		return s.weights.PriceNear
	}
	return 0
}

// estimatedItemPrice treats USD monthly sales / SalesPerItem as an average item price.
func (s *Scorer) estimatedItemPrice(record models.SupplierRecord) (float64, bool) {
	if !strings.Contains(record.EstimatedSales, salesCurrencyMarker) {
		return 0, false
	}
	match := salesNumber.FindString(record.EstimatedSales)
	if match == "" {
		return 0, false
	}
	sales, err := strconv.ParseFloat(strings.ReplaceAll(width.Narrow.String(match), ",", ""), 64)
	if err != nil || sales <= 0 {
		return 0, false
	}
	return sales / s.weights.SalesPerItem, true
}

// EstimatePriceRange brackets the estimated item price, e.g. "$30-$300", or "Unknown".
func (s *Scorer) EstimatePriceRange(record models.SupplierRecord) string {
	estimate, ok := s.estimatedItemPrice(record)
	if !ok {
		return unknownValue
	}
	return fmt.Sprintf("$%.0f-$%.0f", estimate*priceRangeLowFactor, estimate*priceRangeHighFactor)
}

// Project turns a record and its score into a report row.
func (s *Scorer) Project(record models.SupplierRecord, score int) models.ScoredSupplier {
	return models.ScoredSupplier{
		StoreName:             storeName(record),
		StoreURL:              record.URL,
		Categories:            record.Categories,
		Description:           truncate(record.Description, maxRowDescriptionLen),
		PriceRange:            s.EstimatePriceRange(record),
		InternationalShipping: internationalShipping(record.ShipsTo),
		EstimatedMonthlySales: orUnknown(record.EstimatedSales),
		CompatibilityScore:    score,
		ProductsCount:         orUnknown(strings.TrimSpace(record.ProductsCount)),
	}
}

// Rank scores every record, keeps those above MinScore and returns the best max,
// highest first. Equal scores keep their input order.
func (s *Scorer) Rank(analysis *models.MarketplaceAnalysis, records []models.SupplierRecord, max int) []models.ScoredSupplier {
	ranked := []models.ScoredSupplier{}
	for _, record := range records {
		score := s.Score(analysis, record)
		if score > s.weights.MinScore {
			ranked = append(ranked, s.Project(record, score))
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].CompatibilityScore > ranked[j].CompatibilityScore
	})

	if max >= 0 && len(ranked) > max {
		ranked = ranked[:max]
	}
	return ranked
}

// storeName is the URL without its https:// prefix, up to the first dot.
func storeName(record models.SupplierRecord) string {
	if record.URL == "" {
		return fmt.Sprintf("Store_%d", record.Index)
	}
	name := strings.ReplaceAll(record.URL, "https://", "")
	return strings.SplitN(name, ".", 2)[0]
}

func internationalShipping(shipsTo string) string {
	if strings.Contains(shipsTo, internationalMarker) {
		return "Yes"
	}
	return unknownValue
}

func orUnknown(v string) string {
	if v == "" {
		return unknownValue
	}
	return v
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
