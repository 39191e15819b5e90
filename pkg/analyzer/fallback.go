package analyzer

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/dtnitsch/supplier-matcher/models"
	"github.com/dtnitsch/supplier-matcher/pkg/extractor"
	"github.com/dtnitsch/supplier-matcher/pkg/fetcher"
	"github.com/dtnitsch/supplier-matcher/pkg/parser"
)

// FallbackDataSource labels reports built from the sample suppliers.
const FallbackDataSource = "sample_suppliers"

const fallbackTitle = "Unknown"

var fallbackKeywords = []string{"fashion", "beauty", "electronics", "home", "sports", "jewelry"}

var sampleSuppliers = []models.ScoredSupplier{
	{
		StoreName:          "Tokyo Fashion",
		StoreURL:           "https://example-tokyo-fashion.com",
		Categories:         "Fashion, Accessories",
		Description:        "Premium Japanese fashion brand",
		PriceRange:         "$50-$500",
		CompatibilityScore: 90,
	},
	{
		StoreName:          "Osaka Electronics",
		StoreURL:           "https://example-osaka-electronics.com",
		Categories:         "Electronics, Gadgets",
		Description:        "High-quality Japanese electronics",
		PriceRange:         "$100-$2000",
		CompatibilityScore: 85,
	},
	{
		StoreName:          "Kyoto Beauty",
		StoreURL:           "https://example-kyoto-beauty.com",
		Categories:         "Beauty, Cosmetics",
		Description:        "Traditional Japanese beauty products",
		PriceRange:         "$25-$300",
		CompatibilityScore: 88,
	},
	{
		StoreName:          "Hokkaido Home",
		StoreURL:           "https://example-hokkaido-home.com",
		Categories:         "Home, Furniture",
		Description:        "Minimalist Japanese home decor",
		PriceRange:         "$150-$1500",
		CompatibilityScore: 82,
	},
	{
		StoreName:          "Nara Sports",
		StoreURL:           "https://example-nara-sports.com",
		Categories:         "Sports, Outdoor",
		Description:        "Japanese sports equipment",
		PriceRange:         "$40-$800",
		CompatibilityScore: 75,
	},
}

// SampleSuppliers returns a copy of the fixed supplier list emitted by Fallback.
func SampleSuppliers() []models.ScoredSupplier {
	return append([]models.ScoredSupplier(nil), sampleSuppliers...)
}

// Fallback needs no dataset: it reads the page title and a few category keywords
// and always recommends the sample suppliers, in their fixed order.
type Fallback struct {
	fetcher *fetcher.Fetcher
	parser  *parser.Parser
	logger  *slog.Logger
	now     clock
}

func NewFallback(f *fetcher.Fetcher, logger *slog.Logger) *Fallback {
	return &Fallback{
		fetcher: f,
		parser:  &parser.Parser{},
		logger:  logger,
		now:     time.Now,
	}
}

// Analyze never fails on network problems; an unreachable page just yields
// an "Unknown" title and no categories. maxSuppliers is ignored.
func (f *Fallback) Analyze(ctx context.Context, rawURL string, _ int) (*Result, error) {
	analysis := &models.MarketplaceAnalysis{
		URL:               rawURL,
		Title:             fallbackTitle,
		Categories:        []string{},
		AnalysisTimestamp: f.now().Format(extractor.TimestampLayout),
	}

	page, err := f.fetchPage(ctx, rawURL)
	if err != nil {
		f.logger.Warn("Marketplace unavailable, continuing with sample suppliers", "url", rawURL, "error", err)
	} else {
		if title := page.Doc.Find("title").First(); title.Length() > 0 {
			analysis.Title = strings.TrimSpace(title.Text())
		}
		lower := strings.ToLower(page.Text)
		for _, keyword := range fallbackKeywords {
			if strings.Contains(lower, keyword) {
				analysis.Categories = append(analysis.Categories, keyword)
			}
		}
	}

	return &Result{
		Variant:    VariantFallback,
		Analysis:   analysis,
		Suppliers:  SampleSuppliers(),
		DataSource: FallbackDataSource,
	}, nil
}

func (f *Fallback) fetchPage(ctx context.Context, rawURL string) (*models.Page, error) {
	html, err := f.fetcher.GetHtmlBytes(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	return f.parser.Parse(rawURL, html)
}
