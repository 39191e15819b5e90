package models

// Brand positioning labels.
const (
	PositioningPremium   = "premium"
	PositioningValue     = "value"
	PositioningMidMarket = "mid-market"
)

// MarketplaceAnalysis holds the signals extracted from a single marketplace page.
// It is built once per run and treated as read-only afterwards.
type MarketplaceAnalysis struct {
	URL               string           `json:"url" yaml:"url"`
	Title             string           `json:"title" yaml:"title"`
	Description       string           `json:"description" yaml:"description"`
	Categories        []string         `json:"categories" yaml:"categories"`
	PriceAnalysis     PriceStats       `json:"price_analysis" yaml:"price_analysis"`
	BrandAnalysis     BrandPositioning `json:"brand_analysis" yaml:"brand_analysis"`
	Language          string           `json:"language" yaml:"language"`
	Country           string           `json:"country" yaml:"country"`
	AnalysisTimestamp string           `json:"analysis_timestamp" yaml:"analysis_timestamp"`

	SiteName        string   `json:"site_name,omitempty" yaml:"site_name,omitempty"`
	Excerpt         string   `json:"excerpt,omitempty" yaml:"excerpt,omitempty"`
	ContentLanguage string   `json:"content_language,omitempty" yaml:"content_language,omitempty"`
	TopKeywords     []string `json:"top_keywords,omitempty" yaml:"top_keywords,omitempty"`
}

// PriceStats summarises the price mentions found on the page.
type PriceStats struct {
	AveragePrice     float64 `json:"average_price" yaml:"average_price"`
	MinPrice         float64 `json:"min_price" yaml:"min_price"`
	MaxPrice         float64 `json:"max_price" yaml:"max_price"`
	PriceCount       int     `json:"price_count" yaml:"price_count"`
	CurrencyDetected string  `json:"currency_detected" yaml:"currency_detected"`
}

// BrandPositioning is the coarse luxury-vs-value label with its raw counts.
type BrandPositioning struct {
	Positioning string `json:"positioning" yaml:"positioning"`
	LuxuryScore int    `json:"luxury_score" yaml:"luxury_score"`
	ValueScore  int    `json:"value_score" yaml:"value_score"`
}
