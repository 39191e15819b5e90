package scorer

// Weights holds the additive scoring rules.
type Weights struct {
	CategoryMatch    int
	PriceClose       int // |estimate-avg| < PriceCloseRatio*avg
	PriceNear        int // |estimate-avg| < avg
	Positioning      int
	Shipping         int
	LargeCatalog     int // products > LargeCatalogMin
	MediumCatalog    int // products > MediumCatalogMin
	JapaneseOrigin   int
	PriceCloseRatio  float64
	SalesPerItem     float64 // monthly sales / SalesPerItem ~= average item price
	LargeCatalogMin  float64
	MediumCatalogMin float64
	MaxScore         int
	MinScore         int // strictly greater is required to be ranked
}

// DefaultWeights is the scoring table used by Rank.
var DefaultWeights = Weights{
	CategoryMatch:    20,
	PriceClose:       25,
	PriceNear:        15,
	Positioning:      15,
	Shipping:         10,
	LargeCatalog:     10,
	MediumCatalog:    5,
	JapaneseOrigin:   15,
	PriceCloseRatio:  0.5,
	SalesPerItem:     100,
	LargeCatalogMin:  100,
	MediumCatalogMin: 50,
	MaxScore:         100,
	MinScore:         30,
}

var (
	premiumWords = []string{"premium", "luxury", "high-end", "quality"}
	valueWords   = []string{"affordable", "value", "budget", "cheap"}
	originWords  = []string{"japan", "japanese", "tokyo", "osaka", "kyoto"}

	// Matched case-sensitively against the ships-to column.
	shippingMarkers = []string{"International", "United States"}
)

const (
	salesCurrencyMarker  = "USD"
	internationalMarker  = "International"
	unknownValue         = "Unknown"
	maxRowDescriptionLen = 200
	priceRangeLowFactor  = 0.3
	priceRangeHighFactor = 3.0
)
