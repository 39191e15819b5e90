package extractor

import "regexp"

// CategoryRule maps a category label to the keywords that reveal it.
type CategoryRule struct {
	Label    string
	Keywords []string
}

var categoryRules = []CategoryRule{
	{"fashion", []string{"fashion", "clothing", "apparel", "dress", "shirt", "pants", "denim", "jeans"}},
	{"beauty", []string{"beauty", "cosmetics", "makeup", "skincare", "perfume", "skincare device", "facial"}},
	{"electronics", []string{"electronics", "phone", "laptop", "computer", "gadget", "tech"}},
	{"home", []string{"home", "furniture", "decor", "kitchen", "bedroom", "living"}},
	{"sports", []string{"sports", "fitness", "outdoor", "exercise", "athletic", "cycling", "winter sports"}},
	{"jewelry", []string{"jewelry", "watch", "necklace", "ring", "bracelet", "accessories"}},
	{"books", []string{"books", "reading", "literature", "novel", "textbook"}},
	{"toys", []string{"toys", "games", "children", "kids", "play"}},
	{"automotive", []string{"car", "auto", "vehicle", "parts", "automotive"}},
	{"health", []string{"health", "medical", "wellness", "supplement", "pharmacy"}},
	{"pets", []string{"pet", "dog", "cat", "animal", "pet food", "pet toy", "pet care"}},
}

var (
	luxuryIndicators = []string{"luxury", "premium", "exclusive", "designer", "high-end"}
	valueIndicators  = []string{"affordable", "cheap", "discount", "sale", "budget"}
)

// One pattern per currency symbol. ¥ amounts carry no decimals.
// Digits may be ASCII or full-width (０-９).
var pricePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\$[\d０-９,]+\.?[\d０-９]*`),
	regexp.MustCompile(`€[\d０-９,]+\.?[\d０-９]*`),
	regexp.MustCompile(`£[\d０-９,]+\.?[\d０-９]*`),
	regexp.MustCompile(`¥[\d０-９,]+`),
	regexp.MustCompile(`₹[\d０-９,]+\.?[\d０-９]*`),
}

var nonNumeric = regexp.MustCompile(`[^0-9.]`)

const (
	UnknownTitle      = "Unknown Marketplace"
	maxDescriptionLen = 200
	maxCategories     = 10
	maxKeywords       = 10
	minPlausiblePrice = 1.0
	maxPlausiblePrice = 50000.0
)

// CategoryRules returns a copy of the category keyword table in detection order.
func CategoryRules() []CategoryRule {
	rules := make([]CategoryRule, len(categoryRules))
	for i, r := range categoryRules {
		rules[i] = CategoryRule{Label: r.Label, Keywords: append([]string(nil), r.Keywords...)}
	}
	return rules
}

// LuxuryIndicators returns the words counted towards premium positioning.
func LuxuryIndicators() []string { return append([]string(nil), luxuryIndicators...) }

// ValueIndicators returns the words counted towards value positioning.
func ValueIndicators() []string { return append([]string(nil), valueIndicators...) }
