// Package extractor derives marketplace signals from a parsed page.
package extractor

import (
	"strings"
	"time"

	"github.com/dtnitsch/supplier-matcher/models"
	"github.com/dtnitsch/supplier-matcher/pkg/analytics"
	"github.com/dtnitsch/supplier-matcher/pkg/detector"
)

// TimestampLayout matches ISO-8601 with microseconds.
const TimestampLayout = "2006-01-02T15:04:05.000000"

// Extract computes every feature independently; a missing signal yields its default.
func Extract(page *models.Page, now time.Time) *models.MarketplaceAnalysis {
	lower := strings.ToLower(page.Text)
	a := &analytics.Analytics{}

	return &models.MarketplaceAnalysis{
		URL:               page.URL,
		Title:             Title(page),
		Description:       Description(page),
		Categories:        Categories(lower),
		PriceAnalysis:     Prices(page.Text),
		BrandAnalysis:     Positioning(lower),
		Language:          detector.DetectLanguage(page.Doc, page.Text),
		Country:           detector.DetectCountry(page.URL),
		AnalysisTimestamp: now.Format(TimestampLayout),

		SiteName:        page.SiteName,
		Excerpt:         page.Excerpt,
		ContentLanguage: detector.DetectContentLanguage(page.Text),
		TopKeywords:     analytics.TopKeywords(a.WordFrequency(page.Text), maxKeywords),
	}
}

func Title(page *models.Page) string {
	if page.Doc == nil {
		return UnknownTitle
	}
	title := page.Doc.Find("title").First()
	if title.Length() == 0 {
		return UnknownTitle
	}
	return strings.TrimSpace(title.Text())
}

// Description prefers the meta description and falls back to the first paragraph.
func Description(page *models.Page) string {
	if page.Doc == nil {
		return ""
	}
	if meta := page.Doc.Find(`meta[name="description"]`).First(); meta.Length() > 0 {
		content, _ := meta.Attr("content")
		return truncate(content, maxDescriptionLen)
	}
	if p := page.Doc.Find("p").First(); p.Length() > 0 {
		return truncate(p.Text(), maxDescriptionLen)
	}
	return ""
}

// Categories returns the labels whose keywords occur in lowerText, in table order.
func Categories(lowerText string) []string {
	categories := []string{}
	for _, rule := range categoryRules {
		if containsAny(lowerText, rule.Keywords) {
			categories = append(categories, rule.Label)
		}
	}
	if len(categories) > maxCategories {
		categories = categories[:maxCategories]
	}
	return categories
}

// Positioning counts how many luxury and value words appear in lowerText.
func Positioning(lowerText string) models.BrandPositioning {
	luxury := countPresent(lowerText, luxuryIndicators)
	value := countPresent(lowerText, valueIndicators)

	positioning := models.PositioningMidMarket
	switch {
	case luxury > value:
		positioning = models.PositioningPremium
	case value > luxury:
		positioning = models.PositioningValue
	}

	return models.BrandPositioning{
		Positioning: positioning,
		LuxuryScore: luxury,
		ValueScore:  value,
	}
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

func countPresent(text string, words []string) int {
	n := 0
	for _, w := range words {
		if strings.Contains(text, w) {
			n++
		}
	}
	return n
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
