package models

import "github.com/PuerkitoBio/goquery"

// Page is a fetched marketplace document ready for feature extraction.
type Page struct {
	URL  string            `json:"url"`
	Doc  *goquery.Document `json:"-"`
	Text string            `json:"-"` // every text node, in document order

	// Readability enrichment (from go-readability)
	SiteName string `json:"site_name,omitempty"`
	Excerpt  string `json:"excerpt,omitempty"`
}
