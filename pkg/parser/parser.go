package parser

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dtnitsch/supplier-matcher/models"
	"github.com/go-shiori/go-readability"
)

type Parser struct{}

// Parse builds a Page from raw HTML. The goquery document is required;
// the readability pass only enriches the page and its failures are ignored.
func (p *Parser) Parse(rawURL string, html []byte) (*models.Page, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	page := &models.Page{
		URL:  rawURL,
		Doc:  doc,
		Text: visibleText(doc),
	}

	if parsedURL, err := url.Parse(rawURL); err == nil {
		rp := readability.NewParser()
		article, err := rp.Parse(bytes.NewReader(html), parsedURL)
		if err == nil {
			page.SiteName = normalizeText(article.SiteName)
			page.Excerpt = normalizeText(article.Excerpt)
		}
	}

	return page, nil
}

// visibleText joins every text node except script, style and template contents.
// The document itself is left untouched.
func visibleText(doc *goquery.Document) string {
	clone := doc.Clone()
	clone.Find("script,style,template").Remove()
	return clone.Text()
}

// normalizeText collapses runs of whitespace into single spaces.
func normalizeText(input string) string {
	return strings.Join(strings.Fields(input), " ")
}
