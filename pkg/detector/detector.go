// Package detector guesses language, country and currency for a marketplace page.
package detector

import (
	"net/url"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/pemistahl/lingua-go"
)

// DetectLanguage prefers the root element's lang attribute (first two characters, as written)
// and falls back to stop-word presence in the first 1000 characters of text.
func DetectLanguage(doc *goquery.Document, text string) string {
	if doc != nil {
		// A present attribute wins even when empty.
		if lang, ok := doc.Find("html").First().Attr("lang"); ok {
			if runes := []rune(lang); len(runes) > 2 {
				lang = string(runes[:2])
			}
			return lang
		}
	}
	return languageFromText(text)
}

func languageFromText(text string) string {
	sample := []rune(text)
	if len(sample) > languageSampleChars {
		sample = sample[:languageSampleChars]
	}
	lower := strings.ToLower(string(sample))

	best, bestScore := DefaultLanguage, 0
	for _, ind := range languageIndicators {
		score := 0
		for _, marker := range ind.Markers {
			if strings.Contains(lower, marker) {
				score++
			}
		}
		if score > bestScore {
			best, bestScore = ind.Code, score
		}
	}
	return best
}

// DetectCountry maps well-known domain suffixes in the URL host to a country code.
func DetectCountry(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return DefaultCountry
	}
	host := strings.ToLower(u.Host)
	for _, ind := range countryDomains {
		for _, marker := range ind.Markers {
			if strings.Contains(host, marker) {
				return ind.Code
			}
		}
	}
	return DefaultCountry
}

// DetectCurrency returns the first currency whose symbol, code or name appears in text.
func DetectCurrency(text string) string {
	lower := strings.ToLower(text)
	for _, ind := range currencyIndicators {
		for _, marker := range ind.Markers {
			if strings.Contains(lower, marker) {
				return ind.Code
			}
		}
	}
	return DefaultCurrency
}

var (
	linguaOnce     sync.Once
	linguaDetector lingua.LanguageDetector
)

func contentDetector() lingua.LanguageDetector {
	linguaOnce.Do(func() {
		linguaDetector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(
				lingua.English, lingua.Spanish, lingua.French, lingua.German,
				lingua.Italian, lingua.Portuguese, lingua.Japanese, lingua.Chinese,
			).
			Build()
	})
	return linguaDetector
}

// DetectContentLanguage runs a statistical language model over the page text.
// It returns a lower-case ISO 639-1 code, or "" when no language is reliable.
func DetectContentLanguage(text string) string {
	sample := []rune(strings.TrimSpace(text))
	if len(sample) == 0 {
		return ""
	}
	if len(sample) > languageSampleChars {
		sample = sample[:languageSampleChars]
	}
	lang, ok := contentDetector().DetectLanguageOf(string(sample))
	if !ok {
		return ""
	}
	return strings.ToLower(lang.IsoCode639_1().String())
}
