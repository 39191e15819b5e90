package extractor

import (
	"math"
	"strconv"

	"github.com/dtnitsch/supplier-matcher/models"
	"github.com/dtnitsch/supplier-matcher/pkg/detector"
	"golang.org/x/text/width"
)

// Prices scans text for currency-prefixed amounts. Values outside [1, 50000]
// are treated as noise (SKUs, years, phone numbers) and dropped.
func Prices(text string) models.PriceStats {
	var prices []float64
	for _, pattern := range pricePatterns {
		for _, match := range pattern.FindAllString(text, -1) {
			price, ok := parsePrice(match)
			if !ok {
				continue
			}
			if price >= minPlausiblePrice && price <= maxPlausiblePrice {
				prices = append(prices, price)
			}
		}
	}

	if len(prices) == 0 {
		return models.PriceStats{CurrencyDetected: detector.DefaultCurrency}
	}

	sum, lo, hi := 0.0, prices[0], prices[0]
	for _, p := range prices {
		sum += p
		lo = math.Min(lo, p)
		hi = math.Max(hi, p)
	}

	return models.PriceStats{
		AveragePrice:     round2(sum / float64(len(prices))),
		MinPrice:         round2(lo),
		MaxPrice:         round2(hi),
		PriceCount:       len(prices),
		CurrencyDetected: detector.DetectCurrency(text),
	}
}

func parsePrice(match string) (float64, bool) {
	numeric := nonNumeric.ReplaceAllString(width.Narrow.String(match), "")
	if numeric == "" {
		return 0, false
	}
	price, err := strconv.ParseFloat(numeric, 64)
	if err != nil {
		return 0, false
	}
	return price, true
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
