package analyzer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dtnitsch/supplier-matcher/pkg/directory"
	"github.com/dtnitsch/supplier-matcher/pkg/extractor"
	"github.com/dtnitsch/supplier-matcher/pkg/fetcher"
	"github.com/dtnitsch/supplier-matcher/pkg/parser"
	"github.com/dtnitsch/supplier-matcher/pkg/scorer"
)

// Enhanced scores the real store directory against the scraped marketplace.
type Enhanced struct {
	source  directory.Source
	fetcher *fetcher.Fetcher
	parser  *parser.Parser
	scorer  *scorer.Scorer
	logger  *slog.Logger
	now     clock
}

func NewEnhanced(source directory.Source, f *fetcher.Fetcher, logger *slog.Logger) *Enhanced {
	return &Enhanced{
		source:  source,
		fetcher: f,
		parser:  &parser.Parser{},
		scorer:  scorer.New(scorer.DefaultWeights),
		logger:  logger,
		now:     time.Now,
	}
}

// Analyze loads the directory first so a missing dataset fails before any network call.
func (e *Enhanced) Analyze(ctx context.Context, rawURL string, maxSuppliers int) (*Result, error) {
	records, err := e.source.Load(ctx)
	if err != nil {
		return nil, err
	}
	e.logger.Info("Loaded supplier directory", "source", e.source.Label(), "stores", len(records))

	e.logger.Info("Fetching marketplace", "url", rawURL)
	html, err := e.fetcher.GetHtmlBytes(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	page, err := e.parser.Parse(rawURL, html)
	if err != nil {
		return nil, fmt.Errorf("parse marketplace: %w", err)
	}

	analysis := extractor.Extract(page, e.now())
	e.logger.Info("Marketplace analysis completed",
		"title", analysis.Title,
		"categories", analysis.Categories,
		"language", analysis.Language,
		"positioning", analysis.BrandAnalysis.Positioning,
		"average_price", analysis.PriceAnalysis.AveragePrice,
	)

	suppliers := e.scorer.Rank(analysis, records, maxSuppliers)
	e.logger.Info("Generated supplier recommendations", "count", len(suppliers), "scored", len(records))

	return &Result{
		Variant:    VariantEnhanced,
		Analysis:   analysis,
		Suppliers:  suppliers,
		DataSource: e.source.Label(),
	}, nil
}
