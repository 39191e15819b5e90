// Package analyzer runs the fetch, extract and score pipeline for one marketplace.
package analyzer

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dtnitsch/supplier-matcher/models"
	"github.com/dtnitsch/supplier-matcher/pkg/directory"
	"github.com/dtnitsch/supplier-matcher/pkg/fetcher"
)

// Variant identifies which analyzer produced a Result.
type Variant string

const (
	VariantEnhanced Variant = "enhanced"
	VariantFallback Variant = "fallback"
)

// Result is everything the report writer needs from one run.
type Result struct {
	Variant    Variant
	Analysis   *models.MarketplaceAnalysis
	Suppliers  []models.ScoredSupplier
	DataSource string
}

// MarketplaceAnalyzer analyses a marketplace page and recommends suppliers for it.
type MarketplaceAnalyzer interface {
	Analyze(ctx context.Context, rawURL string, maxSuppliers int) (*Result, error)
}

// Select returns the fallback analyzer when cfg asks for it, otherwise the
// enhanced analyzer, optionally degrading to the fallback when the dataset is missing.
func Select(cfg *models.Config, logger *slog.Logger) MarketplaceAnalyzer {
	if cfg.Fallback {
		return NewFallback(fallbackFetcher(cfg), logger)
	}

	enhanced := NewEnhanced(
		directory.Open(cfg.Dataset),
		fetcher.NewFetcher(cfg.UserAgent, cfg.Timeout),
		logger,
	)
	if !cfg.AutoFallback {
		return enhanced
	}
	return &degrading{
		primary:  enhanced,
		fallback: NewFallback(fallbackFetcher(cfg), logger),
		logger:   logger,
	}
}

func fallbackFetcher(cfg *models.Config) *fetcher.Fetcher {
	return fetcher.NewFetcher(cfg.UserAgent, cfg.Timeout, fetcher.WithLenientStatus())
}

// degrading switches to the fallback analyzer only when the dataset is absent.
type degrading struct {
	primary  MarketplaceAnalyzer
	fallback MarketplaceAnalyzer
	logger   *slog.Logger
}

func (d *degrading) Analyze(ctx context.Context, rawURL string, maxSuppliers int) (*Result, error) {
	result, err := d.primary.Analyze(ctx, rawURL, maxSuppliers)
	if err != nil && errors.Is(err, directory.ErrDatasetNotFound) {
		d.logger.Warn("Supplier dataset unavailable, using sample suppliers", "error", err)
		return d.fallback.Analyze(ctx, rawURL, maxSuppliers)
	}
	return result, err
}

type clock func() time.Time
