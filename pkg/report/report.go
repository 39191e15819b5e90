// Package report writes the CSV and summary files for a matching run.
package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dtnitsch/supplier-matcher/models"
	"github.com/dtnitsch/supplier-matcher/pkg/analyzer"
	"github.com/dtnitsch/supplier-matcher/pkg/storage"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// TimestampLayout names the files of one run (YYYYMMDD_HHMMSS).
const TimestampLayout = "20060102_150405"

const maxTopCategories = 5

// ErrReportExists is returned when a run would overwrite files from an earlier run.
var ErrReportExists = errors.New("report file already exists")

var (
	enhancedColumns = []string{
		"store_name", "store_url", "categories", "description", "price_range",
		"international_shipping", "estimated_monthly_sales", "compatibility_score", "products_count",
	}
	fallbackColumns = []string{
		"store_name", "store_url", "categories", "description", "price_range", "compatibility_score",
	}
)

// Files lists what a run produced. CSV is empty when no suppliers were written.
type Files struct {
	Timestamp string
	RunID     string
	CSV       string
	Summary   string
}

type SummaryStats struct {
	TotalSuppliers        int      `json:"total_suppliers" yaml:"total_suppliers"`
	AvgCompatibilityScore float64  `json:"avg_compatibility_score" yaml:"avg_compatibility_score"`
	TopCategories         []string `json:"top_categories" yaml:"top_categories"`
	DataSource            string   `json:"data_source" yaml:"data_source"`
	RunID                 string   `json:"run_id" yaml:"run_id"`
}

type EnhancedSummary struct {
	MarketplaceAnalysis     *models.MarketplaceAnalysis `json:"marketplace_analysis" yaml:"marketplace_analysis"`
	SupplierRecommendations []models.ScoredSupplier     `json:"supplier_recommendations" yaml:"supplier_recommendations"`
	SummaryStats            SummaryStats                `json:"summary_stats" yaml:"summary_stats"`
}

type FallbackSummary struct {
	MarketplaceURL     string   `json:"marketplace_url" yaml:"marketplace_url"`
	MarketplaceName    string   `json:"marketplace_name" yaml:"marketplace_name"`
	DetectedCategories []string `json:"detected_categories" yaml:"detected_categories"`
	SupplierCount      int      `json:"supplier_count" yaml:"supplier_count"`
	AnalysisTimestamp  string   `json:"analysis_timestamp" yaml:"analysis_timestamp"`
}

type Writer struct {
	store  *storage.Storage
	format string
	now    func() time.Time
	newID  func() string
}

func NewWriter(outputDir, format string) *Writer {
	if format == "" {
		format = models.DefaultSummaryFormat
	}
	return &Writer{
		store:  &storage.Storage{Dir: outputDir},
		format: strings.ToLower(format),
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// Write saves the supplier CSV (skipped when there are no suppliers) and the summary.
func (w *Writer) Write(result *analyzer.Result) (*Files, error) {
	files := &Files{
		Timestamp: w.now().Format(TimestampLayout),
		RunID:     w.newID(),
	}
	base := "matching_results_" + files.Timestamp
	csvName := base + ".csv"
	summaryName := base + "_summary." + w.format

	for _, name := range []string{csvName, summaryName} {
		if w.store.HasFile(name) {
			return nil, fmt.Errorf("%w: %s", ErrReportExists, w.store.Path(name))
		}
	}

	if len(result.Suppliers) > 0 {
		data, err := encodeCSV(result.Variant, result.Suppliers)
		if err != nil {
			return nil, fmt.Errorf("encode supplier csv: %w", err)
		}
		path, err := w.store.SaveFile(csvName, data)
		if err != nil {
			return nil, err
		}
		files.CSV = path
	}

	data, err := w.encodeSummary(summaryFor(result, files))
	if err != nil {
		return nil, fmt.Errorf("encode summary: %w", err)
	}
	path, err := w.store.SaveFile(summaryName, data)
	if err != nil {
		return nil, err
	}
	files.Summary = path

	return files, nil
}

func summaryFor(result *analyzer.Result, files *Files) any {
	if result.Variant == analyzer.VariantFallback {
		return FallbackSummary{
			MarketplaceURL:     result.Analysis.URL,
			MarketplaceName:    result.Analysis.Title,
			DetectedCategories: nonNil(result.Analysis.Categories),
			SupplierCount:      len(result.Suppliers),
			AnalysisTimestamp:  files.Timestamp,
		}
	}
	return EnhancedSummary{
		MarketplaceAnalysis:     result.Analysis,
		SupplierRecommendations: nonNilSuppliers(result.Suppliers),
		SummaryStats: SummaryStats{
			TotalSuppliers:        len(result.Suppliers),
			AvgCompatibilityScore: AverageScore(result.Suppliers),
			TopCategories:         topCategories(result.Analysis.Categories),
			DataSource:            result.DataSource,
			RunID:                 files.RunID,
		},
	}
}

func (w *Writer) encodeSummary(summary any) ([]byte, error) {
	if w.format == models.SummaryFormatYAML {
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(summary); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	return json.MarshalIndent(summary, "", "  ")
}

func encodeCSV(variant analyzer.Variant, suppliers []models.ScoredSupplier) ([]byte, error) {
	columns := enhancedColumns
	if variant == analyzer.VariantFallback {
		columns = fallbackColumns
	}

	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	if err := cw.Write(columns); err != nil {
		return nil, err
	}
	for _, s := range suppliers {
		if err := cw.Write(row(columns, s)); err != nil {
			return nil, err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func row(columns []string, s models.ScoredSupplier) []string {
	out := make([]string, 0, len(columns))
	for _, col := range columns {
		switch col {
		case "store_name":
			out = append(out, s.StoreName)
		case "store_url":
			out = append(out, s.StoreURL)
		case "categories":
			out = append(out, s.Categories)
		case "description":
			out = append(out, s.Description)
		case "price_range":
			out = append(out, s.PriceRange)
		case "international_shipping":
			out = append(out, s.InternationalShipping)
		case "estimated_monthly_sales":
			out = append(out, s.EstimatedMonthlySales)
		case "compatibility_score":
			out = append(out, strconv.Itoa(s.CompatibilityScore))
		case "products_count":
			out = append(out, s.ProductsCount)
		}
	}
	return out
}

// AverageScore is the mean compatibility score, or 0 for an empty list.
func AverageScore(suppliers []models.ScoredSupplier) float64 {
	if len(suppliers) == 0 {
		return 0
	}
	total := 0
	for _, s := range suppliers {
		total += s.CompatibilityScore
	}
	return float64(total) / float64(len(suppliers))
}

func topCategories(categories []string) []string {
	if len(categories) > maxTopCategories {
		categories = categories[:maxTopCategories]
	}
	return nonNil(categories)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func nonNilSuppliers(s []models.ScoredSupplier) []models.ScoredSupplier {
	if s == nil {
		return []models.ScoredSupplier{}
	}
	return s
}
