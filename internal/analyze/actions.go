package analyze

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/dtnitsch/supplier-matcher/internal/common"
	"github.com/dtnitsch/supplier-matcher/models"
	"github.com/dtnitsch/supplier-matcher/pkg/analyzer"
	"github.com/dtnitsch/supplier-matcher/pkg/report"
	"github.com/urfave/cli/v2"
)

// ErrUsage marks errors caused by bad command-line input.
var ErrUsage = errors.New("usage error")

const (
	exitUsage   = 1
	exitRuntime = 2
)

const usageLine = "Usage: supplier-matcher <marketplace_url> [max_suppliers]"

// MatchAction is the root command: analyse one marketplace and write the reports.
func MatchAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	return ToExit(run(c, logger, c.App.Writer))
}

func run(c *cli.Context, logger *slog.Logger, out io.Writer) error {
	if c.NArg() < 1 {
		return fmt.Errorf("%w: %s", ErrUsage, usageLine)
	}

	marketplaceURL, err := common.ValidateMarketplaceURL(c.Args().Get(0))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	applyFlags(c, cfg)

	if c.NArg() > 1 {
		cfg.MaxSuppliers, err = ParseMaxSuppliers(c.Args().Get(1))
		if err != nil {
			return err
		}
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	fmt.Fprintln(out, "Supplier Matcher")
	fmt.Fprintf(out, "   Marketplace: %s\n", marketplaceURL)
	fmt.Fprintf(out, "   Max suppliers: %d\n", cfg.MaxSuppliers)
	fmt.Fprintln(out, strings.Repeat("=", 60))

	result, err := analyzer.Select(cfg, logger).Analyze(c.Context, marketplaceURL, cfg.MaxSuppliers)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	files, err := report.NewWriter(cfg.OutputDir, cfg.SummaryFormat).Write(result)
	if err != nil {
		return fmt.Errorf("failed to save results: %w", err)
	}
	logger.Info("Results saved", "csv", files.CSV, "summary", files.Summary, "run_id", files.RunID)

	PrintSummary(out, result, files)
	return nil
}

func applyFlags(c *cli.Context, cfg *models.Config) {
	if c.IsSet("dataset") {
		cfg.Dataset = c.String("dataset")
	}
	if c.IsSet("output-dir") {
		cfg.OutputDir = c.String("output-dir")
	}
	if c.IsSet("summary-format") {
		cfg.SummaryFormat = strings.ToLower(c.String("summary-format"))
	}
	if c.IsSet("timeout") {
		cfg.Timeout = c.Duration("timeout")
	}
	if c.IsSet("fallback") {
		cfg.Fallback = c.Bool("fallback")
	}
	if c.IsSet("auto-fallback") {
		cfg.AutoFallback = c.Bool("auto-fallback")
	}
}

// ParseMaxSuppliers accepts only positive integers.
func ParseMaxSuppliers(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: max_suppliers must be an integer, got %q", ErrUsage, raw)
	}
	if n < 1 {
		return 0, fmt.Errorf("%w: max_suppliers must be positive, got %d", ErrUsage, n)
	}
	return n, nil
}

// ToExit maps usage errors to exit code 1 and everything else to 2.
func ToExit(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrUsage) {
		return cli.Exit(err.Error(), exitUsage)
	}
	return cli.Exit(err.Error(), exitRuntime)
}

func PrintSummary(out io.Writer, result *analyzer.Result, files *report.Files) {
	analysis := result.Analysis
	categories := analysis.Categories
	if len(categories) > 3 {
		categories = categories[:3]
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, strings.Repeat("=", 60))
	fmt.Fprintln(out, "Analysis completed successfully!")
	fmt.Fprintf(out, "Marketplace: %s\n", analysis.Title)
	fmt.Fprintf(out, "Categories: %s\n", strings.Join(categories, ", "))
	if result.Variant == analyzer.VariantEnhanced {
		fmt.Fprintf(out, "Avg Price: $%v\n", analysis.PriceAnalysis.AveragePrice)
	}
	fmt.Fprintf(out, "Suppliers: %d recommendations from %s\n", len(result.Suppliers), result.DataSource)
	if files.CSV != "" {
		fmt.Fprintf(out, "Files: %s, %s\n", files.CSV, files.Summary)
	} else {
		fmt.Fprintf(out, "Files: %s\n", files.Summary)
	}
}
