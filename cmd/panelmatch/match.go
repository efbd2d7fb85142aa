package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/panel-entreprises/panelmatch"
	"github.com/panel-entreprises/panelmatch/internal/config"
	"github.com/panel-entreprises/panelmatch/internal/importer"
	"github.com/panel-entreprises/panelmatch/internal/repository/registry"
	"github.com/panel-entreprises/panelmatch/internal/transport/mistral"
)

var matchFlags struct {
	dataset    string
	criteria   string
	document   string
	minScore   int
	maxResults int
	output     string
}

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score and rank companies against selection criteria",
	Long: `Match loads the company dataset, takes selection criteria from a JSON file
(--criteria) or extracts them from a tender document (--document), and
prints the ranked shortlist as JSON.`,
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().StringVar(&matchFlags.dataset, "dataset", "", "company dataset CSV (default from config)")
	matchCmd.Flags().StringVar(&matchFlags.criteria, "criteria", "", "selection criteria JSON file")
	matchCmd.Flags().StringVar(&matchFlags.document, "document", "", "tender document to extract criteria from")
	matchCmd.Flags().IntVar(&matchFlags.minScore, "min-score", 0, "minimum score to qualify (default from config)")
	matchCmd.Flags().IntVar(&matchFlags.maxResults, "max-results", 0, "shortlist cap (default from config)")
	matchCmd.Flags().StringVarP(&matchFlags.output, "output", "o", "", "write results to a file instead of stdout")
}

func runMatch(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	datasetPath := matchFlags.dataset
	if datasetPath == "" {
		datasetPath = cfg.Dataset.Path
	}

	companies, err := importer.New(logger).LoadFile(datasetPath)
	if err != nil {
		return err
	}

	reg := registry.New()
	if err := reg.Load(companies); err != nil {
		return err
	}
	logger.Info("registry loaded", zap.Int("companies", reg.Len()))

	criteria, err := loadCriteria(cmd, cfg, logger)
	if err != nil {
		return err
	}

	opts := panelmatch.Options{
		MinScore:   cfg.Matching.MinScore,
		MaxResults: cfg.Matching.MaxResults,
	}
	if matchFlags.minScore > 0 {
		opts.MinScore = matchFlags.minScore
	}
	if matchFlags.maxResults > 0 {
		opts.MaxResults = matchFlags.maxResults
	}

	results := panelmatch.NewEngine(logger).Match(reg.List(), criteria, opts)

	return writeJSON(cmd, matchFlags.output, results)
}

// loadCriteria reads criteria from the --criteria JSON file, or extracts
// them from the --document tender text.
func loadCriteria(cmd *cobra.Command, cfg config.Config, logger *zap.Logger) ([]panelmatch.Criterion, error) {
	switch {
	case matchFlags.criteria != "":
		data, err := os.ReadFile(matchFlags.criteria)
		if err != nil {
			return nil, fmt.Errorf("read criteria: %w", err)
		}
		var criteria []panelmatch.Criterion
		if err := json.Unmarshal(data, &criteria); err != nil {
			return nil, fmt.Errorf("parse criteria: %w", err)
		}
		return criteria, nil

	case matchFlags.document != "":
		document, err := os.ReadFile(matchFlags.document)
		if err != nil {
			return nil, fmt.Errorf("read document: %w", err)
		}
		analyzer := mistral.NewAnalyzer(&mistral.Config{
			APIKey:      cfg.Extraction.APIKey,
			BaseURL:     cfg.Extraction.BaseURL,
			Model:       cfg.Extraction.Model,
			Temperature: cfg.Extraction.Temperature,
			Logger:      logger,
		})
		ctx, cancel := extractionContext(cmd.Context(), cfg)
		defer cancel()
		analysis := analyzer.Analyze(ctx, string(document))
		return analysis.SelectionCriteria, nil

	default:
		return nil, fmt.Errorf("either --criteria or --document is required")
	}
}

// extractionContext bounds a provider call with the configured timeout.
func extractionContext(parent context.Context, cfg config.Config) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, time.Duration(cfg.Extraction.TimeoutSec)*time.Second)
}

// writeJSON pretty-prints v to the output file or stdout.
func writeJSON(cmd *cobra.Command, path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode results: %w", err)
	}
	data = append(data, '\n')

	if path == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}
