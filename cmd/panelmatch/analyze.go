package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/panel-entreprises/panelmatch/internal/transport/mistral"
)

var analyzeFlags struct {
	document string
	output   string
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Extract selection criteria from a tender document",
	Long: `Analyze sends the tender document to the extraction provider and prints
the keywords, selection criteria and attribution criteria as JSON. When the
provider is unreachable the deterministic fallback analysis is printed
instead.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeFlags.document, "document", "", "tender document to analyze")
	analyzeCmd.Flags().StringVarP(&analyzeFlags.output, "output", "o", "", "write the analysis to a file instead of stdout")
	_ = analyzeCmd.MarkFlagRequired("document")
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	document, err := os.ReadFile(analyzeFlags.document)
	if err != nil {
		return fmt.Errorf("read document: %w", err)
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
	return writeJSON(cmd, analyzeFlags.output, analysis)
}
