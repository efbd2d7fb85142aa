package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/panel-entreprises/panelmatch/internal/importer"
	"github.com/panel-entreprises/panelmatch/internal/repository/registry"
)

var importFlags struct {
	dataset string
	output  string
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Parse a company dataset and print the enriched records",
	Long: `Import parses the CSV dataset, infers missing domains, geographic zones
and matching keywords, and prints the enriched company records as JSON.
Useful to check what the matcher will actually see.`,
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVar(&importFlags.dataset, "dataset", "", "company dataset CSV (default from config)")
	importCmd.Flags().StringVarP(&importFlags.output, "output", "o", "", "write companies to a file instead of stdout")
}

func runImport(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	datasetPath := importFlags.dataset
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
	logger.Info("dataset imported", zap.Int("companies", reg.Len()))

	return writeJSON(cmd, importFlags.output, reg.List())
}
