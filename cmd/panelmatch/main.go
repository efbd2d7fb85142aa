// panelmatch shortlists companies for industrial tenders: it loads a
// company dataset, scores every company against the tender's selection
// criteria and prints the ranked panel.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/panel-entreprises/panelmatch/internal/config"
	logpkg "github.com/panel-entreprises/panelmatch/internal/logger"
	"github.com/panel-entreprises/panelmatch/internal/metrics"
	"github.com/panel-entreprises/panelmatch/internal/version"
)

var rootCmd = &cobra.Command{
	Use:           "panelmatch",
	Short:         "panelmatch ranks companies against tender selection criteria",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "panelmatch %s (commit %s, built %s)\n",
			version.Version, version.Commit, version.Date)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(importCmd)
}

// setup loads the environment config and builds the logger and metrics the
// commands share.
func setup() (config.Config, *zap.Logger, error) {
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("create logger: %w", err)
	}

	logger.Info("panelmatch starting",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
	)

	metrics.RegisterMatchMetrics()
	metrics.RegisterExtractionMetrics()

	return cfg, logger, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
