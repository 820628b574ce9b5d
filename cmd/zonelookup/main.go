// Package main implements the zonelookup CLI: it rebuilds the port-zone
// lookup table from a processed landings CSV and reports ambiguous mappings
// for human review.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/landings/internal/cleaning"
	"github.com/fyrsmithlabs/landings/internal/logging"
	"github.com/fyrsmithlabs/landings/internal/portzone"
	"github.com/fyrsmithlabs/landings/internal/schema"
)

var (
	inputPath  string
	outputPath string
	logLevel   string
	version    = "dev"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "zonelookup",
	Short: "Rebuild the port-zone lookup table from processed landings data",
	Long: `zonelookup rebuilds the port-to-zone lookup table in batch from records
that already carry an explicit zone. The dominant zone per port wins;
frequency ties are broken alphabetically and flagged AMBIGUOUS in the
note column for human review.

Examples:
  # Rebuild the lookup from a processed CSV
  zonelookup build --input data/processed/landings.csv --output data/derived/port_zone_lookup.csv`,
	Version: version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	buildCmd.Flags().StringVar(&inputPath, "input", "", "processed landings CSV to read (required)")
	buildCmd.Flags().StringVar(&outputPath, "output", "data/derived/port_zone_lookup.csv", "destination for the lookup flat table")
	_ = buildCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(buildCmd)
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build and write the port-zone lookup table",
	RunE:  runBuild,
}

func runBuild(cmd *cobra.Command, args []string) error {
	logger, err := logging.New(logging.Config{Level: logLevel, Format: "console"})
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	f, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()

	table, err := schema.ReadTableCSV(f)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	normalizer := schema.NewNormalizer(nil, logger)
	records, _, err := normalizer.Normalize(table)
	if err != nil {
		return fmt.Errorf("normalizing input: %w", err)
	}
	records = cleaning.NewCleaner(cleaning.DefaultConfig(), logger).Clean(records)

	lookup := portzone.Build(records)
	logger.Info("built port-zone lookup",
		zap.Int("ports", lookup.Len()),
		zap.Int("ambiguous", len(lookup.AmbiguousPorts())))

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer out.Close()
	if err := portzone.WriteLookup(out, lookup); err != nil {
		return fmt.Errorf("writing lookup: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Saved %d port-zone rows to %s\n", lookup.Len(), outputPath)
	for _, e := range lookup.AmbiguousPorts() {
		fmt.Fprintf(cmd.OutOrStdout(), "WARNING: %s tie-broken to zone %s (%d records) - review\n",
			e.Port, e.MappedZone, e.SupportCount)
	}
	return nil
}
