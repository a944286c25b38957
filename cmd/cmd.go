// Package cmd defines the command-line interface for workwell.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/workwellhq/workwell/internal/contract"
	"github.com/workwellhq/workwell/schema"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(weeklyCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(domainsCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the snapshot subcommands to the parent snapshot command
	snapshotCmd.AddCommand(snapshotStatusCmd)
	snapshotCmd.AddCommand(snapshotHistoryCmd)
	snapshotCmd.AddCommand(snapshotExportCmd)
	snapshotCmd.AddCommand(snapshotClearCmd)
	snapshotCmd.AddCommand(snapshotMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("data-dir", "data", "Directory holding the per-domain history files")
	rootCmd.PersistentFlags().String("as-of", "", "Evaluation reference time in ISO8601 or time ago")
	rootCmd.PersistentFlags().Bool("detail", false, "Print per-domain metadata (entry count, latest entry, strategy)")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("snapshot-backend", string(schema.SQLiteBackend), "Snapshot backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("snapshot-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().Float64("risk-threshold", schema.DefaultHighRiskThreshold, "Index level at or above which a day counts as high-risk")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of scoresCmd to Viper
	scoresCmd.Flags().Bool("explain", false, "Print per-domain top raw-point drivers")
	scoresCmd.Flags().Bool("record", false, "Persist this evaluation to the snapshot store")
	if err := viper.BindPFlags(scoresCmd.Flags()); err != nil {
		contract.LogFatal("Error binding scores flags", err)
	}

	// Bind all flags of checkCmd to Viper
	checkCmd.Flags().String("thresholds-override", "", "Score thresholds for CI/CD gating (format: 'whi:60,msk:70')")
	if err := viper.BindPFlags(checkCmd.Flags()); err != nil {
		contract.LogFatal("Error binding check flags", err)
	}

	// Bind all flags of snapshotHistoryCmd to Viper
	snapshotHistoryCmd.Flags().Int("limit", 20, "Number of evaluation runs to display")
	if err := viper.BindPFlags(snapshotHistoryCmd.Flags()); err != nil {
		contract.LogFatal("Error binding snapshot history flags", err)
	}

	// Bind all flags of snapshotMigrateCmd to Viper
	snapshotMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(snapshotMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding snapshot migrate flags", err)
	}
}
