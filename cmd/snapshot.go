package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/workwellhq/workwell/internal/contract"
	"github.com/workwellhq/workwell/internal/histstore"
	"github.com/workwellhq/workwell/internal/outwriter"
	"github.com/workwellhq/workwell/schema"
)

// snapshotSetup loads minimal configuration needed for snapshot operations.
// This is used by commands that need store access without full shared setup.
func snapshotSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get snapshot-related config values
	backend := schema.DatabaseBackend(strings.ToLower(viper.GetString("snapshot-backend")))
	if backend == "" {
		backend = schema.SQLiteBackend
	}
	if _, ok := schema.ValidSnapshotBackends[backend]; !ok {
		return fmt.Errorf("invalid snapshot backend '%s'. must be sqlite, mysql, postgresql, none", backend)
	}
	connStr := viper.GetString("snapshot-db-connect")

	// Get output-related config values (used by export and status commands)
	cfg.Output = schema.OutputMode(strings.ToLower(viper.GetString("output")))
	if cfg.Output == "" {
		cfg.Output = schema.TextOut
	}
	cfg.OutputFile = viper.GetString("output-file")
	cfg.Precision = viper.GetInt("precision")
	if cfg.Precision <= 0 {
		cfg.Precision = contract.DefaultPrecision
	}

	// Initialize the store with the loaded config
	store, err := histstore.NewSnapshotStore(backend, connStr)
	if err != nil {
		return fmt.Errorf("failed to initialize snapshot store: %w", err)
	}
	snapshotStore = store

	cfg.SnapshotBackend = backend
	cfg.SnapshotDBConnect = connStr

	return nil
}

// snapshotSetupWrapper wraps snapshotSetup to provide PreRunE for snapshot commands.
func snapshotSetupWrapper(_ *cobra.Command, _ []string) error {
	return snapshotSetup()
}

// snapshotMigrateSetup loads minimal configuration needed for migrate operations.
// This is a specialized setup that does NOT initialize the store or create tables,
// allowing migrations to run on a fresh database.
func snapshotMigrateSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	backend := schema.DatabaseBackend(strings.ToLower(viper.GetString("snapshot-backend")))
	if backend == "" {
		backend = schema.SQLiteBackend
	}
	if _, ok := schema.ValidSnapshotBackends[backend]; !ok {
		return fmt.Errorf("invalid snapshot backend '%s'. must be sqlite, mysql, postgresql, none", backend)
	}

	cfg.SnapshotBackend = backend
	cfg.SnapshotDBConnect = viper.GetString("snapshot-db-connect")

	return nil
}

// snapshotMigrateSetupWrapper wraps snapshotMigrateSetup to provide PreRunE for migrate command.
func snapshotMigrateSetupWrapper(_ *cobra.Command, _ []string) error {
	return snapshotMigrateSetup()
}

// snapshotCmd focused on snapshot data management.
//
// Note: Snapshot subcommands use minimal initialization (snapshotSetup) instead
// of the full sharedSetup used by scoring commands. This avoids history loading
// and config processing for simple store operations.
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Manage recorded evaluation snapshots and exports",
	Long: `Manage recorded evaluation data used for trend tracking and reporting.

When scores runs with --record, Workwell stores:
- Run metadata (timestamp, configuration, duration)
- Per-domain local and final scores with risk labels
- The composite Workday Health Index of the run

Recorded snapshots feed the weekly high-risk-days metric and can be
exported for analytics.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status  - Show snapshot store statistics
  history - List recent evaluation runs
  export  - Export recorded scores to csv/json/parquet
  clear   - Remove all recorded data
  migrate - Run database schema migrations

Examples:
  # Check store status
  workwell snapshot status

  # Export for analysis in pandas/DuckDB
  workwell snapshot export --output parquet --output-file scores.parquet`,
}

// snapshotStatusCmd shows snapshot store status.
var snapshotStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display snapshot store statistics and connection details",
	Long: `Show detailed information about the snapshot store.

Displays the backend type and location, the number of recorded
evaluation runs and domain scores, and the latest run timestamp.

Examples:
  # Check snapshot store status
  workwell snapshot status`,
	PreRunE: snapshotSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := snapshotStore.GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get snapshot status", err)
		}
		writer := outwriter.NewOutWriter()
		if err := writer.WriteStatus(status, cfg); err != nil {
			contract.LogFatal("Cannot write snapshot status", err)
		}
	},
}

// snapshotHistoryCmd lists recent evaluation runs.
var snapshotHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent recorded evaluation runs",
	Long: `List recorded evaluation runs, newest first.

Examples:
  # Show the last 20 runs
  workwell snapshot history

  # Show more runs as JSON
  workwell snapshot history --limit 100 --output json`,
	PreRunE: snapshotSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		runs, err := snapshotStore.ListEvaluations(viper.GetInt("limit"))
		if err != nil {
			contract.LogFatal("Failed to list evaluation runs", err)
		}
		writer := outwriter.NewOutWriter()
		if err := writer.WriteHistory(runs, cfg); err != nil {
			contract.LogFatal("Cannot write evaluation history", err)
		}
	},
}

// snapshotExportCmd exports recorded domain scores.
var snapshotExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export recorded scores for BI tools and analytics",
	Long: `Export all recorded domain scores for use with analytics tools.

Each exported record carries the run ID, domain, evaluation time,
composite index, local and final scores, and risk label.

Parquet format enables:
- Fast querying with DuckDB, Apache Spark, pandas
- Efficient storage with columnar compression
- Direct import into BI tools (Tableau, Metabase, etc.)

Examples:
  # Export all data as JSON
  workwell snapshot export

  # Export as Parquet for DuckDB
  workwell snapshot export --output parquet --output-file scores.parquet
  duckdb -c "SELECT * FROM read_parquet('scores.parquet') LIMIT 10"`,
	PreRunE: snapshotSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		records, err := snapshotStore.ExportDomainScores(0)
		if err != nil {
			contract.LogFatal("Failed to export recorded scores", err)
		}
		writer := outwriter.NewOutWriter()
		if err := writer.WriteExport(records, cfg); err != nil {
			contract.LogFatal("Cannot write export", err)
		}
	},
}

// snapshotClearCmd clears the snapshot data.
var snapshotClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all recorded evaluation data",
	Long: `Delete all stored evaluation runs and domain score history.

WARNING: This action cannot be undone. Consider exporting data first.

Examples:
  # Export before clearing
  workwell snapshot export --output-file backup.json
  workwell snapshot clear`,
	PreRunE: snapshotSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := snapshotStore.Clear(); err != nil {
			contract.LogFatal("Failed to clear snapshot data", err)
		}
		fmt.Println("Snapshot data cleared successfully.")
	},
}

// snapshotMigrateCmd runs database migrations for the snapshot store.
var snapshotMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the snapshot store.

By default, migrates to the latest version. Use --target-version for
specific versions.

Examples:
  # Migrate to latest version (default)
  workwell snapshot migrate

  # Migrate to specific version
  workwell snapshot migrate --target-version 1

  # Rollback to previous version
  workwell snapshot migrate --target-version 0`,
	PreRunE: snapshotMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := histstore.MigrateSnapshots(cfg.SnapshotBackend, cfg.SnapshotDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
