package cmd

import (
	"github.com/spf13/cobra"
	"github.com/workwellhq/workwell/core"
	"github.com/workwellhq/workwell/internal/contract"
	"github.com/workwellhq/workwell/internal/histstore"
	"github.com/workwellhq/workwell/internal/outwriter"
	"github.com/workwellhq/workwell/schema"
)

// weeklyCmd computes the week-over-week behavioral metrics.
var weeklyCmd = &cobra.Command{
	Use:   "weekly [data-dir]",
	Short: "Show week-over-week behavioral metrics.",
	Long: `Compare this week's behavior against last week's.

Reports average seated-block hours, hydration compliance, sleep hours
and trend, completed reminders, and high-risk days. A window with no
entries shows n/a rather than a misleading zero.

Examples:
  # Weekly metrics for the default data directory
  workwell weekly

  # Pin the reference time for reproducible windows
  workwell weekly --as-of 2026-03-01T00:00:00Z

  # Count days at or above a stricter index level as high-risk
  workwell weekly --risk-threshold 50`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		src := histstore.NewFileSource(cfg.DataDir)

		// Recorded store snapshots supplement the JSON snapshot history
		// for the high-risk-days metric.
		snapshots := src.SnapshotHistory()
		if stored, err := snapshotStore.WHIHistory(0); err != nil {
			contract.LogWarn("could not read recorded snapshots", err)
		} else {
			snapshots = append(snapshots, stored...)
		}

		inputs := core.WeeklyInputs{
			MSK:       src.DomainHistory(schema.DomainMSK),
			Hydration: src.DomainHistory(schema.DomainHydration),
			Sleep:     src.DomainHistory(schema.DomainSleep),
			Reminders: src.RemindersHistory(),
			Snapshots: snapshots,
		}
		report := core.ComputeWeeklyReport(inputs, cfg.EvalAt, cfg.HighRiskThreshold)

		writer := outwriter.NewOutWriter()
		if err := writer.WriteWeekly(report, cfg); err != nil {
			contract.LogFatal("Cannot write weekly metrics", err)
		}
	},
}
