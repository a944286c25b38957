package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/workwellhq/workwell/core"
	"github.com/workwellhq/workwell/internal/histstore"
)

// checkCmd gates an evaluation against score thresholds.
var checkCmd = &cobra.Command{
	Use:   "check [data-dir]",
	Short: "Gate an evaluation against score thresholds for automation.",
	Long: `Run the scoring pipeline and fail when scores cross thresholds.

A target fails when its score is at or above its threshold; scores
measure risk, so high is bad. Targets are 'whi' (the composite index)
or any domain name. Exits 1 on any violation, which makes the command
suitable for scheduled jobs and automation hooks.

Without an explicit override the composite index is checked against
the default high-risk level.

Examples:
  # Gate on the composite index only
  workwell check

  # Gate on the index and two domains
  workwell check --thresholds-override "whi:60,msk:70,eye:80"`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		start := time.Now()

		thresholds := cfg.Thresholds
		if len(thresholds) == 0 {
			thresholds = map[string]float64{"whi": cfg.HighRiskThreshold}
		}

		src := histstore.NewFileSource(cfg.DataDir)
		report, _ := core.Evaluate(histstore.LoadAll(src))
		result := core.RunThresholdCheck(report, thresholds)

		core.PrintCheckResult(os.Stdout, result, time.Since(start))
		if !result.Passed {
			fmt.Printf("%d violation(s) found\n", len(result.Violations))
			os.Exit(1)
		}
	},
}
