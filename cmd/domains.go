package cmd

import (
	"github.com/spf13/cobra"
	"github.com/workwellhq/workwell/internal/contract"
	"github.com/workwellhq/workwell/internal/outwriter"
)

// domainsCmd shows the scoring configuration of every domain.
var domainsCmd = &cobra.Command{
	Use:   "domains",
	Short: "Display the scoring configuration of all health domains.",
	Long: `Show the formal scoring configuration of every declared domain.

Displays each domain's aggregation strategy, raw-point normalization
ceiling, and weight in the Workday Health Index, plus the global
pressure formula. This is a static display that does not read any
history files.

Examples:
  # Human-readable reference
  workwell domains

  # Machine-readable reference
  workwell domains --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		writer := outwriter.NewOutWriter()
		if err := writer.WriteDomains(cfg); err != nil {
			contract.LogFatal("Cannot write domain reference", err)
		}
	},
}
