package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/workwellhq/workwell/core"
	"github.com/workwellhq/workwell/internal/contract"
	"github.com/workwellhq/workwell/internal/histstore"
	"github.com/workwellhq/workwell/internal/outwriter"
	"github.com/workwellhq/workwell/schema"
)

// scoresCmd runs the full scoring pipeline over the history files.
var scoresCmd = &cobra.Command{
	Use:   "scores [data-dir]",
	Short: "Show all health domains ranked by risk score.",
	Long: `Score the questionnaire histories and rank health domains by risk.

Each domain is scored from its recent entries, aggregated per its
strategy (recency, slow, snapshot, trend), then adjusted by global
pressure from the composite Workday Health Index.

Examples:
  # Score the default data directory
  workwell scores

  # Include entry counts and the top raw-point drivers
  workwell scores --detail --explain

  # Pin the evaluation time for reproducible output
  workwell scores --as-of "2 days ago"

  # Persist this evaluation to the snapshot store
  workwell scores --record

  # Export findings to CSV for tracking
  workwell scores --output csv --output-file scores.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		start := time.Now()

		src := histstore.NewFileSource(cfg.DataDir)
		report, results := core.Evaluate(histstore.LoadAll(src))

		if cfg.Record {
			if err := recordEvaluation(report, results, start); err != nil {
				contract.LogWarn("could not record evaluation", err)
			}
		}

		writer := outwriter.NewOutWriter()
		if err := writer.WriteScores(report, results, cfg, time.Since(start)); err != nil {
			contract.LogFatal("Cannot write scores", err)
		}
	},
}

// recordEvaluation persists one evaluation run and its per-domain scores.
func recordEvaluation(report *schema.ScoreReport, results []schema.DomainResult, start time.Time) error {
	configParams := map[string]any{
		"data_dir": cfg.DataDir,
		"as_of":    cfg.EvalAt.Format(contract.DateTimeFormat),
	}

	evaluationID, err := snapshotStore.BeginEvaluation(start, configParams)
	if err != nil {
		return err
	}

	records := make([]schema.DomainScoreRecord, 0, len(results))
	for _, r := range results {
		records = append(records, schema.DomainScoreRecord{
			EvaluationID: evaluationID,
			Domain:       string(r.Domain),
			EvaluatedAt:  cfg.EvalAt,
			WHI:          report.WorkdayHealthIndex,
			LocalScore:   schema.Round1(r.LocalScore),
			FinalScore:   schema.Round1(r.FinalScore),
			Label:        contract.GetPlainLabel(r.FinalScore),
		})
	}
	if err := snapshotStore.RecordDomainScores(evaluationID, records); err != nil {
		return err
	}

	return snapshotStore.EndEvaluation(evaluationID, time.Now(), len(records))
}
