package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/workwellhq/workwell/internal/contract"
	"github.com/workwellhq/workwell/internal/parquet"
	"github.com/workwellhq/workwell/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteSnapshotStatus outputs a summary of the snapshot store.
func WriteSnapshotStatus(status schema.SnapshotStatus, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, status)
		}, "Wrote JSON")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSnapshotStatusText(w, status)
		}, "Wrote text")
	}
}

// writeSnapshotStatusText displays the store summary in human-readable text format.
func writeSnapshotStatusText(w io.Writer, status schema.SnapshotStatus) error {
	if _, err := fmt.Fprintf(w, "Backend: %s\n", status.Backend); err != nil {
		return err
	}
	if status.Location != "" {
		if _, err := fmt.Fprintf(w, "Location: %s\n", status.Location); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "Evaluations: %d\n", status.Evaluations); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Domain scores: %d\n", status.DomainScores); err != nil {
		return err
	}
	latest := "never"
	if status.LatestRun != nil {
		latest = status.LatestRun.Format(contract.DateTimeFormat)
	}
	if _, err := fmt.Fprintf(w, "Latest run: %s\n", latest); err != nil {
		return err
	}
	return nil
}

// WriteEvaluationHistory outputs recent evaluation runs, newest first.
// Parquet requires an output file path.
func WriteEvaluationHistory(runs []schema.EvaluationRun, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return fmt.Errorf("parquet output requires --output-file")
		}
		if err := parquet.WriteEvaluationRunsParquet(parquet.ConvertEvaluationRuns(runs), cfg.OutputFile); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "💾 Wrote Parquet to %s\n", cfg.OutputFile)
		return nil
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, runs)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			header := []string{"evaluation_id", "start_time", "end_time", "duration_ms", "domains_scored"}
			return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
				for _, run := range runs {
					endTime := ""
					if run.EndTime != nil {
						endTime = run.EndTime.Format(contract.DateTimeFormat)
					}
					durationMs := ""
					if run.RunDurationMs != nil {
						durationMs = strconv.FormatInt(int64(*run.RunDurationMs), 10)
					}
					rec := []string{
						strconv.FormatInt(run.EvaluationID, 10),
						run.StartTime.Format(contract.DateTimeFormat),
						endTime,
						durationMs,
						strconv.FormatInt(int64(run.DomainsScored), 10),
					}
					if err := cw.Write(rec); err != nil {
						return err
					}
				}
				return nil
			})
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeEvaluationHistoryTable(w, runs)
		}, "Wrote table")
	}
}

// writeEvaluationHistoryTable generates and writes the human-readable table.
func writeEvaluationHistoryTable(w io.Writer, runs []schema.EvaluationRun) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"ID", "Start", "Duration (ms)", "Domains"})

	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, run := range runs {
		durationMs := "-"
		if run.RunDurationMs != nil {
			durationMs = strconv.FormatInt(int64(*run.RunDurationMs), 10)
		}
		data = append(data, []string{
			strconv.FormatInt(run.EvaluationID, 10),
			run.StartTime.Format(contract.DateTimeFormat),
			durationMs,
			strconv.FormatInt(int64(run.DomainsScored), 10),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Showing %d evaluation runs\n", len(runs))
	return err
}

// WriteDomainScoreExport outputs recorded domain scores for downstream
// analysis, dispatching on the configured format. Parquet requires an
// output file path.
func WriteDomainScoreExport(records []schema.DomainScoreRecord, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return fmt.Errorf("parquet output requires --output-file")
		}
		if err := parquet.WriteDomainScoresParquet(parquet.ConvertDomainScoreRecords(records), cfg.OutputFile); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "💾 Wrote Parquet to %s\n", cfg.OutputFile)
		return nil
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			header := []string{"evaluation_id", "domain", "evaluated_at", "workday_health_index", "local_score", "final_score", "label"}
			return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
				for _, r := range records {
					rec := []string{
						strconv.FormatInt(r.EvaluationID, 10),
						r.Domain,
						r.EvaluatedAt.Format(contract.DateTimeFormat),
						fmtFloat(r.WHI),
						fmtFloat(r.LocalScore),
						fmtFloat(r.FinalScore),
						r.Label,
					}
					if err := cw.Write(rec); err != nil {
						return err
					}
				}
				return nil
			})
		}, "Wrote CSV")
	default:
		// JSON is the default export format since the records feed
		// downstream tooling rather than human eyes.
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, records)
		}, "Wrote JSON")
	}
}
