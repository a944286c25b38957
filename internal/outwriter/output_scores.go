package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/workwellhq/workwell/internal/contract"
	"github.com/workwellhq/workwell/internal/parquet"
	"github.com/workwellhq/workwell/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteScoreResults outputs the evaluation results, dispatching based on the output format configured.
func WriteScoreResults(report *schema.ScoreReport, results []schema.DomainResult, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeScoreJSONResults(report, results, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeScoreCSVResults(report, results, cfg, fmtFloat, intFmt); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := writeScoreParquetResults(report, results, cfg); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeScoreTable(report, results, cfg, fmtFloat, intFmt, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeScoreJSONResults handles opening the file and calling the JSON writer.
func writeScoreJSONResults(report *schema.ScoreReport, results []schema.DomainResult, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForScores(w, report, results)
	}, "Wrote JSON")
}

// writeScoreCSVResults handles opening the file and calling the CSV writer.
func writeScoreCSVResults(report *schema.ScoreReport, results []schema.DomainResult, cfg *contract.Config, fmtFloat func(float64) string, intFmt string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultsForScores(csvWriter, report, results, fmtFloat, intFmt)
	}, "Wrote CSV")
}

// writeScoreParquetResults converts results into score records and writes them out.
// Parquet is a binary format, so a file path is required.
func writeScoreParquetResults(report *schema.ScoreReport, results []schema.DomainResult, cfg *contract.Config) error {
	if cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}

	records := make([]parquet.DomainScore, 0, len(results))
	for _, r := range results {
		records = append(records, parquet.DomainScore{
			EvaluationID:       0, // unrecorded ad-hoc evaluation
			Domain:             string(r.Domain),
			EvaluatedAt:        cfg.EvalAt,
			WorkdayHealthIndex: report.WorkdayHealthIndex,
			LocalScore:         r.LocalScore,
			FinalScore:         r.FinalScore,
			ScoreLabel:         contract.GetPlainLabel(r.FinalScore),
		})
	}

	if err := parquet.WriteDomainScoresParquet(records, cfg.OutputFile); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "💾 Wrote Parquet to %s\n", cfg.OutputFile)
	return nil
}

// writeScoreTable generates and writes the human-readable table.
func writeScoreTable(report *schema.ScoreReport, results []schema.DomainResult, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	headers := []string{"Rank", "Domain", "Local", "Final", "Label"}
	if cfg.Detail {
		headers = append(headers, "Entries", "Latest", "Strategy")
	}
	if cfg.Explain {
		headers = append(headers, "Drivers")
	}
	table.Header(headers)

	// 2. Configure Separators/Borders to match a minimal look
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	var data [][]string
	for i, r := range results {
		row := []string{
			strconv.Itoa(i + 1),                // Rank
			contract.FormatDomain(r.Domain),    // Domain
			fmtFloat(r.LocalScore),             // Local
			fmtFloat(r.FinalScore),             // Final
			riskLabel(r.FinalScore, cfg.Color), // Label
		}
		if cfg.Detail {
			latest := "-"
			if !r.Latest.IsZero() {
				latest = r.Latest.Format(contract.DateTimeFormat)
			}
			row = append(
				row,
				fmt.Sprintf(intFmt, r.Entries), // Entries
				latest,                         // Latest
				string(r.Strategy),             // Strategy
			)
		}
		if cfg.Explain {
			drivers := formatTopDrivers(r.Breakdown)
			row = append(row, truncateDrivers(drivers, getMaxTableDriversWidth(cfg)))
		}
		data = append(data, row)
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	// Composite summary
	whi := report.WorkdayHealthIndex
	if _, err := fmt.Fprintf(writer, "Workday Health Index: %s (%s)\n", fmtFloat(whi), riskLabel(whi, cfg.Color)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Evaluation completed in %v. Snapshot backend: %s\n", duration, cfg.SnapshotBackend); err != nil {
		return err
	}
	return nil
}

// writeCSVResultsForScores writes the evaluation results in CSV format.
func writeCSVResultsForScores(w *csv.Writer, report *schema.ScoreReport, results []schema.DomainResult, fmtFloat func(float64) string, intFmt string) error {
	// CSV header
	header := []string{
		"rank",
		"domain",
		"local_score",
		"final_score",
		"label",
		"entries",
		"latest",
		"strategy",
		"workday_health_index",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for i, r := range results {
		latest := ""
		if !r.Latest.IsZero() {
			latest = r.Latest.Format(contract.DateTimeFormat)
		}
		rec := []string{
			strconv.Itoa(i + 1),                  // Rank
			string(r.Domain),                     // Domain
			fmtFloat(r.LocalScore),               // Local Score
			fmtFloat(r.FinalScore),               // Final Score
			contract.GetPlainLabel(r.FinalScore), // Label
			fmt.Sprintf(intFmt, r.Entries),       // Entries
			latest,                               // Latest Entry Time
			string(r.Strategy),                   // Strategy
			fmtFloat(report.WorkdayHealthIndex),  // Composite index
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// writeJSONResultsForScores writes the evaluation results in JSON format.
func writeJSONResultsForScores(w io.Writer, report *schema.ScoreReport, results []schema.DomainResult) error {
	// 1. Prepare the data structure for JSON with rank and label added
	type JSONDomainResult struct {
		Rank  int    `json:"rank"`
		Label string `json:"label"`
		schema.DomainResult
	}

	ranked := make([]JSONDomainResult, len(results))
	for i, r := range results {
		ranked[i] = JSONDomainResult{
			Rank:         i + 1,
			Label:        contract.GetPlainLabel(r.FinalScore),
			DomainResult: r,
		}
	}

	output := struct {
		WorkdayHealthIndex float64            `json:"workday_health_index"`
		Domains            []JSONDomainResult `json:"domains"`
	}{
		WorkdayHealthIndex: report.WorkdayHealthIndex,
		Domains:            ranked,
	}

	// 2. Use the generic JSON writer
	return writeJSON(w, output)
}
