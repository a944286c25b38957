package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/workwellhq/workwell/internal/contract"
	"github.com/workwellhq/workwell/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteWeeklyReport outputs the week-over-week metrics, dispatching based on the output format configured.
func WriteWeeklyReport(report *schema.WeeklyReport, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, report)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w, []string{"metric", "this_week", "last_week", "change", "note"}, func(cw *csv.Writer) error {
				return writeWeeklyRows(cw, report, fmtFloat)
			})
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is not supported for weekly metrics")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeWeeklyTable(w, report, fmtFloat)
		}, "Wrote table")
	}
	return nil
}

// weeklyRows flattens the report into display rows shared by the table
// and CSV writers. Missing windows surface as n/a rather than zeros.
func weeklyRows(report *schema.WeeklyReport, fmtFloat func(float64) string) [][]string {
	sedentaryNote := ""
	if report.Sedentary.ChangePercent != nil {
		sedentaryNote = fmt.Sprintf("%+.1f%%", *report.Sedentary.ChangePercent)
	}

	sleepNote := ""
	if report.Sleep.Trend != nil {
		sleepNote = string(*report.Sleep.Trend)
	}

	return [][]string{
		{
			"Seated block (hrs)",
			fmtFloatPtr(report.Sedentary.ThisWeekAvgHours, fmtFloat),
			fmtFloatPtr(report.Sedentary.LastWeekAvgHours, fmtFloat),
			fmtFloatPtr(report.Sedentary.ChangeHours, fmtFloat),
			sedentaryNote,
		},
		{
			"Hydration compliance (%)",
			fmtFloatPtr(report.Hydration.ThisWeekCompliancePercent, fmtFloat),
			fmtFloatPtr(report.Hydration.LastWeekCompliancePercent, fmtFloat),
			fmtFloatPtr(report.Hydration.ChangePercentPoints, fmtFloat),
			"",
		},
		{
			"Sleep (hrs)",
			fmtFloatPtr(report.Sleep.ThisWeekAvgSleepHours, fmtFloat),
			fmtFloatPtr(report.Sleep.LastWeekAvgSleepHours, fmtFloat),
			fmtFloatPtr(report.Sleep.ChangeHours, fmtFloat),
			sleepNote,
		},
		{
			"Reminders completed",
			fmtIntPtr(report.Reminders.ThisWeekCompleted),
			fmtIntPtr(report.Reminders.LastWeekCompleted),
			fmtIntPtr(report.Reminders.Change),
			"",
		},
		{
			"High-risk days",
			fmtIntPtr(report.HighRiskDays.ThisWeekHighRisk),
			fmtIntPtr(report.HighRiskDays.LastWeekHighRisk),
			fmtIntPtr(report.HighRiskDays.Change),
			fmt.Sprintf("threshold %.0f", report.HighRiskDays.Threshold),
		},
	}
}

// writeWeeklyTable generates and writes the human-readable table.
func writeWeeklyTable(w io.Writer, report *schema.WeeklyReport, fmtFloat func(float64) string) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Metric", "This Week", "Last Week", "Change", "Note"})

	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	if err := table.Bulk(weeklyRows(report, fmtFloat)); err != nil {
		return err
	}
	return table.Render()
}

// writeWeeklyRows writes the weekly metrics as CSV rows.
func writeWeeklyRows(w *csv.Writer, report *schema.WeeklyReport, fmtFloat func(float64) string) error {
	for _, row := range weeklyRows(report, fmtFloat) {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
