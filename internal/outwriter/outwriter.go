// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/workwellhq/workwell/internal/contract"
	"github.com/workwellhq/workwell/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteScores prints evaluation results using the configured output format.
func (ow *OutWriter) WriteScores(report *schema.ScoreReport, results []schema.DomainResult, cfg *contract.Config, duration time.Duration) error {
	return WriteScoreResults(report, results, cfg, duration)
}

// WriteWeekly prints week-over-week metrics using the configured output format.
func (ow *OutWriter) WriteWeekly(report *schema.WeeklyReport, cfg *contract.Config) error {
	return WriteWeeklyReport(report, cfg)
}

// WriteDomains prints the domain scoring reference using the configured output format.
func (ow *OutWriter) WriteDomains(cfg *contract.Config) error {
	return PrintDomainReference(cfg)
}

// WriteStatus prints a snapshot store summary using the configured output format.
func (ow *OutWriter) WriteStatus(status schema.SnapshotStatus, cfg *contract.Config) error {
	return WriteSnapshotStatus(status, cfg)
}

// WriteHistory prints recorded evaluation runs using the configured output format.
func (ow *OutWriter) WriteHistory(runs []schema.EvaluationRun, cfg *contract.Config) error {
	return WriteEvaluationHistory(runs, cfg)
}

// WriteExport prints recorded domain scores using the configured output format.
func (ow *OutWriter) WriteExport(records []schema.DomainScoreRecord, cfg *contract.Config) error {
	return WriteDomainScoreExport(records, cfg)
}
