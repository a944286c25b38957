// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"time"

	"github.com/workwellhq/workwell/schema"
)

// HistorySource supplies the raw questionnaire histories for an
// evaluation. Loading is silent on missing or malformed inputs: a
// domain that cannot be read yields an empty history, never an error.
// This allows the scoring core to be tested with in-memory histories.
type HistorySource interface {
	// DomainHistory returns the history for a scored domain.
	DomainHistory(d schema.Domain) schema.History

	// RemindersHistory returns the reminder completion log.
	RemindersHistory() schema.History

	// SnapshotHistory returns previously recorded index snapshots.
	SnapshotHistory() schema.History
}

// SnapshotStore persists evaluation runs and their per-domain scores.
// This allows the store to be mocked for testing and disabled entirely
// with the none backend.
type SnapshotStore interface {
	// BeginEvaluation creates a new evaluation run and returns its unique ID.
	BeginEvaluation(startTime time.Time, configParams map[string]any) (int64, error)

	// EndEvaluation updates the evaluation run with completion data.
	EndEvaluation(evaluationID int64, endTime time.Time, domainsScored int) error

	// RecordDomainScores stores the per-domain scores of an evaluation.
	RecordDomainScores(evaluationID int64, records []schema.DomainScoreRecord) error

	// ListEvaluations returns recent evaluation runs, newest first.
	ListEvaluations(limit int) ([]schema.EvaluationRun, error)

	// ExportDomainScores returns recorded domain scores, newest run first.
	ExportDomainScores(limit int) ([]schema.DomainScoreRecord, error)

	// WHIHistory converts recorded evaluations into a synthetic history
	// of workday_health_index entries, oldest first, for the weekly
	// high-risk-days metric.
	WHIHistory(limit int) (schema.History, error)

	// GetStatus summarizes the state of the store.
	GetStatus() (schema.SnapshotStatus, error)

	// Clear removes all recorded evaluations and scores.
	Clear() error

	// Close releases the underlying database handle.
	Close() error
}
