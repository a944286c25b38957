// Package parquet provides data structures and functions for exporting
// recorded evaluation data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/workwellhq/workwell/schema"
)

// EvaluationRun represents a single recorded evaluation run with metadata.
// This struct maps to the workwell_evaluation_runs database table.
type EvaluationRun struct {
	// EvaluationID is the unique identifier for this evaluation run
	EvaluationID int64 `parquet:"evaluation_id,snappy"`

	// StartTime is when the evaluation began (stored as TIMESTAMP with nanosecond precision)
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the evaluation completed (nullable)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// RunDurationMs is the duration of the evaluation run in milliseconds (nullable)
	RunDurationMs *int32 `parquet:"run_duration_ms,optional,snappy"`

	// DomainsScored is the number of domains scored in this run
	DomainsScored int32 `parquet:"domains_scored,snappy"`

	// ConfigParams contains the JSON-encoded evaluation parameters (nullable)
	ConfigParams *string `parquet:"config_params,optional,snappy"`
}

// DomainScore represents one domain's scores within a recorded evaluation.
// This struct maps to the workwell_domain_scores database table.
type DomainScore struct {
	// EvaluationID references the parent evaluation run
	EvaluationID int64 `parquet:"evaluation_id,snappy"`

	// Domain is the health category that was scored
	Domain string `parquet:"domain,snappy"`

	// EvaluatedAt is when this domain was scored
	EvaluatedAt time.Time `parquet:"evaluated_at,snappy"`

	// WorkdayHealthIndex is the composite index of the parent run
	WorkdayHealthIndex float64 `parquet:"workday_health_index,snappy"`

	// LocalScore is the domain score before global pressure adjustment
	LocalScore float64 `parquet:"local_score,snappy"`

	// FinalScore is the domain score after global pressure adjustment
	FinalScore float64 `parquet:"final_score,snappy"`

	// ScoreLabel is the risk band of the final score
	ScoreLabel string `parquet:"score_label,snappy"`
}

// WriteEvaluationRunsParquet writes a slice of EvaluationRun structs to a Parquet file.
func WriteEvaluationRunsParquet(data []EvaluationRun, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the EvaluationRun struct tags
	writer := parquet.NewGenericWriter[EvaluationRun](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteDomainScoresParquet writes a slice of DomainScore structs to a Parquet file.
func WriteDomainScoresParquet(data []DomainScore, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the DomainScore struct tags
	writer := parquet.NewGenericWriter[DomainScore](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// ConvertEvaluationRuns converts schema.EvaluationRun to EvaluationRun for Parquet export.
func ConvertEvaluationRuns(records []schema.EvaluationRun) []EvaluationRun {
	result := make([]EvaluationRun, len(records))
	for i, record := range records {
		result[i] = EvaluationRun{
			EvaluationID:  record.EvaluationID,
			StartTime:     record.StartTime,
			EndTime:       record.EndTime,
			RunDurationMs: record.RunDurationMs,
			DomainsScored: record.DomainsScored,
			ConfigParams:  record.ConfigParams,
		}
	}
	return result
}

// ConvertDomainScoreRecords converts schema.DomainScoreRecord to DomainScore for Parquet export.
func ConvertDomainScoreRecords(records []schema.DomainScoreRecord) []DomainScore {
	result := make([]DomainScore, len(records))
	for i, record := range records {
		result[i] = DomainScore{
			EvaluationID:       record.EvaluationID,
			Domain:             record.Domain,
			EvaluatedAt:        record.EvaluatedAt,
			WorkdayHealthIndex: record.WHI,
			LocalScore:         record.LocalScore,
			FinalScore:         record.FinalScore,
			ScoreLabel:         record.Label,
		}
	}
	return result
}
