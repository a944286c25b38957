package schema

import "time"

// EvaluationRun represents one recorded scoring evaluation.
type EvaluationRun struct {
	EvaluationID  int64      `json:"evaluation_id"`
	StartTime     time.Time  `json:"start_time"`
	EndTime       *time.Time `json:"end_time"`
	RunDurationMs *int32     `json:"run_duration_ms"`
	DomainsScored int32      `json:"domains_scored"`
	ConfigParams  *string    `json:"config_params"` // JSON-encoded evaluation parameters
}

// DomainScoreRecord is one domain's scores within a recorded evaluation.
type DomainScoreRecord struct {
	EvaluationID int64     `json:"evaluation_id"`
	Domain       string    `json:"domain"`
	EvaluatedAt  time.Time `json:"evaluated_at"`
	WHI          float64   `json:"workday_health_index"`
	LocalScore   float64   `json:"local_score"`
	FinalScore   float64   `json:"final_score"`
	Label        string    `json:"label"`
}

// SnapshotStatus summarizes the state of the snapshot store.
type SnapshotStatus struct {
	Backend      DatabaseBackend `json:"backend"`
	Location     string          `json:"location"`
	Evaluations  int64           `json:"evaluations"`
	DomainScores int64           `json:"domain_scores"`
	LatestRun    *time.Time      `json:"latest_run"`
}
