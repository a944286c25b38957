package schema

// CheckViolation is one threshold breach found during a check run.
type CheckViolation struct {
	Target    string  `json:"target"` // "whi" or a domain name
	Score     float64 `json:"score"`
	Threshold float64 `json:"threshold"`
}

// CheckResult is the outcome of gating an evaluation against
// configured thresholds.
type CheckResult struct {
	Passed     bool               `json:"passed"`
	Thresholds map[string]float64 `json:"thresholds"`
	Observed   map[string]float64 `json:"observed"`
	Violations []CheckViolation   `json:"violations"`
}
