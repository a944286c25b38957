package schema

import (
	"math"
	"time"
)

// ScoreReport is the output of one full scoring evaluation. All nine
// declared domains appear in both maps; values are rounded to one
// decimal for presentation.
type ScoreReport struct {
	WorkdayHealthIndex float64            `json:"workday_health_index"`
	LocalScores        map[Domain]float64 `json:"local_scores"`
	FinalScores        map[Domain]float64 `json:"final_scores"`
}

// DomainResult carries one domain's scores plus the metadata used by
// detail and explain output. Results are ranked by final score.
type DomainResult struct {
	Domain     Domain             `json:"domain"`
	LocalScore float64            `json:"local_score"`
	FinalScore float64            `json:"final_score"`
	Entries    int                `json:"entries"`              // entries on record for the domain
	Latest     time.Time          `json:"latest,omitzero"`      // timestamp of the newest entry
	Breakdown  map[string]float64 `json:"breakdown,omitempty"`  // raw points per rule for the newest entry
	Strategy   Strategy           `json:"strategy"`             // aggregation strategy applied
}

// Round1 rounds to one decimal, the presentation precision of all
// externally visible scores.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Round2 rounds to two decimals, used by the weekly hour aggregates.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
