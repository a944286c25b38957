package core

import (
	"fmt"

	"github.com/workwellhq/workwell/schema"
)

// weightedAverage combines scores with positional weights, dividing by
// the sum of the weights actually used so that truncated windows stay
// valid. A length mismatch is a caller bug, the one condition in this
// package surfaced as an error rather than defaulted.
func weightedAverage(scores, weights []float64) (float64, error) {
	if len(scores) == 0 {
		return 0.0, nil
	}
	if len(scores) != len(weights) {
		return 0, fmt.Errorf("scores and weights length mismatch: %d != %d", len(scores), len(weights))
	}
	var total, totalW float64
	for i, s := range scores {
		total += s * weights[i]
		totalW += weights[i]
	}
	if totalW <= 0 {
		return 0.0, nil
	}
	return total / totalW, nil
}

// recencyWeightedScore aggregates a window of entry scores, oldest to
// newest, with recency-preferring weights and spike protection: recent
// entries dominate the trend, but a single severe recent spike must not
// be diluted away, so the window maximum keeps a fixed 25% share.
func recencyWeightedScore(scores []float64) float64 {
	if len(scores) == 0 {
		return 0.0
	}

	weights := schema.RecencyWindowWeights
	if len(scores) < len(weights) {
		weights = weights[:len(scores)]
	}

	// Weights apply newest-first.
	newestFirst := make([]float64, len(scores))
	for i, s := range scores {
		newestFirst[len(scores)-1-i] = s
	}

	wavg, err := weightedAverage(newestFirst, weights)
	if err != nil {
		// Unreachable: weights were sliced to the window size above.
		return 0.0
	}

	maxScore := scores[0]
	for _, s := range scores[1:] {
		if s > maxScore {
			maxScore = s
		}
	}

	return clamp(0.75*wavg+0.25*maxScore, 0, 100)
}

// slowWindowScore aggregates the last three entries of a slow-changing
// domain with a plain weighted average. No spike term: ergonomic
// conditions change rarely and spikes are not meaningful there.
func slowWindowScore(scores []float64) float64 {
	if len(scores) == 0 {
		return 0.0
	}

	weights := schema.SlowWindowWeights
	if len(scores) < len(weights) {
		weights = weights[:len(scores)]
	}

	newestFirst := make([]float64, len(scores))
	for i, s := range scores {
		newestFirst[len(scores)-1-i] = s
	}

	avg, err := weightedAverage(newestFirst, weights)
	if err != nil {
		return 0.0
	}
	return clamp(avg, 0, 100)
}

// windowScores scores the last n entries of a history independently,
// oldest to newest.
func windowScores(d schema.Domain, h schema.History, n int) []float64 {
	tail := h.Tail(n)
	if len(tail) == 0 {
		return nil
	}
	scores := make([]float64, 0, len(tail))
	for _, e := range tail {
		scores = append(scores, ScoreEntry(d, e.UserInput))
	}
	return scores
}

// Window sizes per aggregation strategy.
const (
	recencyWindow = 5
	slowWindow    = 3
	trendWindow   = 3
)

// LocalScore computes a domain's temporally aggregated score at the
// current evaluation moment. An empty history yields 0.0, meaning "no
// data" rather than "no risk".
func LocalScore(d schema.Domain, h schema.History) float64 {
	if len(h) == 0 {
		return 0.0
	}

	switch schema.DomainStrategy(d) {
	case schema.SlowStrategy:
		return slowWindowScore(windowScores(d, h, slowWindow))
	case schema.SnapshotStrategy:
		// Biometric profile does not fluctuate entry to entry.
		latest, _ := h.Latest()
		return ScoreEntry(d, latest.UserInput)
	case schema.TrendStrategy:
		return trendAdjustedScore(d, h)
	default:
		return recencyWeightedScore(windowScores(d, h, recencyWindow))
	}
}
