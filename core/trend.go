package core

import "github.com/workwellhq/workwell/schema"

// trendMarkers are the lab values tracked for longitudinal trend
// penalties. Vitamin levels stay out: their rules are deficiency bands,
// not trajectories.
var trendMarkers = []string{"glucose", "hba1c", "cholesterol", "triglycerides"}

// Trend penalty bounds and blend shares.
const (
	trendPenaltyFloor = -10.0
	trendPenaltyCeil  = 15.0
	trendLatestShare  = 0.70
	trendAdjustShare  = 0.30
)

// markerTrendPenalty maps the percent change between the two most
// recent readings of one marker to a penalty. A steep rise is penalized
// harder than a moderate one; a clear improvement earns a small credit;
// anything in between contributes nothing. Fewer than two readings, or
// a non-positive previous value, contribute zero.
func markerTrendPenalty(values []float64) float64 {
	if len(values) < 2 {
		return 0.0
	}
	prev := values[len(values)-2]
	last := values[len(values)-1]
	if prev <= 0 {
		return 0.0
	}

	change := (last - prev) / prev
	switch {
	case change >= 0.20:
		return 15.0
	case change >= 0.10:
		return 8.0
	case change <= -0.10:
		return -6.0
	}
	return 0.0
}

// trendAdjustedScore blends the latest entry's score with a
// trend-penalized variant: 70% latest, 30% latest plus the summed
// marker penalties. The total penalty is clamped to [-10, +15] so no
// single blood panel can swing the domain by itself.
func trendAdjustedScore(d schema.Domain, h schema.History) float64 {
	latest, ok := h.Latest()
	if !ok {
		return 0.0
	}
	latestScore := ScoreEntry(d, latest.UserInput)

	tail := h.Tail(trendWindow)
	var penalty float64
	for _, marker := range trendMarkers {
		values := make([]float64, 0, len(tail))
		for _, e := range tail {
			values = append(values, numberField(e.UserInput, marker))
		}
		penalty += markerTrendPenalty(values)
	}
	penalty = clamp(penalty, trendPenaltyFloor, trendPenaltyCeil)

	adjusted := clamp(latestScore+penalty, 0, 100)
	return clamp(trendLatestShare*latestScore+trendAdjustShare*adjusted, 0, 100)
}
