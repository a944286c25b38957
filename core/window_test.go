package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/workwellhq/workwell/schema"
)

// TestWeightedAverage tests the truncation-safe weighted average.
func TestWeightedAverage(t *testing.T) {
	t.Run("empty scores", func(t *testing.T) {
		avg, err := weightedAverage(nil, nil)
		assert.NoError(t, err)
		assert.Zero(t, avg)
	})

	t.Run("length mismatch errors", func(t *testing.T) {
		_, err := weightedAverage([]float64{1, 2}, []float64{0.5})
		assert.Error(t, err)
	})

	t.Run("single value with partial weight", func(t *testing.T) {
		avg, err := weightedAverage([]float64{100}, []float64{0.4})
		assert.NoError(t, err)
		assert.InDelta(t, 100.0, avg, 0.001)
	})

	t.Run("two values renormalized", func(t *testing.T) {
		// (80*0.6 + 40*0.3) / 0.9
		avg, err := weightedAverage([]float64{80, 40}, []float64{0.6, 0.3})
		assert.NoError(t, err)
		assert.InDelta(t, 66.666, avg, 0.001)
	})
}

// TestRecencyWeightedScore checks the spike-protected recency window.
func TestRecencyWeightedScore(t *testing.T) {
	tests := []struct {
		name     string
		scores   []float64 // oldest to newest
		expected float64
	}{
		{
			name:     "empty window",
			scores:   nil,
			expected: 0,
		},
		{
			name:     "single entry is its own score",
			scores:   []float64{100},
			expected: 100,
		},
		{
			name:     "uniform window is stable",
			scores:   []float64{50, 50, 50, 50, 50},
			expected: 50,
		},
		{
			name: "recent spike keeps a floor",
			// wavg: newest gets 0.40, so 100*0.40 = 40; spike term
			// lifts it to 0.75*40 + 0.25*100.
			scores:   []float64{0, 0, 0, 0, 100},
			expected: 55,
		},
		{
			name: "old spike fades",
			// wavg: oldest gets 0.08, so 100*0.08 = 8; 0.75*8 + 25.
			scores:   []float64{100, 0, 0, 0, 0},
			expected: 31,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, recencyWeightedScore(tt.scores), 0.001)
		})
	}
}

// TestSlowWindowScore checks the plain weighted average used for
// slow-changing domains.
func TestSlowWindowScore(t *testing.T) {
	tests := []struct {
		name     string
		scores   []float64 // oldest to newest
		expected float64
	}{
		{
			name:     "empty window",
			scores:   nil,
			expected: 0,
		},
		{
			name:     "single entry",
			scores:   []float64{42},
			expected: 42,
		},
		{
			name: "two entries renormalized",
			// (60*0.6 + 20*0.3) / 0.9
			scores:   []float64{20, 60},
			expected: 46.666,
		},
		{
			name: "full window",
			// 90*0.6 + 60*0.3 + 30*0.1
			scores:   []float64{30, 60, 90},
			expected: 75,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, slowWindowScore(tt.scores), 0.001)
		})
	}
}

// TestLocalScore covers strategy dispatch over real histories.
func TestLocalScore(t *testing.T) {
	now := time.Now().UTC()
	entryAt := func(offset time.Duration, f schema.Fields) schema.Entry {
		return schema.Entry{
			Timestamp: now.Add(offset).Format(time.RFC3339),
			UserInput: f,
		}
	}

	t.Run("empty history", func(t *testing.T) {
		assert.Zero(t, LocalScore(schema.DomainMSK, nil))
	})

	t.Run("snapshot uses latest entry only", func(t *testing.T) {
		h := schema.History{
			entryAt(-48*time.Hour, schema.Fields{"rhr": 105.0}),
			entryAt(-1*time.Hour, schema.Fields{"rhr": 65.0}),
		}
		assert.Zero(t, LocalScore(schema.DomainBaseline, h))
	})

	t.Run("recency window over msk entries", func(t *testing.T) {
		h := schema.History{
			entryAt(-2*time.Hour, schema.Fields{"pain_level": 10.0}),
		}
		// Raw 45 over 120: 37.5 local, single entry so wavg == max.
		assert.InDelta(t, 37.5, LocalScore(schema.DomainMSK, h), 0.001)
	})
}
