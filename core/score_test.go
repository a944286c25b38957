package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/workwellhq/workwell/schema"
)

// TestNormalizeScore tests the raw-point normalization.
func TestNormalizeScore(t *testing.T) {
	tests := []struct {
		name     string
		raw      float64
		rawMax   float64
		expected float64
	}{
		{
			name:     "zero raw",
			raw:      0,
			rawMax:   100,
			expected: 0,
		},
		{
			name:     "half of max",
			raw:      60,
			rawMax:   120,
			expected: 50,
		},
		{
			name:     "above max clamps to 100",
			raw:      180,
			rawMax:   120,
			expected: 100,
		},
		{
			name:     "negative raw clamps to 0",
			raw:      -9,
			rawMax:   100,
			expected: 0,
		},
		{
			name:     "zero denominator",
			raw:      50,
			rawMax:   0,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, normalizeScore(tt.raw, tt.rawMax), 0.001)
		})
	}
}

// TestScoreEntryMSK checks the musculoskeletal scorer against a
// hand-computed entry.
func TestScoreEntryMSK(t *testing.T) {
	fields := schema.Fields{
		"pain_level":   10.0,
		"onset_timing": "Morning / On waking",
		"pain_nature":  "Numbness/Tingling",
	}

	// 45 + 18 + 22 = 85 raw points over a 120 ceiling.
	score := ScoreEntry(schema.DomainMSK, fields)
	assert.InDelta(t, 70.833, score, 0.001)
	assert.InDelta(t, 70.8, schema.Round1(score), 0.001)
}

// TestScoreEntryWorkspace checks flag and category rules together.
func TestScoreEntryWorkspace(t *testing.T) {
	t.Run("posture and breaks", func(t *testing.T) {
		fields := schema.Fields{
			"good_posture": false,
			"breaks":       "No breaks",
		}
		// 18 + 24 = 42 raw points over a 100 ceiling.
		assert.InDelta(t, 42.0, ScoreEntry(schema.DomainWorkspace, fields), 0.001)
	})

	t.Run("absent flag does not fire", func(t *testing.T) {
		assert.InDelta(t, 0.0, ScoreEntry(schema.DomainWorkspace, schema.Fields{}), 0.001)
	})

	t.Run("unknown label contributes nothing", func(t *testing.T) {
		fields := schema.Fields{"breaks": "Constant breaks"}
		assert.InDelta(t, 0.0, ScoreEntry(schema.DomainWorkspace, fields), 0.001)
	})
}

// TestScoreEntryHydration checks the inverse intake ladder, including
// the missing-field case which lands on the lowest rung.
func TestScoreEntryHydration(t *testing.T) {
	tests := []struct {
		name     string
		fields   schema.Fields
		expected float64
	}{
		{
			name:     "missing intake is the worst rung",
			fields:   schema.Fields{},
			expected: 35.0,
		},
		{
			name:     "well hydrated",
			fields:   schema.Fields{"water_intake": 14.0},
			expected: 0.0,
		},
		{
			name:     "mid ladder",
			fields:   schema.Fields{"water_intake": 7.0},
			expected: 6.0,
		},
		{
			name: "intake plus dark urine",
			fields: schema.Fields{
				"water_intake": 3.0,
				"urine_color":  "Amber/Brown",
			},
			expected: 53.0, // 25 + 28
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, ScoreEntry(schema.DomainHydration, tt.fields), 0.001)
		})
	}
}

// TestScoreEntryRelief verifies mitigating rules floor out and the
// accumulator never goes negative.
func TestScoreEntryRelief(t *testing.T) {
	fields := schema.Fields{
		"pain_level":     2.0,
		"relief_methods": []any{"Stretching", "Heat", "Massage", "Walk", "Medication"},
	}
	// 9 raw pain points, relief floored at -9: net zero.
	assert.InDelta(t, 0.0, ScoreEntry(schema.DomainMSK, fields), 0.001)
}

// TestScoreEntryBaseline checks the derived biometric rules.
func TestScoreEntryBaseline(t *testing.T) {
	fields := schema.Fields{
		"height":       170.0,
		"weight":       95.0, // BMI ~32.9
		"bp_systolic":  142.0,
		"bp_diastolic": 88.0,
		"rhr":          91.0,
	}
	// 22 + 24 + 12 = 58 raw points over a 110 ceiling.
	assert.InDelta(t, 52.727, ScoreEntry(schema.DomainBaseline, fields), 0.001)
}

// TestScoreEntryPlaceholder ensures domains without a rule set score zero.
func TestScoreEntryPlaceholder(t *testing.T) {
	for _, d := range []schema.Domain{schema.DomainMental, schema.DomainSleep, schema.DomainProductivity} {
		assert.Zero(t, ScoreEntry(d, schema.Fields{"anything": 99}))
	}
}

// TestExplainEntry validates per-rule breakdown recording.
func TestExplainEntry(t *testing.T) {
	t.Run("records nonzero contributions", func(t *testing.T) {
		fields := schema.Fields{
			"pain_level":  10.0,
			"pain_nature": "Sharp Pain",
		}
		breakdown := ExplainEntry(schema.DomainMSK, fields)
		assert.InDelta(t, 45.0, breakdown["pain_level"], 0.001)
		assert.InDelta(t, 16.0, breakdown["pain_nature"], 0.001)
		assert.NotContains(t, breakdown, "onset_timing")
	})

	t.Run("placeholder domain yields nil", func(t *testing.T) {
		assert.Nil(t, ExplainEntry(schema.DomainMental, schema.Fields{}))
	})
}
