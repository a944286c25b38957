package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/workwellhq/workwell/schema"
)

// weeklyNow is the injected reference time for week-window tests.
var weeklyNow = time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

func weeklyEntry(daysAgo int, f schema.Fields) schema.Entry {
	return schema.Entry{
		Timestamp: weeklyNow.AddDate(0, 0, -daysAgo).Format(time.RFC3339),
		UserInput: f,
	}
}

// TestWeekWindows checks the disjoint seven-day window boundaries.
func TestWeekWindows(t *testing.T) {
	h := schema.History{
		{Timestamp: weeklyNow.AddDate(0, 0, -15).Format(time.RFC3339), UserInput: schema.Fields{}},
		{Timestamp: weeklyNow.AddDate(0, 0, -14).Format(time.RFC3339), UserInput: schema.Fields{}},
		{Timestamp: weeklyNow.AddDate(0, 0, -8).Format(time.RFC3339), UserInput: schema.Fields{}},
		{Timestamp: weeklyNow.AddDate(0, 0, -7).Format(time.RFC3339), UserInput: schema.Fields{}},
		{Timestamp: weeklyNow.AddDate(0, 0, -1).Format(time.RFC3339), UserInput: schema.Fields{}},
		{Timestamp: "not a time", UserInput: schema.Fields{}},
	}

	// Exactly seven days ago sits in this week, not last week.
	assert.Len(t, thisWeek(h, weeklyNow), 2)
	assert.Len(t, lastWeek(h, weeklyNow), 2)
}

// TestSedentaryMetric checks seated-duration averaging and deltas.
func TestSedentaryMetric(t *testing.T) {
	t.Run("both weeks present", func(t *testing.T) {
		h := schema.History{
			weeklyEntry(10, schema.Fields{"seated_duration": "1 hour"}),
			weeklyEntry(9, schema.Fields{"seated_duration": "2 hours"}),
			weeklyEntry(3, schema.Fields{"seated_duration": "3+ hours"}),
			weeklyEntry(1, schema.Fields{"seated_duration": "30 min"}),
		}
		m := sedentaryMetric(h, weeklyNow)
		assert.InDelta(t, 2.0, *m.ThisWeekAvgHours, 0.001)
		assert.InDelta(t, 1.5, *m.LastWeekAvgHours, 0.001)
		assert.InDelta(t, 0.5, *m.ChangeHours, 0.001)
		assert.InDelta(t, 33.3, *m.ChangePercent, 0.001)
	})

	t.Run("unknown label yields no sample", func(t *testing.T) {
		h := schema.History{
			weeklyEntry(1, schema.Fields{"seated_duration": "All day"}),
		}
		m := sedentaryMetric(h, weeklyNow)
		assert.Nil(t, m.ThisWeekAvgHours)
		assert.Nil(t, m.ChangeHours)
	})

	t.Run("missing last week suppresses deltas", func(t *testing.T) {
		h := schema.History{
			weeklyEntry(2, schema.Fields{"seated_duration": "2 hours"}),
		}
		m := sedentaryMetric(h, weeklyNow)
		assert.InDelta(t, 2.0, *m.ThisWeekAvgHours, 0.001)
		assert.Nil(t, m.LastWeekAvgHours)
		assert.Nil(t, m.ChangeHours)
		assert.Nil(t, m.ChangePercent)
	})
}

// TestHydrationCompliant tests the per-entry compliance rule.
func TestHydrationCompliant(t *testing.T) {
	tests := []struct {
		name     string
		fields   schema.Fields
		expected bool
	}{
		{
			name:     "well hydrated",
			fields:   schema.Fields{"water_intake": 9.0, "urine_color": "Pale Yellow"},
			expected: true,
		},
		{
			name:     "intake below eight units",
			fields:   schema.Fields{"water_intake": 7.0},
			expected: false,
		},
		{
			name:     "dark urine overrides intake",
			fields:   schema.Fields{"water_intake": 10.0, "urine_color": "Amber/Brown"},
			expected: false,
		},
		{
			name:     "parched overrides intake",
			fields:   schema.Fields{"water_intake": 10.0, "thirst_level": "Very Thirsty / Parched"},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HydrationCompliant(tt.fields))
		})
	}
}

// TestHydrationMetric checks week-over-week compliance rates.
func TestHydrationMetric(t *testing.T) {
	h := schema.History{
		weeklyEntry(10, schema.Fields{"water_intake": 10.0}),
		weeklyEntry(9, schema.Fields{"water_intake": 3.0}),
		weeklyEntry(2, schema.Fields{"water_intake": 9.0}),
		weeklyEntry(1, schema.Fields{"water_intake": 8.0}),
	}
	m := hydrationMetric(h, weeklyNow)
	assert.InDelta(t, 100.0, *m.ThisWeekCompliancePercent, 0.001)
	assert.InDelta(t, 50.0, *m.LastWeekCompliancePercent, 0.001)
	assert.InDelta(t, 50.0, *m.ChangePercentPoints, 0.001)
}

// TestSleepMetric checks averaging and the half-hour trend band.
func TestSleepMetric(t *testing.T) {
	tests := []struct {
		name      string
		thisWeek  []float64
		lastWeek  []float64
		expTrend  schema.SleepTrend
		expChange float64
	}{
		{
			name:      "improving",
			thisWeek:  []float64{8, 8},
			lastWeek:  []float64{7, 7},
			expTrend:  schema.TrendImproving,
			expChange: 1.0,
		},
		{
			name:      "worsening",
			thisWeek:  []float64{6},
			lastWeek:  []float64{7.5},
			expTrend:  schema.TrendWorsening,
			expChange: -1.5,
		},
		{
			name:      "stable inside the band",
			thisWeek:  []float64{7.4},
			lastWeek:  []float64{7},
			expTrend:  schema.TrendStable,
			expChange: 0.4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var h schema.History
			for i, v := range tt.lastWeek {
				h = append(h, weeklyEntry(10-i, schema.Fields{"sleep_hours": v}))
			}
			for i, v := range tt.thisWeek {
				h = append(h, weeklyEntry(3-i, schema.Fields{"sleep_hours": v}))
			}
			m := sleepMetric(h, weeklyNow)
			assert.InDelta(t, tt.expChange, *m.ChangeHours, 0.001)
			assert.Equal(t, tt.expTrend, *m.Trend)
		})
	}

	t.Run("no data propagates nil", func(t *testing.T) {
		m := sleepMetric(nil, weeklyNow)
		assert.Nil(t, m.ThisWeekAvgSleepHours)
		assert.Nil(t, m.Trend)
	})
}

// TestRemindersMetric counts completed reminders per window.
func TestRemindersMetric(t *testing.T) {
	h := schema.History{
		weeklyEntry(9, schema.Fields{"completed": true}),
		weeklyEntry(8, schema.Fields{"completed": false}),
		weeklyEntry(3, schema.Fields{"completed": true}),
		weeklyEntry(2, schema.Fields{"completed": true}),
		weeklyEntry(1, schema.Fields{"completed": "yes"}), // non-bool ignored
	}
	m := remindersMetric(h, weeklyNow)
	assert.Equal(t, 2, *m.ThisWeekCompleted)
	assert.Equal(t, 1, *m.LastWeekCompleted)
	assert.Equal(t, 1, *m.Change)
}

// TestHighRiskMetric counts recorded index values at the threshold.
func TestHighRiskMetric(t *testing.T) {
	h := schema.History{
		weeklyEntry(9, schema.Fields{"workday_health_index": 72.0}),
		weeklyEntry(8, schema.Fields{"workday_health_index": 40.0}),
		weeklyEntry(2, schema.Fields{"workday_health_index": 60.0}),
		weeklyEntry(1, schema.Fields{"workday_health_index": 59.9}),
	}
	m := highRiskMetric(h, weeklyNow, schema.DefaultHighRiskThreshold)
	assert.InDelta(t, 60.0, m.Threshold, 0.001)
	assert.Equal(t, 1, *m.ThisWeekHighRisk) // 60.0 counts, 59.9 does not
	assert.Equal(t, 1, *m.LastWeekHighRisk)
	assert.Equal(t, 0, *m.Change)
}

// TestComputeWeeklyReport wires all metrics through the top-level entry.
func TestComputeWeeklyReport(t *testing.T) {
	in := WeeklyInputs{
		MSK:       schema.History{weeklyEntry(1, schema.Fields{"seated_duration": "2 hours"})},
		Sleep:     schema.History{weeklyEntry(1, schema.Fields{"sleep_hours": 7.0})},
		Reminders: schema.History{weeklyEntry(1, schema.Fields{"completed": true})},
	}
	report := ComputeWeeklyReport(in, weeklyNow, schema.DefaultHighRiskThreshold)
	assert.InDelta(t, 2.0, *report.Sedentary.ThisWeekAvgHours, 0.001)
	assert.Nil(t, report.Hydration.ThisWeekCompliancePercent)
	assert.InDelta(t, 7.0, *report.Sleep.ThisWeekAvgSleepHours, 0.001)
	assert.Equal(t, 1, *report.Reminders.ThisWeekCompleted)
	assert.Nil(t, report.HighRiskDays.ThisWeekHighRisk)
}
