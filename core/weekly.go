package core

import (
	"time"

	"github.com/workwellhq/workwell/schema"
)

// WeeklyInputs are the raw histories consumed by the weekly metrics.
// They are the same append-only histories the scoring pipeline reads,
// plus the reminder log and recorded index snapshots.
type WeeklyInputs struct {
	MSK       schema.History
	Hydration schema.History
	Sleep     schema.History
	Reminders schema.History
	Snapshots schema.History // recorded workday_health_index values
}

// ComputeWeeklyReport computes all week-over-week behavioral metrics
// against the given reference time. The reference time is injected so
// evaluations are deterministic and testable; core never reads the
// system clock. Thresholds at or above threshold count as high-risk
// days.
func ComputeWeeklyReport(in WeeklyInputs, now time.Time, threshold float64) *schema.WeeklyReport {
	return &schema.WeeklyReport{
		Sedentary:    sedentaryMetric(in.MSK, now),
		Hydration:    hydrationMetric(in.Hydration, now),
		Sleep:        sleepMetric(in.Sleep, now),
		Reminders:    remindersMetric(in.Reminders, now),
		HighRiskDays: highRiskMetric(in.Snapshots, now, threshold),
	}
}

// thisWeek returns entries from the last seven days before now.
func thisWeek(h schema.History, now time.Time) schema.History {
	var out schema.History
	cutoff := now.AddDate(0, 0, -7)
	for _, e := range h {
		t, ok := e.Time()
		if !ok {
			continue
		}
		if !t.Before(cutoff) {
			out = append(out, e)
		}
	}
	return out
}

// lastWeek returns entries from the half-open window [now-14d, now-7d),
// disjoint from thisWeek by construction.
func lastWeek(h schema.History, now time.Time) schema.History {
	return h.Between(now.AddDate(0, 0, -14), now.AddDate(0, 0, -7))
}

// average returns the mean of values, or nil for an empty slice. Nil
// means "no data", which deltas must propagate rather than treat as
// zero.
func average(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	avg := sum / float64(len(values))
	return &avg
}

// pctChange returns the percent change from prev to curr, or nil when
// prev is unusable as a base.
func pctChange(curr, prev float64) *float64 {
	if prev == 0 {
		return nil
	}
	change := ((curr - prev) / prev) * 100.0
	return &change
}

// seatedBlockHours maps a seated-duration answer to hours. Unknown
// labels yield no sample rather than a zero.
func seatedBlockHours(label string) (float64, bool) {
	switch label {
	case "30 min":
		return 0.5, true
	case "1 hour":
		return 1.0, true
	case "2 hours":
		return 2.0, true
	case "3+ hours":
		return 3.5, true
	}
	return 0, false
}

func sedentaryMetric(mskHistory schema.History, now time.Time) schema.SedentaryMetric {
	extract := func(h schema.History) []float64 {
		var vals []float64
		for _, e := range h {
			if hours, ok := seatedBlockHours(labelField(e.UserInput, "seated_duration")); ok {
				vals = append(vals, hours)
			}
		}
		return vals
	}

	currAvg := average(extract(thisWeek(mskHistory, now)))
	prevAvg := average(extract(lastWeek(mskHistory, now)))

	m := schema.SedentaryMetric{
		ThisWeekAvgHours: round2Ptr(currAvg),
		LastWeekAvgHours: round2Ptr(prevAvg),
	}
	if currAvg != nil && prevAvg != nil {
		delta := schema.Round2(*currAvg - *prevAvg)
		m.ChangeHours = &delta
		if pct := pctChange(*currAvg, *prevAvg); pct != nil {
			rounded := schema.Round1(*pct)
			m.ChangePercent = &rounded
		}
	}
	return m
}

// HydrationCompliant reports whether a single hydration entry meets the
// compliance rule: at least 8 units of water, urine color outside the
// dehydration bands, and thirst below "Very Thirsty / Parched". Intake
// units are compared as entered, unconverted.
func HydrationCompliant(f schema.Fields) bool {
	if numberField(f, "water_intake") < 8 {
		return false
	}
	switch labelField(f, "urine_color") {
	case "Dark Yellow", "Amber/Brown":
		return false
	}
	return labelField(f, "thirst_level") != "Very Thirsty / Parched"
}

func hydrationMetric(hydrationHistory schema.History, now time.Time) schema.HydrationMetric {
	complianceRate := func(h schema.History) *float64 {
		if len(h) == 0 {
			return nil
		}
		ok := 0
		for _, e := range h {
			if HydrationCompliant(e.UserInput) {
				ok++
			}
		}
		rate := float64(ok) / float64(len(h)) * 100.0
		return &rate
	}

	curr := complianceRate(thisWeek(hydrationHistory, now))
	prev := complianceRate(lastWeek(hydrationHistory, now))

	m := schema.HydrationMetric{
		ThisWeekCompliancePercent: round1Ptr(curr),
		LastWeekCompliancePercent: round1Ptr(prev),
	}
	if curr != nil && prev != nil {
		delta := schema.Round1(*curr - *prev)
		m.ChangePercentPoints = &delta
	}
	return m
}

// Sleep deltas below half an hour count as stable.
const sleepTrendBand = 0.5

func sleepMetric(sleepHistory schema.History, now time.Time) schema.SleepMetric {
	extract := func(h schema.History) []float64 {
		var vals []float64
		for _, e := range h {
			if hrs := numberField(e.UserInput, "sleep_hours"); hrs > 0 {
				vals = append(vals, hrs)
			}
		}
		return vals
	}

	currAvg := average(extract(thisWeek(sleepHistory, now)))
	prevAvg := average(extract(lastWeek(sleepHistory, now)))

	m := schema.SleepMetric{
		ThisWeekAvgSleepHours: round2Ptr(currAvg),
		LastWeekAvgSleepHours: round2Ptr(prevAvg),
	}
	if currAvg != nil && prevAvg != nil {
		delta := *currAvg - *prevAvg
		rounded := schema.Round2(delta)
		m.ChangeHours = &rounded

		trend := schema.TrendStable
		switch {
		case delta >= sleepTrendBand:
			trend = schema.TrendImproving
		case delta <= -sleepTrendBand:
			trend = schema.TrendWorsening
		}
		m.Trend = &trend
	}
	return m
}

func remindersMetric(remindersHistory schema.History, now time.Time) schema.RemindersMetric {
	countCompleted := func(h schema.History) *int {
		if len(h) == 0 {
			return nil
		}
		completed := 0
		for _, e := range h {
			if v, ok := flagField(e.UserInput, "completed"); ok && v {
				completed++
			}
		}
		return &completed
	}

	curr := countCompleted(thisWeek(remindersHistory, now))
	prev := countCompleted(lastWeek(remindersHistory, now))

	m := schema.RemindersMetric{
		ThisWeekCompleted: curr,
		LastWeekCompleted: prev,
	}
	if curr != nil && prev != nil {
		delta := *curr - *prev
		m.Change = &delta
	}
	return m
}

func highRiskMetric(snapshots schema.History, now time.Time, threshold float64) schema.HighRiskMetric {
	countHigh := func(h schema.History) *int {
		if len(h) == 0 {
			return nil
		}
		c := 0
		for _, e := range h {
			if numberField(e.UserInput, "workday_health_index") >= threshold {
				c++
			}
		}
		return &c
	}

	curr := countHigh(thisWeek(snapshots, now))
	prev := countHigh(lastWeek(snapshots, now))

	m := schema.HighRiskMetric{
		Threshold:        threshold,
		ThisWeekHighRisk: curr,
		LastWeekHighRisk: prev,
	}
	if curr != nil && prev != nil {
		delta := *curr - *prev
		m.Change = &delta
	}
	return m
}

func round1Ptr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	rounded := schema.Round1(*v)
	return &rounded
}

func round2Ptr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	rounded := schema.Round2(*v)
	return &rounded
}
