package core

import (
	"testing"

	"github.com/workwellhq/workwell/schema"
)

// FuzzScoreEntry fuzzes the entry scorer across every domain with
// arbitrary field values.
func FuzzScoreEntry(f *testing.F) {
	seeds := []struct {
		domain string
		pain   float64
		label  string
		flag   bool
	}{
		{domain: "msk", pain: 10, label: "Morning / On waking", flag: true},
		{domain: "hydration", pain: 0, label: "Amber/Brown", flag: false},
		{domain: "workspace", pain: -5, label: "", flag: false}, // edge case
		{domain: "unknown", pain: 1e18, label: "???", flag: true},
	}
	for _, seed := range seeds {
		f.Add(seed.domain, seed.pain, seed.label, seed.flag)
	}

	f.Fuzz(func(t *testing.T, domain string, pain float64, label string, flag bool) {
		fields := schema.Fields{
			"pain_level":   pain,
			"water_intake": pain,
			"onset_timing": label,
			"urine_color":  label,
			"breaks":       label,
			"good_posture": flag,
		}
		score := ScoreEntry(schema.Domain(domain), fields)
		// Scores must stay in range no matter the input.
		if score < 0 || score > 100 {
			t.Fatalf("score out of range: %f", score)
		}
	})
}

// FuzzNumberField fuzzes the tolerant numeric accessor with raw strings.
func FuzzNumberField(f *testing.F) {
	seeds := []string{
		"10",
		" 3.5 ",
		"-1e9",
		"NaN",
		"",
		"ten",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(_ *testing.T, input string) {
		fields := schema.Fields{"value": input}
		_ = numberField(fields, "value")
	})
}
