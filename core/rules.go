package core

import (
	"github.com/workwellhq/workwell/schema"
)

// Per-domain rule sets. Point values and label strings track the survey
// collector's questionnaire options; tuning a domain means editing its
// table here and its RAW_MAX in the schema package.
var domainRules = map[schema.Domain][]pointRule{
	schema.DomainWorkspace:    workspaceRules,
	schema.DomainEye:          eyeRules,
	schema.DomainHydration:    hydrationRules,
	schema.DomainMSK:          mskRules,
	schema.DomainBaseline:     baselineRules,
	schema.DomainLongitudinal: longitudinalRules,
}

// workspaceRules cover ergonomics and environment. Single-entry
// semantics: many small independent categorical penalties.
var workspaceRules = []pointRule{
	flagRule{field: "good_posture", when: false, points: 18},
	categoryRule{field: "breaks", points: map[string]float64{
		"Some breaks": 8,
		"Few breaks":  16,
		"No breaks":   24,
	}},
	categoryRule{field: "monitor_height", points: map[string]float64{
		"Slightly Below Eye Level":       6,
		"Below Eye Level (Looking Down)": 14,
		"Above Eye Level":                10,
	}},
	flagRule{field: "lumbar_support", when: false, points: 10},
	categoryRule{field: "feet_position", points: map[string]float64{
		"Not Supported / Dangling": 8,
		"Crossed / Tucked":         6,
	}},
	categoryRule{field: "input_device", points: map[string]float64{
		"Standard Mouse": 4,
		"Trackpad":       10,
	}},
	categoryRule{field: "keyboard_type", points: map[string]float64{
		"Laptop Keyboard": 8,
	}},
	categoryRule{field: "wrist_support", points: map[string]float64{
		"No": 6,
	}},
	categoryRule{field: "armrests", points: map[string]float64{
		"Level with desk": 2,
		"Too low":         6,
		"Too high":        6,
		"None":            6,
		"No":              6,
	}},
	flagRule{field: "eat_at_desk", when: true, points: 6},
	categoryRule{field: "noise_level", points: map[string]float64{
		"Hum/White Noise":  3,
		"Distracting/Loud": 10,
	}},
	categoryRule{field: "temperature", points: map[string]float64{
		"Cold": 6,
		"Hot":  6,
	}},
	categoryRule{field: "clutter", points: map[string]float64{
		"Average":   3,
		"Cluttered": 8,
	}},
}

var eyeRules = []pointRule{
	linearRule{field: "strain_level", coeff: 4, max: 40},
	categoryRule{field: "session_length", points: map[string]float64{
		"1-2 hours": 8,
		"2-4 hours": 16,
		"4+ hours":  24,
	}},
	setSumRule{field: "symptoms", max: 30, points: map[string]float64{
		"Dryness / Gritty feeling":    8,
		"Blurred Vision (end of day)": 10,
		"Headache (behind eyes)":      12,
		"Eye Twitching":               8,
		"Watery Eyes":                 6,
		"Burning / Irritation":        8,
		"Difficulty focusing":         10,
	}},
	categoryRule{field: "lighting", points: map[string]float64{
		"Mixed":          6,
		"Dim":            10,
		"Harsh/Overhead": 10,
	}},
	categoryRule{field: "screen_brightness", points: map[string]float64{
		"Brighter than room": 8,
		"Too dim":            6,
	}},
	flagRule{field: "glare", when: true, points: 10},
	flagRule{field: "distance_check", when: false, points: 6},
	categoryRule{field: "rule_20_20_20", points: map[string]float64{
		"Often":        4,
		"Occasionally": 10,
		"Never":        16,
	}},
	// Lubricating drops are a mitigating behavior.
	flagRule{field: "used_drops", when: true, points: -2},
}

// hydrationRules are inverse on intake: low water is the risk signal,
// high caffeine and sugary drinks add to it.
var hydrationRules = []pointRule{
	ladderRule{field: "water_intake", steps: []ladderStep{
		{min: 14, points: 0},
		{min: 10, points: 2},
		{min: 7, points: 6},
		{min: 5, points: 15},
		{min: 3, points: 25},
		{min: 0, points: 35},
	}},
	ladderRule{field: "caffeine_intake", steps: []ladderStep{
		{min: 5, points: 20},
		{min: 4, points: 15},
		{min: 3, points: 10},
		{min: 2, points: 5},
	}},
	ladderRule{field: "sugary_drinks", steps: []ladderStep{
		{min: 4, points: 20},
		{min: 3, points: 15},
		{min: 2, points: 10},
		{min: 1, points: 5},
	}},
	flagRule{field: "bottle_on_desk", when: false, points: 6},
	categoryRule{field: "urine_color", points: map[string]float64{
		"Yellow (Okay)": 6,
		"Dark Yellow":   16,
		"Amber/Brown":   28,
	}},
	categoryRule{field: "thirst_level", points: map[string]float64{
		"Mildly Thirsty":         10,
		"Very Thirsty / Parched": 22,
	}},
	setSumRule{field: "symptoms", max: 20, points: map[string]float64{
		"Dry Mouth/Lips": 8,
		"Headache":       10,
		"Dizziness":      12,
		"Fatigue":        8,
	}},
}

var mskRules = []pointRule{
	linearRule{field: "pain_level", coeff: 4.5, max: 45},
	categoryRule{field: "onset_timing", points: map[string]float64{
		"During Work":         10,
		"End of Workday":      14,
		"Morning / On waking": 18,
	}},
	setCountRule{field: "focus_area", per: 5, cap: 20},
	categoryRule{field: "pain_nature", points: map[string]float64{
		"Mild Ache":           4,
		"Stiffness/Tightness": 10,
		"Sharp Pain":          16,
		"Numbness/Tingling":   22,
	}},
	categoryRule{field: "neck_rom", points: map[string]float64{
		"Limited (Stiff)":  10,
		"Painful Movement": 16,
	}},
	categoryRule{field: "seated_duration", points: map[string]float64{
		"1 hour":   8,
		"2 hours":  14,
		"3+ hours": 22,
	}},
	flagRule{field: "morning_stiffness", when: true, points: 10},
	flagRule{field: "good_posture", when: false, points: 10},
	setCountRule{field: "triggers", per: 4, cap: 16},
	flagRule{field: "impact_work", when: true, points: 10},
	flagRule{field: "impact_sleep", when: true, points: 12},
	// Relief methods subtract, floored at -9.
	setCountRule{field: "relief_methods", per: -3, cap: -9},
}

var baselineRules = []pointRule{
	derivedRule{name: "bmi", fn: bmiPoints},
	derivedRule{name: "blood_pressure", fn: bloodPressurePoints},
	derivedRule{name: "rhr", fn: restingHeartRatePoints},
	categoryRule{field: "activity_level", points: map[string]float64{
		"Sedentary":         14,
		"Moderately active": 4,
	}},
	derivedRule{name: "waist_cm", fn: waistPoints},
}

var longitudinalRules = []pointRule{
	ladderRule{field: "glucose", steps: []ladderStep{
		{min: 126, points: 24},
		{min: 100, points: 12},
	}},
	ladderRule{field: "hba1c", steps: []ladderStep{
		{min: 6.5, points: 28},
		{min: 5.7, points: 14},
	}},
	ladderRule{field: "cholesterol", steps: []ladderStep{
		{min: 240, points: 20},
		{min: 200, points: 10},
	}},
	ladderRule{field: "triglycerides", steps: []ladderStep{
		{min: 500, points: 30},
		{min: 200, points: 20},
		{min: 150, points: 10},
	}},
	derivedRule{name: "vit_d", fn: deficiencyBand("vit_d", 20, 10)},
	derivedRule{name: "vit_b12", fn: deficiencyBand("vit_b12", 200, 10)},
}

// bmiPoints derives body mass index from height (cm) and weight (kg).
// Either value missing or non-positive yields no contribution.
func bmiPoints(f schema.Fields) float64 {
	heightCm := numberField(f, "height")
	weightKg := numberField(f, "weight")
	if heightCm <= 0 || weightKg <= 0 {
		return 0
	}
	hM := heightCm / 100.0
	bmi := weightKg / (hM * hM)
	switch {
	case bmi >= 35:
		return 32
	case bmi >= 30:
		return 22
	case bmi >= 25:
		return 10
	}
	return 0
}

// bloodPressurePoints joins systolic and diastolic readings. Elevated
// counts only when systolic is raised while diastolic is still normal.
func bloodPressurePoints(f schema.Fields) float64 {
	sys := numberField(f, "bp_systolic")
	dia := numberField(f, "bp_diastolic")
	switch {
	case sys >= 140 || dia >= 90:
		return 24
	case sys >= 130 || dia >= 80:
		return 14
	case sys >= 120 && dia < 80:
		return 6
	}
	return 0
}

// restingHeartRatePoints has a small penalty band below 60 bpm in
// addition to the elevated ladder. Zero means unreported.
func restingHeartRatePoints(f schema.Fields) float64 {
	rhr := numberField(f, "rhr")
	switch {
	case rhr >= 100:
		return 18
	case rhr >= 90:
		return 12
	case rhr >= 80:
		return 6
	case rhr > 0 && rhr < 60:
		return 2
	}
	return 0
}

// waistPoints uses crude sex-agnostic circumference thresholds.
func waistPoints(f schema.Fields) float64 {
	waist := numberField(f, "waist_cm")
	if waist <= 0 {
		return 0
	}
	switch {
	case waist >= 102:
		return 14
	case waist >= 94:
		return 10
	}
	return 0
}

// deficiencyBand awards points when a reported lab value falls below
// the deficiency threshold. Zero means unreported, not deficient.
func deficiencyBand(field string, below, points float64) func(schema.Fields) float64 {
	return func(f schema.Fields) float64 {
		v := numberField(f, field)
		if v > 0 && v < below {
			return points
		}
		return 0
	}
}
