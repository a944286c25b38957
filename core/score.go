package core

import (
	"github.com/workwellhq/workwell/schema"
)

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// normalizeScore rescales accumulated raw points to [0,100] against the
// domain's fixed denominator. A non-positive denominator yields 0.
func normalizeScore(rawPoints, rawMax float64) float64 {
	if rawMax <= 0 {
		return 0.0
	}
	return clamp(100.0*(rawPoints/rawMax), 0, 100)
}

// pointRule contributes raw points for one aspect of an entry. Rules are
// independent: each reads its own fields and returns a contribution
// (possibly negative for mitigating behaviors, possibly zero).
type pointRule interface {
	key() string
	apply(f schema.Fields) float64
}

// categoryRule maps an exact string label to points.
type categoryRule struct {
	field  string
	points map[string]float64
}

func (r categoryRule) key() string { return r.field }

func (r categoryRule) apply(f schema.Fields) float64 {
	return r.points[labelField(f, r.field)]
}

// flagRule awards points when an explicit boolean field matches `when`.
type flagRule struct {
	field  string
	when   bool
	points float64
}

func (r flagRule) key() string { return r.field }

func (r flagRule) apply(f schema.Fields) float64 {
	if v, ok := flagField(f, r.field); ok && v == r.when {
		return r.points
	}
	return 0
}

// linearRule scales a numeric field by a coefficient, capped so a single
// field cannot dominate the accumulator.
type linearRule struct {
	field string
	coeff float64
	max   float64
}

func (r linearRule) key() string { return r.field }

func (r linearRule) apply(f schema.Fields) float64 {
	pts := numberField(f, r.field) * r.coeff
	if pts > r.max {
		return r.max
	}
	if pts < 0 {
		return 0
	}
	return pts
}

// ladderStep is one rung of a descending threshold ladder.
type ladderStep struct {
	min    float64
	points float64
}

// ladderRule awards the points of the first step whose threshold the
// numeric field meets. Steps are ordered highest threshold first and
// must not overlap.
type ladderRule struct {
	field string
	steps []ladderStep
}

func (r ladderRule) key() string { return r.field }

func (r ladderRule) apply(f schema.Fields) float64 {
	v := numberField(f, r.field)
	for _, step := range r.steps {
		if v >= step.min {
			return step.points
		}
	}
	return 0
}

// setSumRule sums per-item points over a multi-select field, capped.
type setSumRule struct {
	field  string
	points map[string]float64
	max    float64
}

func (r setSumRule) key() string { return r.field }

func (r setSumRule) apply(f schema.Fields) float64 {
	var pts float64
	for _, item := range labelsField(f, r.field) {
		pts += r.points[item]
	}
	if pts > r.max {
		return r.max
	}
	return pts
}

// setCountRule awards points per selected item, capped. A negative
// per-item value models mitigating behaviors; its cap is then a floor.
type setCountRule struct {
	field string
	per   float64
	cap   float64
}

func (r setCountRule) key() string { return r.field }

func (r setCountRule) apply(f schema.Fields) float64 {
	pts := float64(len(labelsField(f, r.field))) * r.per
	if r.per >= 0 {
		if pts > r.cap {
			return r.cap
		}
		return pts
	}
	if pts < r.cap {
		return r.cap
	}
	return pts
}

// derivedRule computes points from multiple fields or bounded bands that
// the simple rule shapes cannot express (BMI, blood pressure, vitamin
// deficiency bands).
type derivedRule struct {
	name string
	fn   func(f schema.Fields) float64
}

func (r derivedRule) key() string { return r.name }

func (r derivedRule) apply(f schema.Fields) float64 { return r.fn(f) }

// scoreEntry accumulates raw points over a domain's rule set and
// normalizes against its RAW_MAX. When breakdown is non-nil, each
// rule's nonzero raw contribution is recorded under its key for
// explain output.
func scoreEntry(d schema.Domain, f schema.Fields, breakdown map[string]float64) float64 {
	rules, ok := domainRules[d]
	if !ok {
		return 0.0
	}
	var raw float64
	for _, r := range rules {
		pts := r.apply(f)
		raw += pts
		if breakdown != nil && pts != 0 {
			breakdown[r.key()] += pts
		}
	}
	return normalizeScore(raw, schema.RawMax(d))
}

// ScoreEntry maps a single questionnaire submission to a normalized
// score in [0,100]. Domains without a rule set (the declared
// placeholders) score 0.
func ScoreEntry(d schema.Domain, f schema.Fields) float64 {
	return scoreEntry(d, f, nil)
}

// ExplainEntry scores a single submission and returns the raw point
// contribution per rule, or nil for placeholder domains.
func ExplainEntry(d schema.Domain, f schema.Fields) map[string]float64 {
	if _, ok := domainRules[d]; !ok {
		return nil
	}
	breakdown := make(map[string]float64)
	scoreEntry(d, f, breakdown)
	return breakdown
}
