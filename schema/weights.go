package schema

// All weights and normalization constants below are fixed, hand-tuned
// values. They are intentionally not configurable at runtime; tuning a
// domain means editing its table here and in the core rule sets.

// WHIWeights returns the fixed composite weights of the Workday Health
// Index. The weights sum to 1.00 across eight domains. Productivity is
// declared but carries no composite weight yet.
//
// Placeholder domains (mental, sleep) contribute a local score of 0.0
// with nonzero weight, which pulls the index down while they are
// unscored. That zero-when-missing policy is deliberate: the index is
// defined over the full declared domain set, not over whichever domains
// happen to have data on a given day.
func WHIWeights() map[Domain]float64 {
	return map[Domain]float64{
		DomainMental:       0.22,
		DomainSleep:        0.20,
		DomainMSK:          0.18,
		DomainEye:          0.15,
		DomainHydration:    0.10,
		DomainWorkspace:    0.08,
		DomainBaseline:     0.04,
		DomainLongitudinal: 0.03,
	}
}

// RecencyWindowWeights are applied newest-first across the last five
// entries of a recency-aggregated domain. When fewer entries exist the
// matching prefix is used; the weighted average divides by the sum of
// the weights actually used, so the prefix is not renormalized.
var RecencyWindowWeights = []float64{0.40, 0.25, 0.15, 0.12, 0.08}

// SlowWindowWeights are applied newest-first across the last three
// entries of a slow-changing domain. Ergonomic conditions change
// rarely, so there is no spike term on this path.
var SlowWindowWeights = []float64{0.60, 0.30, 0.10}

// RawMax returns the normalization denominator for each scored domain.
// It represents the raw-point total a realistically bad entry can
// reach, tuned per domain rather than the strict maximum of all rules.
func RawMax(d Domain) float64 {
	switch d {
	case DomainWorkspace:
		return 100
	case DomainEye:
		return 110
	case DomainHydration:
		return 100
	case DomainMSK:
		return 120
	case DomainBaseline:
		return 110
	case DomainLongitudinal:
		return 140
	default:
		return 0
	}
}

// DomainStrategy returns the temporal aggregation strategy for a domain.
// Placeholder domains follow the generic recency path, which yields 0.0
// until their scorers exist.
func DomainStrategy(d Domain) Strategy {
	switch d {
	case DomainWorkspace:
		return SlowStrategy
	case DomainBaseline:
		return SnapshotStrategy
	case DomainLongitudinal:
		return TrendStrategy
	default:
		return RecencyStrategy
	}
}

// Global pressure constants. A domain's final score is dominated by its
// own recent behavior but nudged upward when overall systemic risk is
// high: final = 0.70*local + 0.30*(WHI * PressureFactor), clamped.
const (
	LocalWeight    = 0.70
	PressureWeight = 0.30
	PressureFactor = 0.35
)

// DefaultHighRiskThreshold is the WHI level at or above which a day
// counts as high-risk in the weekly metrics.
const DefaultHighRiskThreshold = 60.0
