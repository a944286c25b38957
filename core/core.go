// Package core implements the wellness scoring pipeline: per-domain
// entry scorers, temporal aggregation, the Workday Health Index
// composite, global pressure adjustment, and the weekly behavioral
// metrics. Everything in this package is a pure function of its input
// histories; file loading and rendering live in internal packages.
package core

import (
	"sort"

	"github.com/workwellhq/workwell/schema"
)

// Evaluate runs the full scoring pipeline over the provided histories.
// Domains absent from the map are treated as having an empty history.
// The report carries rounded presentation values for every declared
// domain; the results slice carries full-precision scores plus the
// metadata used by detail and explain output, ranked by final score.
func Evaluate(histories map[schema.Domain]schema.History) (*schema.ScoreReport, []schema.DomainResult) {
	local := make(map[schema.Domain]float64, len(schema.AllDomains))
	for _, d := range schema.AllDomains {
		local[d] = LocalScore(d, histories[d])
	}

	whi := ComputeWHI(local)

	report := &schema.ScoreReport{
		WorkdayHealthIndex: schema.Round1(whi),
		LocalScores:        make(map[schema.Domain]float64, len(local)),
		FinalScores:        make(map[schema.Domain]float64, len(local)),
	}

	results := make([]schema.DomainResult, 0, len(schema.AllDomains))
	for _, d := range schema.AllDomains {
		final := ApplyGlobalPressure(local[d], whi, schema.PressureFactor)
		report.LocalScores[d] = schema.Round1(local[d])
		report.FinalScores[d] = schema.Round1(final)

		res := schema.DomainResult{
			Domain:     d,
			LocalScore: local[d],
			FinalScore: final,
			Entries:    len(histories[d]),
			Strategy:   schema.DomainStrategy(d),
		}
		if latest, ok := histories[d].Latest(); ok {
			if t, ok := latest.Time(); ok {
				res.Latest = t
			}
			res.Breakdown = ExplainEntry(d, latest.UserInput)
		}
		results = append(results, res)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].FinalScore > results[j].FinalScore
	})

	return report, results
}
