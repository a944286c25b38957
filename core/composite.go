package core

import "github.com/workwellhq/workwell/schema"

// ComputeWHI combines all domains' local scores into the Workday Health
// Index using the fixed composite weights. Domains missing from the
// input contribute 0.0; the divisor is the sum of the weights, so the
// index is defined over the full declared domain set regardless of data
// availability. An empty weight map yields 0.0.
func ComputeWHI(local map[schema.Domain]float64) float64 {
	weights := schema.WHIWeights()

	var total, totalW float64
	for d, w := range weights {
		total += local[d] * w
		totalW += w
	}
	if totalW <= 0 {
		return 0.0
	}
	return clamp(total/totalW, 0, 100)
}

// ApplyGlobalPressure blends a domain's local score with the overall
// index: a domain's visible risk is dominated by its own recent
// behavior but nudged upward when systemic strain is high. Applied once
// per domain after the index is known; the index is computed from local
// scores only, never from final scores.
func ApplyGlobalPressure(localScore, whi, pressureFactor float64) float64 {
	return clamp(schema.LocalWeight*localScore+schema.PressureWeight*(whi*pressureFactor), 0, 100)
}
