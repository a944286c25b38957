package core

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/workwellhq/workwell/schema"
)

// RunThresholdCheck gates an evaluation against configured thresholds
// for CI-style automation. A target fails when its score is at or above
// its threshold: scores measure risk, so high is bad.
func RunThresholdCheck(report *schema.ScoreReport, thresholds map[string]float64) *schema.CheckResult {
	result := &schema.CheckResult{
		Passed:     true,
		Thresholds: thresholds,
		Observed:   make(map[string]float64, len(thresholds)),
	}

	targets := make([]string, 0, len(thresholds))
	for target := range thresholds {
		targets = append(targets, target)
	}
	sort.Strings(targets)

	for _, target := range targets {
		threshold := thresholds[target]
		var score float64
		if target == "whi" {
			score = report.WorkdayHealthIndex
		} else {
			score = report.FinalScores[schema.Domain(target)]
		}
		result.Observed[target] = score

		if score >= threshold {
			result.Passed = false
			result.Violations = append(result.Violations, schema.CheckViolation{
				Target:    target,
				Score:     score,
				Threshold: threshold,
			})
		}
	}

	return result
}

// PrintCheckResult prints the check result in a concise format suitable for CI/CD.
func PrintCheckResult(w io.Writer, result *schema.CheckResult, duration time.Duration) {
	fmt.Fprintln(w, "Wellness Check Results:")

	targets := make([]string, 0, len(result.Observed))
	for target := range result.Observed {
		targets = append(targets, target)
	}
	sort.Strings(targets)

	for _, target := range targets {
		fmt.Fprintf(w, "  %s: score=%.1f, threshold=%.1f\n", target, result.Observed[target], result.Thresholds[target])
	}
	fmt.Fprintf(w, "Checked %d targets in %v\n\n", len(targets), duration)

	if result.Passed {
		fmt.Fprintf(w, "✅ All targets passed wellness checks\n")
		return
	}

	fmt.Fprintf(w, "❌ Wellness check failed: %d violation(s) found\n", len(result.Violations))
	for _, v := range result.Violations {
		fmt.Fprintf(w, "  - %s (score: %.1f >= threshold: %.1f)\n", v.Target, v.Score, v.Threshold)
	}
}
