package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/workwellhq/workwell/internal/contract"
	"golang.org/x/term"
)

// writeWithFile handles the common pattern of opening a file, writing to it, and cleaning up.
// It accepts a writer function that takes an io.Writer and returns an error.
func writeWithFile(outputFile string, writer func(io.Writer) error, successMsg string) error {
	file, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return err
	}
	// Only close if it's not stdout
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}

	if err := writer(file); err != nil {
		return err
	}

	if file != os.Stdout {
		fmt.Fprintf(os.Stderr, "💾 %s to %s\n", successMsg, outputFile)
	}
	return nil
}

// writeJSON is a generic JSON encoder that handles indentation consistently.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// writeCSVWithHeader handles the common pattern of creating a CSV writer,
// writing a header, and writing data rows.
func writeCSVWithHeader(w io.Writer, header []string, writeRows func(*csv.Writer) error) error {
	csvWriter := csv.NewWriter(w)
	defer csvWriter.Flush()

	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	if err := writeRows(csvWriter); err != nil {
		return err
	}

	return nil
}

// createFormatters creates the common formatter closures used across multiple output types.
func createFormatters(precision int) (fmtFloat func(float64) string, intFmt string) {
	numFmt := "%.*f"
	intFmt = "%d"
	fmtFloat = func(v float64) string {
		return fmt.Sprintf(numFmt, precision, v)
	}
	return fmtFloat, intFmt
}

// notAvailable marks a weekly aggregate whose window had no entries.
const notAvailable = "n/a"

// fmtFloatPtr renders an optional aggregate, falling back to n/a.
func fmtFloatPtr(v *float64, fmtFloat func(float64) string) string {
	if v == nil {
		return notAvailable
	}
	return fmtFloat(*v)
}

// fmtIntPtr renders an optional count, falling back to n/a.
func fmtIntPtr(v *int) string {
	if v == nil {
		return notAvailable
	}
	return fmt.Sprintf("%d", *v)
}

// riskLabel selects the colored or plain risk band per configuration.
func riskLabel(score float64, useColor bool) string {
	if useColor {
		return contract.GetColorLabel(score)
	}
	return contract.GetPlainLabel(score)
}

// ruleContribution holds a key-value pair from the Breakdown map representing a rule's contribution.
type ruleContribution struct {
	Name  string  // e.g., "pain_level", "water_intake"
	Value float64 // Raw points contributed by the rule
}

const (
	ruleContribMinimum = 0.5
	topNRules          = 3
)

// formatTopDrivers computes the top 3 rules that contribute to the latest entry's raw score.
func formatTopDrivers(breakdown map[string]float64) string {
	var rules []ruleContribution

	// 1. Filter and Convert Map to Slice
	for k, v := range breakdown {
		// Only include meaningful contributions
		if math.Abs(v) >= ruleContribMinimum {
			rules = append(rules, ruleContribution{
				Name:  k,
				Value: v,
			})
		}
	}

	if len(rules) == 0 {
		return "Not applicable"
	}

	// 2. Sort the Slice by absolute contribution in descending order.
	// Relief rules contribute negative points, so compare magnitudes.
	sort.Slice(rules, func(i, j int) bool {
		return math.Abs(rules[i].Value) > math.Abs(rules[j].Value)
	})

	// 3. Limit to Top 3 and Format the Output
	var parts []string
	limit := min(len(rules), topNRules)

	for i := range limit {
		parts = append(parts, rules[i].Name)
	}

	return strings.Join(parts, " > ")
}

// getMaxTableDriversWidth calculates the maximum width for the drivers
// column in table output based on terminal width and table configuration.
func getMaxTableDriversWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for fixed columns with table formatting
	baseWidth := 40 // Rank + Domain + Local + Final + Label with borders/padding

	// Add detail columns with formatting
	if cfg.Detail {
		baseWidth += 40 // Entries + Latest + Strategy with formatting
	}

	// Reserve space for table borders, separators, and padding
	baseWidth += 10

	// Calculate available space for the drivers column
	available := termWidth - baseWidth
	if available < 15 {
		// Minimum reasonable drivers width
		return 15
	}
	if available > 60 {
		// Maximum drivers width to keep rows on one line
		return 60
	}
	return available
}

// truncateDrivers shortens a drivers string for table display.
func truncateDrivers(s string, maxWidth int) string {
	if len(s) <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return s[:maxWidth]
	}
	return s[:maxWidth-3] + "..."
}
