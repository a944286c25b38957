package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/workwellhq/workwell/schema"
)

// Risk label constants.
const (
	CriticalValue = "Critical" // Critical risk
	HighValue     = "High"     // High risk
	ModerateValue = "Moderate" // Moderate risk
	LowValue      = "Low"      // Low risk
)

// Color variables for console output.
var (
	CriticalColor = color.New(color.FgRed, color.Bold)     // standard danger
	HighColor     = color.New(color.FgMagenta, color.Bold) // strong, distinct warning
	ModerateColor = color.New(color.FgYellow)              // standard caution, not bold
	LowColor      = color.New(color.FgCyan)                // informational signal
)

// GetPlainLabel returns a plain text risk label for a score. This is
// the core logic used for CSV, JSON and table printing, and matches the
// dashboard's banding.
func GetPlainLabel(score float64) string {
	switch {
	case score >= 80:
		return CriticalValue
	case score >= 60:
		return HighValue
	case score >= 40:
		return ModerateValue
	default:
		return LowValue
	}
}

// GetColorLabel returns a colored risk label for console output.
func GetColorLabel(score float64) string {
	text := GetPlainLabel(score)

	switch text {
	case CriticalValue:
		return CriticalColor.Sprint(text)
	case HighValue:
		return HighColor.Sprint(text)
	case ModerateValue:
		return ModerateColor.Sprint(text)
	default: // "Low"
		return LowColor.Sprint(text)
	}
}

// FormatDomain renders a domain name for table output.
func FormatDomain(d schema.Domain) string {
	if d == schema.DomainMSK {
		return "MSK"
	}
	return strings.ToUpper(string(d)[:1]) + string(d)[1:]
}

// SelectOutputFile returns the file handle for output, defaulting to
// stdout when no path is configured.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning %s: %v\n", msg, err)
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "Warning %s\n", msg)
}
