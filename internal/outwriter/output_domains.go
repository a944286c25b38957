package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/workwellhq/workwell/internal/contract"
	"github.com/workwellhq/workwell/schema"
)

// PrintDomainReference displays the scoring configuration of every
// declared domain. This is a static display that does not require any
// history files.
func PrintDomainReference(cfg *contract.Config) error {
	reference := schema.BuildDomainReference()

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, reference)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			header := []string{"domain", "strategy", "raw_max", "whi_weight", "scored"}
			return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
				for _, info := range reference.Domains {
					rec := []string{
						string(info.Domain),
						string(info.Strategy),
						strconv.FormatFloat(info.RawMax, 'f', -1, 64),
						strconv.FormatFloat(info.WHIWeight, 'f', -1, 64),
						strconv.FormatBool(info.Scored),
					}
					if err := cw.Write(rec); err != nil {
						return err
					}
				}
				return nil
			})
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return printDomainReferenceText(w, reference)
		}, "Wrote text")
	}
}

// printDomainReferenceText displays the reference in human-readable text format.
func printDomainReferenceText(w io.Writer, reference *schema.DomainReference) error {
	if _, err := fmt.Fprintf(w, "🩺 Workwell Scoring Domains\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "===========================\n\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s\n\n", reference.Description); err != nil {
		return err
	}

	for _, info := range reference.Domains {
		status := "scored"
		if !info.Scored {
			status = "placeholder"
		}
		if _, err := fmt.Fprintf(w, "%s (%s)\n", contract.FormatDomain(info.Domain), status); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "   Strategy: %s\n", info.Strategy); err != nil {
			return err
		}
		if info.RawMax > 0 {
			if _, err := fmt.Fprintf(w, "   Raw max: %.0f\n", info.RawMax); err != nil {
				return err
			}
		}
		if info.WHIWeight > 0 {
			if _, err := fmt.Fprintf(w, "   Index weight: %.2f\n", info.WHIWeight); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "\n"); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "🔗 Global Pressure\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s\n", reference.Pressure); err != nil {
		return err
	}
	return nil
}
