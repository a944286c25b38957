// main is the entry point for the workwell CLI.
package main

import (
	"os"

	"github.com/workwellhq/workwell/cmd"
	"github.com/workwellhq/workwell/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogWarn("command failed", err)
		os.Exit(1)
	}
}
