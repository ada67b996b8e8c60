// Package cmd implements the CLI application to compute rates of return.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/etnz/xirr"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&solveCmd{}, "returns")
	c.Register(&windowsCmd{}, "returns")
	c.Register(&fmtCmd{}, "data")
}

// DecodeCashFlows reads a cash-flow file, choosing the decoder from the
// extension: .csv and .tsv are delimited, everything else is JSONL.
func DecodeCashFlows(filename, currency string) (xirr.CashFlowSequence, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot open cash flow file %q: %w", filename, err)
	}
	defer f.Close()

	switch filepath.Ext(filename) {
	case ".csv":
		return xirr.ImportDelimited(f, ',', currency)
	case ".tsv":
		return xirr.ImportDelimited(f, '\t', currency)
	default:
		return xirr.ImportCashFlows(f)
	}
}

// DecodePeriods reads a period definition file (JSONL).
func DecodePeriods(filename string) ([]xirr.Period, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot open period file %q: %w", filename, err)
	}
	defer f.Close()
	return xirr.ImportPeriods(f)
}
