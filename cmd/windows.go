package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/xirr"
	"github.com/etnz/xirr/renderer"
	"github.com/google/subcommands"
)

type windowsCmd struct {
	flowsFile   string
	periodsFile string
	currency    string
}

func (*windowsCmd) Name() string { return "windows" }
func (*windowsCmd) Synopsis() string {
	return "compute the rate of return of each analysis period"
}
func (*windowsCmd) Usage() string {
	return `xr windows -p <periods_file> [-f <flows_file>] [-c <currency>]

  Builds one analysis window per period definition (start/end date plus
  start/end market value), folds in the intermediate cash flows dated
  strictly inside each window, and computes each window's rate of return
  independently. A period that cannot be computed is reported in place and
  never aborts the others.

Usage Examples:
# Analyze yearly windows with intermediate deposits and withdrawals.
$ xr windows -p periods.jsonl -f flows.jsonl
`
}

func (c *windowsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.periodsFile, "p", "periods.jsonl", "Period definition file (JSONL).")
	f.StringVar(&c.flowsFile, "f", "", "Intermediate cash flow file; empty means no intermediate flows.")
	f.StringVar(&c.currency, "c", "", "Currency for delimited flow files without one.")
}

func (c *windowsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	periods, err := DecodePeriods(c.periodsFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var flows xirr.CashFlowSequence
	if c.flowsFile != "" {
		flows, err = DecodeCashFlows(c.flowsFile, c.currency)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}

	rep := xirr.NewReport(periods, flows)
	printMarkdown(renderer.ReportMarkdown(rep))
	return subcommands.ExitSuccess
}
