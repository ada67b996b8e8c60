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

type solveCmd struct {
	file     string
	currency string
	guess    float64
}

func (*solveCmd) Name() string { return "solve" }
func (*solveCmd) Synopsis() string {
	return "compute the rate of return of a cash flow file"
}
func (*solveCmd) Usage() string {
	return `xr solve -f <flows_file> [-c <currency>] [-guess <rate>]

  Computes the extended internal rate of return of the dated cash flows in
  the given file. The file is JSONL by default; .csv and .tsv files are read
  as delimited "date,amount[,label]" records. Both solvers run and both
  results are reported, along with any disagreement between them.

Usage Examples:
# Solve a JSONL cash flow file.
$ xr solve -f flows.jsonl

# Solve a pasted tab-delimited export, amounts in EUR.
$ xr solve -f flows.tsv -c EUR
`
}

func (c *solveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "flows.jsonl", "Cash flow file (JSONL, .csv or .tsv).")
	f.StringVar(&c.currency, "c", "", "Currency for delimited files without one.")
	f.Float64Var(&c.guess, "guess", xirr.DefaultGuess, "Initial rate guess for the Newton-Raphson solver.")
}

func (c *solveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	flows, err := DecodeCashFlows(c.file, c.currency)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	res, err := xirr.Reconcile(flows, c.guess)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ResultMarkdown(res))
	return subcommands.ExitSuccess
}
