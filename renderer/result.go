// Package renderer turns reconciled results and multi-period reports into
// markdown suitable for the terminal.
package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/xirr"
)

// ResultMarkdown renders a single reconciled result as a markdown report.
func ResultMarkdown(res *xirr.ReconciledResult) string {
	var b strings.Builder

	if res.Annualized {
		fmt.Fprintf(&b, "# Annualized Return: %s\n\n", res.RatePercent.SignedString())
	} else {
		fmt.Fprintf(&b, "# Return over %d days: %s\n\n", res.TotalDays, res.SimpleReturn.SignedString())
		fmt.Fprintf(&b, "Annualized equivalent: %s (sub-year windows exaggerate annualized figures)\n\n",
			res.RatePercent.SignedString())
	}

	fmt.Fprint(&b, "## Cash Flows\n\n")
	fmt.Fprintln(&b, "| Span | First | Last | Inflow | Outflow | Net |")
	fmt.Fprintln(&b, "|---:|---:|---:|---:|---:|---:|")
	fmt.Fprintf(&b, "| %d days | %s | %s | %s | %s | %s |\n\n",
		res.TotalDays,
		res.FirstFlow.SignedString(),
		res.LastFlow.SignedString(),
		res.TotalInflow.SignedString(),
		res.TotalOutflow.SignedString(),
		res.NetCashFlow.SignedString(),
	)

	fmt.Fprint(&b, "## Solvers\n\n")
	fmt.Fprintln(&b, "| Method | Rate | Iterations | Converged | Residual |")
	fmt.Fprintln(&b, "|:---|---:|---:|:---:|---:|")
	for _, mr := range []xirr.MethodResult{res.Newton, res.Bracketing} {
		chosen := ""
		if mr.Method == res.Method {
			chosen = " (chosen)"
		}
		fmt.Fprintf(&b, "| %s%s | %s | %d | %v | %.2e |\n",
			mr.Method, chosen, xirr.AsPercent(mr.Rate), mr.Iterations, mr.Converged, mr.Residual)
	}
	fmt.Fprintln(&b)

	ConditionalBlock(&b, func(w io.Writer) bool {
		if !res.ResultsDisagree {
			return false
		}
		fmt.Fprintf(w, "**Warning**: the solvers disagree by %s; treat the chosen rate as provisional.\n",
			xirr.AsPercent(res.Disagreement))
		return true
	})

	return b.String()
}

// ReportMarkdown renders a multi-period report as a markdown table, one row
// per window, errors included in place of rates.
func ReportMarkdown(rep *xirr.Report) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Period Analysis\n\n")
	fmt.Fprintln(&b, "| Period | Return | Annualized | Days | Net | Method | Status |")
	fmt.Fprintln(&b, "|:---|---:|:---:|---:|---:|:---|:---|")
	for _, wr := range rep.Windows {
		if wr.Err != nil {
			fmt.Fprintf(&b, "| %s | | | | | | %v |\n", wr.Label, wr.Err)
			continue
		}
		res := wr.Result
		ret := res.RatePercent
		if !res.Annualized {
			ret = res.SimpleReturn
		}
		status := "ok"
		if res.ResultsDisagree {
			status = fmt.Sprintf("solvers disagree by %s", xirr.AsPercent(res.Disagreement))
		}
		fmt.Fprintf(&b, "| %s | %s | %v | %d | %s | %s | %s |\n",
			wr.Label, ret.SignedString(), res.Annualized, res.TotalDays,
			res.NetCashFlow.SignedString(), res.Method, status)
	}
	fmt.Fprintln(&b)

	fmt.Fprintf(&b, "%d window(s) solved, %d failed", rep.Solved, rep.Failed)
	if len(rep.Disagreements) > 0 {
		fmt.Fprintf(&b, ", disagreements: %s", strings.Join(rep.Disagreements, ", "))
	}
	fmt.Fprintln(&b)

	return b.String()
}
