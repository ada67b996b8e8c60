package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/xirr"
)

func flows(pairs ...any) xirr.CashFlowSequence {
	var seq xirr.CashFlowSequence
	for i := 0; i < len(pairs); i += 2 {
		seq = append(seq, xirr.CashFlow{
			Date:   xirr.MustParseDate(pairs[i].(string)),
			Amount: xirr.M(pairs[i+1].(float64), "EUR"),
		})
	}
	return seq
}

func TestResultMarkdown(t *testing.T) {
	res, err := xirr.Reconcile(flows("2022-01-01", -100000.0, "2024-01-01", 121000.0), xirr.DefaultGuess)
	if err != nil {
		t.Fatalf("Reconcile() error = %v", err)
	}
	md := ResultMarkdown(res)

	for _, want := range []string{
		"# Annualized Return:",
		"| Method | Rate | Iterations | Converged | Residual |",
		"newton-raphson",
		"bracketing",
		"(chosen)",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("ResultMarkdown() missing %q in:\n%s", want, md)
		}
	}
	if strings.Contains(md, "Warning") {
		t.Errorf("ResultMarkdown() reports a disagreement for an agreeing pair:\n%s", md)
	}
}

func TestResultMarkdown_SubYear(t *testing.T) {
	res, err := xirr.Reconcile(flows("2024-01-01", -100000.0, "2024-07-01", 104000.0), xirr.DefaultGuess)
	if err != nil {
		t.Fatalf("Reconcile() error = %v", err)
	}
	md := ResultMarkdown(res)
	if !strings.Contains(md, "# Return over 182 days:") {
		t.Errorf("ResultMarkdown() missing sub-year headline in:\n%s", md)
	}
	if !strings.Contains(md, "Annualized equivalent:") {
		t.Errorf("ResultMarkdown() missing annualized equivalent in:\n%s", md)
	}
}

func TestReportMarkdown(t *testing.T) {
	sv, ev := xirr.M(100000, "EUR"), xirr.M(115000, "EUR")
	periods := []xirr.Period{
		{Label: "2024", Start: xirr.MustParseDate("2024-01-01"), End: xirr.MustParseDate("2024-12-31"), StartValue: &sv, EndValue: &ev},
		{Label: "open", Start: xirr.MustParseDate("2025-01-01"), End: xirr.MustParseDate("2025-12-31")},
	}
	rep := xirr.NewReport(periods, nil)
	md := ReportMarkdown(rep)

	for _, want := range []string{
		"# Period Analysis",
		"| 2024 |",
		"insufficient data",
		"1 window(s) solved, 1 failed",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("ReportMarkdown() missing %q in:\n%s", want, md)
		}
	}
}
