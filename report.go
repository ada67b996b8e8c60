package xirr

// WindowResult pairs one period's label with either its reconciled result or
// the error that prevented it. Exactly one of Result and Err is set.
type WindowResult struct {
	Label  string
	Result *ReconciledResult
	Err    error
}

// Report is the aggregate outcome of analyzing a set of periods against one
// shared pool of intermediate flows.
type Report struct {
	Windows []WindowResult
	// Solved counts the periods that produced a usable result.
	Solved int
	// Failed counts the periods that reported an error.
	Failed int
	// Disagreements lists the labels of periods whose two solvers disagreed
	// beyond tolerance.
	Disagreements []string
}

// NewReport builds one window per period, reconciles each independently, and
// aggregates the outcomes. Windows share nothing: a failing period never
// aborts its siblings, and a pooled flow may legitimately appear in several
// overlapping windows.
func NewReport(periods []Period, pool CashFlowSequence) *Report {
	rep := &Report{Windows: make([]WindowResult, 0, len(periods))}
	for _, p := range periods {
		wr := WindowResult{Label: p.Label}
		window, err := BuildWindow(p, pool)
		if err == nil {
			wr.Result, err = reconcile(window, DefaultGuess)
		}
		if err != nil {
			wr.Err = err
			rep.Failed++
		} else {
			rep.Solved++
			if wr.Result.ResultsDisagree {
				rep.Disagreements = append(rep.Disagreements, p.Label)
			}
		}
		rep.Windows = append(rep.Windows, wr)
	}
	return rep
}
