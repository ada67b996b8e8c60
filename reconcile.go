package xirr

import (
	"fmt"
	"math"
)

// disagreementTolerance is the absolute rate difference (in rate units)
// beyond which the two solvers are considered to disagree: 1e-5 is 0.001%.
const disagreementTolerance = 1e-5

// annualizeAfterDays is the span above which the solved rate is reported as
// an annualized figure. At or below the threshold the simple return is
// reported instead, because annualizing a sub-year window exaggerates it.
const annualizeAfterDays = 365

// ReconciledResult is the outcome of running both solvers on one cash-flow
// sequence. It is computed once, immutable, and the core keeps no reference
// to it after returning.
type ReconciledResult struct {
	// Rate is the chosen rate in rate units (0.15 means 15% a year), taken
	// from whichever solver left the smaller residual.
	Rate float64
	// RatePercent is Rate expressed in percentage points.
	RatePercent Percent
	// Method identifies the solver whose rate was chosen.
	Method Method
	// Annualized is true when the flows span more than 365 days; Rate is
	// then the meaningful headline figure.
	Annualized bool
	// SimpleReturn is the non-annualized return (1+Rate)^years - 1 over the
	// actual span. It is only computed for sub-year sequences, where the
	// annualized rate would be misleading.
	SimpleReturn Percent
	// TotalDays is the span in days between the first and last flow.
	TotalDays int

	// Aggregates computed exactly from the sorted sequence, independent of
	// either solver.
	NetCashFlow  Money
	FirstFlow    Money
	LastFlow     Money
	TotalInflow  Money
	TotalOutflow Money

	// Both solver outcomes, always surfaced: when they disagree the chosen
	// rate is provisional and the caller should not suppress the flag.
	Newton          MethodResult
	Bracketing      MethodResult
	ResultsDisagree bool
	// Disagreement is the absolute difference between the two rates.
	Disagreement float64
}

// Chosen returns the MethodResult the headline rate was taken from.
func (r *ReconciledResult) Chosen() MethodResult {
	if r.Method == Bracketing {
		return r.Bracketing
	}
	return r.Newton
}

// Reconcile computes the rate of return of a standalone cash-flow sequence
// by running both solvers and keeping the more accurate result. The guess
// seeds Newton-Raphson; use DefaultGuess when in doubt.
//
// The sequence must hold at least two flows, a single currency, and both a
// positive and a negative amount; violations are reported as wrapped
// ErrInsufficientData, ErrMixedCurrency and ErrInvalidSignMix values.
func Reconcile(flows CashFlowSequence, guess float64) (*ReconciledResult, error) {
	if err := flows.checkSignMix(); err != nil {
		return nil, err
	}
	return reconcile(flows, guess)
}

// reconcile is the window-mode entry point: synthetic windows are exempt
// from the sign-mix rule (a zero start value is a legitimate window), every
// other guard still applies.
func reconcile(flows CashFlowSequence, guess float64) (*ReconciledResult, error) {
	sorted := flows.Sorted()
	if len(sorted) < 2 {
		return nil, fmt.Errorf("%w: need at least two cash flows, got %d", ErrInsufficientData, len(sorted))
	}
	if err := sorted.checkCurrency(); err != nil {
		return nil, err
	}

	first := sorted[0]
	last := sorted[len(sorted)-1]
	net := sorted.Net()
	if last.Amount.IsNegative() && net.IsNegative() {
		return nil, fmt.Errorf("%w: final flow %s and net sum %s are both negative",
			ErrNoRecoverablePosition, last.Amount, net)
	}

	s := newSchedule(sorted)
	newton := solveNewton(s, guess)
	bracketing := solveBracketing(s)

	// Accuracy over convenience: the winner is the rate whose residual NPV
	// is closest to exact zero, not a preferred algorithm.
	chosen := newton
	if math.Abs(bracketing.Residual) < math.Abs(newton.Residual) {
		chosen = bracketing
	}

	totalDays := DaysBetween(first.Date, last.Date)
	diff := math.Abs(newton.Rate - bracketing.Rate)

	res := &ReconciledResult{
		Rate:            chosen.Rate,
		RatePercent:     AsPercent(chosen.Rate),
		Method:          chosen.Method,
		Annualized:      totalDays > annualizeAfterDays,
		TotalDays:       totalDays,
		NetCashFlow:     net,
		FirstFlow:       first.Amount,
		LastFlow:        last.Amount,
		TotalInflow:     sorted.Inflow(),
		TotalOutflow:    sorted.Outflow(),
		Newton:          newton,
		Bracketing:      bracketing,
		ResultsDisagree: diff > disagreementTolerance,
		Disagreement:    diff,
	}
	if !res.Annualized {
		years := float64(totalDays) / DaysInYear
		res.SimpleReturn = AsPercent(math.Pow(1+chosen.Rate, years) - 1)
	}
	return res, nil
}
