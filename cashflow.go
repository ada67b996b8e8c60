package xirr

import (
	"errors"
	"fmt"
	"slices"
)

// Error taxonomy of the core. All of them are reported as wrapped sentinel
// values alongside (or instead of) a result, never as panics: a caller
// iterating over many windows can always continue with the next one.
var (
	// ErrInsufficientData reports fewer than two usable flows, or a period
	// missing its start or end value.
	ErrInsufficientData = errors.New("insufficient data")
	// ErrInvalidSignMix reports a sequence with no negative flow or no
	// positive flow, for which no rate can make the NPV cross zero.
	ErrInvalidSignMix = errors.New("cash flows must contain at least one positive and one negative amount")
	// ErrNoRecoverablePosition reports a position whose final flow and net
	// sum are both negative: it never recovered, and any rate the solvers
	// would produce for it is misleading.
	ErrNoRecoverablePosition = errors.New("no recoverable position")
	// ErrMixedCurrency reports a sequence carrying more than one currency.
	// Currency conversion is out of scope, so such a sequence is rejected at
	// the boundary.
	ErrMixedCurrency = errors.New("cash flows carry mixed currencies")
)

// CashFlow is a single dated signed amount. It is an immutable value object:
// the core only ever reorders copies, it never mutates a caller's flow.
type CashFlow struct {
	Date   Date
	Amount Money
	Label  string // optional
}

// CashFlowSequence is a series of cash flows. The order is irrelevant on
// input: every computation starts from a chronologically sorted copy.
type CashFlowSequence []CashFlow

// Sorted returns a chronologically sorted copy of the sequence. Flows on the
// same day keep their relative input order.
func (s CashFlowSequence) Sorted() CashFlowSequence {
	sorted := slices.Clone(s)
	slices.SortStableFunc(sorted, func(a, b CashFlow) int {
		switch {
		case a.Date.Before(b.Date):
			return -1
		case a.Date.After(b.Date):
			return 1
		default:
			return 0
		}
	})
	return sorted
}

// Net returns the sum of all amounts.
func (s CashFlowSequence) Net() Money {
	var net Money
	for _, f := range s {
		net = net.Add(f.Amount)
	}
	return net
}

// Inflow returns the sum of all strictly positive amounts.
func (s CashFlowSequence) Inflow() Money {
	var in Money
	for _, f := range s {
		if f.Amount.IsPositive() {
			in = in.Add(f.Amount)
		}
	}
	return in
}

// Outflow returns the sum of all strictly negative amounts.
func (s CashFlowSequence) Outflow() Money {
	var out Money
	for _, f := range s {
		if f.Amount.IsNegative() {
			out = out.Add(f.Amount)
		}
	}
	return out
}

// checkCurrency verifies that at most one currency appears in the sequence.
// The weak "" currency mixes freely with any other.
func (s CashFlowSequence) checkCurrency() error {
	var c string
	for _, f := range s {
		fc := f.Amount.Currency()
		if fc == "" {
			continue
		}
		if c == "" {
			c = fc
			continue
		}
		if fc != c {
			return fmt.Errorf("%w: %s and %s", ErrMixedCurrency, c, fc)
		}
	}
	return nil
}

// checkSignMix verifies that the sequence holds at least one strictly
// positive and one strictly negative amount.
func (s CashFlowSequence) checkSignMix() error {
	var hasPos, hasNeg bool
	for _, f := range s {
		if f.Amount.IsPositive() {
			hasPos = true
		}
		if f.Amount.IsNegative() {
			hasNeg = true
		}
	}
	if !hasPos || !hasNeg {
		return ErrInvalidSignMix
	}
	return nil
}
