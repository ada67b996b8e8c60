package xirr

import "fmt"

// Period defines one analysis window by its boundary dates and the market
// value of the position at each boundary. The values are pointers because
// absent and zero are different things: a zero end value is a total loss,
// an absent one means the window cannot be computed at all.
type Period struct {
	Label      string
	Start, End Date
	StartValue *Money
	EndValue   *Money
}

// BuildWindow synthesizes the cash-flow sequence of one period:
//
//   - a committed-capital outflow of -|StartValue| at Start. The sign is
//     normalized: callers naturally supply a positive market value, but a
//     starting value is always capital at work.
//   - every flow from the shared pool dated strictly between Start and End.
//     Flows exactly on a boundary date are excluded, otherwise they would be
//     double-counted against the synthetic boundary flows.
//   - a terminal flow of +EndValue at End, sign preserved as supplied: a
//     negative end value is a residual liability.
//
// The result is returned chronologically sorted, ready for the reconciler.
// A period missing either value, or whose dates are not strictly ordered,
// yields a wrapped ErrInsufficientData instead of a partial window.
func BuildWindow(p Period, pool CashFlowSequence) (CashFlowSequence, error) {
	if p.StartValue == nil || p.EndValue == nil {
		return nil, fmt.Errorf("period %q: missing start or end value: %w", p.Label, ErrInsufficientData)
	}
	if !p.Start.Before(p.End) {
		return nil, fmt.Errorf("period %q: start %s must be strictly before end %s: %w",
			p.Label, p.Start, p.End, ErrInsufficientData)
	}

	window := CashFlowSequence{
		{Date: p.Start, Amount: p.StartValue.Abs().Neg(), Label: "start value"},
	}
	for _, f := range pool {
		if f.Date.After(p.Start) && f.Date.Before(p.End) {
			window = append(window, f)
		}
	}
	window = append(window, CashFlow{Date: p.End, Amount: *p.EndValue, Label: "end value"})

	return window.Sorted(), nil
}
