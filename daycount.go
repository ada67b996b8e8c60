package xirr

import "math"

// DaysInYear is the fixed day-count convention used throughout. It is a
// deliberate approximation, neither actual/actual nor actual/360: changing
// it changes every reported rate, so it is kept as is for compatibility.
const DaysInYear = 365.25

// DaysBetween returns the absolute number of calendar days between two
// dates. Dates are pure calendar values so there is no DST or timezone
// arithmetic involved.
func DaysBetween(d1, d2 Date) int {
	days := int(d2.time().Sub(d1.time()).Hours() / 24)
	if days < 0 {
		return -days
	}
	return days
}

// YearsBetween returns the day count between two dates as a fraction of the
// fixed 365.25-day year.
func YearsBetween(d1, d2 Date) float64 {
	return float64(DaysBetween(d1, d2)) / DaysInYear
}

// schedule is the float-space view of a sorted cash-flow sequence that both
// solvers evaluate against. Year fractions are measured from the earliest
// date, which is flows[0] once sorted.
type schedule struct {
	years   []float64
	amounts []float64
}

// newSchedule precomputes year fractions and float amounts from a sorted
// sequence, so each NPV evaluation is a single O(n) pass.
func newSchedule(sorted CashFlowSequence) *schedule {
	s := &schedule{
		years:   make([]float64, len(sorted)),
		amounts: make([]float64, len(sorted)),
	}
	base := sorted[0].Date
	for i, f := range sorted {
		s.years[i] = YearsBetween(base, f.Date)
		s.amounts[i] = f.Amount.AsFloat()
	}
	return s
}

// npv returns the net present value of the schedule at the given rate:
//
//	Σ amount / (1+rate)^years
//
// It is well-defined for any rate > -1; the solvers never evaluate at or
// below the singular point rate = -1.
func (s *schedule) npv(rate float64) float64 {
	var sum float64
	for i, a := range s.amounts {
		sum += a / math.Pow(1+rate, s.years[i])
	}
	return sum
}

// derivative returns the analytic derivative of npv with respect to rate:
//
//	Σ -years·amount / (1+rate)^(years+1)
func (s *schedule) derivative(rate float64) float64 {
	var sum float64
	for i, a := range s.amounts {
		sum += -s.years[i] * a / math.Pow(1+rate, s.years[i]+1)
	}
	return sum
}
