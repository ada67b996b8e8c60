package xirr

import "math"

// EUR is a helper for test to create euro money from const
func EUR(v float64) Money { return M(v, "EUR") }

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// NO is a helper for test to create money from const with no currency set
func NO(v float64) Money { return M(v, "") }

// on is a helper for test to create a date from its standard string form.
func on(str string) Date { return MustParseDate(str) }

// within reports whether two floats are within tol of each other.
func within(a, b, tol float64) bool { return math.Abs(a-b) <= tol }
