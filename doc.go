// Package xirr computes the annualized rate of return of an irregular
// series of dated cash flows (the Extended Internal Rate of Return), the
// way Excel's XIRR function does, and extends the computation across a set
// of analysis windows derived from period start/end market values plus
// intermediate transactions.
//
// The core functionalities include:
//   - NPV Kernel: day-count arithmetic (fixed 365.25-day year) and the
//     net-present-value function with its analytic derivative, shared by
//     both solvers.
//   - Dual Solvers: a fast Newton-Raphson root finder and a robust
//     Brent-style bracketing root finder, always run side by side.
//   - Reconciliation: the rate whose residual NPV is closest to zero wins,
//     and any disagreement between the two solvers beyond tolerance is
//     reported as a first-class flag rather than silently resolved.
//   - Period Windows: converting a period definition (start date, end date,
//     start value, end value) plus intermediate cash flows into a synthetic
//     cash-flow sequence, and aggregating results over many windows.
//   - Data Persistence: encoding and decoding cash flows and periods to and
//     from human-readable formats (JSONL, CSV, tab-delimited, vendor JSON).
//
// This package serves as the foundational logic for the `xr` command-line
// tool. It performs no I/O of its own beyond the explicit import/export
// functions: every computation is a pure function of its arguments.
package xirr
