//go:build pointarraydebug

package pointarray

// debugChecks enables iterator parity and curve-table ordering assertions.
const debugChecks = true
