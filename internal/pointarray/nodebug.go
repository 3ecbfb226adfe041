//go:build !pointarraydebug

package pointarray

const debugChecks = false
