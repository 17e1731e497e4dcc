// Package calc implements the calculator engine: the input state machine (Session), the notation
// translator from calculator-surface text to canonical tokens, the evaluator, and the result
// formatter.
//
// The package has no dependencies outside the standard library so it builds for TinyGo targets
// (the PicoCalc) as well as the host.
package calc
