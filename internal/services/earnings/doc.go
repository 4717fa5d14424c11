// Package earnings computes monthly pay from validated hours and rate
// using exact decimal arithmetic, so no floating-point rounding artifacts
// reach the output.
package earnings
