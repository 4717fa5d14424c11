// Package compose merges the three field validations into one outcome.
//
// Two aggregation policies exist: fail-fast stops at the first failing
// field and reports that error alone; accumulate evaluates every field and
// reports all failures in fixed month, hours, rate order. The two agree
// exactly on success.
package compose
