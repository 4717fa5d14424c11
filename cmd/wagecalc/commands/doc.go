// Package commands defines the wagecalc CLI.
//
// The root command takes exactly three positional tokens, a billing month
// (yyyy-MM), an hour count and an hourly rate, validates them and prints
// the earnings line on success. By default the first invalid field is
// reported alone; --all-errors reports every invalid field, one message per
// line, in month, hours, rate order.
//
// # Implementation
//
// The root command loads configuration from the environment and builds the
// dependency graph (validators, composer, calculator, logger) before the
// handler runs. Exit status is binary: 0 on success, 1 on any failure.
package commands
