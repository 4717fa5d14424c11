// Package app wires application dependencies for the CLI.
//
// It loads Config from the environment and builds the concrete validators,
// composer, calculator and logger, exposing them via the App struct for
// commands to use.
package app
