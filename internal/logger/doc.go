// Package logger builds the application's slog.Logger from configuration:
// text or JSON encoding, a minimum level, stderr by default.
package logger
