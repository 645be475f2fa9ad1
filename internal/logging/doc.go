// Package logging provides structured logging for the transkeys CLI,
// built on log/slog with a colorized TTY handler for interactive use
// and a JSON handler for machine consumption.
package logging
