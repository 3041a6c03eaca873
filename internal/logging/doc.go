// Package logging constructs the application slog logger: a compact console
// handler for interactive use and a JSON handler for machine consumption,
// plus attribute helpers shared across packages.
package logging
