// Package logging builds the slog loggers used across phonodeck.
//
// Two output formats are supported: "console", a compact single-line
// key=value format for interactive runs, and "json" for machine
// consumption. Attr helpers and standard field keys keep log records
// consistent between packages; NewComponentLogger tags every record from a
// subsystem with its component name.
package logging
