// Package logging wraps log/slog with the project's handlers and attribute
// helpers. The console handler prints compact human-oriented lines; the JSON
// handler emits machine-readable records with normalized keys. Format "auto"
// picks console on a terminal and json otherwise.
package logging
