// Package logging builds the structured slog logger used for persistence
// diagnostics. Output is JSON, and records can be tagged with a component
// attribute so masked save/load failures are easy to find in aggregated logs.
package logging
