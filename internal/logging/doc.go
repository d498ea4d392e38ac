// Package logging assembles the slog loggers used by wphelper.
//
// Command output owns stdout, so every handler writes to stderr (and an
// optional log file). The console handler renders a compact human-readable
// form, the JSON handler emits one object per line. WithContext tags records
// with the per-invocation correlation id stored by WithCorrelationID.
package logging
