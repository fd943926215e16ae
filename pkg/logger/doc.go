// Package logger builds configured *slog.Logger instances and provides
// attribute helpers so log keys stay consistent across the codebase.
//
// Production services use the JSON format for log aggregation; local
// development uses text. Services that accept a logger should default to a
// discard logger when none is supplied.
package logger
