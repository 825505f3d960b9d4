// Package log builds [slog.Handler]s from user-facing level and format
// strings.
//
// The "text" format is rendered by [github.com/charmbracelet/log] and is
// meant for humans at a terminal. The "logfmt" and "json" formats use the
// standard library handlers.
package log
