// Package logtail reads and colorizes fandom's own log file for the in-app
// logs overlay.
//
// Read extracts the last N lines of a file with a ring buffer of size N, so
// memory stays O(N) regardless of file size. Lines come back in file order.
//
//	lines, err := logtail.Read(cfg.LogFile, 400)
//
// Parse understands the text format written by charmbracelet/log:
//
//	2026/10/18 14:32:15 WARN page fetch failed component=feed feed=idols err="timeout"
//
// The key=value tail is decoded with go-logfmt/logfmt, so Field values come
// back unquoted. A tail that does not decode stays part of the message.
// Abbreviated levels (DEBU, ERRO, FATA) are normalised to their full names.
// Colorize renders the parts with a lipgloss Palette; lines without a level,
// such as wrapped continuations, use the plain style.
package logtail
