// Package app provides the orchestration layer for the fandom application.
//
// # Overview
//
// This package wires together configuration, preferences, logging, the API
// client, the chart poller and the UI. It is the composition root where all
// dependencies are initialized and connected.
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()      Read config.toml (defaults when missing)
//	       ├─────> prefs.Load()       Theme and gender filter
//	       ├─────> setupLogging()     charmbracelet/log to the log file
//	       ├─────> fandom.NewClient() HTTP client for the team's API
//	       ├─────> state.NewStore()   Chart request and latest snapshot
//	       ├─────> StartPoller()      Background chart refresh
//	       └─────> ui.Run()           Start TUI (blocks)
//
// Donation and idol pages are fetched by the UI itself, one page at a time,
// as cards scroll into view. Only the monthly chart is polled.
//
// # Polling Behavior
//
// The poller refreshes the chart every ChartPollEvery (default 30 seconds).
// Each consecutive failure doubles the wait, capped at five minutes. When the
// UI changes the chart request (gender tab or "show more") the store wakes
// the poller for an immediate refresh and results for the old request are
// discarded.
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Invalid configuration file
//   - Log file cannot be created
//   - Invalid API URL
//
// Recoverable errors (logged, reflected in the header, polling continues):
//   - Chart fetch failures and timeouts
//
// # Logging
//
// Logs go to the file named by log_file in config.toml so they never corrupt
// the terminal. Set FANDOM_LOG_LEVEL to debug, info, warn or error; the TUI's
// log overlay (L) tails the same file.
package app
