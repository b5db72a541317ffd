// Package config loads fandom's TOML configuration.
//
// # Configuration Discovery
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/fandom/config.toml
//  3. If the file doesn't exist, fall back to defaults
//  4. Missing, blank or non-positive fields keep their defaults
//
// # TOML Format
//
//	api_url = "https://fandom-k-api.vercel.app"
//	team = "8-3"
//	request_timeout_seconds = 5
//	donation_page_size = 4
//	idol_page_size = 16
//	chart_page_size = 10
//	chart_poll_seconds = 30
//	log_file = "~/.local/state/fandom/fandom.log"
//
// Paths starting with ~ are expanded against the user's home directory and made
// absolute. A malformed file is a fatal error ("parse config: ...") rather than
// a silent fallback, so typos are noticed.
package config
