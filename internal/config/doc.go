// Package config loads the glint command's TOML configuration.
//
// The Load function resolves an explicit path when one is given,
// otherwise ~/.config/glint/config.toml, and falls back to built-in
// defaults when the file does not exist — the tool works with no
// configuration at all. Fields left out of the file keep their
// defaults; only a malformed file is an error.
//
// Recognized fields:
//
//	level = "progress"     # minimum level: progress, debug, info, warn, error
//	justify_column = 0     # column metadata right-aligns to; 0 = own line
//	limit_values = true    # bounded preview of large structures
//	add_source = false     # record file:line from call sites
//
// Tilde paths expand against the user's home directory; relative paths
// resolve against the working directory.
package config
