// Package config loads, normalizes, and validates edlparser configuration.
//
// It supplies defaults, expands user paths (including tilde shortcuts), reads
// TOML files, and honours the EDLPARSER_BASE_DIR environment fallback. Every
// knob the CLI needs (base directory, accepted extensions, input encoding,
// directory mode, log format) is resolved in one pass so commands receive
// sanitized values and clear validation errors.
package config
