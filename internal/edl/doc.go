// Package edl extracts clip records from Edit Decision List text.
//
// Only REEL lines carrying a CLIP marker are considered. The clip name that
// follows the marker must begin with a season/episode token such as s01e005;
// the season, a zero-padded episode, and (for .mov and .wav clips) a shot
// identifier are derived from its underscore-delimited tokens. Lines that do
// not match the naming convention are filtered, and lines that match but break
// the positional token contract are reported as MalformedLineError values
// without aborting the rest of the file.
//
// Extract is the pure entry point. Extractor adds file decoding, logging, and
// per-run counters for the CLI.
package edl
