package config

import (
	"fmt"
	"io/fs"
	"slices"
	"strconv"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if !slices.Contains(SupportedEncodings, c.EDL.Encoding) {
		return fmt.Errorf("edl.encoding %q is not supported (use one of %v)", c.EDL.Encoding, SupportedEncodings)
	}
	if _, err := parseDirMode(c.Folders.DirMode); err != nil {
		return fmt.Errorf("folders.dir_mode: %w", err)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level)
	}
	return nil
}

func parseDirMode(value string) (fs.FileMode, error) {
	parsed, err := strconv.ParseUint(value, 8, 32)
	if err != nil {
		return 0, fmt.Errorf("%q is not an octal mode", value)
	}
	if parsed > 0o777 {
		return 0, fmt.Errorf("%q has bits outside 0777", value)
	}
	if parsed&0o700 != 0o700 {
		return 0, fmt.Errorf("%q must grant the owner rwx so nested directories can be created", value)
	}
	return fs.FileMode(parsed), nil
}
