package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeEDL()
	c.Folders.DirMode = strings.TrimSpace(c.Folders.DirMode)
	if c.Folders.DirMode == "" {
		c.Folders.DirMode = defaultDirMode
	}
	return c.normalizeLogging()
}

func (c *Config) normalizePaths() error {
	if strings.TrimSpace(c.Paths.BaseDir) == "" {
		if value, ok := os.LookupEnv("EDLPARSER_BASE_DIR"); ok {
			c.Paths.BaseDir = strings.TrimSpace(value)
		}
	}
	var err error
	if c.Paths.BaseDir, err = expandPath(strings.TrimSpace(c.Paths.BaseDir)); err != nil {
		return fmt.Errorf("paths.base_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeEDL() {
	exts := make([]string, 0, len(c.EDL.Extensions))
	seen := make(map[string]struct{}, len(c.EDL.Extensions))
	for _, ext := range c.EDL.Extensions {
		normalized := strings.ToLower(strings.TrimSpace(ext))
		if normalized == "" {
			continue
		}
		if !strings.HasPrefix(normalized, ".") {
			normalized = "." + normalized
		}
		if _, exists := seen[normalized]; exists {
			continue
		}
		seen[normalized] = struct{}{}
		exts = append(exts, normalized)
	}
	if len(exts) == 0 {
		exts = []string{defaultEDLExtension}
	}
	c.EDL.Extensions = exts

	c.EDL.Encoding = strings.ToLower(strings.TrimSpace(c.EDL.Encoding))
	switch c.EDL.Encoding {
	case "", "utf8":
		c.EDL.Encoding = defaultEncoding
	case "cp1252":
		c.EDL.Encoding = "windows-1252"
	case "latin1", "latin-1":
		c.EDL.Encoding = "iso-8859-1"
	case "utf16":
		c.EDL.Encoding = "utf-16"
	}
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	var err error
	if c.Logging.File, err = expandPath(strings.TrimSpace(c.Logging.File)); err != nil {
		return fmt.Errorf("logging.file: %w", err)
	}
	return nil
}
