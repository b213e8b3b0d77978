package config

import "io/fs"

const (
	defaultConfigPath   = "~/.config/edlparser/config.toml"
	projectConfigName   = "edlparser.toml"
	defaultEncoding     = "utf-8"
	defaultDirMode      = "0755"
	defaultDirPerm      = fs.FileMode(0o755)
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
	defaultCreateBase   = true
	defaultEDLExtension = ".edl"
)

// SupportedEncodings lists the accepted values for edl.encoding.
var SupportedEncodings = []string{"utf-8", "windows-1252", "iso-8859-1", "utf-16"}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		EDL: EDL{
			Extensions: []string{defaultEDLExtension},
			Encoding:   defaultEncoding,
		},
		Folders: Folders{
			DirMode:    defaultDirMode,
			CreateBase: defaultCreateBase,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
