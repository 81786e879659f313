package domain

import (
	"path/filepath"
	"strings"
)

// Well-known file names.
const (
	ConfigFileName = "pawpal.toml"
	StoreFileName  = "pawpal.json"
)

// GlobalConfigDir returns the pawpal config directory under configHome
// (typically $XDG_CONFIG_HOME or ~/.config).
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, "pawpal")
}

// DataDir returns the pawpal data directory under the user's home.
func DataDir(home string) string {
	return filepath.Join(home, ".pawpal")
}

// GlobalLogPath returns the path of the application log file.
func GlobalLogPath(dataDir string) string {
	return filepath.Join(dataDir, "logs", "pawpal.log")
}

// OwnerLogPath returns the path of an owner-specific log file.
func OwnerLogPath(dataDir, owner string) string {
	return filepath.Join(dataDir, "logs", "owner-"+slug(owner)+".log")
}

// slug lowercases a name and replaces path-hostile characters so it is
// safe to embed in a file name.
func slug(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	return b.String()
}
