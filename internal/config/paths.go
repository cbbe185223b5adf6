package config

import (
	"os"
	"path/filepath"
)

const (
	// EnvConfigPath names an explicit config file
	EnvConfigPath = "HARNESSPAIR_CONFIG"
	// ConfigFileName is looked up in the working directory
	ConfigFileName = "harnesspair.yaml"

	appDir  = "harnesspair"
	dirFile = "config.yaml"
)

// searchPaths lists config candidates in priority order. Unset variables
// contribute no entry.
func searchPaths() []string {
	var paths []string
	if p := os.Getenv(EnvConfigPath); p != "" {
		paths = append(paths, p)
	}
	paths = append(paths, ConfigFileName)
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, appDir, dirFile))
	}
	if home := os.Getenv("HOME"); home != "" {
		paths = append(paths, filepath.Join(home, ".config", appDir, dirFile))
	}
	return append(paths, filepath.Join("/etc", appDir, dirFile))
}

// FindConfigPath returns the first existing regular file from searchPaths,
// made absolute, or "" when there is none
func FindConfigPath() string {
	for _, p := range searchPaths() {
		info, err := os.Stat(p)
		if err != nil || info.IsDir() {
			continue
		}
		if abs, err := filepath.Abs(p); err == nil {
			return abs
		}
		return p
	}
	return ""
}
