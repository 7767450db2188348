package configloader

import (
	"os"
	"path/filepath"
)

// Project config file names searched upward from the working directory.
//
//nolint:gochecknoglobals // Read-only lookup table.
var projectConfigNames = []string{".talign.yml", ".talign.yaml"}

// ConfigPaths holds the discovered configuration file locations.
// Empty fields mean no file was found at that level.
type ConfigPaths struct {
	// Project is the nearest project config found by upward search.
	Project string

	// User is the XDG user-level config file.
	User string
}

// DiscoverPaths locates the configuration files relevant to workDir.
func DiscoverPaths(workDir string) (*ConfigPaths, error) {
	paths := &ConfigPaths{
		Project: findProjectConfig(workDir),
		User:    findUserConfig(),
	}
	return paths, nil
}

// findProjectConfig searches workDir and its ancestors for a project config,
// stopping at a repository root (a directory containing .git) or the
// filesystem root.
func findProjectConfig(workDir string) string {
	dir := workDir
	for {
		for _, name := range projectConfigNames {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate
			}
		}

		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return ""
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// findUserConfig returns the user-level config path if it exists.
func findUserConfig() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}

	candidate := filepath.Join(configDir, "talign", "config.yaml")
	if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
		return candidate
	}
	return ""
}
