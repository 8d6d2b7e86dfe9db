// Package config handles the CLI's user-global settings file, distinct
// from the per-workspace .markhor/config.json that pkg/workspace owns.
package config

import (
	"os"
	"path/filepath"
)

// Dir returns the user's config directory for the CLI.
//
// If the home directory cannot be determined, it falls back to a
// directory under the system temp dir. Best-effort, not a security
// boundary.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Clean(filepath.Join(os.TempDir(), ".markhor-config"))
	}
	return filepath.Clean(filepath.Join(home, ".config", "markhor"))
}

// Path returns the full path to the user config file.
func Path() string {
	return filepath.Join(Dir(), "config.yaml")
}
