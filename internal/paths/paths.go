// Package paths locates bob's configuration file on disk.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// ConfigEnvVar overrides the config file location when set.
	ConfigEnvVar = "BOB_CONFIG"

	appDirName   = "bob"
	tomlFileName = "config.toml"
	jsonFileName = "config.json"
)

// LookupFunc resolves an environment variable by name.
type LookupFunc func(name string) (string, bool)

var userConfigDir = os.UserConfigDir

// ConfigDir returns the directory holding bob's configuration.
func ConfigDir() (string, error) {
	base, err := userConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, appDirName), nil
}

// ConfigFile returns the config file path. BOB_CONFIG wins when set and
// non-empty; otherwise config.toml is preferred when it exists, falling back
// to config.json. The returned file is not required to exist.
func ConfigFile(lookup LookupFunc) (string, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	if value, ok := lookup(ConfigEnvVar); ok && value != "" {
		return value, nil
	}

	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}

	tomlPath := filepath.Join(dir, tomlFileName)
	if info, err := os.Stat(tomlPath); err == nil && !info.IsDir() {
		return tomlPath, nil
	}

	return filepath.Join(dir, jsonFileName), nil
}
