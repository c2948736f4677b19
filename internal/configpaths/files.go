// Package configpaths resolves where allyctl looks for configuration
// files.
package configpaths

import (
	"os"
	"path/filepath"
)

// DefaultConfigDir returns the per-user configuration directory.
func DefaultConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "allyctl"), nil
}

// ConfigCandidatePaths lists the configuration files to try, grouped by
// format: the per-user config dir first, then the working directory,
// then an explicit user-supplied path. Missing files are skipped by the
// loader, and values from later files win.
func ConfigCandidatePaths(userCfg string) (jsonPaths, yamlPaths, tomlPaths []string) {
	if dir, err := DefaultConfigDir(); err == nil {
		jsonPaths = append(jsonPaths, filepath.Join(dir, "config.json"))
		yamlPaths = append(yamlPaths, filepath.Join(dir, "config.yaml"), filepath.Join(dir, "config.yml"))
		tomlPaths = append(tomlPaths, filepath.Join(dir, "config.toml"))
	}

	jsonPaths = append(jsonPaths, "allyctl.json")
	yamlPaths = append(yamlPaths, "allyctl.yaml", "allyctl.yml")
	tomlPaths = append(tomlPaths, "allyctl.toml")

	switch filepath.Ext(userCfg) {
	case "":
	case ".yaml", ".yml":
		yamlPaths = append(yamlPaths, userCfg)
	case ".toml":
		tomlPaths = append(tomlPaths, userCfg)
	default:
		jsonPaths = append(jsonPaths, userCfg)
	}
	return jsonPaths, yamlPaths, tomlPaths
}
