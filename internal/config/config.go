// internal/config/config.go

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"sshpick/internal/utils"
)

const (
	DefaultSettingsFileName = "config.yaml"
	DefaultSettingsDir      = ".config/sshpick"

	// EnvConfigPath overrides the ssh config location when the --config
	// flag is not given.
	EnvConfigPath = "SSHPICK_CONFIG"
)

// Settings are the optional application settings read from
// ~/.config/sshpick/config.yaml. Every field may be empty; flags take
// precedence over all of them.
type Settings struct {
	// SSHConfigPath points at the ssh client configuration to pick
	// hosts from. Defaults to ~/.ssh/config.
	SSHConfigPath string `yaml:"ssh_config_path"`

	// Debug enables the file logger.
	Debug bool `yaml:"debug"`

	// LogFile is where debug logging goes. Defaults to the system
	// temp directory.
	LogFile string `yaml:"log_file"`
}

// DefaultSettingsPath returns ~/.config/sshpick/config.yaml.
func DefaultSettingsPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine home directory: %w", err)
	}
	return filepath.Join(home, DefaultSettingsDir, DefaultSettingsFileName), nil
}

// LoadSettings reads the settings file at path. A missing file is not an
// error; it yields zero settings so the tool works without any setup.
func LoadSettings(path string) (Settings, error) {
	var s Settings
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(utils.ExpandHome(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("failed to read settings file: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("failed to parse settings file %s: %w", path, err)
	}
	return s, nil
}

// DefaultSSHConfigPath returns ~/.ssh/config.
func DefaultSSHConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine home directory: %w", err)
	}
	return filepath.Join(home, ".ssh", "config"), nil
}

// ResolveSSHConfigPath picks the ssh config location. The explicit flag
// wins, then the SSHPICK_CONFIG environment variable, then the settings
// file, then ~/.ssh/config.
func ResolveSSHConfigPath(flagPath string, s Settings) (string, error) {
	switch {
	case flagPath != "":
		return utils.ExpandHome(flagPath), nil
	case os.Getenv(EnvConfigPath) != "":
		return utils.ExpandHome(os.Getenv(EnvConfigPath)), nil
	case s.SSHConfigPath != "":
		return utils.ExpandHome(s.SSHConfigPath), nil
	}
	return DefaultSSHConfigPath()
}
