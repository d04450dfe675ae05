// ABOUTME: Standard filesystem paths for themeswitch configuration and state
// ABOUTME: Everything lives under ~/.themeswitch/

package config

import (
	"os"
	"path/filepath"
)

const globalDirName = ".themeswitch"

// GlobalDir returns the user config directory (~/.themeswitch/).
func GlobalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", globalDirName)
	}
	return filepath.Join(home, globalDirName)
}

// ConfigFile returns the default settings file path.
func ConfigFile() string {
	return filepath.Join(GlobalDir(), "config.yaml")
}

// StateFile returns the default path of the durable theme slot.
func StateFile() string {
	return filepath.Join(GlobalDir(), "state.json")
}

// LogFile returns the path the TUI logs to while it owns the terminal.
func LogFile() string {
	return filepath.Join(GlobalDir(), "themeswitch.log")
}

// HostKeyFile returns the default SSH host key path.
func HostKeyFile() string {
	return filepath.Join(GlobalDir(), "ssh_host_ed25519")
}

// EnsureDir creates a directory and all parents if they don't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o700)
}
