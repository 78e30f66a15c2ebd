package config

import (
	"os"
	"path/filepath"
)

// Home returns PRINBOX_HOME or the ~/.prinbox default
func Home() string {
	home := os.Getenv("PRINBOX_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".prinbox"
		}
		return filepath.Join(homeDir, ".prinbox")
	}
	return ExpandPath(home)
}

// DBPath returns $PRINBOX_HOME/runs.db
func DBPath() string {
	return filepath.Join(Home(), "runs.db")
}

// LockPath returns $PRINBOX_HOME/serve.lock
func LockPath() string {
	return filepath.Join(Home(), "serve.lock")
}

// SSHDir returns $PRINBOX_HOME/ssh, where the server host key lives
func SSHDir() string {
	return filepath.Join(Home(), "ssh")
}

// DefaultConfigPath returns $PRINBOX_HOME/config.yaml
func DefaultConfigPath() string {
	return filepath.Join(Home(), "config.yaml")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
