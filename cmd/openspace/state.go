package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/srgjo27/openspace/internal/config"
)

const lastStateFile = "last_state"

// stateDir holds the pointer to the last JSON state file written by seat.
func stateDir() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "openspace"), nil
}

// rememberState records the absolute path of a written state file so later
// commands find it from any working directory.
func rememberState(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	dir, err := stateDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	return os.WriteFile(filepath.Join(dir, lastStateFile), []byte(abs+"\n"), 0o644)
}

// statePath picks the JSON state file for commands that read it: an explicit
// path, an absolute OutputFile, the file last written by seat, and finally
// OutputFile relative to the working directory.
func statePath(cfg *config.Config, explicit string) string {
	if explicit != "" {
		return explicit
	}
	if filepath.IsAbs(cfg.OutputFile) {
		return cfg.OutputFile
	}

	if dir, err := stateDir(); err == nil {
		if data, err := os.ReadFile(filepath.Join(dir, lastStateFile)); err == nil {
			if path := strings.TrimSpace(string(data)); path != "" {
				return path
			}
		}
	}

	return cfg.OutputFile
}
