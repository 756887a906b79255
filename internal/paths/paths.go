// Package paths resolves configuration and report directory locations.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// CWD-relative directory names.
const (
	DefaultConfigDirName = ".surveyor"
	DefaultReportDirName = ".surveyor-reports"
)

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "SURVEYOR_CONFIG_DIR"
	EnvReportDir = "SURVEYOR_REPORT_DIR"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/surveyor (fallback ~/.config/surveyor)
// macOS:   ~/Library/Application Support/surveyor
// Windows: %APPDATA%/surveyor
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "surveyor"), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "surveyor"), nil
	default:
		// macOS and Windows use os.UserConfigDir which returns
		// ~/Library/Application Support on macOS and %APPDATA% on Windows.
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "surveyor"), nil
	}
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > SURVEYOR_CONFIG_DIR env > CWD-relative default.
//
// The CWD-relative default ($(CWD)/.surveyor) keeps per-project
// configuration next to the model being checked.
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultConfigDirName), nil
}

// ResolveReportDir returns the report output directory following the
// precedence chain: flag > configYAMLValue > SURVEYOR_REPORT_DIR env >
// CWD-relative default.
func ResolveReportDir(flag, configYAMLValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configYAMLValue != "" {
		return filepath.Abs(configYAMLValue)
	}
	if env := os.Getenv(EnvReportDir); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultReportDirName), nil
}
