package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config path constants used by the CLI and loaders.
const (
	ConfigDirName  = ".snaketest"
	ConfigFileName = "config.yml"
)

// ErrConfigNotFound is returned when no config file exists up to the filesystem root.
var ErrConfigNotFound = errors.New("config not found")

// ConfigDir returns the .snaketest directory under the repo root.
func ConfigDir(root string) string {
	return filepath.Join(root, ConfigDirName)
}

// ConfigPath returns the full config file path under the repo root.
func ConfigPath(root string) string {
	return filepath.Join(ConfigDir(root), ConfigFileName)
}

// RepoRootFromConfigPath derives the repo root from a config file path.
func RepoRootFromConfigPath(configPath string) string {
	dir := filepath.Dir(configPath)
	if filepath.Base(dir) == ConfigDirName {
		return filepath.Dir(dir)
	}
	return dir
}

// FindConfigPath searches upward from a directory for a config file.
func FindConfigPath(startDir string) (string, error) {
	dir := strings.TrimSpace(startDir)
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		dir = wd
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve start directory: %w", err)
	}
	dir = abs

	for {
		configDir := filepath.Join(dir, ConfigDirName)
		configPath := filepath.Join(configDir, ConfigFileName)
		info, err := os.Stat(configPath)
		if err == nil {
			if info.IsDir() {
				return "", fmt.Errorf("config path %q is a directory", configPath)
			}
			return configPath, nil
		}
		if !os.IsNotExist(err) {
			return "", fmt.Errorf("stat config path %q: %w", configPath, err)
		}
		if dirInfo, dirErr := os.Stat(configDir); dirErr == nil && dirInfo.IsDir() {
			return "", fmt.Errorf("found %q but %s is missing", configDir, ConfigFileName)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w: no %s in %s or parent directories", ErrConfigNotFound, filepath.Join(ConfigDirName, ConfigFileName), abs)
		}
		dir = parent
	}
}

// Resolve loads the config at path, or searches upward from the working
// directory when path is empty. A missing config yields defaults with
// paths relative to the working directory.
func Resolve(path string) (Config, string, error) {
	if strings.TrimSpace(path) != "" {
		abs, err := filepath.Abs(path)
		if err != nil {
			return Config{}, "", fmt.Errorf("resolve config path: %w", err)
		}
		cfg, err := Load(abs)
		return cfg, abs, err
	}
	found, err := FindConfigPath("")
	if errors.Is(err, ErrConfigNotFound) {
		return Default(), "", nil
	}
	if err != nil {
		return Config{}, "", err
	}
	cfg, err := Load(found)
	return cfg, found, err
}
