// Package config resolves where task-cli keeps its files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	AppName         = "task-cli"
	StoreFile       = "tasks.json"
	OAuthClientFile = "oauth_client.json"
	TokenFile       = "token.json"

	// FileEnv overrides the task store path.
	FileEnv = "TASK_CLI_FILE"
)

// Config is the per-invocation configuration built by the dispatcher.
type Config struct {
	// Dir holds oauth_client.json, token.json and, by default, tasks.json.
	Dir string

	// File overrides the task store path when set.
	File string

	Debug bool
	Quiet bool

	// Log receives diagnostics. Never nil after dispatch.
	Log logrus.FieldLogger
}

// New builds a Config. An empty configDir means DefaultConfigDir; an empty
// file means $TASK_CLI_FILE. A leading "~/" in either is expanded.
func New(configDir, file string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}
	if file == "" {
		file = os.Getenv(FileEnv)
	}

	dir, err := expandHome(configDir)
	if err != nil {
		return nil, fmt.Errorf("config dir: %w", err)
	}
	file, err = expandHome(file)
	if err != nil {
		return nil, fmt.Errorf("task file: %w", err)
	}
	return &Config{Dir: dir, File: file}, nil
}

// DefaultConfigDir returns $XDG_CONFIG_HOME/task-cli, else
// $HOME/.config/task-cli, else task-cli in the working directory.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

func expandHome(path string) (string, error) {
	rest, ok := strings.CutPrefix(path, "~/")
	if !ok && path != "~" {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, rest), nil
}

// StorePath returns the task file path.
func (c *Config) StorePath() string {
	if c.File != "" {
		return c.File
	}
	return filepath.Join(c.Dir, StoreFile)
}

func (c *Config) OAuthClientPath() string { return filepath.Join(c.Dir, OAuthClientFile) }
func (c *Config) TokenPath() string       { return filepath.Join(c.Dir, TokenFile) }

// EnsureDir creates the config directory with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// HasOAuthClient reports whether oauth_client.json is present.
func (c *Config) HasOAuthClient() bool { return isFile(c.OAuthClientPath()) }

// HasToken reports whether token.json is present.
func (c *Config) HasToken() bool { return isFile(c.TokenPath()) }

// RemoveToken deletes token.json. A missing token is not an error.
func (c *Config) RemoveToken() error {
	err := os.Remove(c.TokenPath())
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
