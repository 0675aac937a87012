package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const defaultServer = "http://127.0.0.1:8000"

// Config holds application-level configuration.
type Config struct {
	ServerURL   string // e.g. "http://127.0.0.1:8000"
	LogPath     string // Where the TUI writes its JSON log
	UIStatePath string // Persisted UI preferences
	Debug       bool
}

// fileConfig is the optional YAML config file.
type fileConfig struct {
	Server  string `yaml:"server"`
	LogFile string `yaml:"log_file"`
	Debug   bool   `yaml:"debug"`
}

// Load reads configuration from the config file, then environment variables.
// Environment wins over the file.
//
//	DUNGEONTERM_SERVER   game server base URL (default: http://127.0.0.1:8000)
//	DUNGEONTERM_CONFIG   YAML config file (default: ~/.config/dungeonterm/config.yaml)
//	DUNGEONTERM_LOG      log file (default: ~/.config/dungeonterm/dungeonterm.log)
//	DUNGEONTERM_STATE    UI state file (default: ~/.config/dungeonterm/ui_state.json)
func Load() (Config, error) {
	return LoadFile("")
}

// LoadFile is Load with an explicit config file path. An empty path falls
// back to DUNGEONTERM_CONFIG and then the default location.
func LoadFile(configPath string) (Config, error) {
	dir, err := configDir()
	if err != nil {
		return Config{}, err
	}

	if configPath == "" {
		configPath = os.Getenv("DUNGEONTERM_CONFIG")
	}
	if configPath == "" {
		configPath = filepath.Join(dir, "config.yaml")
	}
	fc, err := loadFile(configPath)
	if err != nil {
		return Config{}, err
	}

	server := firstNonEmpty(os.Getenv("DUNGEONTERM_SERVER"), fc.Server, defaultServer)
	server, err = NormalizeServerURL(server)
	if err != nil {
		return Config{}, err
	}

	return Config{
		ServerURL:   server,
		LogPath:     firstNonEmpty(os.Getenv("DUNGEONTERM_LOG"), fc.LogFile, filepath.Join(dir, "dungeonterm.log")),
		UIStatePath: firstNonEmpty(os.Getenv("DUNGEONTERM_STATE"), filepath.Join(dir, "ui_state.json")),
		Debug:       fc.Debug,
	}, nil
}

// NormalizeServerURL validates an absolute http(s) URL and drops any trailing slash.
func NormalizeServerURL(raw string) (string, error) {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", fmt.Errorf("invalid server URL %q: must be an absolute URL", raw)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("invalid server URL %q: scheme must be http or https", raw)
	}
	return strings.TrimRight(parsed.String(), "/"), nil
}

func loadFile(path string) (fileConfig, error) {
	var fc fileConfig
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return fc, nil
	}
	if err != nil {
		return fc, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return fc, nil
}

func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", "dungeonterm"), nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
