package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var DefaultConfigYAML []byte

type Config struct {
	Sources Sources `yaml:"sources"`
	HTTP    HTTP    `yaml:"http"`
	Cache   Cache   `yaml:"cache"`
	Output  Output  `yaml:"output"`
	Logging Logging `yaml:"logging"`
}

type Sources struct {
	// Pages are bulletin index pages, one per period label, scanned for PDF
	// links. Order here is the processing order.
	Pages []Page `yaml:"pages"`
	// Feeds are RSS/Atom feeds of advisory announcements.
	Feeds []Feed `yaml:"feeds"`
}

type Page struct {
	Period string `yaml:"period"`
	URL    string `yaml:"url"`
}

type Feed struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

type HTTP struct {
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

type Cache struct {
	// Dir overrides where downloaded documents are cached. Empty means
	// <data_dir>/pdfs.
	Dir string `yaml:"dir"`
}

type Output struct {
	DataDir string `yaml:"data_dir"`
}

type Logging struct {
	Level string `yaml:"level"`
}

// ConfigDir returns the XDG config directory for fraudscan.
func ConfigDir() string {
	return filepath.Join(homeDir(), ".config", "fraudscan")
}

// DataDir returns the XDG data directory for fraudscan.
func DataDir() string {
	return filepath.Join(homeDir(), ".local", "share", "fraudscan")
}

// ResolveConfigPath finds the config file following priority:
// explicit path > ~/.config/fraudscan/config.yaml > ./config.yaml
func ResolveConfigPath(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file not found: %s", explicit)
		}
		return explicit, nil
	}

	xdgConfig := filepath.Join(ConfigDir(), "config.yaml")
	if _, err := os.Stat(xdgConfig); err == nil {
		return xdgConfig, nil
	}

	cwdConfig := "config.yaml"
	if _, err := os.Stat(cwdConfig); err == nil {
		return cwdConfig, nil
	}

	return "", fmt.Errorf(
		"no config file found; searched:\n  %s\n  ./config.yaml\n\nRun 'fraudscan init' to create a default config",
		xdgConfig,
	)
}

// Load reads and parses a config YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return parse(data)
}

// parse parses YAML bytes into a Config, applying defaults.
func parse(data []byte) (*Config, error) {
	cfg := &Config{
		HTTP:    HTTP{TimeoutSeconds: 20},
		Logging: Logging{Level: "INFO"},
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.HTTP.TimeoutSeconds <= 0 {
		cfg.HTTP.TimeoutSeconds = 20
	}

	return cfg, nil
}

// GetDataDir returns the effective data directory from config or XDG default.
func (c *Config) GetDataDir() string {
	if c.Output.DataDir != "" {
		return c.Output.DataDir
	}
	return DataDir()
}

// GetCacheDir returns where downloaded documents are cached.
func (c *Config) GetCacheDir() string {
	if c.Cache.Dir != "" {
		return c.Cache.Dir
	}
	return filepath.Join(c.GetDataDir(), "pdfs")
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
