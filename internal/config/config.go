package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"wingetenhance/internal/manifest"
)

const (
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "pretty"
)

// LogConfig controls diagnostic output
type LogConfig struct {
	Level  string `toml:"level,omitempty"`
	Format string `toml:"format,omitempty"`
}

// ConfigFile represents the TOML config file structure
type ConfigFile struct {
	MinimumOSVersion string    `toml:"minimum_os_version,omitempty"`
	Platform         []string  `toml:"platform,omitempty"`
	Commands         []string  `toml:"commands,omitempty"`
	Log              LogConfig `toml:"log"`
}

// Config holds the runtime configuration
type Config struct {
	Path             string // empty when running on defaults
	MinimumOSVersion string
	Platform         []string
	Commands         []string
	Log              LogConfig
}

// DefaultConfig returns the configuration used when no file is given
func DefaultConfig() *Config {
	fields := manifest.DefaultFields()
	return &Config{
		MinimumOSVersion: fields.MinimumOSVersion,
		Platform:         fields.Platform,
		Commands:         fields.Commands,
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// Load returns the defaults overlaid with the TOML file at path.
// An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	var cf ConfigFile
	md, err := toml.DecodeFile(path, &cf)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("failed to load config %s: unknown key %q", path, undecoded[0].String())
	}

	cfg.Path = path
	cfg.merge(cf)
	return cfg, nil
}

// merge applies every non-empty value from the file
func (c *Config) merge(cf ConfigFile) {
	if cf.MinimumOSVersion != "" {
		c.MinimumOSVersion = cf.MinimumOSVersion
	}
	if len(cf.Platform) > 0 {
		c.Platform = cf.Platform
	}
	if len(cf.Commands) > 0 {
		c.Commands = cf.Commands
	}
	if cf.Log.Level != "" {
		c.Log.Level = cf.Log.Level
	}
	if cf.Log.Format != "" {
		c.Log.Format = cf.Log.Format
	}
}

// Fields returns the values to inject into manifests
func (c *Config) Fields() manifest.Fields {
	return manifest.Fields{
		MinimumOSVersion: c.MinimumOSVersion,
		Platform:         c.Platform,
		Commands:         c.Commands,
	}
}

// Encode renders the effective configuration as TOML
func (c *Config) Encode() (string, error) {
	var b strings.Builder
	cf := ConfigFile{
		MinimumOSVersion: c.MinimumOSVersion,
		Platform:         c.Platform,
		Commands:         c.Commands,
		Log:              c.Log,
	}
	if err := toml.NewEncoder(&b).Encode(cf); err != nil {
		return "", err
	}
	return b.String(), nil
}
