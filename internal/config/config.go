// Package config handles loading the optional YAML run configuration.
// A config file can supply everything the positional arguments do, so
// recurring migrations can be scripted without tokens in shell history.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Instance holds the connection settings for one GitLab instance.
type Instance struct {
	URL   string `yaml:"url"`
	Token string `yaml:"token"`
}

// Config is the root run-configuration structure.
type Config struct {
	// Source and Dest are the two instances of the migration.
	Source Instance `yaml:"source"`
	Dest   Instance `yaml:"dest"`

	// Assignee is the username looked up on the source instance.
	Assignee string `yaml:"assignee"`

	// DestUser overrides the username looked up on the destination
	// instance. Empty means "same as Assignee".
	DestUser string `yaml:"dest_user,omitempty"`

	// Yes skips interactive confirmation when true.
	Yes bool `yaml:"yes,omitempty"`

	// Verify controls the post-mutation read-back. Defaults to true.
	Verify *bool `yaml:"verify,omitempty"`
}

// Load reads a config file from the given path and expands environment
// variables in its content, so tokens can be written as ${SOURCE_TOKEN}.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// VerifyEnabled reports whether the post-mutation read-back is enabled.
func (c *Config) VerifyEnabled() bool {
	return c.Verify == nil || *c.Verify
}
