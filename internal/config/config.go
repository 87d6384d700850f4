// Package config provides configuration loading and management for unboundctl.
package config

import (
	"fmt"
	"net"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the complete unboundctl configuration.
type Config struct {
	// Hostname is the loopback alias written to the hosts table and set
	// as the kernel hostname during install.
	Hostname string `yaml:"hostname"`

	// Forwarders are the upstream resolvers placed in the forward zone.
	Forwarders []string `yaml:"forwarders"`

	// Nameservers are the entries written to the resolver pointer file.
	Nameservers []string `yaml:"nameservers"`

	Probe   ProbeConfig   `yaml:"probe"`
	Logging LoggingConfig `yaml:"logging"`
}

// ProbeConfig configures the post-install DNS health probe.
type ProbeConfig struct {
	// Name is the domain resolved to verify the resolver answers.
	Name string `yaml:"name"`

	// Server is the resolver address the probe queries.
	Server string `yaml:"server"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`

	// ActionLog is the file receiving one timestamped line per action.
	// Empty disables it.
	ActionLog string `yaml:"action_log"`
}

// Default returns a Config with the stock provisioning values.
func Default() *Config {
	return &Config{
		Hostname:    "unbound-dns",
		Forwarders:  []string{"1.1.1.1", "1.0.0.1", "8.8.8.8", "8.8.4.4"},
		Nameservers: []string{"127.0.0.1", "::1"},
		Probe: ProbeConfig{
			Name:   "cloudflare.com",
			Server: "127.0.0.1:53",
		},
		Logging: LoggingConfig{
			Level:     "info",
			ActionLog: "/var/log/unboundctl.log",
		},
	}
}

// Load reads the configuration from path. A missing file yields the
// defaults; the file is never created implicitly because most actions
// run before /etc/unboundctl exists.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults and overlay with file values.
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// SaveToFile writes the configuration to the specified path, creating
// parent directories as needed.
func (c *Config) SaveToFile(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Hostname == "" {
		return fmt.Errorf("hostname must not be empty")
	}
	if len(c.Forwarders) == 0 {
		return fmt.Errorf("at least one forwarder is required")
	}
	for _, addr := range c.Forwarders {
		if net.ParseIP(addr) == nil {
			return fmt.Errorf("invalid forwarder address: %q", addr)
		}
	}
	if len(c.Nameservers) == 0 {
		return fmt.Errorf("at least one nameserver is required")
	}
	for _, addr := range c.Nameservers {
		if net.ParseIP(addr) == nil {
			return fmt.Errorf("invalid nameserver address: %q", addr)
		}
	}
	if c.Probe.Name == "" {
		return fmt.Errorf("probe name must not be empty")
	}
	if _, _, err := net.SplitHostPort(c.Probe.Server); err != nil {
		return fmt.Errorf("invalid probe server address: %w", err)
	}
	return nil
}
