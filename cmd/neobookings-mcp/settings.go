package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/neomcp/neobookings-mcp/pkg/neobookings"
)

// Settings is the optional YAML configuration file. Everything in it can also
// be provided through NEO_* environment variables; file values win when both
// are set.
type Settings struct {
	Server ServerSettings `yaml:"server"`
	API    APISettings    `yaml:"api"`
}

// ServerSettings names the MCP server as announced to clients.
type ServerSettings struct {
	Name         string `yaml:"name"`
	Instructions string `yaml:"instructions"`
}

// APISettings overrides the Neobookings connection settings.
type APISettings struct {
	BaseURL        string `yaml:"base_url"`
	ClientCode     string `yaml:"client_code"`
	SystemCode     string `yaml:"system_code"`
	Username       string `yaml:"username"`
	Password       string `yaml:"password"` //nolint:gosec // configuration field, not a hardcoded secret
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// LoadSettings reads a YAML settings file. Environment variables referenced
// as ${VAR} or $VAR are expanded before parsing, so secrets can live in the
// environment rather than in the file.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided configuration, not user input
	if err != nil {
		return Settings{}, fmt.Errorf("load settings: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var s Settings
	if err := yaml.Unmarshal([]byte(expanded), &s); err != nil {
		return Settings{}, fmt.Errorf("parse settings: %w", err)
	}

	return s, nil
}

// Apply overlays the file settings onto an environment-derived config.
func (s Settings) Apply(cfg neobookings.Config) neobookings.Config {
	if s.API.BaseURL != "" {
		cfg.BaseURL = s.API.BaseURL
	}
	if s.API.ClientCode != "" {
		cfg.ClientCode = s.API.ClientCode
	}
	if s.API.SystemCode != "" {
		cfg.SystemCode = s.API.SystemCode
	}
	if s.API.Username != "" {
		cfg.Username = s.API.Username
	}
	if s.API.Password != "" {
		cfg.Password = s.API.Password
	}
	if s.API.TimeoutSeconds > 0 {
		cfg.Timeout = time.Duration(s.API.TimeoutSeconds) * time.Second
	}
	return cfg
}
