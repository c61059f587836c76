// Package config loads taskrouter configuration from .taskrouter/config.json
// in the workspace, with environment overrides for secrets.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"taskrouter/internal/files"
)

// Config holds all taskrouter configuration.
type Config struct {
	Name    string `json:"name"`
	Version string `json:"version"`

	Domains DomainsConfig `json:"domains"`
	LLM     LLMConfig     `json:"llm"`
	Routing RoutingConfig `json:"routing"`
	Logging LoggingConfig `json:"logging"`
}

// DomainsConfig configures domain and instruction discovery.
type DomainsConfig struct {
	// Dir holds the domain spec YAML files, relative to the workspace.
	Dir string `json:"dir"`
	// InstructionsDir holds per-domain instruction files, relative to the workspace.
	InstructionsDir string `json:"instructions_dir"`
	// Watch enables filesystem-driven re-discovery.
	Watch bool `json:"watch"`
}

// LLMConfig configures the LLM provider used for routing calls.
type LLMConfig struct {
	Provider string `json:"provider"`
	APIKey   string `json:"api_key"`
	Model    string `json:"model"`
	BaseURL  string `json:"base_url"`
	Timeout  string `json:"timeout"`
}

// RoutingConfig configures route choice extraction.
type RoutingConfig struct {
	// Routes is the allow-list of valid route names.
	Routes []string `json:"routes"`
}

// LoggingConfig mirrors the block read by internal/logging.
type LoggingConfig struct {
	DebugMode  bool            `json:"debug_mode"`
	Categories map[string]bool `json:"categories,omitempty"`
	Level      string          `json:"level"`
	JSONFormat bool            `json:"json_format"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Name:    "taskrouter",
		Version: "0.1.0",
		Domains: DomainsConfig{
			Dir:             filepath.Join(".taskrouter", "domains"),
			InstructionsDir: filepath.Join(".taskrouter", "instructions"),
			Watch:           false,
		},
		LLM: LLMConfig{
			Provider: "gemini",
			Model:    "gemini-2.0-flash",
			Timeout:  "60s",
		},
		Routing: RoutingConfig{
			Routes: []string{"simple", "complex"},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads the config from workspace/.taskrouter/config.json, falling back
// to defaults when the file is absent. The TASKROUTER_API_KEY environment
// variable overrides the configured API key.
func Load(workspace string) (*Config, error) {
	cfg := Default()

	path := filepath.Join(workspace, ".taskrouter", "config.json")
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
		}
	} else if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}

	if key := os.Getenv("TASKROUTER_API_KEY"); key != "" {
		cfg.LLM.APIKey = key
	}

	return cfg, nil
}

// Save writes the config to workspace/.taskrouter/config.json.
func (c *Config) Save(workspace string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	path := filepath.Join(workspace, ".taskrouter", "config.json")
	return files.WriteFileAtomic(path, data, 0644)
}

// DomainsPath resolves the domains directory against the workspace.
func (c *Config) DomainsPath(workspace string) string {
	return resolve(workspace, c.Domains.Dir)
}

// InstructionsPath resolves the instructions directory against the workspace.
func (c *Config) InstructionsPath(workspace string) string {
	return resolve(workspace, c.Domains.InstructionsDir)
}

func resolve(workspace, dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(workspace, dir)
}
