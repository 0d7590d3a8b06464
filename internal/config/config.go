// Copyright (c) 2025 chatai contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management for chatai.
//
// Supports both TOML and JSON configuration formats, with sensible defaults
// and environment variable overrides.
//
// Configuration file locations (in order of precedence):
//   - ~/.chatai/config.toml
//   - ~/.chatai/config.json
//   - Built-in defaults
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"chatai/internal/hf"
	"chatai/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete chatai configuration.
type Config struct {
	// API settings
	APIKey       string `toml:"api_key" json:"api_key"`
	BaseURL      string `toml:"base_url" json:"base_url"`
	DefaultModel string `toml:"default_model" json:"default_model"`
	MaxTokens    int    `toml:"max_tokens" json:"max_tokens"`

	// Paths
	DataDir   string `toml:"data_dir" json:"data_dir"`
	ExportDir string `toml:"export_dir" json:"export_dir"`

	// Sidebar folders
	Folders []FolderConfig `toml:"folders" json:"folders"`

	// Model catalog
	Categories []string            `toml:"categories" json:"categories"`
	Models     map[string][]string `toml:"models" json:"models"`
}

// FolderConfig describes a sidebar folder and its accent color.
type FolderConfig struct {
	Name  string `toml:"name" json:"name"`
	Color string `toml:"color" json:"color"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns the built-in default configuration.
func Default() *Config {
	return &Config{
		BaseURL:      hf.DefaultBaseURL,
		DefaultModel: hf.DefaultModel,
		MaxTokens:    hf.DefaultMaxTokens,
		Folders: []FolderConfig{
			{Name: "Work chats", Color: "#a3e635"},
			{Name: "Life chats", Color: "#38bdf8"},
			{Name: "Projects chats", Color: "#fb923c"},
			{Name: "Creative chats", Color: "#818cf8"},
		},
		Categories: []string{"All", "Text", "Image", "Video", "Music", "Analytics"},
		Models: map[string][]string{
			"Text": {
				"meta-llama/Llama-3.2-1B-Instruct",
				"mistralai/Mistral-7B-Instruct-v0.3",
				"google/gemma-2-2b-it",
			},
			"Image": {
				"black-forest-labs/FLUX.1-schnell",
				"stabilityai/stable-diffusion-3.5-large",
			},
			"Analytics": {
				"meta-llama/Llama-3.2-3B-Instruct",
				"Qwen/Qwen2.5-Coder-7B-Instruct",
			},
		},
	}
}

// =============================================================================
// PATHS
// =============================================================================

// ConfigDir returns the chatai configuration directory (~/.chatai).
func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".chatai"), nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathJSON returns the path to the JSON config file.
func ConfigPathJSON() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// EnsureConfigDir creates the configuration directory if needed.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads configuration from disk, trying TOML then JSON, falling back
// to the built-in defaults. Environment overrides apply last.
func Load() (*Config, error) {
	cfg := Default()

	// Try TOML first
	if tomlPath, err := ConfigPathTOML(); err == nil {
		if _, statErr := os.Stat(tomlPath); statErr == nil {
			if err := LoadTOML(cfg, tomlPath); err != nil {
				return nil, fmt.Errorf("failed to load TOML config: %w", err)
			}
			cfg.ApplyEnvOverrides()
			cfg.fillDefaults()
			return cfg, nil
		}
	}

	// Try JSON as fallback
	if jsonPath, err := ConfigPathJSON(); err == nil {
		if _, statErr := os.Stat(jsonPath); statErr == nil {
			if err := LoadJSON(cfg, jsonPath); err != nil {
				return nil, fmt.Errorf("failed to load JSON config: %w", err)
			}
			cfg.ApplyEnvOverrides()
			cfg.fillDefaults()
			return cfg, nil
		}
	}

	cfg.ApplyEnvOverrides()
	cfg.fillDefaults()
	return cfg, nil
}

// LoadTOML loads configuration from a TOML file into cfg.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return nil
}

// LoadJSON loads configuration from a JSON file into cfg.
func LoadJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	return nil
}

// LoadFromPath loads configuration from a specific file path.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if strings.HasSuffix(path, ".json") {
		if err := LoadJSON(cfg, path); err != nil {
			return nil, err
		}
	} else {
		if err := LoadTOML(cfg, path); err != nil {
			return nil, err
		}
	}

	cfg.ApplyEnvOverrides()
	cfg.fillDefaults()
	return cfg, nil
}

// fillDefaults replaces zero-valued fields with their defaults.
func (c *Config) fillDefaults() {
	def := Default()

	if c.BaseURL == "" {
		c.BaseURL = def.BaseURL
	}
	if c.DefaultModel == "" {
		c.DefaultModel = def.DefaultModel
	}
	if c.MaxTokens <= 0 {
		c.MaxTokens = def.MaxTokens
	}
	if len(c.Folders) == 0 {
		c.Folders = def.Folders
	}
	if len(c.Categories) == 0 {
		c.Categories = def.Categories
	}
	if len(c.Models) == 0 {
		c.Models = def.Models
	}
	if c.DataDir == "" {
		if dir, err := ConfigDir(); err == nil {
			c.DataDir = dir
		}
	}
	if c.ExportDir == "" {
		c.ExportDir = "."
	}
}

// ApplyEnvOverrides applies environment variable overrides to the config.
func (c *Config) ApplyEnvOverrides() {
	if key := hf.ResolveAPIKey(); key != "" {
		c.APIKey = key
	}
	if url := os.Getenv("CHATAI_BASE_URL"); url != "" {
		c.BaseURL = url
	}
	if model := os.Getenv("CHATAI_MODEL"); model != "" {
		c.DefaultModel = model
	}
	if dir := os.Getenv("CHATAI_DATA_DIR"); dir != "" {
		c.DataDir = dir
	}
	if v := os.Getenv("CHATAI_MAX_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.MaxTokens = n
		}
	}
}

// =============================================================================
// SAVING
// =============================================================================

// Save writes the configuration to the TOML config file.
func Save(cfg *Config) error {
	if err := EnsureConfigDir(); err != nil {
		return err
	}

	path, err := ConfigPathTOML()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode TOML: %w", err)
	}

	// Config may hold the API key, keep it owner-readable only.
	return util.AtomicWriteFile(path, buf.Bytes(), 0600)
}

// =============================================================================
// QUERIES
// =============================================================================

// ModelsForCategory returns the model list for a category.
// Image and Analytics have dedicated lists; everything else uses Text.
func (c *Config) ModelsForCategory(category string) []string {
	switch category {
	case "Image", "Analytics":
		if models, ok := c.Models[category]; ok && len(models) > 0 {
			return models
		}
	}
	if models, ok := c.Models["Text"]; ok && len(models) > 0 {
		return models
	}
	return []string{c.DefaultModel}
}

// FolderNames returns the folder names in sidebar order.
func (c *Config) FolderNames() []string {
	names := make([]string, len(c.Folders))
	for i, f := range c.Folders {
		names[i] = f.Name
	}
	return names
}

// FolderColor returns the accent color for a folder, or empty string
// when the folder is not configured.
func (c *Config) FolderColor(name string) string {
	for _, f := range c.Folders {
		if f.Name == name {
			return f.Color
		}
	}
	return ""
}

// IsAPIKeyConfigured reports whether a usable API key is present.
func (c *Config) IsAPIKeyConfigured() bool {
	return hf.IsKeyConfigured(c.APIKey)
}

// Validate checks the configuration for problems.
func (c *Config) Validate() error {
	if c.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be positive, got %d", c.MaxTokens)
	}
	if !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
		return fmt.Errorf("base_url must be an http(s) URL, got %q", c.BaseURL)
	}
	for _, f := range c.Folders {
		if f.Name == "" {
			return fmt.Errorf("folder with empty name")
		}
	}
	return nil
}
