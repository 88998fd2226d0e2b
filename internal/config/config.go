package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config represents the top-level application configuration.
type Config struct {
	Scan    ScanConfig    `toml:"scan"`
	Copilot CopilotConfig `toml:"copilot"`
	Output  OutputConfig  `toml:"output"`
}

// ScanConfig controls project discovery and classification.
type ScanConfig struct {
	SourceDir string `toml:"source_dir"` // relative subpath scanned for sources
	Extension string `toml:"extension"`  // source file extension, case-sensitive
	Manifest  string `toml:"manifest"`   // build manifest file at the project root
}

// CopilotConfig holds settings for the text-generation backend.
type CopilotConfig struct {
	Mode           string `toml:"mode"`         // "cli" or "api"
	Endpoint       string `toml:"endpoint"`     // chat-completions URL for api mode
	Model          string `toml:"model"`        // model name for api mode
	TokenSource    string `toml:"token_source"` // "gh", "env", or "config"
	Token          string `toml:"token"`        // token value when token_source is "config"
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// OutputConfig holds settings for where the document is written.
type OutputConfig struct {
	Path string `toml:"path"`
}

// DefaultConfig returns a Config populated with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Scan: ScanConfig{
			SourceDir: "src/main/java",
			Extension: ".java",
			Manifest:  "pom.xml",
		},
		Copilot: CopilotConfig{
			Mode:           "cli",
			Endpoint:       "https://api.github.com/models/gpt-4o/chat/completions",
			Model:          "gpt-4o",
			TokenSource:    "gh",
			TimeoutSeconds: 60,
		},
		Output: OutputConfig{
			Path: "documentation/tech_final.md",
		},
	}
}

// Load reads a TOML config file over the defaults. A missing file is not
// an error; the defaults are returned unchanged.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
