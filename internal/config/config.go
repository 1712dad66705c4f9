// Package config loads application configuration from an optional YAML
// file with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/sampath-kumaramd/mathlearn-project/internal/llm"
	"github.com/sampath-kumaramd/mathlearn-project/internal/store"
)

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// SpeechConfig holds text-to-speech settings.
type SpeechConfig struct {
	Language string `yaml:"language"`
	Enabled  bool   `yaml:"enabled"`
}

// LLMConfig holds the optional LLM generator settings surfaced in the
// config file. API keys stay in the environment.
type LLMConfig struct {
	// Enabled switches problem generation from templates to the LLM.
	Enabled  bool   `yaml:"enabled"`
	Provider string `yaml:"provider"`
}

// Config is the full application configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	DBPath string       `yaml:"db_path"`
	Speech SpeechConfig `yaml:"speech"`
	LLM    LLMConfig    `yaml:"llm"`
}

// Default returns the configuration used when no file or env overrides
// are present.
func Default() Config {
	return Config{
		Server: ServerConfig{Host: "0.0.0.0", Port: 5000},
		Speech: SpeechConfig{Language: "si", Enabled: true},
		LLM:    LLMConfig{Enabled: false, Provider: "anthropic"},
	}
}

// Load reads configuration in layers: defaults, then the YAML file at
// path (skipped when path is empty or missing), then environment
// variables. Later layers win.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// No file is fine; defaults plus env apply.
		case err != nil:
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	applyEnv(&cfg)

	if cfg.DBPath == "" {
		p, err := store.DefaultDBPath()
		if err != nil {
			return cfg, fmt.Errorf("resolve db path: %w", err)
		}
		cfg.DBPath = p
	}

	return cfg, nil
}

// applyEnv overrides config fields from MATHLEARN_ environment variables.
func applyEnv(cfg *Config) {
	if v := os.Getenv("MATHLEARN_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("MATHLEARN_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("MATHLEARN_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("MATHLEARN_SPEECH_LANG"); v != "" {
		cfg.Speech.Language = v
	}
	if v := os.Getenv("MATHLEARN_SPEECH_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Speech.Enabled = b
		}
	}
	if v := os.Getenv("MATHLEARN_LLM_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.LLM.Enabled = b
		}
	}
	if v := os.Getenv("MATHLEARN_LLM_PROVIDER"); v != "" {
		cfg.LLM.Provider = v
	}
}

// LLMProviderConfig builds the provider configuration for the LLM
// generator, seeding the provider choice from this config.
func (c Config) LLMProviderConfig() llm.Config {
	pc := llm.ConfigFromEnv()
	if c.LLM.Provider != "" {
		pc.Provider = c.LLM.Provider
	}
	return pc
}
