// Package config loads the folio server configuration from config/<env>.yaml.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the folio server configuration.
type Config struct {
	HTTP        HTTPConfig        `yaml:"http"`
	Documents   DocumentsConfig   `yaml:"documents"`
	Preferences PreferencesConfig `yaml:"preferences"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Port            int    `yaml:"port"`
	Mode            string `yaml:"mode"` // gin mode: debug, release, test
	ReadTimeoutSec  int    `yaml:"read_timeout_sec"`
	WriteTimeoutSec int    `yaml:"write_timeout_sec"`
	ShutdownSec     int    `yaml:"shutdown_timeout_sec"`
	SecureCookies   bool   `yaml:"secure_cookies"`
}

// DocumentsConfig locates the JSON documents. Each source is an http(s) URL
// or a local path.
type DocumentsConfig struct {
	Recipes      string `yaml:"recipes"`
	About        string `yaml:"about"`
	Skills       string `yaml:"skills"`
	Experience   string `yaml:"experience"`
	Projects     string `yaml:"projects"`
	DataDir      string `yaml:"data_dir"` // served under /data
	FetchTimeout int    `yaml:"fetch_timeout_sec"`
}

// PreferencesConfig holds the theme preference store settings.
type PreferencesConfig struct {
	Path string `yaml:"path"` // sqlite file, ":memory:" for ephemeral
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// Load reads configuration from a YAML file by environment name (local, dev, prod).
func Load(env string) (Config, error) {
	configPath := filepath.Join("config", env+".yaml")

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}
	return Parse(data)
}

// Parse decodes YAML configuration, expanding ${VAR} references, applying
// defaults and the PORT override, then validating.
func Parse(data []byte) (Config, error) {
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return Config{}, fmt.Errorf("invalid PORT %q: %w", port, err)
		}
		cfg.HTTP.Port = p
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.HTTP.Port == 0 {
		c.HTTP.Port = 8080
	}
	if c.HTTP.Mode == "" {
		c.HTTP.Mode = "debug"
	}
	if c.HTTP.ReadTimeoutSec <= 0 {
		c.HTTP.ReadTimeoutSec = 10
	}
	if c.HTTP.WriteTimeoutSec <= 0 {
		c.HTTP.WriteTimeoutSec = 10
	}
	if c.HTTP.ShutdownSec <= 0 {
		c.HTTP.ShutdownSec = 10
	}
	if c.Documents.DataDir == "" {
		c.Documents.DataDir = "data"
	}
	d := &c.Documents
	for _, f := range []struct {
		field *string
		name  string
	}{
		{&d.Recipes, "recipes.json"},
		{&d.About, "about.json"},
		{&d.Skills, "skills.json"},
		{&d.Experience, "experience.json"},
		{&d.Projects, "projects.json"},
	} {
		if *f.field == "" {
			*f.field = filepath.Join(d.DataDir, f.name)
		}
	}
	if c.Documents.FetchTimeout <= 0 {
		c.Documents.FetchTimeout = 15
	}
	if c.Preferences.Path == "" {
		c.Preferences.Path = "folio.db"
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port must be between 1 and 65535, got %d", c.HTTP.Port)
	}
	switch c.HTTP.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("http.mode must be debug, release or test, got %q", c.HTTP.Mode)
	}
	return nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1])
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
