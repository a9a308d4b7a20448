// Package config provides configuration loading and validation for the CLI
// and the HTTP server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Storage backend names.
const (
	StorageFile     = "file"
	StoragePostgres = "postgres"
	StorageS3       = "s3"
)

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values come from the environment, CLI flags
// or Defaults.
type Config struct {
	// Server
	Port int `json:"port,omitempty"` // HTTP listen port

	// Persistence
	DataDir     string `json:"data_dir,omitempty"`     // Directory of the file snapshot
	Storage     string `json:"storage,omitempty"`      // Snapshot backend: file, postgres or s3
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	S3Bucket    string `json:"s3_bucket,omitempty"`    // Bucket holding the snapshot object
	S3Endpoint  string `json:"s3_endpoint,omitempty"`  // Custom endpoint for R2/MinIO
	S3Region    string `json:"s3_region,omitempty"`    // Bucket region
	S3AccessKey string `json:"s3_access_key,omitempty"`
	S3SecretKey string `json:"s3_secret_key,omitempty"`

	// AI assist
	APIKey    string `json:"api_key,omitempty"`    // Gemini API key
	Model     string `json:"model,omitempty"`      // Overrides the model of every tier
	AITimeout string `json:"ai_timeout,omitempty"` // Per-call timeout, e.g. "30s"

	// Export
	ChromePath string `json:"chrome_path,omitempty"` // Chrome executable for PDF export

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// Defaults returns the configuration used when nothing else is set.
func Defaults() Config {
	return Config{
		Port:      8080,
		DataDir:   "data",
		Storage:   StorageFile,
		S3Region:  "us-east-1",
		AITimeout: "30s",
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv reads the configuration from environment variables. Unset variables
// leave the corresponding field empty.
func FromEnv() Config {
	cfg := Config{
		DataDir:     os.Getenv("DATA_DIR"),
		Storage:     os.Getenv("STORAGE"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		S3Bucket:    os.Getenv("S3_BUCKET"),
		S3Endpoint:  os.Getenv("S3_ENDPOINT"),
		S3Region:    os.Getenv("S3_REGION"),
		S3AccessKey: os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey: os.Getenv("S3_SECRET_KEY"),
		APIKey:      os.Getenv("GEMINI_API_KEY"),
		Model:       os.Getenv("GEMINI_MODEL"),
		AITimeout:   os.Getenv("AI_TIMEOUT"),
		ChromePath:  os.Getenv("CHROME_PATH"),
	}
	if port, err := strconv.Atoi(os.Getenv("PORT")); err == nil {
		cfg.Port = port
	}
	if verbose, err := strconv.ParseBool(os.Getenv("VERBOSE")); err == nil {
		cfg.Verbose = verbose
	}
	return cfg
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	switch c.Storage {
	case "", StorageFile:
	case StoragePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("config error: 'database_url' is required for postgres storage")
		}
	case StorageS3:
		if c.S3Bucket == "" {
			return fmt.Errorf("config error: 's3_bucket' is required for s3 storage")
		}
		if (c.S3AccessKey == "") != (c.S3SecretKey == "") {
			return fmt.Errorf("config error: 's3_access_key' and 's3_secret_key' must be set together")
		}
	default:
		return fmt.Errorf("config error: unknown storage %q (want file, postgres or s3)", c.Storage)
	}

	if c.AITimeout != "" {
		d, err := time.ParseDuration(c.AITimeout)
		if err != nil {
			return fmt.Errorf("config error: invalid 'ai_timeout': %w", err)
		}
		if d <= 0 {
			return fmt.Errorf("config error: 'ai_timeout' must be positive")
		}
	}

	if c.ChromePath != "" {
		if _, err := os.Stat(c.ChromePath); os.IsNotExist(err) {
			return fmt.Errorf("config error: chrome not found: %s", c.ChromePath)
		}
	}

	return nil
}

// AITimeoutDuration returns the parsed AI timeout, or zero when unset or invalid.
func (c *Config) AITimeoutDuration() time.Duration {
	d, err := time.ParseDuration(c.AITimeout)
	if err != nil {
		return 0
	}
	return d
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to layer the config file, the environment and Defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&result.DataDir, defaults.DataDir)
	fill(&result.Storage, defaults.Storage)
	fill(&result.DatabaseURL, defaults.DatabaseURL)
	fill(&result.S3Bucket, defaults.S3Bucket)
	fill(&result.S3Endpoint, defaults.S3Endpoint)
	fill(&result.S3Region, defaults.S3Region)
	fill(&result.S3AccessKey, defaults.S3AccessKey)
	fill(&result.S3SecretKey, defaults.S3SecretKey)
	fill(&result.APIKey, defaults.APIKey)
	fill(&result.Model, defaults.Model)
	fill(&result.AITimeout, defaults.AITimeout)
	fill(&result.ChromePath, defaults.ChromePath)

	// Int fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields: cannot distinguish unset from false, so true wins
	result.Verbose = result.Verbose || defaults.Verbose

	return result
}

// Resolve layers the environment over the optional config file over Defaults.
// CLI flags are applied by the caller on top of the result.
func Resolve(path string) (Config, error) {
	file := &Config{}
	if path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return Config{}, err
		}
		file = loaded
	}

	env := FromEnv()
	cfg := env.MergeWithDefaults(file.MergeWithDefaults(Defaults()))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
