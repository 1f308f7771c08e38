package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

const FileName = "seedling.config.json"

type Config struct {
	Version   string   `json:"version" mapstructure:"version"`
	Company   string   `json:"company,omitempty" mapstructure:"company"`
	Modules   []string `json:"modules,omitempty" mapstructure:"modules"`
	SchemaDir string   `json:"schema_dir,omitempty" mapstructure:"schema_dir"` // extra record type definitions (.yaml)
	Database  Database `json:"database" mapstructure:"database"`
	Seed      Seed     `json:"seed" mapstructure:"seed"`
}

type Database struct {
	Provider string `json:"provider" mapstructure:"provider"`
	URLEnv   string `json:"url_env" mapstructure:"url_env"`
}

type Seed struct {
	Currency   string `json:"currency,omitempty" mapstructure:"currency"`
	MaxPerFlow int    `json:"max_per_flow,omitempty" mapstructure:"max_per_flow"`
	RandomSeed int64  `json:"random_seed,omitempty" mapstructure:"random_seed"`
}

func Load() (*Config, error) {
	var cfg Config

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Set defaults
	if cfg.Version == "" {
		cfg.Version = "1"
	}
	if cfg.Database.Provider == "" {
		cfg.Database.Provider = "sqlite"
	}
	if cfg.Database.URLEnv == "" {
		cfg.Database.URLEnv = "DATABASE_URL"
	}
	if cfg.Seed.Currency == "" {
		cfg.Seed.Currency = "USD"
	}
	if cfg.Seed.MaxPerFlow == 0 {
		cfg.Seed.MaxPerFlow = 3
	}

	return &cfg, nil
}

func DefaultConfig() *Config {
	return &Config{
		Version: "1",
		Database: Database{
			Provider: "sqlite",
			URLEnv:   "DATABASE_URL",
		},
		Seed: Seed{
			Currency:   "USD",
			MaxPerFlow: 3,
		},
	}
}

func (c *Config) GetDatabaseURL() (string, error) {
	dbURL := os.Getenv(c.Database.URLEnv)
	if dbURL == "" {
		return "", fmt.Errorf("database URL not found in environment variable %s", c.Database.URLEnv)
	}
	return dbURL, nil
}

func (c *Config) Validate() error {
	supportedProviders := []string{"postgresql", "postgres", "mysql", "sqlite", "sqlite3"}
	supported := false
	for _, provider := range supportedProviders {
		if c.Database.Provider == provider {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("unsupported database provider: %s. Supported providers: %v", c.Database.Provider, supportedProviders)
	}

	if c.Seed.MaxPerFlow < 0 {
		return fmt.Errorf("seed.max_per_flow cannot be negative")
	}

	return nil
}

// IsInitialized reports whether a config file exists in the current
// directory.
func IsInitialized() bool {
	_, err := os.Stat(FileName)
	return err == nil
}

// InitializeProject writes a default config file. Fails if one already
// exists.
func InitializeProject() error {
	if IsInitialized() {
		return fmt.Errorf("%s already exists", FileName)
	}

	data, err := json.MarshalIndent(DefaultConfig(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(FileName, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", FileName, err)
	}
	return nil
}
