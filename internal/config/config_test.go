package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.Database.Provider != "sqlite" {
		t.Errorf("Expected database provider to be 'sqlite', got '%s'", config.Database.Provider)
	}

	if config.Database.URLEnv != "DATABASE_URL" {
		t.Errorf("Expected database url_env to be 'DATABASE_URL', got '%s'", config.Database.URLEnv)
	}

	if config.Seed.Currency != "USD" {
		t.Errorf("Expected seed currency to be 'USD', got '%s'", config.Seed.Currency)
	}

	if config.Seed.MaxPerFlow != 3 {
		t.Errorf("Expected seed max_per_flow to be 3, got %d", config.Seed.MaxPerFlow)
	}

	if err := config.Validate(); err != nil {
		t.Errorf("Expected default config to validate, got %v", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Database.Provider != "sqlite" {
		t.Errorf("Expected default provider 'sqlite', got '%s'", cfg.Database.Provider)
	}
	if cfg.Seed.MaxPerFlow != 3 {
		t.Errorf("Expected default max_per_flow 3, got %d", cfg.Seed.MaxPerFlow)
	}
}

func TestLoadOverrides(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	viper.Set("database.provider", "postgresql")
	viper.Set("seed.max_per_flow", 5)
	viper.Set("company", "Acme Corp")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Database.Provider != "postgresql" {
		t.Errorf("Expected provider 'postgresql', got '%s'", cfg.Database.Provider)
	}
	if cfg.Seed.MaxPerFlow != 5 {
		t.Errorf("Expected max_per_flow 5, got %d", cfg.Seed.MaxPerFlow)
	}
	if cfg.Company != "Acme Corp" {
		t.Errorf("Expected company 'Acme Corp', got '%s'", cfg.Company)
	}
}

func TestValidateRejectsUnknownProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Database.Provider = "oracle"

	if err := cfg.Validate(); err == nil {
		t.Error("Expected validation to fail for unsupported provider, but it succeeded")
	}
}

func TestInitializeProject(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "seedling-test")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}
	defer os.RemoveAll(tempDir)

	originalDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get current directory: %v", err)
	}
	defer os.Chdir(originalDir)

	if err := os.Chdir(tempDir); err != nil {
		t.Fatalf("Failed to change to temp directory: %v", err)
	}

	if IsInitialized() {
		t.Error("Expected project to not be initialized, but it was")
	}

	if err := InitializeProject(); err != nil {
		t.Fatalf("Failed to initialize project: %v", err)
	}

	configPath := filepath.Join(tempDir, FileName)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Errorf("Config file was not created at %s", configPath)
	}

	if !IsInitialized() {
		t.Error("Expected project to be initialized, but it wasn't")
	}

	// Second initialization must fail
	if err := InitializeProject(); err == nil {
		t.Error("Expected second initialization to fail, but it succeeded")
	}
}
