package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"
)

const configFileName = "leavectl.yaml"

// ClosureRule is a recurring company closure day, merged into the holiday
// calendar on the client side.
type ClosureRule struct {
	Name        string `yaml:"name" validate:"required"`
	RRule       string `yaml:"rrule" validate:"required"`
	Description string `yaml:"description,omitempty"`
}

// Attachments bounds the client-side file filter applied at selection
// time.
type Attachments struct {
	MaxSizeBytes int64    `yaml:"maxSizeBytes" validate:"omitempty,min=1"`
	AllowedTypes []string `yaml:"allowedTypes,omitempty"`
}

// Config represents the application configuration
type Config struct {
	BaseURL           string        `yaml:"baseURL" validate:"required,url"`
	SessionCookieName string        `yaml:"sessionCookieName" validate:"required"`
	SessionCookie     string        `yaml:"sessionCookie,omitempty"`
	TimeoutSeconds    int           `yaml:"timeoutSeconds,omitempty" validate:"omitempty,min=1"`
	Attachments       Attachments   `yaml:"attachments,omitempty"`
	RecurringClosures []ClosureRule `yaml:"recurringClosures,omitempty" validate:"dive"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from leavectl.yaml.
// It looks for the config file in the current directory first, then in the
// user's home directory. Environment variables (optionally from a .env
// file) override the session fields, so credentials can stay out of the
// config file.
func Load() (*Config, error) {
	configPath, err := findConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyEnvOverrides(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct and checks rrule syntax
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	for i, closure := range cfg.RecurringClosures {
		if _, err := rrule.StrToRRule(closure.RRule); err != nil {
			return fmt.Errorf("invalid rrule in recurringClosures[%d]: %w", i, err)
		}
	}

	return nil
}

// applyEnvOverrides lets LEAVECTL_* variables win over the file. A .env in
// the working directory is read first if present; missing files are fine.
func applyEnvOverrides(cfg *Config) {
	// A missing .env is expected outside local development
	_ = godotenv.Load()

	if v := os.Getenv("LEAVECTL_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("LEAVECTL_SESSION_COOKIE_NAME"); v != "" {
		cfg.SessionCookieName = v
	}
	if v := os.Getenv("LEAVECTL_SESSION_COOKIE"); v != "" {
		cfg.SessionCookie = v
	}
}

// findConfigFile searches for leavectl.yaml in current directory and home directory
func findConfigFile() (string, error) {
	// Check current directory
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
