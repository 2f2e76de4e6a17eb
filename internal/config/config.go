package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrMissingCredential means no API key was found in the environment
var ErrMissingCredential = errors.New("missing API credential: set GEMINI_API_KEY (or API_KEY) in the environment or a .env file")

const (
	DefaultTextModel  = "gemini-2.5-flash"
	DefaultImageModel = "imagen-4.0-generate-001"
)

// Config represents the application configuration
type Config struct {
	TextModel  string    `toml:"text_model" env:"SPIDERDECK_TEXT_MODEL"`
	ImageModel string    `toml:"image_model" env:"SPIDERDECK_IMAGE_MODEL"`
	LogLevel   string    `toml:"log_level" env:"SPIDERDECK_LOG_LEVEL"`
	Art        ArtConfig `toml:"art"`

	// APIKey is only ever read from the environment
	APIKey string `toml:"-" env:"GEMINI_API_KEY"`
}

// ArtConfig controls how card artwork is drawn in the terminal
type ArtConfig struct {
	Width     int  `toml:"width" env:"SPIDERDECK_ART_WIDTH"`
	Height    int  `toml:"height" env:"SPIDERDECK_ART_HEIGHT"`
	TrueColor bool `toml:"true_color" env:"SPIDERDECK_ART_TRUE_COLOR"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		TextModel:  DefaultTextModel,
		ImageModel: DefaultImageModel,
		LogLevel:   "warn",
		Art: ArtConfig{
			Width:     30,
			Height:    20,
			TrueColor: true,
		},
	}
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "spiderdeck", "config.toml")
}

// LoadConfig loads the config file, creating it with defaults if missing
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	config := Default()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	return config, nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	// Ensure the config directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return nil, fmt.Errorf("error creating config directory: %w", err)
	}

	config := Default()

	file, err := os.Create(configPath)
	if err != nil {
		return nil, fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(config); err != nil {
		return nil, fmt.Errorf("error encoding config: %w", err)
	}

	return config, nil
}

// Load reads the .env file (if present), the config file and then applies
// environment overrides.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("error loading %s: %w", envFile, err)
		}
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("error reading environment: %w", err)
	}
	if config.APIKey == "" {
		config.APIKey = os.Getenv("API_KEY")
	}

	return config, nil
}

// RequireCredential fails with ErrMissingCredential when no API key is set
func (c *Config) RequireCredential() error {
	if c.APIKey == "" {
		return ErrMissingCredential
	}
	return nil
}
