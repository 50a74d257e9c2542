package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Output encodings for derived secrets
const (
	EncodingHex    = "hex"
	EncodingBase64 = "base64"
	EncodingBytes  = "bytes"
)

// Config represents the application configuration
type Config struct {
	Encoding string `toml:"encoding"`
	Strict   bool   `toml:"strict"`
	Color    bool   `toml:"color"`
}

// Default returns the configuration written on first use
func Default() *Config {
	return &Config{
		Encoding: EncodingHex,
		Strict:   true,
		Color:    true,
	}
}

// ValidEncoding reports whether enc is a supported output encoding
func ValidEncoding(enc string) bool {
	switch enc {
	case EncodingHex, EncodingBase64, EncodingBytes:
		return true
	}
	return false
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
	return filepath.Join(GetXDGConfigHome(), "cardseed", "config.toml")
}

// LoadConfig loads the config file, creating it with defaults if it doesn't exist
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	// Create default config if it doesn't exist
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config := Default()
		if err := SaveConfig(config); err != nil {
			return nil, err
		}
		return config, nil
	}

	// Keys absent from the file keep their defaults
	config := Default()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	// Reject encodings the hash command can't produce
	if !ValidEncoding(config.Encoding) {
		return nil, fmt.Errorf("invalid encoding %q in %s", config.Encoding, configPath)
	}

	return config, nil
}

// SaveConfig writes the config file, creating its directory if needed
func SaveConfig(config *Config) error {
	configPath := GetConfigFilePath()

	// Ensure the config directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	// Create the file
	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}

	// Encode the config to TOML
	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		file.Close()
		return fmt.Errorf("error encoding config: %w", err)
	}

	// Close the file, reporting any write that failed to flush
	if err := file.Close(); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// SetEncoding sets the default output encoding in the config
func SetEncoding(enc string) error {
	if !ValidEncoding(enc) {
		return fmt.Errorf("unsupported encoding: %s (supported: %s, %s, %s)",
			enc, EncodingHex, EncodingBase64, EncodingBytes)
	}

	config, err := LoadConfig()
	if err != nil {
		return err
	}

	// Update the encoding and write it back
	config.Encoding = enc
	return SaveConfig(config)
}
