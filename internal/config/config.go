package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

// Config holds the unified application configuration
type Config struct {
	DataDir     string `json:"data_dir"`
	ClientsFile string `json:"clients_file"`
	DefaultView string `json:"default_view"`
}

// Settings represents the config file structure
type Settings struct {
	DataDir     string `json:"data_dir,omitempty"`
	ClientsFile string `json:"clients_file,omitempty"`
	DefaultView string `json:"default_view,omitempty"`
}

// CLIFlags holds parsed CLI flags
type CLIFlags struct {
	DataDir     string
	ClientsFile string
}

var globalConfig *Config

// Load loads configuration with priority: CLI flags > env vars > config file > default
func Load(flags CLIFlags) (*Config, error) {
	cfg := &Config{
		DefaultView: "notes",
	}

	// Try loading config file first for base values
	configPath, err := getConfigPath()
	if err == nil {
		if fileConfig, err := loadConfigFile(configPath); err == nil {
			if fileConfig.DataDir != "" {
				cfg.DataDir = expandPath(fileConfig.DataDir)
			}
			if fileConfig.ClientsFile != "" {
				cfg.ClientsFile = expandPath(fileConfig.ClientsFile)
			}
			if fileConfig.DefaultView != "" {
				cfg.DefaultView = fileConfig.DefaultView
			}
		}
	}

	// Priority 2: Environment variables override config file
	if envDir := os.Getenv("NOTEAPP_DATA_DIR"); envDir != "" {
		cfg.DataDir = expandPath(envDir)
	}
	if envClients := os.Getenv("NOTEAPP_CLIENTS_FILE"); envClients != "" {
		cfg.ClientsFile = expandPath(envClients)
	}

	// Priority 1: CLI flags override everything
	if flags.DataDir != "" {
		cfg.DataDir = expandPath(flags.DataDir)
	}
	if flags.ClientsFile != "" {
		cfg.ClientsFile = expandPath(flags.ClientsFile)
	}

	// Default data directory if nothing configured
	if cfg.DataDir == "" {
		defaultDir, err := GetDefaultDataDir()
		if err != nil {
			return nil, err
		}
		cfg.DataDir = defaultDir
	}

	// The roster ships alongside the notes unless pointed elsewhere
	if cfg.ClientsFile == "" {
		cfg.ClientsFile = filepath.Join(cfg.DataDir, "clients.json")
	}

	globalConfig = cfg
	return cfg, nil
}

// Get returns the loaded config
func Get() *Config {
	return globalConfig
}

// GetDefaultDataDir returns the default data directory path
func GetDefaultDataDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, "noteapp"), nil
}

// getConfigPath returns the path to the configuration file
func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "noteapp", "config.json"), nil
}

// loadConfigFile loads configuration from the settings file
func loadConfigFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, err
	}

	return &settings, nil
}

// EnsureDataDir ensures the data directory exists (creates it if missing)
func (c *Config) EnsureDataDir() error {
	return os.MkdirAll(c.DataDir, 0755)
}

// EnsureConfigFile creates the config file with defaults if it doesn't exist
func EnsureConfigFile() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return err
	}

	defaultDir, err := GetDefaultDataDir()
	if err != nil {
		return err
	}

	settings := Settings{
		DataDir:     defaultDir,
		ClientsFile: filepath.Join(defaultDir, "clients.json"),
		DefaultView: "notes",
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
