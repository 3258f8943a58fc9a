package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	// Region code selecting the directory locale, e.g. "de"
	// Default: "us"
	Region string

	// Preferred minimum stream bitrate in kbps
	// Default: 96
	MinBitrate int

	// Favorite station ids or slugs, resolved in this order
	Favorites []string

	// Concurrent favorite lookups
	// Default: 4
	FavoriteWorkers int

	// Log level for the CLI (debug, info, warn, error)
	// Default: "info"
	LogLevel string

	// Directory holding the bookmarks database
	// Default: ~/.local/share/radionet
	DataDir string

	// radio.net API settings
	API APIConfig
}

// APIConfig holds radio.net API specific configuration
type APIConfig struct {
	Key         string
	BaseURL     string
	UserAgent   string
	HTTPTimeout time.Duration
	MaxRetries  int
}

// Load reads configuration from file and environment
func Load() (*Config, error) {
	return load(getConfigDir())
}

func load(configDir string) (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Config file locations (in order of precedence)
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")

	v.SetDefault("region", "us")
	v.SetDefault("min_bitrate", 96)
	v.SetDefault("favorites", []string{})
	v.SetDefault("favorite_workers", 4)
	v.SetDefault("log_level", "info")
	v.SetDefault("data_dir", defaultDataDir())
	v.SetDefault("api.key", "")
	v.SetDefault("api.base_url", "https://prod.radio-api.net")
	v.SetDefault("api.user_agent", "Radio.net - Web V5")
	v.SetDefault("api.http_timeout", 10*time.Second)
	v.SetDefault("api.max_retries", 1)

	// Read config file (optional - don't fail if missing)
	_ = v.ReadInConfig()

	// RADIONET_REGION, RADIONET_API_BASE_URL, ...
	v.SetEnvPrefix("RADIONET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		Region:          v.GetString("region"),
		MinBitrate:      v.GetInt("min_bitrate"),
		Favorites:       v.GetStringSlice("favorites"),
		FavoriteWorkers: v.GetInt("favorite_workers"),
		LogLevel:        v.GetString("log_level"),
		DataDir:         v.GetString("data_dir"),
		API: APIConfig{
			Key:         v.GetString("api.key"),
			BaseURL:     v.GetString("api.base_url"),
			UserAgent:   v.GetString("api.user_agent"),
			HTTPTimeout: v.GetDuration("api.http_timeout"),
			MaxRetries:  v.GetInt("api.max_retries"),
		},
	}

	return cfg, nil
}

// getConfigDir returns the configuration directory path
// Creates the directory if it doesn't exist
func getConfigDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	configDir := filepath.Join(homeDir, ".config", "radionet")

	_ = os.MkdirAll(configDir, 0755)

	return configDir
}

func defaultDataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(homeDir, ".local", "share", "radionet")
}

// GetConfigDir returns the configuration directory path (public helper)
func GetConfigDir() string {
	return getConfigDir()
}

// BookmarksPath returns the path of the bookmarks database, creating the
// data directory if needed.
func (c *Config) BookmarksPath() (string, error) {
	if err := os.MkdirAll(c.DataDir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(c.DataDir, "bookmarks.db"), nil
}

// Save writes configuration to file
func (c *Config) Save() error {
	return c.saveTo(getConfigDir())
}

func (c *Config) saveTo(configDir string) error {
	v := viper.New()

	configFile := filepath.Join(configDir, "config.yaml")

	v.Set("region", c.Region)
	v.Set("min_bitrate", c.MinBitrate)
	v.Set("favorites", c.Favorites)
	v.Set("favorite_workers", c.FavoriteWorkers)
	v.Set("log_level", c.LogLevel)
	v.Set("data_dir", c.DataDir)
	v.Set("api.key", c.API.Key)
	v.Set("api.base_url", c.API.BaseURL)
	v.Set("api.user_agent", c.API.UserAgent)
	v.Set("api.http_timeout", c.API.HTTPTimeout.String())
	v.Set("api.max_retries", c.API.MaxRetries)

	return v.WriteConfigAs(configFile)
}
