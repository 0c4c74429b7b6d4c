// Package config loads the backend configuration from defaults, an
// optional config file and the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/PhilipTheBackendDeveloper/finance-backend/internal/models"
	"github.com/spf13/viper"
)

// Config holds all user configurable settings for the backend.
type Config struct {
	// Path to the sqlite database file
	DBPath string `mapstructure:"db_path"`

	// Mode the gin engine runs in, "release" or "debug"
	GinMode string `mapstructure:"gin_mode"`

	// Log format, "human" or "json". Defaults by mode when empty.
	LogFormat string `mapstructure:"log_format"`

	// Origins that are allowed to use the API from a browser
	CORSAllowOrigins []string `mapstructure:"cors_allow_origins"`

	// The recognized budget categories. Overriding this replaces the
	// whole set.
	Categories []string `mapstructure:"categories"`
}

// Load reads the configuration.
//
// Precedence, lowest first: defaults, a config.yaml in the working
// directory, environment variables prefixed with FINANCE_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("db_path", "data/finance.db")
	v.SetDefault("gin_mode", "release")
	v.SetDefault("log_format", "")
	v.SetDefault("cors_allow_origins", []string{})
	v.SetDefault("categories", models.DefaultCategories)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("finance")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		// Running without a config file is the common case
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("error reading config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("error parsing configuration: %w", err)
	}

	if config.GinMode != "release" && config.GinMode != "debug" && config.GinMode != "test" {
		return Config{}, fmt.Errorf("invalid gin_mode %q", config.GinMode)
	}

	if len(config.Categories) == 0 {
		return Config{}, fmt.Errorf("the category set must not be empty")
	}

	return config, nil
}
