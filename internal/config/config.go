package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Octopart OctopartConfig `mapstructure:"octopart"`
}

// OctopartConfig holds Octopart API client configuration
type OctopartConfig struct {
	BaseURL     string `mapstructure:"base_url"`
	Timeout     int    `mapstructure:"timeout"` // seconds
	APIKey      string `mapstructure:"apikey"`
	Callback    string `mapstructure:"callback"` // JSONP callback name
	PrettyPrint bool   `mapstructure:"pretty_print"`
}

// Load loads configuration from YAML file with environment variable overrides
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	setDefaults()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Defaults plus environment overrides are enough to run.
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("octopart.base_url", "https://octopart.com/api/v2")
	viper.SetDefault("octopart.timeout", 30)
	viper.SetDefault("octopart.apikey", "")
	viper.SetDefault("octopart.callback", "")
	viper.SetDefault("octopart.pretty_print", false)
}
