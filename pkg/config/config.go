package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	AppEnv   string `mapstructure:"APP_ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	CheckoutMaxConcurrent int    `mapstructure:"CHECKOUT_MAX_CONCURRENT"`
	DisplayLocale         string `mapstructure:"DISPLAY_LOCALE"`
}

var defaults = map[string]any{
	"APP_ENV":                 "dev",
	"LOG_LEVEL":               "info",
	"CHECKOUT_MAX_CONCURRENT": 10,
	"DISPLAY_LOCALE":          "en-US",
}

// Load reads the configuration from the environment, falling back to defaults
// for unset keys.
func Load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	for key, def := range defaults {
		v.SetDefault(key, def)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}
