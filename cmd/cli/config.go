package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Config holds all hook configuration
type Config struct {
	// Memory service settings
	APIBaseURL string

	// Time budgets for the boundary calls
	QueryTimeoutMS  int
	SubmitTimeoutMS int

	// Disabled turns the whole pipeline into a no-op
	Disabled bool
}

// QueryTimeout returns the bounded wait for similarity queries
func (c *Config) QueryTimeout() time.Duration {
	return time.Duration(c.QueryTimeoutMS) * time.Millisecond
}

// SubmitTimeout returns the budget for fire-and-forget submissions
func (c *Config) SubmitTimeout() time.Duration {
	return time.Duration(c.SubmitTimeoutMS) * time.Millisecond
}

// LoadConfig loads configuration from files and environment variables
func LoadConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	// Configure environment variables - do this BEFORE reading config
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	envMappings := map[string]string{
		"APIBaseURL":      "CONTEXT_MEM_API_URL",
		"QueryTimeoutMS":  "CONTEXT_MEM_QUERY_TIMEOUT_MS",
		"SubmitTimeoutMS": "CONTEXT_MEM_SUBMIT_TIMEOUT_MS",
		"Disabled":        "CONTEXT_MEM_DISABLED",
	}

	for configKey, envVar := range envMappings {
		if err := v.BindEnv(configKey, envVar); err != nil {
			log.Warn().Err(err).Msgf("Failed to bind environment variable %s for %s", envVar, configKey)
		}
	}

	v.SetConfigName("contextmem_config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.context-mem")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		log.Debug().Msg("Config file not found, using environment variables and defaults")
	} else {
		log.Debug().Msgf("Using config file: %s", v.ConfigFileUsed())
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if config.APIBaseURL == "" {
		return nil, fmt.Errorf("memory service API URL must not be empty (set CONTEXT_MEM_API_URL)")
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("APIBaseURL", "http://localhost:8765")
	v.SetDefault("QueryTimeoutMS", 3000)
	v.SetDefault("SubmitTimeoutMS", 5000)
	v.SetDefault("Disabled", false)
}
