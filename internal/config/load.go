package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// envPrefix namespaces the environment variables read by Load, e.g.
// ONTOS_SERVER_PORT or ONTOS_REASONER_INFERENCE_CLASS_HIERARCHY.
const envPrefix = "ONTOS"

// Load reads configuration from an optional config file and the
// environment, applies defaults, and validates the result. Environment
// variables take precedence over file values. When path is empty, a file
// named ontos.yaml is looked up in the working directory and /etc/ontos;
// a missing file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("ontos")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/ontos")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("ontology.backend", "memory")
	v.SetDefault("ontology.seeds", []string{})
	v.SetDefault("reasoner.backend", "native")
	v.SetDefault("reasoner.inference.class_hierarchy", true)
	v.SetDefault("reasoner.inference.property_assertions", true)
	v.SetDefault("reasoner.inference.property_paths", true)
	v.SetDefault("assistant.backend", "")
}
