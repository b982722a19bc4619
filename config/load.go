package config

import "fmt"

// Load unserializes configuration data, filling in defaults for everything not set.
func Load(configData any) (*Config, error) {
	cfg, err := getConfigSchema().UnserializeType(configData)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration (%w)", err)
	}
	return cfg, nil
}

// Default returns the configuration used when no configuration file is passed.
func Default() *Config {
	cfg, err := Load(map[string]any{})
	if err != nil {
		panic(err)
	}
	return cfg
}
