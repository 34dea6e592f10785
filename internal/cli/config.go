package cli

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/backpack/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	cfgKeyCapacity = "capacity"
	cfgKeyLogLevel = "log_level"
)

// loadConfig reads config.yaml from configDir using Viper. A missing
// config.yaml is not an error; defaults apply.
func loadConfig(configDir string) (types.Config, error) {
	v := viper.New()
	v.SetDefault(cfgKeyCapacity, types.DefaultCapacity)
	v.SetDefault(cfgKeyLogLevel, types.DefaultLogLevel)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return types.Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := types.Config{
		Capacity: v.GetInt(cfgKeyCapacity),
		LogLevel: v.GetString(cfgKeyLogLevel),
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, fmt.Errorf("invalid config in %s: %w", configDir, err)
	}
	return cfg, nil
}
