// Config loading for the hoard CLI.
package cli

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/hoard/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	envPrefix      = "HOARD"

	// Config keys.
	cfgKeySections = "sections"
	cfgKeyHasher   = "hasher"
	cfgKeyOutput   = "output"
	cfgKeyLogLevel = "log_level"
)

// loadConfig reads config.yaml from configDir using Viper. Keys may also be
// set through HOARD_-prefixed environment variables (HOARD_HASHER=xxhash).
// A missing config.yaml is not an error; defaults apply.
func loadConfig(configDir string) (types.Config, error) {
	def := types.DefaultConfig()

	v := viper.New()
	v.SetDefault(cfgKeySections, def.Sections)
	v.SetDefault(cfgKeyHasher, def.Hasher)
	v.SetDefault(cfgKeyOutput, def.Output)
	v.SetDefault(cfgKeyLogLevel, def.LogLevel)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return types.Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}
