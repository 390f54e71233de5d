package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	DBPath    string `mapstructure:"db_path"`
	ExportDir string `mapstructure:"export_dir"`
}

func Default() Config {
	return Config{
		DBPath:    "eventdesign.db",
		ExportDir: ".",
	}
}

// LoadConfig reads a profile file from the specified path.
func LoadConfig(profilePath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(profilePath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}
	return &cfg, nil
}
