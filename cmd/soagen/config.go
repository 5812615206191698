package main

import (
	"fmt"

	"github.com/spf13/viper"
)

type soagenConfig struct {
	Source  string   `mapstructure:"source"`
	Output  string   `mapstructure:"output"`
	Package string   `mapstructure:"package"`
	Runtime string   `mapstructure:"runtime"`
	Types   []string `mapstructure:"types"`
}

func loadConfig(path string) (*soagenConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg soagenConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}
