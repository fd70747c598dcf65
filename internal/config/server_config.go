package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port        int    `mapstructure:"port"`
	MetricsPort int    `mapstructure:"metrics_port"`
	ClientURL   string `mapstructure:"client_url"`
}

func (config ServerConfig) validate() error {
	var errs []error

	if config.Port <= 0 {
		errs = append(errs, fmt.Errorf("missing variable: server port"))
	}
	if config.MetricsPort <= 0 {
		errs = append(errs, fmt.Errorf("missing variable: metrics port"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred: %w", errors.Join(errs...))
	}

	return nil
}

func (config ServerConfig) bindEnvironmentVariables() error {

	if err := viper.BindEnv("server.port", "PORT"); err != nil {
		return err
	}

	if err := viper.BindEnv("server.metrics_port", "METRICS_PORT"); err != nil {
		return err
	}

	return viper.BindEnv("server.client_url", "CLIENT_URL")
}
