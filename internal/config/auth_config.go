package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type AuthConfig struct {
	JwtSecret string        `mapstructure:"jwt_secret"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`
}

func (config AuthConfig) validate() error {
	var errs []error

	if config.JwtSecret == "" {
		errs = append(errs, fmt.Errorf("missing variable: jwt_secret"))
	}
	if config.TokenTTL <= 0 {
		errs = append(errs, fmt.Errorf("missing variable: token_ttl"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred: %w", errors.Join(errs...))
	}

	return nil
}

func (config AuthConfig) bindEnvironmentVariables() error {

	if err := viper.BindEnv("auth.jwt_secret", "JWT_SECRET"); err != nil {
		return err
	}

	return viper.BindEnv("auth.token_ttl", "TOKEN_TTL")
}
