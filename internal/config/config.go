package config

import (
	"errors"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	DB      DBConfig      `mapstructure:"db"`
	Auth    AuthConfig    `mapstructure:"auth"`
	Sync    SyncConfig    `mapstructure:"sync"`
	Storage StorageConfig `mapstructure:"storage"`
	Logger  LoggerConfig  `mapstructure:"logger"`
}

var configFile = "./configs/config.yaml"

func Get() *Config {

	if value, ok := os.LookupEnv("CONFIG_PATH"); ok {
		configFile = value
	}

	config, err := loadConfig(configFile)
	if err != nil {
		log.Fatal(err)
	}

	return config
}

func loadConfig(file string) (*Config, error) {

	viper.SetConfigFile(file)
	viper.AutomaticEnv()

	if err := bindEnvironmentVariables(); err != nil {
		return nil, err
	}

	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("Error reading config file, %s", err)
	}

	config := Config{}
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func bindEnvironmentVariables() error {
	var errs []error

	server, db, auth := ServerConfig{}, DBConfig{}, AuthConfig{}
	sync, storage, logger := SyncConfig{}, StorageConfig{}, LoggerConfig{}

	if err := server.bindEnvironmentVariables(); err != nil {
		errs = append(errs, fmt.Errorf("ServerConfig: %w", err))
	}

	if err := db.bindEnvironmentVariables(); err != nil {
		errs = append(errs, fmt.Errorf("DBConfig: %w", err))
	}

	if err := auth.bindEnvironmentVariables(); err != nil {
		errs = append(errs, fmt.Errorf("AuthConfig: %w", err))
	}

	if err := sync.bindEnvironmentVariables(); err != nil {
		errs = append(errs, fmt.Errorf("SyncConfig: %w", err))
	}

	if err := storage.bindEnvironmentVariables(); err != nil {
		errs = append(errs, fmt.Errorf("StorageConfig: %w", err))
	}

	if err := logger.bindEnvironmentVariables(); err != nil {
		errs = append(errs, fmt.Errorf("LoggerConfig: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred: %w", errors.Join(errs...))
	}

	return nil
}

func (config Config) validate() error {
	var errs []error

	if err := config.Server.validate(); err != nil {
		errs = append(errs, fmt.Errorf("ServerConfig: %w", err))
	}

	if err := config.DB.validate(); err != nil {
		errs = append(errs, fmt.Errorf("DBConfig: %w", err))
	}

	if err := config.Auth.validate(); err != nil {
		errs = append(errs, fmt.Errorf("AuthConfig: %w", err))
	}

	if err := config.Sync.validate(); err != nil {
		errs = append(errs, fmt.Errorf("SyncConfig: %w", err))
	}

	if err := config.Storage.validate(); err != nil {
		errs = append(errs, fmt.Errorf("StorageConfig: %w", err))
	}

	if err := config.Logger.validate(); err != nil {
		errs = append(errs, fmt.Errorf("LoggerConfig: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred: %w", errors.Join(errs...))
	}

	return nil
}
