package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// StorageConfig points at the external blob service that keeps uploaded
// resumes; the API only ever stores the returned URL.
type StorageConfig struct {
	UploadURL string `mapstructure:"upload_url"`
	APIKey    string `mapstructure:"api_key"`
}

func (config StorageConfig) validate() error {
	if config.UploadURL == "" {
		return fmt.Errorf("missing variable: upload_url")
	}
	return nil
}

func (config StorageConfig) bindEnvironmentVariables() error {

	if err := viper.BindEnv("storage.upload_url", "STORAGE_UPLOAD_URL"); err != nil {
		return err
	}

	return viper.BindEnv("storage.api_key", "STORAGE_API_KEY")
}
