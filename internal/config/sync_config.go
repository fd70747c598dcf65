package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type SyncConfig struct {
	Enabled                  bool    `mapstructure:"enabled"`
	FeedURL                  string  `mapstructure:"feed_url"`
	FeedMaxRequestsPerSecond float32 `mapstructure:"feed_max_requests_per_second"`
}

func (config SyncConfig) validate() error {
	if config.Enabled && config.FeedURL == "" {
		return fmt.Errorf("missing variable: feed_url")
	}
	return nil
}

func (config SyncConfig) bindEnvironmentVariables() error {

	if err := viper.BindEnv("sync.enabled", "SYNC_ENABLED"); err != nil {
		return err
	}

	if err := viper.BindEnv("sync.feed_url", "SYNC_FEED_URL"); err != nil {
		return err
	}

	return viper.BindEnv("sync.feed_max_requests_per_second", "SYNC_FEED_MAX_REQUESTS_PER_SECOND")
}
