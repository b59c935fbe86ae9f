package config

import (
	"fmt"
	"time"
)

// ClientApp holds application settings of the client runtime.
type ClientApp struct {
	Version string
}

// ClientDB contains the database connection settings.
type ClientDB struct {
	// DSN selects the backend, see [DB.DSN].
	DSN string
}

// ClientRedis contains redis connection settings.
type ClientRedis struct {
	Address  string
	Password string
	DB       int
}

// ClientStorage groups storage backend settings.
type ClientStorage struct {
	DB      ClientDB
	Redis   ClientRedis
	Timeout time.Duration
}

// ClientLog contains logger settings.
type ClientLog struct {
	File  string
	Level string
}

// ClientConfig is the runtime configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Storage ClientStorage
	Log     ClientLog
}

// GetClientConfig builds and validates the client config view from the
// merged structured configuration.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			Version: cfg.App.Version,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
			Redis: ClientRedis{
				Address:  cfg.Storage.Redis.Address,
				Password: cfg.Storage.Redis.Password,
				DB:       cfg.Storage.Redis.DB,
			},
			Timeout: cfg.Storage.Timeout,
		},
		Log: ClientLog{
			File:  cfg.Log.File,
			Level: cfg.Log.Level,
		},
	}
}
