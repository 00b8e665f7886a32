package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

type DataConfig struct {
	File    string        `mapstructure:"file"`
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type RedisConfig struct {
	Addr string        `mapstructure:"addr"`
	TTL  time.Duration `mapstructure:"ttl"`
}

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Data   DataConfig   `mapstructure:"data"`
	Redis  RedisConfig  `mapstructure:"redis"`
}

// Load reads config.yaml from the working directory when present and then
// applies SALES_-prefixed environment overrides (SALES_SERVER_PORT,
// SALES_DATA_FILE, ...). Exactly one data source must be configured; the
// local file wins when both are set.
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Every key needs a default so environment-only values survive Unmarshal.
	v.SetDefault("server.port", 8080)
	v.SetDefault("data.file", "")
	v.SetDefault("data.url", "")
	v.SetDefault("data.timeout", 30*time.Second)
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.ttl", 5*time.Minute)

	v.SetEnvPrefix("SALES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.Data.File == "" && cfg.Data.URL == "" {
		return Config{}, fmt.Errorf("no data source configured: set data.file or data.url")
	}
	return cfg, nil
}
