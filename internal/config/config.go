// internal/config/config.go
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	BaseURL string `mapstructure:"base_url"`
	Listen  string `mapstructure:"listen"`

	Backend struct {
		URL     string        `mapstructure:"url"`
		Timeout time.Duration `mapstructure:"timeout"`
	} `mapstructure:"backend"`

	Session struct {
		// Store selects where sessions live: "cookie" (encoded cookie,
		// single instance) or "redis" (shared across instances).
		Store string        `mapstructure:"store"`
		TTL   time.Duration `mapstructure:"ttl"`
	} `mapstructure:"session"`

	Redis struct {
		Addr     string `mapstructure:"addr"`
		Password string `mapstructure:"password"`
		DB       int    `mapstructure:"db"`
	} `mapstructure:"redis"`

	CORS struct {
		AllowedOrigins []string `mapstructure:"allowed_origins"`
	} `mapstructure:"cors"`
}

func Load() Config {
	viper.SetDefault("listen", "127.0.0.1:8080")
	viper.SetDefault("backend.timeout", "10s")
	viper.SetDefault("session.store", "cookie")
	viper.SetDefault("session.ttl", "24h")
	viper.SetDefault("redis.addr", "127.0.0.1:6379")

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	_ = viper.ReadInConfig()

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// explicit bindings
	_ = viper.BindEnv("base_url", "BASE_URL")
	_ = viper.BindEnv("listen", "LISTEN")
	_ = viper.BindEnv("backend.url", "BACKEND_URL")
	_ = viper.BindEnv("session.store", "SESSION_STORE")
	_ = viper.BindEnv("redis.addr", "REDIS_ADDR")
	_ = viper.BindEnv("redis.password", "REDIS_PASSWORD")

	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		panic("config error: " + err.Error())
	}
	if c.Backend.URL == "" {
		panic("config error: backend.url/BACKEND_URL required")
	}
	if c.Session.Store != "cookie" && c.Session.Store != "redis" {
		panic("config error: session.store must be \"cookie\" or \"redis\"")
	}
	return c
}
