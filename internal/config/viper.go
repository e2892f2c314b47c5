package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

func NewViper() *viper.Viper {
	config := viper.New()

	if os.Getenv("ENV") == "production" {
		config.SetConfigName("config.prod")
	} else {
		config.SetConfigName("config")
	}

	config.SetConfigType("yaml")
	config.AddConfigPath(".")

	// database.host <- DATABASE_HOST
	config.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	config.AutomaticEnv()
	SetDefaults(config)

	if err := config.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
	}

	return config
}

func SetDefaults(config *viper.Viper) {
	config.SetDefault("app.name", "mock-interview-be")
	config.SetDefault("api.port", 8080)
	config.SetDefault("api.prefork", false)
	config.SetDefault("api.cors.origins", "*")

	config.SetDefault("log.level", "info")
	config.SetDefault("log.format", "text")

	config.SetDefault("database.host", "localhost")
	config.SetDefault("database.port", 5432)
	config.SetDefault("database.sslmode", "disable")
	config.SetDefault("database.timezone", "UTC")
	config.SetDefault("database.max_open_conns", 20)
	config.SetDefault("database.max_idle_conns", 5)
	config.SetDefault("database.conn_max_lifetime", 30*time.Minute)

	config.SetDefault("auth.token_ttl", 24*time.Hour)

	config.SetDefault("llm.provider", "openai")
	config.SetDefault("llm.timeout", 20*time.Second)
	config.SetDefault("llm.requests_per_minute", 30)
	config.SetDefault("llm.disable_ai", false)

	config.SetDefault("interview.seed", 0)

	config.SetDefault("proctor.max_warnings", 3)
	config.SetDefault("proctor.cooldown", 8*time.Second)
}
