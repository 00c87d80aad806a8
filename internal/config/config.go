package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	RunAddress         string        `env:"RUN_ADDRESS"`
	DatabaseDSN        string        `env:"DATABASE_URI"`
	MigrationsDir      string        `env:"MIGRATIONS_DIR"`
	JWTUserSecret      string        `env:"JWT_SECRET"`
	NotifierAddress    string        `env:"NOTIFIER_ADDRESS"`
	NotifyPollInterval time.Duration `env:"NOTIFY_POLL_INTERVAL"`
	AdminUsername      string        `env:"ADMIN_USERNAME"`
	AdminPassword      string        `env:"ADMIN_PASSWORD"`
}

func LoadConfig() (*Config, error) {
	// .env опционален, в проде переменные приходят из окружения.
	_ = godotenv.Load()

	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	loadFlags(&flagsConfig)

	conf := mergeConfig(&envConfig, &flagsConfig)
	if conf.DatabaseDSN == "" {
		return nil, errors.New("database DSN is not set")
	}
	if conf.JWTUserSecret == "" {
		return nil, errors.New("JWT secret is not set")
	}
	return conf, nil
}

func MustLoadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return config
}

func loadFlags(flagConfig *Config) {
	flag.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	flag.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	flag.StringVar(&flagConfig.MigrationsDir, "m", "internal/db/migrations", "Database migrations directory")
	flag.StringVar(&flagConfig.JWTUserSecret, "s", "", "JWT signing secret")
	flag.StringVar(&flagConfig.NotifierAddress, "n", "", "Admin notifier service base URL")
	flag.DurationVar(&flagConfig.NotifyPollInterval, "i", 30*time.Second, "Pending requests poll interval")
	flag.StringVar(&flagConfig.AdminUsername, "admin-user", "", "Bootstrap admin username")
	flag.StringVar(&flagConfig.AdminPassword, "admin-pass", "", "Bootstrap admin password")

	flag.Parse()
}

func mergeConfig(envConfig, flagsConfig *Config) *Config {
	return &Config{
		RunAddress:         defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress),
		DatabaseDSN:        defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN),
		MigrationsDir:      defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir),
		JWTUserSecret:      defaultIfBlank(envConfig.JWTUserSecret, flagsConfig.JWTUserSecret),
		NotifierAddress:    defaultIfBlank(envConfig.NotifierAddress, flagsConfig.NotifierAddress),
		NotifyPollInterval: defaultIfZero(envConfig.NotifyPollInterval, flagsConfig.NotifyPollInterval),
		AdminUsername:      defaultIfBlank(envConfig.AdminUsername, flagsConfig.AdminUsername),
		AdminPassword:      defaultIfBlank(envConfig.AdminPassword, flagsConfig.AdminPassword),
	}
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}

func defaultIfZero(value, defaultValue time.Duration) time.Duration {
	if value == 0 {
		return defaultValue
	}
	return value
}
