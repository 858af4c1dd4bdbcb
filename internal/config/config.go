package config

import (
	"errors"
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	BotUsername   string `env:"BOT_USERNAME"`
	BotToken      string `env:"BOT_TOKEN"`
	Channel       string `env:"CHANNEL"`
	ChatServerURL string `env:"CHAT_SERVER_URL"`
	DatabaseDSN   string `env:"DATABASE_URI"`
	MigrationsDir string `env:"MIGRATIONS_DIR"`
	QuoteAPIURL   string `env:"QUOTE_API_URL"`
	QuoteAPIToken string `env:"QUOTE_API_TOKEN"`
	OpsAddress    string `env:"OPS_ADDRESS"`
}

func LoadConfig() (*Config, error) {
	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	loadFlags(&flagsConfig)

	conf := mergeConfig(&envConfig, &flagsConfig)
	switch {
	case conf.DatabaseDSN == "":
		return nil, errors.New("database DSN is not set")
	case conf.BotUsername == "":
		return nil, errors.New("bot username is not set")
	case conf.BotToken == "":
		return nil, errors.New("bot token is not set")
	case conf.Channel == "":
		return nil, errors.New("channel is not set")
	case conf.QuoteAPIURL == "":
		return nil, errors.New("quote API URL is not set")
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
	flag.StringVar(&flagConfig.BotUsername, "u", "", "Bot chat username")
	flag.StringVar(&flagConfig.BotToken, "t", "", "Bot chat OAuth token")
	flag.StringVar(&flagConfig.Channel, "c", "", "Chat channel to join")
	flag.StringVar(&flagConfig.ChatServerURL, "s", "", "Chat server websocket URL")
	flag.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	flag.StringVar(&flagConfig.MigrationsDir, "m", "internal/db/migrations", "Database migrations directory")
	flag.StringVar(&flagConfig.QuoteAPIURL, "q", "", "Quote API base URL")
	flag.StringVar(&flagConfig.QuoteAPIToken, "k", "", "Quote API token")
	flag.StringVar(&flagConfig.OpsAddress, "a", "localhost:8080", "Ops endpoint address in format host:port")

	flag.Parse()
}

func mergeConfig(envConfig, flagsConfig *Config) *Config {
	return &Config{
		BotUsername:   defaultIfBlank(envConfig.BotUsername, flagsConfig.BotUsername),
		BotToken:      defaultIfBlank(envConfig.BotToken, flagsConfig.BotToken),
		Channel:       defaultIfBlank(envConfig.Channel, flagsConfig.Channel),
		ChatServerURL: defaultIfBlank(envConfig.ChatServerURL, flagsConfig.ChatServerURL),
		DatabaseDSN:   defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN),
		MigrationsDir: defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir),
		QuoteAPIURL:   defaultIfBlank(envConfig.QuoteAPIURL, flagsConfig.QuoteAPIURL),
		QuoteAPIToken: defaultIfBlank(envConfig.QuoteAPIToken, flagsConfig.QuoteAPIToken),
		OpsAddress:    defaultIfBlank(envConfig.OpsAddress, flagsConfig.OpsAddress),
	}
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
