package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type HTTPServer struct {
	Port string `mapstructure:"port"`
}

type DbServer struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Pass     string `mapstructure:"pass"`
	Name     string `mapstructure:"name"`
	MaxConns int32  `mapstructure:"max_conns"`
}

func (config *DbServer) GetConnectionStr() string {
	maxConns := config.MaxConns
	if maxConns <= 0 {
		maxConns = 10
	}
	return fmt.Sprintf(
		"user=%s password=%s host=%s port=%s dbname=%s sslmode=disable pool_max_conns=%d",
		config.User, config.Pass, config.Host, config.Port, config.Name, maxConns,
	)
}

type Backend struct {
	GraphQLURL     string `mapstructure:"graphql_url"`
	WsURL          string `mapstructure:"ws_url"`
	AuthToken      string `mapstructure:"auth_token"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

type Scheduler struct {
	RefreshSec int `mapstructure:"refresh_sec"`
}

type Logging struct {
	Level string `mapstructure:"level"`
}

type Wallet struct {
	PrimaryCurrency string `mapstructure:"primary_currency"`
}

type AppConfig struct {
	HTTPServer HTTPServer `mapstructure:"http_server"`
	DbServer   DbServer   `mapstructure:"db_server"`
	Backend    Backend    `mapstructure:"backend"`
	Scheduler  Scheduler  `mapstructure:"scheduler"`
	Logging    Logging    `mapstructure:"logging"`
	Wallet     Wallet     `mapstructure:"wallet"`
}

func Init() (*AppConfig, error) {
	var cfg AppConfig

	if err := godotenv.Load(); err != nil {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	viper.SetConfigFile("config.yaml")
	viper.SetConfigType("yaml")
	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	viper.SetDefault("db_server.max_conns", 10)
	viper.SetDefault("backend.timeout_seconds", 10)
	viper.SetDefault("scheduler.refresh_sec", 30)
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("wallet.primary_currency", "USD")

	// db server env vars
	_ = viper.BindEnv("db_server.host", "DB_HOST")
	_ = viper.BindEnv("db_server.port", "DB_PORT")
	_ = viper.BindEnv("db_server.user", "DB_USER")
	_ = viper.BindEnv("db_server.pass", "DB_PASS")
	_ = viper.BindEnv("db_server.name", "DB_NAME")
	_ = viper.BindEnv("db_server.max_conns", "DB_MAX_CONNS")

	// backend env vars
	_ = viper.BindEnv("backend.graphql_url", "BACKEND_GRAPHQL_URL")
	_ = viper.BindEnv("backend.ws_url", "BACKEND_WS_URL")
	_ = viper.BindEnv("backend.auth_token", "BACKEND_AUTH_TOKEN")
	_ = viper.BindEnv("backend.timeout_seconds", "BACKEND_TIMEOUT_SECONDS")

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	return &cfg, nil
}
