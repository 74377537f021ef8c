package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	AppHost   string
	HTTPPort  string
	AppEnv    string
	LogLevel  string
	LogFormat string

	DB struct {
		Driver       string
		Host         string
		Port         string
		User         string
		Password     string
		Database     string
		SSLMode      string
		Path         string
		MaxOpenConns int
		MaxIdleConns int
	}

	// OpenAI — пустой APIKey означает детерминированный ответ без сетевых вызовов.
	OpenAI struct {
		APIKey  string
		BaseURL string
		Model   string
		Timeout time.Duration
	}
}

// Load reads .env files, the process environment and, if path is not empty,
// a config file. Environment variables win over the file.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(".env")
	_ = godotenv.Load("../.env")

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()
	// HTTP_PORT kept for compatibility with older deployments.
	if err := v.BindEnv("app_port", "APP_PORT", "HTTP_PORT"); err != nil {
		return nil, fmt.Errorf("config: bind env: %w", err)
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	cfg := &Config{
		AppHost:   v.GetString("app_host"),
		HTTPPort:  v.GetString("app_port"),
		AppEnv:    v.GetString("app_env"),
		LogLevel:  v.GetString("log_level"),
		LogFormat: v.GetString("log_format"),
	}
	cfg.DB.Driver = strings.ToLower(v.GetString("db_driver"))
	cfg.DB.Host = v.GetString("db_host")
	cfg.DB.Port = v.GetString("db_port")
	cfg.DB.User = v.GetString("db_user")
	cfg.DB.Password = v.GetString("db_password")
	cfg.DB.Database = v.GetString("db_database")
	cfg.DB.SSLMode = v.GetString("db_sslmode")
	cfg.DB.Path = v.GetString("db_path")
	cfg.DB.MaxOpenConns = v.GetInt("db_max_open_conns")
	cfg.DB.MaxIdleConns = v.GetInt("db_max_idle_conns")
	cfg.OpenAI.APIKey = v.GetString("openai_api_key")
	cfg.OpenAI.BaseURL = v.GetString("openai_base_url")
	cfg.OpenAI.Model = v.GetString("openai_model")
	cfg.OpenAI.Timeout = v.GetDuration("openai_timeout")
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_host", "0.0.0.0")
	v.SetDefault("app_port", "8097")
	v.SetDefault("app_env", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("db_driver", DriverPostgres)
	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_port", "5432")
	v.SetDefault("db_user", "postgres")
	v.SetDefault("db_password", "postgres")
	v.SetDefault("db_database", "office_manager")
	v.SetDefault("db_sslmode", "disable")
	v.SetDefault("db_path", "office_manager.db")
	v.SetDefault("db_max_open_conns", 10)
	v.SetDefault("db_max_idle_conns", 5)
	v.SetDefault("openai_api_key", "")
	v.SetDefault("openai_base_url", "https://api.openai.com/v1")
	v.SetDefault("openai_model", "gpt-4o-mini")
	v.SetDefault("openai_timeout", "5s")
}

func (c *Config) Validate() error {
	switch c.DB.Driver {
	case DriverPostgres:
		if c.DB.Host == "" || c.DB.Database == "" {
			return errors.New("config: DB_HOST and DB_DATABASE are required")
		}
		if c.AppEnv == "production" && c.DB.Password == "" {
			return errors.New("config: in production DB_PASSWORD is required")
		}
	case DriverSQLite:
		if c.DB.Path == "" {
			return errors.New("config: DB_PATH is required for sqlite")
		}
	default:
		return fmt.Errorf("config: unsupported DB_DRIVER %q", c.DB.Driver)
	}
	if c.OpenAI.Timeout <= 0 {
		return errors.New("config: OPENAI_TIMEOUT must be positive")
	}
	return nil
}

// DSN returns the connection string for the configured driver.
func (c *Config) DSN() string {
	if c.DB.Driver == DriverSQLite {
		return c.DB.Path
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DB.Host, c.DB.Port, c.DB.User, c.DB.Password, c.DB.Database, c.DB.SSLMode)
}

func (c *Config) DatabaseURL() string {
	pass := url.QueryEscape(c.DB.Password)
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DB.User, pass, c.DB.Host, c.DB.Port, c.DB.Database, c.DB.SSLMode)
}

func (c *Config) Addr() string {
	return c.AppHost + ":" + c.HTTPPort
}
