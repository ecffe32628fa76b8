package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	Database  DatabaseConfig
	OpenAI    OpenAIConfig
	Assistant AssistantConfig
	RateLimit RateLimitConfig

	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type DatabaseConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// OpenAIConfig holds provider settings. The API key itself is NOT here: it
// lives in the application configuration table and is managed at runtime
// through the settings endpoint.
type OpenAIConfig struct {
	APIURL           string
	Model            string
	Timeout          time.Duration
	ChatTemperature  float64
	ChatMaxTokens    int
	ParseTemperature float64
	ParseMaxTokens   int
}

// AssistantConfig holds timesheet materialization defaults.
type AssistantConfig struct {
	Timezone         string
	DefaultRate      float64
	DefaultStartHour int // wall-clock hour used when an entry has only a duration
	DefaultDuration  int // minutes, used when an entry has neither times nor duration
}

type RateLimitConfig struct {
	Enabled        bool
	RequestsPerMin int
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Database.DSN = viper.GetString("database.dsn")
	if dsn := viper.GetString("database_dsn"); dsn != "" {
		cfg.Database.DSN = dsn
	}
	cfg.Database.MaxOpenConns = viper.GetInt("database.max_open_conns")
	cfg.Database.MaxIdleConns = viper.GetInt("database.max_idle_conns")
	cfg.Database.ConnMaxLifetime = viper.GetDuration("database.conn_max_lifetime")
	if cfg.Database.DSN == "" {
		return nil, fmt.Errorf("database.dsn is required")
	}

	cfg.OpenAI.APIURL = viper.GetString("openai.api_url")
	cfg.OpenAI.Model = viper.GetString("openai.model")
	cfg.OpenAI.Timeout = viper.GetDuration("openai.timeout")
	cfg.OpenAI.ChatTemperature = viper.GetFloat64("openai.chat_temperature")
	cfg.OpenAI.ChatMaxTokens = viper.GetInt("openai.chat_max_tokens")
	cfg.OpenAI.ParseTemperature = viper.GetFloat64("openai.parse_temperature")
	cfg.OpenAI.ParseMaxTokens = viper.GetInt("openai.parse_max_tokens")

	cfg.Assistant.Timezone = viper.GetString("assistant.timezone")
	cfg.Assistant.DefaultRate = viper.GetFloat64("assistant.default_rate")
	cfg.Assistant.DefaultStartHour = viper.GetInt("assistant.default_start_hour")
	cfg.Assistant.DefaultDuration = viper.GetInt("assistant.default_duration")

	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("database.max_open_conns", 10)
	viper.SetDefault("database.max_idle_conns", 5)
	viper.SetDefault("database.conn_max_lifetime", "30m")

	viper.SetDefault("openai.api_url", "https://api.openai.com/v1")
	viper.SetDefault("openai.model", "gpt-4")
	viper.SetDefault("openai.timeout", "30s")
	viper.SetDefault("openai.chat_temperature", 0.7)
	viper.SetDefault("openai.chat_max_tokens", 2000)
	viper.SetDefault("openai.parse_temperature", 0.1)
	viper.SetDefault("openai.parse_max_tokens", 3000)

	viper.SetDefault("assistant.timezone", "UTC")
	viper.SetDefault("assistant.default_rate", 90)
	viper.SetDefault("assistant.default_start_hour", 9)
	viper.SetDefault("assistant.default_duration", 60)

	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 60)
}
