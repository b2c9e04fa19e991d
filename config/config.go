package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig `mapstructure:"environment"`

	// Server
	HTTPServer HTTPServerConfig `mapstructure:"http_server"`
	Logger     LoggerConfig     `mapstructure:"logger"`

	// Storage
	Database     DatabaseConfig     `mapstructure:"database"`
	GoogleSheets GoogleSheetsConfig `mapstructure:"google_sheets"`

	// Plan generation and scheduling
	LLM            LLMConfig            `mapstructure:"llm"`
	Planner        PlannerConfig        `mapstructure:"planner"`
	Scheduler      SchedulerConfig      `mapstructure:"scheduler"`
	GoogleCalendar GoogleCalendarConfig `mapstructure:"google_calendar"`

	// Alerts
	Reminder      ReminderConfig      `mapstructure:"reminder"`
	Telegram      TelegramConfig      `mapstructure:"telegram"`
	NotifyWebhook NotifyWebhookConfig `mapstructure:"notify_webhook"`

	// HTTP edge
	JWT       JWTConfig       `mapstructure:"jwt"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	CORS      CORSConfig      `mapstructure:"cors"`
}

type EnvironmentConfig struct {
	Name string `mapstructure:"name" validate:"oneof=development staging production"`
}

type HTTPServerConfig struct {
	Port            int           `mapstructure:"port" validate:"min=1,max=65535"`
	Mode            string        `mapstructure:"mode" validate:"oneof=debug release test"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"min=0"`
}

type LoggerConfig struct {
	Level        string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Mode         string `mapstructure:"mode" validate:"oneof=debug development production"`
	Encoding     string `mapstructure:"encoding" validate:"oneof=console json"`
	ColorEnabled bool   `mapstructure:"color_enabled"`
}

// DatabaseConfig selects the plan store. DSN is a file path or ":memory:" for sqlite and a
// connection URL for postgres; it is ignored for sheets.
type DatabaseConfig struct {
	Driver       string `mapstructure:"driver" validate:"oneof=sqlite postgres sheets"`
	DSN          string `mapstructure:"dsn" validate:"required_unless=Driver sheets"`
	MaxOpenConns int    `mapstructure:"max_open_conns" validate:"min=0"`
}

type GoogleSheetsConfig struct {
	SpreadsheetID   string `mapstructure:"spreadsheet_id"`
	CredentialsPath string `mapstructure:"credentials_path"`
	TokenPath       string `mapstructure:"token_path"`
}

type GoogleCalendarConfig struct {
	Enabled         bool   `mapstructure:"enabled"`
	CredentialsPath string `mapstructure:"credentials_path" validate:"required_if=Enabled true"`
	TokenPath       string `mapstructure:"token_path"`
	CalendarID      string `mapstructure:"calendar_id"`
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `mapstructure:"providers" validate:"min=1,dive"`
	FallbackEnabled bool             `mapstructure:"fallback_enabled"`
	RetryAttempts   int              `mapstructure:"retry_attempts" validate:"min=1,max=10"`
	RetryDelay      time.Duration    `mapstructure:"retry_delay" validate:"min=0"`
	MaxTotalTimeout time.Duration    `mapstructure:"max_total_timeout" validate:"min=0"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string        `mapstructure:"name" validate:"oneof=gemini deepseek"`
	Enabled  bool          `mapstructure:"enabled"`
	Priority int           `mapstructure:"priority" validate:"min=0"`
	APIKey   string        `mapstructure:"api_key"`
	BaseURL  string        `mapstructure:"base_url" validate:"omitempty,url"`
	Model    string        `mapstructure:"model" validate:"required"`
	Timeout  time.Duration `mapstructure:"timeout" validate:"min=0"`
}

type PlannerConfig struct {
	MaxSteps    int     `mapstructure:"max_steps" validate:"min=1,max=30"`
	Language    string  `mapstructure:"language" validate:"oneof=es en"`
	Temperature float64 `mapstructure:"temperature" validate:"min=0,max=2"`
	MaxTokens   int     `mapstructure:"max_tokens" validate:"min=0"`
}

// SchedulerConfig overrides the deadline allocation defaults.
type SchedulerConfig struct {
	Timezone          string `mapstructure:"timezone" validate:"required"`
	MaxDays           int    `mapstructure:"max_days" validate:"min=1,max=365"`
	InitialOffsetDays int    `mapstructure:"initial_offset_days" validate:"min=0,ltefield=MaxDays"`
	MinTaskDays       int    `mapstructure:"min_task_days" validate:"min=1"`
	MaxTaskDays       int    `mapstructure:"max_task_days" validate:"gtefield=MinTaskDays"`
}

type ReminderConfig struct {
	Enabled   bool          `mapstructure:"enabled"`
	Interval  time.Duration `mapstructure:"interval" validate:"min=1s"`
	DedupTTL  time.Duration `mapstructure:"dedup_ttl" validate:"min=1m"`
	DedupSize int           `mapstructure:"dedup_size" validate:"min=1"`
}

type TelegramConfig struct {
	BotToken string `mapstructure:"bot_token"`
	ChatID   int64  `mapstructure:"chat_id" validate:"required_with=BotToken"`
}

type NotifyWebhookConfig struct {
	URL     string        `mapstructure:"url" validate:"omitempty,url"`
	Secret  string        `mapstructure:"secret" validate:"required_with=URL"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type JWTConfig struct {
	SecretKey string        `mapstructure:"secret_key" validate:"min=16"`
	Issuer    string        `mapstructure:"issuer"`
	TTL       time.Duration `mapstructure:"ttl" validate:"min=1m"`
}

type RateLimitConfig struct {
	RequestsPerMinute int           `mapstructure:"requests_per_minute" validate:"min=1"`
	Burst             int           `mapstructure:"burst" validate:"min=1"`
	CacheSize         int           `mapstructure:"cache_size" validate:"min=1"`
	TTL               time.Duration `mapstructure:"ttl" validate:"min=1m"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
}

var validate = validator.New()

// Load loads configuration using Viper.
// A .env file in the working directory is loaded first if present.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return load(v)
}

// load finishes loading from an already prepared viper instance.
func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}

	for i := range cfg.LLM.Providers {
		cfg.LLM.Providers[i].APIKey = expandEnvVar(v, cfg.LLM.Providers[i].APIKey)
	}
	cfg.CORS.AllowedOrigins = splitList(cfg.CORS.AllowedOrigins)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks struct tags and the rules spanning several sections.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if err := validateLLMConfig(&c.LLM); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.Database.Driver == "sheets" && c.GoogleSheets.SpreadsheetID == "" {
		return errors.New("invalid config: google_sheets.spreadsheet_id is required when database.driver is sheets")
	}
	if _, err := time.LoadLocation(c.Scheduler.Timezone); err != nil {
		return fmt.Errorf("invalid config: scheduler.timezone: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("http_server.shutdown_timeout", "10s")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "action-plans.db")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("google_sheets.spreadsheet_id", "")
	v.SetDefault("google_sheets.credentials_path", "google-credentials.json")
	v.SetDefault("google_sheets.token_path", "token.json")

	v.SetDefault("google_calendar.enabled", false)
	v.SetDefault("google_calendar.credentials_path", "google-credentials.json")
	v.SetDefault("google_calendar.token_path", "token.json")
	v.SetDefault("google_calendar.calendar_id", "primary")

	// LLM defaults
	v.SetDefault("llm.fallback_enabled", true)
	v.SetDefault("llm.retry_attempts", 3)
	v.SetDefault("llm.retry_delay", "1s")
	v.SetDefault("llm.max_total_timeout", "60s") // entire fallback chain

	v.SetDefault("planner.max_steps", 10)
	v.SetDefault("planner.language", "es")
	v.SetDefault("planner.temperature", 0.4)
	v.SetDefault("planner.max_tokens", 2048)

	v.SetDefault("scheduler.timezone", "UTC")
	v.SetDefault("scheduler.max_days", 28)
	v.SetDefault("scheduler.initial_offset_days", 2)
	v.SetDefault("scheduler.min_task_days", 1)
	v.SetDefault("scheduler.max_task_days", 7)

	v.SetDefault("reminder.enabled", true)
	v.SetDefault("reminder.interval", "1h")
	v.SetDefault("reminder.dedup_ttl", "24h")
	v.SetDefault("reminder.dedup_size", 4096)

	v.SetDefault("telegram.bot_token", "")
	v.SetDefault("telegram.chat_id", 0)
	v.SetDefault("notify_webhook.url", "")
	v.SetDefault("notify_webhook.secret", "")
	v.SetDefault("notify_webhook.timeout", "10s")

	v.SetDefault("jwt.secret_key", "")
	v.SetDefault("jwt.issuer", "action-plan-assistant")
	v.SetDefault("jwt.ttl", "720h")

	v.SetDefault("rate_limit.requests_per_minute", 6)
	v.SetDefault("rate_limit.burst", 3)
	v.SetDefault("rate_limit.cache_size", 10000)
	v.SetDefault("rate_limit.ttl", "10m")

	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("cors.allow_credentials", false)
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(v *viper.Viper, value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}

	envVar := value[2 : len(value)-1]
	if envValue := v.GetString(envVar); envValue != "" {
		return envValue
	}
	if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	return os.Getenv(envVar)
}

// splitList accepts both YAML lists and a single comma separated env value.
func splitList(values []string) []string {
	var out []string
	for _, raw := range values {
		for _, item := range strings.Split(raw, ",") {
			if item = strings.TrimSpace(item); item != "" {
				out = append(out, item)
			}
		}
	}
	return out
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	enabledCount := 0
	priorityMap := make(map[int]bool)

	for _, provider := range cfg.Providers {
		if !provider.Enabled {
			continue
		}
		enabledCount++

		if provider.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", provider.Name)
		}
		if priorityMap[provider.Priority] {
			return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
		}
		priorityMap[provider.Priority] = true

		if provider.APIKey == "" {
			return fmt.Errorf("provider %s: api_key is required", provider.Name)
		}
	}

	if enabledCount == 0 {
		return errors.New("no enabled LLM providers")
	}
	return nil
}
