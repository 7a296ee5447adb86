package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"daily-planner/internal/planner"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Planner specifics
	Store          StoreConfig
	Planner        PlannerConfig
	Session        SessionConfig
	Telegram       TelegramConfig
	GoogleCalendar GoogleCalendarConfig
	Cache          CacheConfig
	Recurring      RecurringConfig
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

// StoreConfig points at the PostgREST compatible row store.
type StoreConfig struct {
	URL    string
	APIKey string
	Schema string
}

type PlannerConfig struct {
	Timezone string
	TimeMode planner.TimeMode
	Habits   []string
}

// SessionConfig configures the login gate. An empty Password disables it.
type SessionConfig struct {
	Password        string
	Secret          string
	TTL             time.Duration
	CookieName      string
	LoginRatePerMin int
	Secure          bool
}

type TelegramConfig struct {
	BotToken      string
	WebhookURL    string
	WebhookSecret string
	// NgrokAPI is a local ngrok API base used to discover the webhook URL when WebhookURL is empty.
	NgrokAPI string
	TimeMode planner.TimeMode
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	TokenPath       string
	CalendarID      string
}

type CacheConfig struct {
	DayTTL time.Duration
	Size   int
}

type RecurringConfig struct {
	AutoApply bool
	Interval  time.Duration
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")
	return load(v)
}

// LoadFile loads configuration from an explicit file path.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Row store
	cfg.Store.URL = firstSet(v, "store_url", "store.url")
	cfg.Store.APIKey = firstSet(v, "store_api_key", "store.api_key")
	cfg.Store.Schema = v.GetString("store.schema")

	// Planner
	cfg.Planner.Timezone = v.GetString("planner.timezone")
	mode, err := planner.ParseTimeMode(v.GetString("planner.time_mode"))
	if err != nil {
		return nil, fmt.Errorf("planner.time_mode: %w", err)
	}
	cfg.Planner.TimeMode = mode
	cfg.Planner.Habits = stringList(v, "planner.habits")

	// Session gate
	cfg.Session.Password = firstSet(v, "session_password", "session.password")
	cfg.Session.Secret = v.GetString("session.secret")
	cfg.Session.TTL = v.GetDuration("session.ttl")
	cfg.Session.CookieName = v.GetString("session.cookie_name")
	cfg.Session.LoginRatePerMin = v.GetInt("session.login_rate_per_min")
	cfg.Session.Secure = v.GetBool("session.secure")

	// Telegram
	cfg.Telegram.BotToken = firstSet(v, "telegram_bot_token", "telegram.bot_token")
	cfg.Telegram.WebhookURL = v.GetString("telegram.webhook_url")
	cfg.Telegram.WebhookSecret = v.GetString("telegram.webhook_secret")
	cfg.Telegram.NgrokAPI = v.GetString("telegram.ngrok_api")
	tgMode, err := planner.ParseTimeMode(v.GetString("telegram.time_mode"))
	if err != nil {
		return nil, fmt.Errorf("telegram.time_mode: %w", err)
	}
	cfg.Telegram.TimeMode = tgMode

	// Google Calendar
	cfg.GoogleCalendar.CredentialsPath = firstSet(v, "google_calendar_credentials", "google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = v.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarID = v.GetString("google_calendar.calendar_id")

	// Cache & recurring
	cfg.Cache.DayTTL = v.GetDuration("cache.day_ttl")
	cfg.Cache.Size = v.GetInt("cache.size")
	cfg.Recurring.AutoApply = v.GetBool("recurring.auto_apply")
	cfg.Recurring.Interval = v.GetDuration("recurring.interval")

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("planner.timezone", planner.DefaultTimezone)
	v.SetDefault("planner.time_mode", "strict")
	v.SetDefault("planner.habits", "Exercise,Read,Meditate")

	v.SetDefault("session.ttl", "168h")
	v.SetDefault("session.cookie_name", "planner_session")
	v.SetDefault("session.login_rate_per_min", 10)

	v.SetDefault("telegram.time_mode", "lenient")
	v.SetDefault("google_calendar.token_path", "token.json")
	v.SetDefault("google_calendar.calendar_id", "primary")

	v.SetDefault("cache.day_ttl", "5m")
	v.SetDefault("cache.size", 64)
	v.SetDefault("recurring.auto_apply", true)
	v.SetDefault("recurring.interval", "1m")
}

func validate(cfg *Config) error {
	if cfg.Store.URL == "" {
		return errors.New("store.url is required")
	}
	if len(cfg.Planner.Habits) == 0 {
		return errors.New("planner.habits must name at least one habit")
	}
	if _, err := time.LoadLocation(cfg.Planner.Timezone); err != nil {
		return fmt.Errorf("planner.timezone: %w", err)
	}
	if cfg.HTTPServer.Port <= 0 {
		return fmt.Errorf("http_server.port must be positive, got %d", cfg.HTTPServer.Port)
	}
	return nil
}

// firstSet returns the flat env override when present, else the nested key.
func firstSet(v *viper.Viper, flat, nested string) string {
	if val := v.GetString(flat); val != "" {
		return val
	}
	return v.GetString(nested)
}

// stringList reads a yaml array or a comma separated string, since env vars cannot carry arrays.
func stringList(v *viper.Viper, key string) []string {
	items := v.GetStringSlice(key)
	if _, isString := v.Get(key).(string); isString {
		items = strings.Split(v.GetString(key), ",")
	}

	var out []string
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
