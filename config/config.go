package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Pro To-Do specifics
	Firestore FirestoreConfig
	RateLimit RateLimitConfig
	App       AppConfig
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

// FirestoreConfig configures the Cloud Firestore task store. When ProjectID
// is empty the service falls back to the in-memory store.
type FirestoreConfig struct {
	ProjectID       string
	CredentialsPath string
}

type RateLimitConfig struct {
	Enabled        bool
	RequestsPerMin int
}

// AppConfig holds capture and scheduling behavior knobs.
type AppConfig struct {
	Timezone               string // IANA name used for date resolution
	DefaultDueHour         int    // hour-of-day applied when quick input has no due date
	DefaultReminderMinutes int    // reminder minutes-before-due on quick capture
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
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

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Firestore
	cfg.Firestore.ProjectID = viper.GetString("firestore.project_id")
	cfg.Firestore.CredentialsPath = viper.GetString("firestore.credentials_path")
	if projectID := viper.GetString("firestore_project_id"); projectID != "" {
		cfg.Firestore.ProjectID = projectID
	}
	if creds := viper.GetString("google_application_credentials"); creds != "" {
		cfg.Firestore.CredentialsPath = creds
	}

	// Rate limiting
	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	// App behavior
	cfg.App.Timezone = viper.GetString("app.timezone")
	cfg.App.DefaultDueHour = viper.GetInt("app.default_due_hour")
	cfg.App.DefaultReminderMinutes = viper.GetInt("app.default_reminder_minutes")
	if cfg.App.DefaultDueHour < 0 || cfg.App.DefaultDueHour > 23 {
		return nil, fmt.Errorf("app.default_due_hour must be 0-23, got %d", cfg.App.DefaultDueHour)
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
	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 300)
	viper.SetDefault("app.timezone", "UTC")
	viper.SetDefault("app.default_due_hour", 17)
	viper.SetDefault("app.default_reminder_minutes", 30)
}
